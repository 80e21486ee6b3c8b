// Package voatlegacy is a client for the legacy, pre-OAuth2 Voat API served
// under /api. The legacy API is expected to be retired once the v1 API is
// generally available; this package is kept isolated so it can be deleted
// wholesale at that point. New integrations should use the voat package.
package voatlegacy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/govoat/pkg/httpx"
	"github.com/aussiebroadwan/govoat/pkg/voat"
)

// DefaultBaseURL is the production host serving the legacy API.
const DefaultBaseURL = "https://voat.co"

const apiPrefix = "/api"

// Client is a legacy API client. The legacy API is unauthenticated and
// read-only.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a legacy API client for the given host.
func NewClient(baseURL string) *Client {
	transport := httpx.NewTransport(1, 2, httpx.DefaultRetryConfig())
	transport.Headers = map[string]string{
		"Accept":     "application/json",
		"User-Agent": "govoat/1.0",
	}

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// get fetches a legacy endpoint and decodes the bare JSON response. The
// legacy API has no response envelope.
func (c *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	u := c.BaseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("legacy api call failed with status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return &voat.DecodeError{
			StatusCode: resp.StatusCode,
			Snippet:    string(bodyBytes[:min(len(bodyBytes), 256)]),
			Err:        err,
		}
	}

	return nil
}

// GetDefaultSubverses returns the list of default subverses shown to guests.
func (c *Client) GetDefaultSubverses(ctx context.Context) ([]Subverse, error) {
	var subverses []Subverse
	if err := c.get(ctx, "/defaultsubverses", nil, &subverses); err != nil {
		return nil, err
	}
	return subverses, nil
}

// GetBannedHostnames returns the hostnames banned for link submissions.
func (c *Client) GetBannedHostnames(ctx context.Context) ([]string, error) {
	var hostnames []string
	if err := c.get(ctx, "/bannedhostnames", nil, &hostnames); err != nil {
		return nil, err
	}
	return hostnames, nil
}

// GetBannedUsers returns the list of site-wide banned users.
func (c *Client) GetBannedUsers(ctx context.Context) ([]string, error) {
	var users []string
	if err := c.get(ctx, "/bannedusers", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetTop200Subverses returns the top 200 subverses ordered by subscriber
// count.
func (c *Client) GetTop200Subverses(ctx context.Context) ([]Subverse, error) {
	var subverses []Subverse
	if err := c.get(ctx, "/top200subverses", nil, &subverses); err != nil {
		return nil, err
	}
	return subverses, nil
}

// GetFrontpage returns the 100 submissions currently on the frontpage.
func (c *Client) GetFrontpage(ctx context.Context) ([]Submission, error) {
	var submissions []Submission
	if err := c.get(ctx, "/frontpage", nil, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// GetSubverseFrontpage returns the 100 submissions currently on the
// frontpage of the given subverse.
func (c *Client) GetSubverseFrontpage(ctx context.Context, subverse string) ([]Submission, error) {
	query := url.Values{"subverse": {subverse}}

	var submissions []Submission
	if err := c.get(ctx, "/subversefrontpage", query, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// GetSingleSubmission returns a single submission by ID.
func (c *Client) GetSingleSubmission(ctx context.Context, submissionID int64) (*Submission, error) {
	query := url.Values{"id": {strconv.FormatInt(submissionID, 10)}}

	var submission Submission
	if err := c.get(ctx, "/singlesubmission", query, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetSingleComment returns a single comment by ID.
func (c *Client) GetSingleComment(ctx context.Context, commentID int64) (*Comment, error) {
	query := url.Values{"id": {strconv.FormatInt(commentID, 10)}}

	var comment Comment
	if err := c.get(ctx, "/singlecomment", query, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetSubverseInfo returns the sidebar for a subverse.
func (c *Client) GetSubverseInfo(ctx context.Context, subverseName string) (*Subverse, error) {
	query := url.Values{"subverseName": {subverseName}}

	var info Subverse
	if err := c.get(ctx, "/subverseinfo", query, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetUserInfo returns basic information about a user.
func (c *Client) GetUserInfo(ctx context.Context, userName string) (*UserInfo, error) {
	query := url.Values{"userName": {userName}}

	var info UserInfo
	if err := c.get(ctx, "/userinfo", query, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetBadgeInfo returns information about a badge. badgeID is the badge name
// with spaces replaced by underscores.
func (c *Client) GetBadgeInfo(ctx context.Context, badgeID string) (*Badge, error) {
	query := url.Values{"badgeId": {badgeID}}

	var badge Badge
	if err := c.get(ctx, "/badgeinfo", query, &badge); err != nil {
		return nil, err
	}
	return &badge, nil
}

// GetSubmissionComments returns the comments for a submission.
func (c *Client) GetSubmissionComments(ctx context.Context, submissionID int64) ([]Comment, error) {
	query := url.Values{"submissionId": {strconv.FormatInt(submissionID, 10)}}

	var comments []Comment
	if err := c.get(ctx, "/submissioncomments", query, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetTop100ImagesByDate returns the top 100 image submissions by date.
func (c *Client) GetTop100ImagesByDate(ctx context.Context) ([]Submission, error) {
	var submissions []Submission
	if err := c.get(ctx, "/top100imagesbydate", nil, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
