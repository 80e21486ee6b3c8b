package voat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aussiebroadwan/govoat/pkg/titlex"
)

// Special subverse names accepted by GetSubmissions.
const (
	// SubverseFront is the frontpage of the authenticated user
	SubverseFront = "_front"

	// SubverseAny lists all non-private subverses without honoring block
	// lists or minimum CCP requirements
	SubverseAny = "_any"
)

// ============================================================================
// Listings
// ============================================================================

// GetSubmissions lists submissions from a subverse. Use SubverseAny for a
// site-wide listing. Listing SubverseFront requires an authenticated session.
func (c *Client) GetSubmissions(ctx context.Context, subverse string, opts *SearchOptions) ([]Submission, error) {
	var submissions []Submission
	if err := c.getJSON(ctx, "/v/"+url.PathEscape(subverse), opts.Values(), &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// GetSubmissions lists submissions from a subverse as the authenticated user,
// honoring block lists and enabling SubverseFront.
func (s *Session) GetSubmissions(ctx context.Context, subverse string, opts *SearchOptions) ([]Submission, error) {
	var submissions []Submission
	if err := s.getJSON(ctx, "/v/"+url.PathEscape(subverse), opts.Values(), &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// ============================================================================
// Single Submission
// ============================================================================

// GetSubmission gets a single submission by ID.
func (c *Client) GetSubmission(ctx context.Context, submissionID int64) (*Submission, error) {
	var submission Submission
	if err := c.getJSON(ctx, fmt.Sprintf("/submissions/%d", submissionID), nil, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// PostSubmission posts a new submission to the specified subverse. The title
// is sanitized first unless title cleaning is disabled on the client.
func (s *Session) PostSubmission(ctx context.Context, subverse string, submission NewSubmission) (*Submission, error) {
	if s.client.cleanTitles {
		submission.Title = titlex.Clean(submission.Title)
	}

	resp, err := s.doAuth(ctx, http.MethodPost, "/v/"+url.PathEscape(subverse), nil, submission)
	if err != nil {
		return nil, err
	}

	var created Submission
	if err := decodeEnvelope(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// EditSubmission edits an existing submission. Title changes are only
// accepted by the server during the first ten minutes after posting.
func (s *Session) EditSubmission(ctx context.Context, submissionID int64, submission NewSubmission) (*Submission, error) {
	if submission.Title != "" && s.client.cleanTitles {
		submission.Title = titlex.Clean(submission.Title)
	}

	resp, err := s.doAuth(ctx, http.MethodPut, fmt.Sprintf("/submissions/%d", submissionID), nil, submission)
	if err != nil {
		return nil, err
	}

	var edited Submission
	if err := decodeEnvelope(resp, &edited); err != nil {
		return nil, err
	}
	return &edited, nil
}

// DeleteSubmission deletes a submission.
func (s *Session) DeleteSubmission(ctx context.Context, submissionID int64) error {
	resp, err := s.doAuth(ctx, http.MethodDelete, fmt.Sprintf("/submissions/%d", submissionID), nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}

// ============================================================================
// Saved Items
// ============================================================================

// SaveSubmission saves a submission to the user's saved items collection.
func (s *Session) SaveSubmission(ctx context.Context, submissionID int64) error {
	resp, err := s.doAuth(ctx, http.MethodPost, fmt.Sprintf("/submissions/%d/save", submissionID), nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}

// UnsaveSubmission removes a submission from the user's saved items
// collection.
func (s *Session) UnsaveSubmission(ctx context.Context, submissionID int64) error {
	resp, err := s.doAuth(ctx, http.MethodDelete, fmt.Sprintf("/submissions/%d/save", submissionID), nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}
