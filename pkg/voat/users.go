package voat

import (
	"context"
	"net/http"
	"net/url"
)

// ============================================================================
// Public Profile
// ============================================================================

// GetUserInfo retrieves the public profile of a user.
func (c *Client) GetUserInfo(ctx context.Context, user string) (*UserInfo, error) {
	var info UserInfo
	if err := c.getJSON(ctx, "/u/"+url.PathEscape(user)+"/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetUserComments gets a user's comments. Supports SearchOptions querystring
// arguments.
func (c *Client) GetUserComments(ctx context.Context, user string, opts *SearchOptions) ([]Comment, error) {
	var comments []Comment
	if err := c.getJSON(ctx, "/u/"+url.PathEscape(user)+"/comments", opts.Values(), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetUserSubmissions gets a user's submissions. Supports SearchOptions
// querystring arguments.
func (c *Client) GetUserSubmissions(ctx context.Context, user string, opts *SearchOptions) ([]Submission, error) {
	var submissions []Submission
	if err := c.getJSON(ctx, "/u/"+url.PathEscape(user)+"/submissions", opts.Values(), &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// ============================================================================
// Authenticated Account Data
// ============================================================================

// GetSubscriptions gets the authenticated user's subscriptions.
func (s *Session) GetSubscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	if err := s.getJSON(ctx, "/u/subscriptions", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetUserSubscriptions gets another user's subscriptions, if they display
// them publicly.
func (s *Session) GetUserSubscriptions(ctx context.Context, user string) ([]Subscription, error) {
	var subs []Subscription
	if err := s.getJSON(ctx, "/u/"+url.PathEscape(user)+"/subscriptions", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetSaved gets the authenticated user's saved items.
func (s *Session) GetSaved(ctx context.Context) ([]SavedItem, error) {
	var saved []SavedItem
	if err := s.getJSON(ctx, "/u/saved", nil, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// GetBlockedSubverses gets the subverses the authenticated user has blocked.
func (s *Session) GetBlockedSubverses(ctx context.Context) ([]string, error) {
	var blocked []string
	if err := s.getJSON(ctx, "/u/blocked/subverses", nil, &blocked); err != nil {
		return nil, err
	}
	return blocked, nil
}

// GetBlockedUsers gets the users the authenticated user has blocked.
func (s *Session) GetBlockedUsers(ctx context.Context) ([]string, error) {
	var blocked []string
	if err := s.getJSON(ctx, "/u/blocked/users", nil, &blocked); err != nil {
		return nil, err
	}
	return blocked, nil
}

// ============================================================================
// Blocking
// ============================================================================

// BlockUser blocks a user. Blocks hide the blocked user's submissions,
// comments and messages.
func (s *Session) BlockUser(ctx context.Context, user string) error {
	resp, err := s.doAuth(ctx, http.MethodPost, "/u/"+url.PathEscape(user)+"/block", nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}

// UnblockUser unblocks a previously blocked user.
func (s *Session) UnblockUser(ctx context.Context, user string) error {
	resp, err := s.doAuth(ctx, http.MethodDelete, "/u/"+url.PathEscape(user)+"/block", nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}
