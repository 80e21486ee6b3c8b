package voat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// commentValue is the payload for posting or editing a comment.
type commentValue struct {
	Value string `json:"value"`
}

// ============================================================================
// Comment Listings
// ============================================================================

// GetComments gets the comments for a submission. Supports SearchOptions
// querystring arguments.
func (c *Client) GetComments(ctx context.Context, subverse string, submissionID int64, opts *SearchOptions) (*CommentTree, error) {
	path := fmt.Sprintf("/v/%s/%d/comments", url.PathEscape(subverse), submissionID)

	var tree CommentTree
	if err := c.getJSON(ctx, path, opts.Values(), &tree); err != nil {
		return nil, err
	}
	return &tree, nil
}

// GetCommentsFrom gets the comments for a submission starting from the given
// parent comment, optionally starting at an index within the parent's
// children. index < 0 starts from the beginning.
func (c *Client) GetCommentsFrom(
	ctx context.Context,
	subverse string,
	submissionID, parentID int64,
	index int,
	opts *SearchOptions,
) (*CommentTree, error) {
	path := fmt.Sprintf("/v/%s/%d/comments/%d", url.PathEscape(subverse), submissionID, parentID)
	if index >= 0 {
		path = fmt.Sprintf("%s/%d", path, index)
	}

	var tree CommentTree
	if err := c.getJSON(ctx, path, opts.Values(), &tree); err != nil {
		return nil, err
	}
	return &tree, nil
}

// GetComment retrieves a single comment by ID.
func (c *Client) GetComment(ctx context.Context, commentID int64) (*Comment, error) {
	var comment Comment
	if err := c.getJSON(ctx, fmt.Sprintf("/comments/%d", commentID), nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ============================================================================
// Posting and Editing
// ============================================================================

// PostComment posts a top-level comment on a submission.
func (s *Session) PostComment(ctx context.Context, subverse string, submissionID int64, value string) (*Comment, error) {
	path := fmt.Sprintf("/v/%s/%d/comment", url.PathEscape(subverse), submissionID)
	return s.postComment(ctx, path, value)
}

// ReplyToComment posts a reply to an existing comment on a submission.
func (s *Session) ReplyToComment(ctx context.Context, subverse string, submissionID, commentID int64, value string) (*Comment, error) {
	path := fmt.Sprintf("/v/%s/%d/comment/%d", url.PathEscape(subverse), submissionID, commentID)
	return s.postComment(ctx, path, value)
}

// ReplyToCommentByID posts a reply to a comment when only the comment ID is
// known.
func (s *Session) ReplyToCommentByID(ctx context.Context, commentID int64, value string) (*Comment, error) {
	return s.postComment(ctx, fmt.Sprintf("/comments/%d", commentID), value)
}

func (s *Session) postComment(ctx context.Context, path, value string) (*Comment, error) {
	resp, err := s.doAuth(ctx, http.MethodPost, path, nil, commentValue{Value: value})
	if err != nil {
		return nil, err
	}

	var created Comment
	if err := decodeEnvelope(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// EditComment edits an existing comment.
func (s *Session) EditComment(ctx context.Context, commentID int64, value string) (*Comment, error) {
	resp, err := s.doAuth(ctx, http.MethodPut, fmt.Sprintf("/comments/%d", commentID), nil, commentValue{Value: value})
	if err != nil {
		return nil, err
	}

	var edited Comment
	if err := decodeEnvelope(resp, &edited); err != nil {
		return nil, err
	}
	return &edited, nil
}

// DeleteComment deletes an existing comment.
func (s *Session) DeleteComment(ctx context.Context, commentID int64) error {
	resp, err := s.doAuth(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d", commentID), nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}

// ============================================================================
// Saved Items
// ============================================================================

// SaveComment saves a comment to the user's saved items collection.
func (s *Session) SaveComment(ctx context.Context, commentID int64) error {
	resp, err := s.doAuth(ctx, http.MethodPost, fmt.Sprintf("/comments/%d/save", commentID), nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}

// UnsaveComment removes a comment from the user's saved items collection.
func (s *Session) UnsaveComment(ctx context.Context, commentID int64) error {
	resp, err := s.doAuth(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d/save", commentID), nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}
