package voat

import "context"

// Streams return content created since the last call made to the same
// endpoint by this account. They are intended for live monitoring: poll on an
// interval and each call returns only what is new.

// StreamSubmissions returns the submissions created since the last call to
// this endpoint.
func (s *Session) StreamSubmissions(ctx context.Context) ([]Submission, error) {
	var submissions []Submission
	if err := s.getJSON(ctx, "/stream/submissions", nil, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// StreamComments returns the comments created since the last call to this
// endpoint.
func (s *Session) StreamComments(ctx context.Context) ([]Comment, error) {
	var comments []Comment
	if err := s.getJSON(ctx, "/stream/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
