package voat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Vote submits a vote on a submission or comment as the authenticated user.
// value must be -1 (downvote), 0 (revoke) or 1 (upvote).
func (s *Session) Vote(ctx context.Context, target VoteTarget, id int64, value int) (*VoteResult, error) {
	return s.vote(ctx, target, id, value, nil)
}

// VoteRevokeOnRevote is like Vote but controls what happens when the same
// vote is submitted twice: true revokes the existing vote, false ignores the
// duplicate. The server defaults to revoking.
func (s *Session) VoteRevokeOnRevote(ctx context.Context, target VoteTarget, id int64, value int, revokeOnRevote bool) (*VoteResult, error) {
	return s.vote(ctx, target, id, value, &revokeOnRevote)
}

func (s *Session) vote(ctx context.Context, target VoteTarget, id int64, value int, revokeOnRevote *bool) (*VoteResult, error) {
	if value < -1 || value > 1 {
		return nil, fmt.Errorf("voat: invalid vote value %d, must be -1, 0 or 1", value)
	}

	var query url.Values
	if revokeOnRevote != nil {
		query = url.Values{"revokeOnRevote": {strconv.FormatBool(*revokeOnRevote)}}
	}

	path := fmt.Sprintf("/vote/%s/%d/%d", target, id, value)
	resp, err := s.doAuth(ctx, http.MethodPost, path, query, nil)
	if err != nil {
		return nil, err
	}

	var result VoteResult
	if err := decodeEnvelope(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
