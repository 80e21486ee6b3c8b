package voat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSubmissions(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/v/programming", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "test-key", r.Header.Get("Voat-ApiKey"))
		require.Empty(t, r.Header.Get("Authorization"))
		require.Equal(t, "top", r.URL.Query().Get("sort"))
		require.Equal(t, "day", r.URL.Query().Get("span"))

		writeEnvelope(w, []map[string]any{
			{"id": 1001, "title": "First post", "subverse": "programming", "type": 1},
			{"id": 1002, "title": "Second post", "subverse": "programming", "type": 2},
		})
	})

	client := newTestClient(t, mux)

	submissions, err := client.GetSubmissions(context.Background(), "programming", &SearchOptions{
		Sort: SortTop,
		Span: SpanDay,
	})
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	require.Equal(t, int64(1001), submissions[0].ID)
	require.Equal(t, "First post", submissions[0].Title)
	require.Equal(t, SubmissionTypeLink, submissions[1].Type)
}

func TestSessionGetSubmissionsFrontpage(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/v/_front", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer front-token", r.Header.Get("Authorization"))
		writeEnvelope(w, []map[string]any{{"id": 42, "title": "frontpage"}})
	})

	client := newTestClient(t, mux)
	session := newTestSession(client, "front-token")

	submissions, err := session.GetSubmissions(context.Background(), SubverseFront, nil)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
}

func TestPostSubmissionCleansTitle(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/v/whatever", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var payload NewSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "Hello worldTM", payload.Title)
		require.Equal(t, "body text", payload.Content)

		writeEnvelope(w, map[string]any{"id": 7, "title": payload.Title})
	})

	client := newTestClient(t, mux)
	session := newTestSession(client, "token")

	created, err := session.PostSubmission(context.Background(), "whatever", NewSubmission{
		Title:   "Hello\u200b \u2002world™",
		Content: "body text",
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), created.ID)
}

func TestPostSubmissionWithoutCleaning(t *testing.T) {
	t.Parallel()

	srv := http.NewServeMux()
	srv.HandleFunc("/api/v1/v/whatever", func(w http.ResponseWriter, r *http.Request) {
		var payload NewSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "raw™title", payload.Title)
		writeEnvelope(w, map[string]any{"id": 8})
	})

	client := newTestClient(t, srv, WithoutTitleCleaning())
	session := newTestSession(client, "token")

	_, err := session.PostSubmission(context.Background(), "whatever", NewSubmission{
		Title: "raw™title",
		URL:   "https://example.com",
	})
	require.NoError(t, err)
}

func TestGetComments(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/v/news/12345/comments", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]any{
			"comments":      []map[string]any{{"id": 1, "content": "hi"}},
			"totalCount":    150,
			"startingIndex": 0,
		})
	})

	client := newTestClient(t, mux)

	tree, err := client.GetComments(context.Background(), "news", 12345, nil)
	require.NoError(t, err)
	require.Equal(t, 150, tree.TotalCount)
	require.Len(t, tree.Comments, 1)
	require.Equal(t, "hi", tree.Comments[0].Content)
}

func TestGetCommentsFrom(t *testing.T) {
	t.Parallel()

	t.Run("with index", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v1/v/news/12345/comments/99/20", func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, map[string]any{"comments": []any{}, "totalCount": 0})
		})

		client := newTestClient(t, mux)
		_, err := client.GetCommentsFrom(context.Background(), "news", 12345, 99, 20, nil)
		require.NoError(t, err)
	})

	t.Run("negative index omitted", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v1/v/news/12345/comments/99", func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, map[string]any{"comments": []any{}, "totalCount": 0})
		})

		client := newTestClient(t, mux)
		_, err := client.GetCommentsFrom(context.Background(), "news", 12345, 99, -1, nil)
		require.NoError(t, err)
	})
}

func TestPostAndReplyComment(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/v/news/12345/comment", func(w http.ResponseWriter, r *http.Request) {
		var payload commentValue
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "top level", payload.Value)
		writeEnvelope(w, map[string]any{"id": 500, "content": payload.Value})
	})
	mux.HandleFunc("/api/v1/v/news/12345/comment/500", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]any{"id": 501, "parentID": 500})
	})
	mux.HandleFunc("/api/v1/comments/500", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		writeEnvelope(w, map[string]any{"id": 502, "parentID": 500})
	})

	client := newTestClient(t, mux)
	session := newTestSession(client, "token")
	ctx := context.Background()

	created, err := session.PostComment(ctx, "news", 12345, "top level")
	require.NoError(t, err)
	require.Equal(t, int64(500), created.ID)

	reply, err := session.ReplyToComment(ctx, "news", 12345, 500, "a reply")
	require.NoError(t, err)
	require.Equal(t, int64(500), reply.ParentID)

	byID, err := session.ReplyToCommentByID(ctx, 500, "another reply")
	require.NoError(t, err)
	require.Equal(t, int64(502), byID.ID)
}

func TestVote(t *testing.T) {
	t.Parallel()

	t.Run("upvote submission", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v1/vote/submission/1001/1", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Empty(t, r.URL.Query().Get("revokeOnRevote"))
			writeEnvelope(w, map[string]any{"recordedValue": 1, "result": 0})
		})

		client := newTestClient(t, mux)
		session := newTestSession(client, "token")

		result, err := session.Vote(context.Background(), VoteTargetSubmission, 1001, 1)
		require.NoError(t, err)
		require.Equal(t, 1, result.RecordedValue)
	})

	t.Run("downvote comment without revoke", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v1/vote/comment/500/-1", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "false", r.URL.Query().Get("revokeOnRevote"))
			writeEnvelope(w, map[string]any{"recordedValue": -1, "result": 0})
		})

		client := newTestClient(t, mux)
		session := newTestSession(client, "token")

		result, err := session.VoteRevokeOnRevote(context.Background(), VoteTargetComment, 500, -1, false)
		require.NoError(t, err)
		require.Equal(t, -1, result.RecordedValue)
	})

	t.Run("out of range value", func(t *testing.T) {
		client := newTestClient(t, http.NewServeMux())
		session := newTestSession(client, "token")

		_, err := session.Vote(context.Background(), VoteTargetSubmission, 1001, 5)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid vote value")
	})
}

func TestEnvelopeAPIError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/v/private", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelopeError(w, http.StatusForbidden, "SubverseDisabled", "Subverse is disabled")
	})

	client := newTestClient(t, mux)

	_, err := client.GetSubmissions(context.Background(), "private", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.Equal(t, "SubverseDisabled", apiErr.Type)
	require.Contains(t, apiErr.Error(), "Subverse is disabled")
}

func TestEnvelopeHTMLResponse(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/v/news", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "<html><body>Attention Required! | Cloudflare</body></html>")
	})

	client := newTestClient(t, mux)

	_, err := client.GetSubmissions(context.Background(), "news", nil)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, http.StatusServiceUnavailable, decodeErr.StatusCode)
	require.Contains(t, decodeErr.Snippet, "Cloudflare")
}

func TestGetUserInfo(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/u/PuttItOut/info", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]any{
			"userName":         "PuttItOut",
			"commentPoints":    map[string]int{"sum": 100, "upCount": 120, "downCount": 20},
			"submissionPoints": map[string]int{"sum": 50},
		})
	})

	client := newTestClient(t, mux)

	info, err := client.GetUserInfo(context.Background(), "PuttItOut")
	require.NoError(t, err)
	require.Equal(t, "PuttItOut", info.UserName)
	require.Equal(t, 100, info.CommentPoints.Sum)
	require.Equal(t, 120, info.CommentPoints.UpCount)
}

func TestUpdatePreferences(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/u/preferences", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		// Only the explicitly set field is sent.
		require.Equal(t, map[string]any{"nightMode": true}, payload)
		writeEnvelope(w, nil)
	})

	client := newTestClient(t, mux)
	session := newTestSession(client, "token")

	nightMode := true
	err := session.UpdatePreferences(context.Background(), Preferences{NightMode: &nightMode})
	require.NoError(t, err)
}

func TestGetMessages(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/u/messages/inbox/unread", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, []map[string]any{
			{"id": 1, "sender": "alice", "recipient": "bob", "content": "hey", "unread": true},
		})
	})

	client := newTestClient(t, mux)
	session := newTestSession(client, "token")

	messages, err := session.GetMessages(context.Background(), MessageTypeInbox, MessageStateUnread)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, "alice", messages[0].Sender)
	require.True(t, messages[0].Unread)
}
