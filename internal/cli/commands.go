package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/govoat/internal/credstore"
	"github.com/aussiebroadwan/govoat/pkg/titlex"
	"github.com/aussiebroadwan/govoat/pkg/voat"
	"github.com/spf13/cobra"
)

func (a *App) loginCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store tokens for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}
			if a.cfg.ClientSecret == "" {
				return fmt.Errorf("VOAT_CLIENT_SECRET is required to log in")
			}

			session, err := a.client.AuthenticateWithPassword(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			data := session.AuthData()
			err = a.store.SaveCredential(cmd.Context(), credstore.Credential{
				Host:         a.cfg.Host,
				Username:     username,
				AccessToken:  data.AccessToken,
				RefreshToken: data.RefreshToken,
				ExpiresAt:    data.ExpiresAt,
				Scope:        data.Scope,
			})
			if err != nil {
				return fmt.Errorf("failed to store tokens: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account name (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (required)")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget stored tokens for the configured account",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cred, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			if err := a.store.DeleteCredential(cmd.Context(), cred.Host, cred.Username); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged out %s\n", cred.Username)
			return nil
		},
	}
}

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show API status and server time",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.client.GetSystemStatus(cmd.Context())
			if err != nil {
				return err
			}

			serverTime, err := a.client.GetSystemTime(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\nserver time: %s\n", status.Status, serverTime.UTC)
			return nil
		},
	}
}

func (a *App) frontpageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "frontpage",
		Short: "List the authenticated user's frontpage submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cred, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer a.persistSession(cmd.Context(), session, cred)

			submissions, err := session.GetSubmissions(cmd.Context(), voat.SubverseFront, nil)
			if err != nil {
				return err
			}

			printSubmissions(cmd, submissions)
			return nil
		},
	}
}

func (a *App) submissionsCommand() *cobra.Command {
	var (
		sortFlag string
		span     string
		count    int
	)

	cmd := &cobra.Command{
		Use:   "submissions <subverse>",
		Short: "List submissions from a subverse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &voat.SearchOptions{
				Sort:  voat.Sort(sortFlag),
				Span:  voat.Span(span),
				Count: count,
			}

			submissions, err := a.client.GetSubmissions(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			printSubmissions(cmd, submissions)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", "", "sort order (new, top, rank, ...)")
	cmd.Flags().StringVar(&span, "span", "", "time span (hour, day, week, ...)")
	cmd.Flags().IntVar(&count, "count", 0, "records per page (max 50)")
	return cmd
}

func (a *App) submitCommand() *cobra.Command {
	var (
		title   string
		linkURL string
		content string
		adult   bool
	)

	cmd := &cobra.Command{
		Use:   "submit <subverse>",
		Short: "Post a new submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("--title is required")
			}
			if linkURL == "" && content == "" {
				return fmt.Errorf("one of --url or --content is required")
			}

			session, cred, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer a.persistSession(cmd.Context(), session, cred)

			created, err := session.PostSubmission(cmd.Context(), args[0], voat.NewSubmission{
				Title:   title,
				URL:     linkURL,
				Content: content,
				IsAdult: adult,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "submitted %d: %s\n", created.ID, created.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "submission title (required)")
	cmd.Flags().StringVar(&linkURL, "url", "", "link submissions: the URL")
	cmd.Flags().StringVar(&content, "content", "", "self posts: the text body")
	cmd.Flags().BoolVar(&adult, "adult", false, "mark the submission as adult content")
	return cmd
}

func (a *App) commentCommand() *cobra.Command {
	var replyTo int64

	cmd := &cobra.Command{
		Use:   "comment <subverse> <submission-id> <text>",
		Short: "Comment on a submission, or reply to a comment with --reply-to",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cred, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer a.persistSession(cmd.Context(), session, cred)

			var submissionID int64
			if _, err := fmt.Sscanf(args[1], "%d", &submissionID); err != nil {
				return fmt.Errorf("invalid submission id %q", args[1])
			}

			var created *voat.Comment
			if replyTo > 0 {
				created, err = session.ReplyToComment(cmd.Context(), args[0], submissionID, replyTo, args[2])
			} else {
				created, err = session.PostComment(cmd.Context(), args[0], submissionID, args[2])
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "comment %d posted\n", created.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&replyTo, "reply-to", 0, "comment ID to reply to")
	return cmd
}

func (a *App) voteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <submission|comment> <id> <-1|0|1>",
		Short: "Vote on a submission or comment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := voat.VoteTarget(args[0])
			if target != voat.VoteTargetSubmission && target != voat.VoteTargetComment {
				return fmt.Errorf("vote target must be submission or comment")
			}

			var id int64
			if _, err := fmt.Sscanf(args[1], "%d", &id); err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}
			var value int
			if _, err := fmt.Sscanf(args[2], "%d", &value); err != nil {
				return fmt.Errorf("invalid vote value %q", args[2])
			}

			session, cred, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer a.persistSession(cmd.Context(), session, cred)

			result, err := session.Vote(cmd.Context(), target, id, value)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "vote recorded: %d\n", result.RecordedValue)
			return nil
		},
	}
}

func (a *App) messagesCommand() *cobra.Command {
	var (
		mtype string
		state string
	)

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List messages for the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cred, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer a.persistSession(cmd.Context(), session, cred)

			messages, err := session.GetMessages(cmd.Context(), voat.MessageType(mtype), voat.MessageState(state))
			if err != nil {
				return err
			}

			for _, msg := range messages {
				marker := " "
				if msg.Unread {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %6d  %-20s  %s\n", marker, msg.ID, msg.Sender, msg.Subject)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mtype, "type", string(voat.MessageTypeInbox), "mailbox (inbox, sent, comment, submission, mention, all)")
	cmd.Flags().StringVar(&state, "state", string(voat.MessageStateAll), "read state (unread, read, all)")
	return cmd
}

func (a *App) streamCommand() *cobra.Command {
	var (
		comments bool
		follow   bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Poll the submission or comment stream",
		Long: "Poll the stream endpoints, which return content created since the\n" +
			"last call made by this account. With --follow, polls repeatedly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cred, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer a.persistSession(cmd.Context(), session, cred)

			stream := "submissions"
			if comments {
				stream = "comments"
			}

			// The server keys the stream window on the account, so the
			// cursor is informational: it tells the user how far back
			// this poll reaches.
			if since, err := a.store.GetCursor(cmd.Context(), cred.Host, stream); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s stream, last polled %s\n", stream, since.Format(time.RFC3339))
			}

			for {
				if comments {
					batch, err := session.StreamComments(cmd.Context())
					if err != nil {
						return err
					}
					for _, c := range batch {
						fmt.Fprintf(cmd.OutOrStdout(), "%6d  v/%s  %s: %s\n", c.ID, c.Subverse, c.UserName, firstLine(c.Content))
					}
				} else {
					batch, err := session.StreamSubmissions(cmd.Context())
					if err != nil {
						return err
					}
					printSubmissions(cmd, batch)
				}

				if err := a.store.SetCursor(cmd.Context(), cred.Host, stream, time.Now()); err != nil {
					a.logger.Warn("failed to record stream cursor", "error", err)
				}

				if !follow {
					return nil
				}
				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case <-time.After(interval):
				}
			}
		},
	}

	cmd.Flags().BoolVar(&comments, "comments", false, "stream comments instead of submissions")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep polling")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "poll interval with --follow")
	return cmd
}

func (a *App) cleanTitleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-title <title>",
		Short: "Show how a title will be sanitized before submission",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), titlex.Clean(strings.Join(args, " ")))
			return nil
		},
	}
}

func printSubmissions(cmd *cobra.Command, submissions []voat.Submission) {
	for _, sub := range submissions {
		fmt.Fprintf(cmd.OutOrStdout(), "%6d  %4d  v/%-20s  %s\n",
			sub.ID, sub.UpCount-sub.DownCount, sub.Subverse, sub.Title)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// exported for main: distinguish usage errors from API errors when picking an
// exit code.
func IsAPIError(err error) bool {
	var apiErr *voat.APIError
	var oauthErr *voat.OAuth2Error
	return errors.As(err, &apiErr) || errors.As(err, &oauthErr)
}
