// Package cli implements the voat command line client. It wires the SDK,
// the credential store and logging together behind a cobra command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/govoat/internal/credstore"
	"github.com/aussiebroadwan/govoat/pkg/slogx"
	"github.com/aussiebroadwan/govoat/pkg/voat"
	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "dev"

// App holds the shared state behind the command tree.
type App struct {
	cfg    Config
	logger *slog.Logger

	client *voat.Client
	store  *credstore.Store
}

// New builds the application from configuration.
func New(cfg Config) (*App, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("VOAT_API_KEY is required")
	}

	logger := slogx.New(slogx.Config{
		Service: "voat",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	opts := []voat.Option{
		voat.WithLogger(logger),
		voat.WithClientSecret(cfg.ClientSecret),
	}
	if !cfg.CleanTitles {
		opts = append(opts, voat.WithoutTitleCleaning())
	}

	store, err := credstore.Open(cfg.StateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open state file %s: %w", cfg.StateFile, err)
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		client: voat.NewClient(cfg.Host, cfg.APIKey, opts...),
		store:  store,
	}, nil
}

// Close releases the credential store.
func (a *App) Close() error { return a.store.Close() }

// RootCommand builds the cobra command tree.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "voat",
		Short:         "Command line client for the Voat API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.statusCommand(),
		a.frontpageCommand(),
		a.submissionsCommand(),
		a.submitCommand(),
		a.commentCommand(),
		a.voteCommand(),
		a.messagesCommand(),
		a.streamCommand(),
		a.cleanTitleCommand(),
	)

	return root
}

// session restores the stored session for the configured account, refreshing
// and re-persisting tokens as a side effect of use.
func (a *App) session(ctx context.Context) (*voat.Session, credstore.Credential, error) {
	var (
		cred credstore.Credential
		err  error
	)
	if a.cfg.Username != "" {
		cred, err = a.store.GetCredential(ctx, a.cfg.Host, a.cfg.Username)
	} else {
		cred, err = a.store.LatestCredential(ctx, a.cfg.Host)
	}
	if errors.Is(err, credstore.ErrNotFound) {
		return nil, credstore.Credential{}, fmt.Errorf("not logged in, run `voat login` first")
	}
	if err != nil {
		return nil, credstore.Credential{}, err
	}

	session := a.client.NewSessionFromAuthData(voat.AuthData{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		ExpiresAt:    cred.ExpiresAt,
		Scope:        cred.Scope,
	})

	return session, cred, nil
}

// persistSession writes the session's current tokens back to the store. Call
// it after commands that may have triggered a refresh.
func (a *App) persistSession(ctx context.Context, session *voat.Session, cred credstore.Credential) {
	data := session.AuthData()
	if data.AccessToken == cred.AccessToken {
		return
	}

	cred.AccessToken = data.AccessToken
	cred.RefreshToken = data.RefreshToken
	cred.ExpiresAt = data.ExpiresAt
	cred.Scope = data.Scope
	if err := a.store.SaveCredential(ctx, cred); err != nil {
		a.logger.Warn("failed to persist refreshed tokens", "error", err)
	}
}
