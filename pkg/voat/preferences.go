package voat

import (
	"context"
	"net/http"
)

// GetPreferences retrieves the authenticated user's preferences.
func (s *Session) GetPreferences(ctx context.Context) (*Preferences, error) {
	var prefs Preferences
	if err := s.getJSON(ctx, "/u/preferences", nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpdatePreferences updates the authenticated user's preferences. Only the
// fields set on prefs are sent; everything else is left unchanged.
func (s *Session) UpdatePreferences(ctx context.Context, prefs Preferences) error {
	resp, err := s.doAuth(ctx, http.MethodPut, "/u/preferences", nil, prefs)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}
