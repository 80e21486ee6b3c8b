package voat

import (
	"context"
	"net/http"
	"net/url"
)

// GetSubverseInfo retrieves the sidebar information for a subverse.
func (c *Client) GetSubverseInfo(ctx context.Context, subverse string) (*Subverse, error) {
	var info Subverse
	if err := c.getJSON(ctx, "/v/"+url.PathEscape(subverse)+"/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetDefaultSubverses gets the current default subverse list shown to guests.
func (c *Client) GetDefaultSubverses(ctx context.Context) ([]Subverse, error) {
	var subverses []Subverse
	if err := c.getJSON(ctx, "/subverse/defaults", nil, &subverses); err != nil {
		return nil, err
	}
	return subverses, nil
}

// GetNewSubverses gets the newest subverses.
func (c *Client) GetNewSubverses(ctx context.Context) ([]Subverse, error) {
	var subverses []Subverse
	if err := c.getJSON(ctx, "/subverse/new", nil, &subverses); err != nil {
		return nil, err
	}
	return subverses, nil
}

// GetTopSubverses gets the top subverses by subscriber count.
func (c *Client) GetTopSubverses(ctx context.Context) ([]Subverse, error) {
	var subverses []Subverse
	if err := c.getJSON(ctx, "/subverse/top", nil, &subverses); err != nil {
		return nil, err
	}
	return subverses, nil
}

// SearchSubverses searches the subverse catalog for a phrase.
func (c *Client) SearchSubverses(ctx context.Context, phrase string) ([]Subverse, error) {
	query := url.Values{"phrase": {phrase}}

	var subverses []Subverse
	if err := c.getJSON(ctx, "/subverse/search", query, &subverses); err != nil {
		return nil, err
	}
	return subverses, nil
}

// BlockSubverse blocks a subverse, hiding it from the user's listings.
func (s *Session) BlockSubverse(ctx context.Context, subverse string) error {
	resp, err := s.doAuth(ctx, http.MethodPost, "/v/"+url.PathEscape(subverse)+"/block", nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}

// UnblockSubverse unblocks a previously blocked subverse.
func (s *Session) UnblockSubverse(ctx context.Context, subverse string) error {
	resp, err := s.doAuth(ctx, http.MethodDelete, "/v/"+url.PathEscape(subverse)+"/block", nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}
