package voat

import "context"

// GetSystemStatus gets the current operational state of the API.
func (c *Client) GetSystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.getJSON(ctx, "/system/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetSystemTime gets the current time on the server. Use it to calculate
// clock offsets in your application.
func (c *Client) GetSystemTime(ctx context.Context) (*SystemTime, error) {
	var t SystemTime
	if err := c.getJSON(ctx, "/system/time", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetBannedDomains gets the currently banned domain list.
func (c *Client) GetBannedDomains(ctx context.Context) ([]string, error) {
	var domains []string
	if err := c.getJSON(ctx, "/system/banned/domains", nil, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}
