package logsources

import (
	"context"
	"fmt"

	"github.com/crimson-sun/sawmill/internal/httpclient"
)

// SettingKey is the advanced-setting entry holding the configured log sources.
const SettingKey = "observability:logSources"

// DefaultIndexPattern is used when no log sources are configured.
const DefaultIndexPattern = "logs-*-*"

// LogSource names a single set of indices holding log data.
type LogSource struct {
	IndexPattern string
}

// Service lists the log sources configured for the deployment.
type Service interface {
	List(ctx context.Context) ([]LogSource, error)
}

// Static is a fixed in-process source list, used when sources are supplied
// directly via configuration.
type Static []LogSource

func (s Static) List(_ context.Context) ([]LogSource, error) {
	return s, nil
}

// NewStatic builds a Static service from raw index patterns.
func NewStatic(patterns []string) Static {
	sources := make(Static, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		sources = append(sources, LogSource{IndexPattern: p})
	}
	return sources
}

// Client reads the configured log sources from the advanced-settings API.
type Client struct {
	api *httpclient.Client
}

// NewClient creates a Client on top of the shared HTTP client.
func NewClient(api *httpclient.Client) *Client {
	return &Client{api: api}
}

const settingsPath = "/api/settings"

type settingsResponse struct {
	Settings map[string]settingValue `json:"settings"`
}

type settingValue struct {
	UserValue []string `json:"userValue"`
	Value     []string `json:"value"`
}

// List fetches the log sources setting. A user-set value takes precedence
// over the deployment default; when neither is present the built-in default
// pattern is returned.
func (c *Client) List(ctx context.Context) ([]LogSource, error) {
	var resp settingsResponse
	if err := c.api.GetJSON(ctx, settingsPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("logsources: list: %w", err)
	}

	setting := resp.Settings[SettingKey]
	patterns := setting.UserValue
	if len(patterns) == 0 {
		patterns = setting.Value
	}
	if len(patterns) == 0 {
		patterns = []string{DefaultIndexPattern}
	}

	sources := make([]LogSource, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		sources = append(sources, LogSource{IndexPattern: p})
	}
	return sources, nil
}
