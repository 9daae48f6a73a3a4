package dataview

import (
	"context"
	"fmt"
	"net/url"

	"github.com/crimson-sun/sawmill/internal/httpclient"
)

const (
	getPath    = "/api/data_views/data_view/"
	createPath = "/api/data_views/data_view"
	fieldsPath = "/api/data_views/_fields_for_wildcard"
)

// Client implements Service against a data-views REST API.
type Client struct {
	api *httpclient.Client
}

// NewClient creates a Client on top of the shared HTTP client.
func NewClient(api *httpclient.Client) *Client {
	return &Client{api: api}
}

// Wire envelopes. The API nests the data view under a "data_view" key and
// field listings under "fields".
type dataViewResponse struct {
	DataView *DataView `json:"data_view"`
}

type fieldsResponse struct {
	Fields []Field `json:"fields"`
}

// Get fetches a persisted data view by ID.
func (c *Client) Get(ctx context.Context, id string) (*DataView, error) {
	var resp dataViewResponse
	if err := c.api.GetJSON(ctx, getPath+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("dataview: get %q: %w", id, err)
	}
	if resp.DataView == nil {
		return nil, fmt.Errorf("dataview: get %q: empty response", id)
	}
	return resp.DataView, nil
}

// Create assembles an ad-hoc data view without persisting it. The field
// list is resolved through the fields-for-wildcard endpoint so the view
// reflects the indices matched by the spec's title.
func (c *Client) Create(ctx context.Context, spec Spec) (*DataView, error) {
	query := url.Values{}
	query.Set("pattern", spec.Title)
	if spec.AllowNoIndex {
		query.Set("allow_no_index", "true")
	}

	var resp fieldsResponse
	if err := c.api.GetJSON(ctx, fieldsPath, query, &resp); err != nil {
		return nil, fmt.Errorf("dataview: fields for %q: %w", spec.Title, err)
	}

	return &DataView{
		ID:            spec.ID,
		Title:         spec.Title,
		Name:          spec.Name,
		TimeFieldName: spec.TimeFieldName,
		Fields:        resp.Fields,
	}, nil
}

// Save persists a data view through the API and returns the stored copy.
// Saving an ad-hoc view promotes it to a saved object with the same ID.
func (c *Client) Save(ctx context.Context, dv *DataView) (*DataView, error) {
	req := struct {
		Override bool      `json:"override"`
		DataView *DataView `json:"data_view"`
	}{Override: false, DataView: dv}

	var resp dataViewResponse
	if err := c.api.PostJSON(ctx, createPath, req, &resp); err != nil {
		return nil, fmt.Errorf("dataview: save %q: %w", dv.ID, err)
	}
	if resp.DataView == nil {
		return nil, fmt.Errorf("dataview: save %q: empty response", dv.ID)
	}
	return resp.DataView, nil
}
