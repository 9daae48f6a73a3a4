package sawmill

import (
	"context"
	"fmt"

	"github.com/crimson-sun/sawmill/internal/dataview"
	"github.com/crimson-sun/sawmill/internal/httpclient"
	"github.com/crimson-sun/sawmill/internal/logsources"
	"github.com/crimson-sun/sawmill/internal/logview"
)

// Resolver resolves log view configurations against the data-views and
// settings APIs. Safe for concurrent use.
type Resolver struct {
	store     *logview.FileStore
	resolver  *logview.Resolver
	dataViews *dataview.Client
}

// New creates a Resolver. Without options it targets a local API endpoint
// and serves only the built-in default log view.
func New(opts ...Option) (*Resolver, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.endpoint == "" {
		return nil, fmt.Errorf("sawmill: endpoint must not be empty")
	}

	api := httpclient.New(o.endpoint, o.apiKey, httpclient.WithTimeout(o.timeout))
	dataViews := dataview.NewClient(api)

	var sources logview.LogSourcesService = logsources.NewClient(api)
	if len(o.staticSources) > 0 {
		sources = logsources.NewStatic(o.staticSources)
	}

	defaults := logview.DefaultAttributes(logview.MatchLocale(o.locale))
	store, err := logview.NewFileStore(o.storePath, defaults)
	if err != nil {
		return nil, fmt.Errorf("sawmill: %w", err)
	}

	return &Resolver{
		store:     store,
		resolver:  logview.NewResolver(dataViews, sources, o.messageFields),
		dataViews: dataViews,
	}, nil
}

// Resolve resolves the given log view configuration.
func (r *Resolver) Resolve(ctx context.Context, view LogView) (*Resolved, error) {
	internal, err := view.toInternal()
	if err != nil {
		return nil, err
	}
	resolved, err := r.resolver.Resolve(ctx, internal)
	if err != nil {
		return nil, err
	}
	return fromInternal(resolved), nil
}

// ResolveID resolves a stored log view by ID. The ID "default" always
// resolves, falling back to the built-in configuration when the store does
// not define it.
func (r *Resolver) ResolveID(ctx context.Context, id string) (*Resolved, error) {
	view, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	resolved, err := r.resolver.Resolve(ctx, view)
	if err != nil {
		return nil, err
	}
	return fromInternal(resolved), nil
}

// ResolveIndexName resolves an index pattern directly, without a stored
// configuration.
func (r *Resolver) ResolveIndexName(ctx context.Context, id, indexName string) (*Resolved, error) {
	return r.Resolve(ctx, LogView{ID: id, Kind: KindIndexName, IndexName: indexName})
}

// Persist saves the data view backing a resolution, promoting an ad-hoc
// view into a saved object. The returned descriptor carries the stored copy.
func (r *Resolver) Persist(ctx context.Context, resolved *Resolved) (*Resolved, error) {
	if resolved == nil || resolved.DataView == nil {
		return nil, fmt.Errorf("sawmill: nothing to persist")
	}
	saved, err := r.dataViews.Save(ctx, &dataview.DataView{
		ID:            resolved.DataView.ID,
		Title:         resolved.DataView.Title,
		Name:          resolved.DataView.Name,
		TimeFieldName: resolved.DataView.TimeFieldName,
	})
	if err != nil {
		return nil, err
	}
	out := *resolved
	out.DataView = publicDataView(saved)
	return &out, nil
}
