package logview

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/crimson-sun/sawmill/internal/dataview"
	"github.com/crimson-sun/sawmill/internal/logsources"
)

// DataViewService is the slice of the data-views API the resolver needs.
type DataViewService interface {
	Get(ctx context.Context, id string) (*dataview.DataView, error)
	Create(ctx context.Context, spec dataview.Spec) (*dataview.DataView, error)
}

// LogSourcesService lists the log sources configured for the deployment.
type LogSourcesService interface {
	List(ctx context.Context) ([]logsources.LogSource, error)
}

// Resolver turns stored log view configurations into resolved runtime
// descriptors by delegating to the injected services.
type Resolver struct {
	dataViews     DataViewService
	logSources    LogSourcesService
	messageFields []string
}

// NewResolver creates a Resolver. An empty messageFields falls back to
// DefaultMessageFields.
func NewResolver(dataViews DataViewService, logSources LogSourcesService, messageFields []string) *Resolver {
	if len(messageFields) == 0 {
		messageFields = DefaultMessageFields
	}
	return &Resolver{
		dataViews:     dataViews,
		logSources:    logSources,
		messageFields: messageFields,
	}
}

// Resolve dispatches on the log view's indices reference kind. Service
// failures come back as *ResolveError; an unrecognized kind is a plain error.
func (r *Resolver) Resolve(ctx context.Context, view LogView) (*ResolvedLogView, error) {
	switch view.Attributes.LogIndices.Kind {
	case KindIndexName:
		return r.resolveIndexName(ctx, view)
	case KindDataView:
		return r.resolveDataView(ctx, view)
	case KindLogSources:
		return r.resolveLogSources(ctx, view)
	default:
		return nil, fmt.Errorf("logview: unsupported log indices kind %q", view.Attributes.LogIndices.Kind)
	}
}

// resolveIndexName covers views that name their indices directly. An ad-hoc
// data view is created over the pattern so downstream code always has a
// data view reference to work with.
func (r *Resolver) resolveIndexName(ctx context.Context, view LogView) (*ResolvedLogView, error) {
	indices := view.Attributes.LogIndices.IndexName
	dv, err := r.dataViews.Create(ctx, dataview.Spec{
		ID:            adHocID(view.ID, indices),
		Title:         indices,
		Name:          view.Attributes.Name,
		TimeFieldName: TimestampField,
		AllowNoIndex:  true,
	})
	if err != nil {
		return nil, &ResolveError{LogViewID: view.ID, Reason: "create ad-hoc data view", Err: err}
	}
	return r.resolved(view, indices, TimestampField, dv), nil
}

// resolveDataView covers views referencing a persisted data view by ID.
func (r *Resolver) resolveDataView(ctx context.Context, view LogView) (*ResolvedLogView, error) {
	dv, err := r.dataViews.Get(ctx, view.Attributes.LogIndices.DataViewID)
	if err != nil {
		return nil, &ResolveError{LogViewID: view.ID, Reason: "fetch data view", Err: err}
	}
	timestampField := dv.TimeFieldName
	if timestampField == "" {
		timestampField = TimestampField
	}
	return r.resolved(view, dv.Title, timestampField, dv), nil
}

// resolveLogSources covers views that defer to the deployment's configured
// log sources. The source patterns are joined into one comma-separated
// pattern and an ad-hoc data view is created over it.
func (r *Resolver) resolveLogSources(ctx context.Context, view LogView) (*ResolvedLogView, error) {
	sources, err := r.logSources.List(ctx)
	if err != nil {
		return nil, &ResolveError{LogViewID: view.ID, Reason: "list log sources", Err: err}
	}

	patterns := make([]string, 0, len(sources))
	for _, s := range sources {
		if s.IndexPattern != "" {
			patterns = append(patterns, s.IndexPattern)
		}
	}
	if len(patterns) == 0 {
		patterns = []string{logsources.DefaultIndexPattern}
	}
	indices := strings.Join(patterns, ",")

	dv, err := r.dataViews.Create(ctx, dataview.Spec{
		ID:            adHocID(view.ID, indices),
		Title:         indices,
		Name:          view.Attributes.Name,
		TimeFieldName: TimestampField,
		AllowNoIndex:  true,
	})
	if err != nil {
		return nil, &ResolveError{LogViewID: view.ID, Reason: "create ad-hoc data view", Err: err}
	}
	return r.resolved(view, indices, TimestampField, dv), nil
}

// resolved maps a data view and the chosen indices into the common output
// shape shared by all three branches.
func (r *Resolver) resolved(view LogView, indices, timestampField string, dv *dataview.DataView) *ResolvedLogView {
	columns := view.Attributes.Columns
	if len(columns) == 0 {
		columns = DefaultColumns()
	}
	runtimeMappings := dv.RuntimeFieldMap
	if runtimeMappings == nil {
		runtimeMappings = map[string]dataview.RuntimeField{}
	}
	return &ResolvedLogView{
		Indices:         indices,
		TimestampField:  timestampField,
		TiebreakerField: TiebreakerField,
		MessageField:    r.messageFields,
		Fields:          dv.Fields,
		RuntimeMappings: runtimeMappings,
		Columns:         columns,
		Name:            view.Attributes.Name,
		Description:     view.Attributes.Description,
		DataView:        dv,
	}
}

// adHocID derives a stable ID for an ad-hoc data view from the log view ID
// and the indices it covers, so repeated resolution of the same view
// references the same ad-hoc object.
func adHocID(logViewID, indices string) string {
	return "log-view-" + logViewID + "-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(indices)).String()
}
