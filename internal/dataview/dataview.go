package dataview

import "context"

// DataView describes a saved or ad-hoc view over a set of indices.
// It is owned by the data-views API; sawmill only reads and references it.
type DataView struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"` // index pattern, e.g. "logs-*-*"
	Name            string                  `json:"name,omitempty"`
	TimeFieldName   string                  `json:"timeFieldName,omitempty"`
	Fields          []Field                 `json:"fields,omitempty"`
	RuntimeFieldMap map[string]RuntimeField `json:"runtimeFieldMap,omitempty"`
}

// Field describes a single queryable field of a data view.
type Field struct {
	Name         string `json:"name"`
	Type         string `json:"type"` // "date", "keyword", "text", "long", ...
	Searchable   bool   `json:"searchable"`
	Aggregatable bool   `json:"aggregatable"`
}

// RuntimeField is a field computed at query time from a script.
type RuntimeField struct {
	Type   string        `json:"type"`
	Script RuntimeScript `json:"script"`
}

// RuntimeScript holds the source of a runtime field script.
type RuntimeScript struct {
	Source string `json:"source"`
}

// Spec holds the parameters for creating an ad-hoc data view.
type Spec struct {
	ID            string
	Title         string
	Name          string
	TimeFieldName string
	AllowNoIndex  bool
}

// Service looks up persisted data views and creates ad-hoc ones.
type Service interface {
	// Get fetches a persisted data view by ID.
	Get(ctx context.Context, id string) (*DataView, error)

	// Create builds an ad-hoc data view from the given spec. The result is
	// not persisted; its field list reflects the indices matched by the
	// spec's title at call time.
	Create(ctx context.Context, spec Spec) (*DataView, error)
}
