package logview

import "github.com/crimson-sun/sawmill/internal/dataview"

// LogView is a stored, named configuration describing which indices or data
// view to query for log data and how to display the results.
type LogView struct {
	ID         string     `yaml:"id" json:"id"`
	Attributes Attributes `yaml:"attributes" json:"attributes"`
}

// Attributes holds the configurable parts of a log view.
type Attributes struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	LogIndices  LogIndices `yaml:"logIndices" json:"logIndices"`
	Columns     []Column   `yaml:"columns,omitempty" json:"columns,omitempty"`
}

// Kind discriminates the three ways a log view can reference its indices.
type Kind string

const (
	// KindIndexName references indices by a raw index pattern.
	KindIndexName Kind = "index_name"
	// KindDataView references a persisted data view by ID.
	KindDataView Kind = "data_view"
	// KindLogSources defers to the deployment's configured log sources.
	KindLogSources Kind = "log_sources"
)

// LogIndices is a discriminated reference to the indices a log view covers.
// Exactly one kind applies; the payload fields for the other kinds are empty.
type LogIndices struct {
	Kind       Kind   `yaml:"kind" json:"kind"`
	IndexName  string `yaml:"indexName,omitempty" json:"indexName,omitempty"`
	DataViewID string `yaml:"dataViewId,omitempty" json:"dataViewId,omitempty"`
}

// ColumnType identifies what a display column renders.
type ColumnType string

const (
	ColumnTimestamp ColumnType = "timestamp"
	ColumnMessage   ColumnType = "message"
	ColumnField     ColumnType = "field"
)

// Column is a single display column of a log view.
type Column struct {
	Type  ColumnType `yaml:"type" json:"type"`
	ID    string     `yaml:"id,omitempty" json:"id"`
	Field string     `yaml:"field,omitempty" json:"field,omitempty"` // field columns only
}

// ResolvedLogView is the flat runtime descriptor produced by the resolver.
// It is what downstream query and display code consumes.
type ResolvedLogView struct {
	Indices         string                           `json:"indices"`
	TimestampField  string                           `json:"timestampField"`
	TiebreakerField string                           `json:"tiebreakerField"`
	MessageField    []string                         `json:"messageField"`
	Fields          []dataview.Field                 `json:"fields"`
	RuntimeMappings map[string]dataview.RuntimeField `json:"runtimeMappings"`
	Columns         []Column                         `json:"columns"`
	Name            string                           `json:"name"`
	Description     string                           `json:"description,omitempty"`
	DataView        *dataview.DataView               `json:"dataViewReference"`
}
