package sawmill

import (
	"fmt"

	"github.com/crimson-sun/sawmill/internal/dataview"
	"github.com/crimson-sun/sawmill/internal/logview"
)

// Reference kinds accepted in LogView.Kind.
const (
	KindIndexName  = "index_name"
	KindDataView   = "data_view"
	KindLogSources = "log_sources"
)

// LogView is a log view configuration to resolve.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type LogView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Kind        string   `json:"kind,omitempty"`       // empty Kind is inferred from the fields below
	IndexName   string   `json:"indexName,omitempty"`  // index_name views
	DataViewID  string   `json:"dataViewId,omitempty"` // data_view views
	Columns     []Column `json:"columns,omitempty"`
}

// Column is a display column of a log view.
type Column struct {
	Type  string `json:"type"` // "timestamp", "message", "field"
	ID    string `json:"id,omitempty"`
	Field string `json:"field,omitempty"`
}

// Field describes a single queryable field.
type Field struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Searchable   bool   `json:"searchable"`
	Aggregatable bool   `json:"aggregatable"`
}

// RuntimeField is a field computed at query time from a script.
type RuntimeField struct {
	Type   string `json:"type"`
	Script string `json:"script"`
}

// DataView references the externally-owned view object a resolution is
// backed by.
type DataView struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Name          string `json:"name,omitempty"`
	TimeFieldName string `json:"timeFieldName,omitempty"`
}

// Resolved is the flat descriptor produced by resolving a log view.
type Resolved struct {
	Indices         string                  `json:"indices"`
	TimestampField  string                  `json:"timestampField"`
	TiebreakerField string                  `json:"tiebreakerField"`
	MessageField    []string                `json:"messageField"`
	Fields          []Field                 `json:"fields"`
	RuntimeMappings map[string]RuntimeField `json:"runtimeMappings"`
	Columns         []Column                `json:"columns"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description,omitempty"`
	DataView        *DataView               `json:"dataViewReference"`
}

// toInternal converts the public view into the internal shape, inferring the
// kind when it is left empty: an index name implies index_name, a data view
// ID implies data_view, and neither implies log_sources.
func (v LogView) toInternal() (logview.LogView, error) {
	kind := v.Kind
	if kind == "" {
		switch {
		case v.IndexName != "":
			kind = KindIndexName
		case v.DataViewID != "":
			kind = KindDataView
		default:
			kind = KindLogSources
		}
	}

	var indices logview.LogIndices
	switch kind {
	case KindIndexName:
		if v.IndexName == "" {
			return logview.LogView{}, fmt.Errorf("sawmill: index_name view %q without IndexName", v.ID)
		}
		indices = logview.LogIndices{Kind: logview.KindIndexName, IndexName: v.IndexName}
	case KindDataView:
		if v.DataViewID == "" {
			return logview.LogView{}, fmt.Errorf("sawmill: data_view view %q without DataViewID", v.ID)
		}
		indices = logview.LogIndices{Kind: logview.KindDataView, DataViewID: v.DataViewID}
	case KindLogSources:
		indices = logview.LogIndices{Kind: logview.KindLogSources}
	default:
		return logview.LogView{}, fmt.Errorf("sawmill: unknown log indices kind %q", kind)
	}

	columns := make([]logview.Column, len(v.Columns))
	for i, c := range v.Columns {
		columns[i] = logview.Column{Type: logview.ColumnType(c.Type), ID: c.ID, Field: c.Field}
	}

	return logview.LogView{
		ID: v.ID,
		Attributes: logview.Attributes{
			Name:        v.Name,
			Description: v.Description,
			LogIndices:  indices,
			Columns:     columns,
		},
	}, nil
}

// fromInternal maps an internal resolution into the public descriptor.
func fromInternal(r *logview.ResolvedLogView) *Resolved {
	fields := make([]Field, len(r.Fields))
	for i, f := range r.Fields {
		fields[i] = Field{Name: f.Name, Type: f.Type, Searchable: f.Searchable, Aggregatable: f.Aggregatable}
	}

	runtime := make(map[string]RuntimeField, len(r.RuntimeMappings))
	for name, rf := range r.RuntimeMappings {
		runtime[name] = RuntimeField{Type: rf.Type, Script: rf.Script.Source}
	}

	columns := make([]Column, len(r.Columns))
	for i, c := range r.Columns {
		columns[i] = Column{Type: string(c.Type), ID: c.ID, Field: c.Field}
	}

	return &Resolved{
		Indices:         r.Indices,
		TimestampField:  r.TimestampField,
		TiebreakerField: r.TiebreakerField,
		MessageField:    r.MessageField,
		Fields:          fields,
		RuntimeMappings: runtime,
		Columns:         columns,
		Name:            r.Name,
		Description:     r.Description,
		DataView:        publicDataView(r.DataView),
	}
}

func publicDataView(dv *dataview.DataView) *DataView {
	if dv == nil {
		return nil
	}
	return &DataView{ID: dv.ID, Title: dv.Title, Name: dv.Name, TimeFieldName: dv.TimeFieldName}
}
