package logview

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by FileStore.Get for unknown log view IDs.
var ErrNotFound = errors.New("logview: not found")

// FileStore serves log view configurations from a YAML document. The
// built-in default view is always available under DefaultLogViewID, even
// when the document does not define it.
type FileStore struct {
	views    map[string]Attributes
	defaults Attributes
}

// storeDocument is the on-disk shape: a map of log view IDs to attributes
// under a single "logViews" key.
type storeDocument struct {
	LogViews map[string]Attributes `yaml:"logViews"`
}

// NewFileStore loads log views from the YAML file at path. An empty path
// yields a store holding only the default view.
func NewFileStore(path string, defaults Attributes) (*FileStore, error) {
	s := &FileStore{views: map[string]Attributes{}, defaults: defaults}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("logview: read store: %w", err)
	}

	var doc storeDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("logview: parse store: %w", err)
	}

	for id, attrs := range doc.LogViews {
		if err := validateAttributes(attrs); err != nil {
			return nil, fmt.Errorf("logview: store entry %q: %w", id, err)
		}
		s.views[id] = normalizeColumns(attrs)
	}
	return s, nil
}

// Get returns the log view with the given ID. Unknown IDs return
// ErrNotFound, except DefaultLogViewID which falls back to the built-in
// default configuration.
func (s *FileStore) Get(id string) (LogView, error) {
	if attrs, ok := s.views[id]; ok {
		return LogView{ID: id, Attributes: attrs}, nil
	}
	if id == DefaultLogViewID {
		return LogView{ID: id, Attributes: s.defaults}, nil
	}
	return LogView{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// IDs returns the IDs of all stored log views.
func (s *FileStore) IDs() []string {
	ids := make([]string, 0, len(s.views))
	for id := range s.views {
		ids = append(ids, id)
	}
	return ids
}

func validateAttributes(attrs Attributes) error {
	switch attrs.LogIndices.Kind {
	case KindIndexName:
		if attrs.LogIndices.IndexName == "" {
			return fmt.Errorf("index_name reference without indexName")
		}
	case KindDataView:
		if attrs.LogIndices.DataViewID == "" {
			return fmt.Errorf("data_view reference without dataViewId")
		}
	case KindLogSources:
	default:
		return fmt.Errorf("unknown log indices kind %q", attrs.LogIndices.Kind)
	}

	for _, col := range attrs.Columns {
		switch col.Type {
		case ColumnTimestamp, ColumnMessage:
		case ColumnField:
			if col.Field == "" {
				return fmt.Errorf("field column without field name")
			}
		default:
			return fmt.Errorf("unknown column type %q", col.Type)
		}
	}
	return nil
}

// normalizeColumns fills in generated IDs for columns declared without one.
func normalizeColumns(attrs Attributes) Attributes {
	for i, col := range attrs.Columns {
		if col.ID == "" {
			attrs.Columns[i].ID = uuid.NewString()
		}
	}
	return attrs
}
