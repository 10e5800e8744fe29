package facts

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"sigs.k8s.io/yaml"

	"github.com/lburgazzoli/ipu-lint/pkg/saphana"
)

// Source provides facts collected on the system being upgraded.
type Source interface {
	// SapHanaInfo returns the SAP HANA facts, or nil when none were collected.
	SapHanaInfo(ctx context.Context) (*saphana.Info, error)
}

// Document is the facts document layout. Each section is optional.
type Document struct {
	SapHana *saphana.Info `json:"saphana,omitempty"`
}

// Validate reports every structural problem in the document.
func (d *Document) Validate() error {
	if d.SapHana == nil {
		return nil
	}

	var result *multierror.Error

	for i, instance := range d.SapHana.Instances {
		if instance.Name == "" {
			result = multierror.Append(result, fmt.Errorf("saphana.instances[%d]: name is required", i))
		}
		if instance.InstanceNumber == "" {
			result = multierror.Append(result, fmt.Errorf("saphana.instances[%d]: instanceNumber is required", i))
		}

		for j, entry := range instance.Manifest {
			if entry.Key == "" {
				result = multierror.Append(result, fmt.Errorf("saphana.instances[%d].manifest[%d]: key is required", i, j))
			}
		}
	}

	return result.ErrorOrNil()
}

// Parse decodes and validates a YAML or JSON facts document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding facts: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid facts: %w", err)
	}

	return &doc, nil
}

// FileSource reads facts from a document on disk. The document is read on
// first access and cached.
type FileSource struct {
	path string
	doc  *Document
}

// NewFileSource creates a FileSource for the document at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the document location.
func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) load() (*Document, error) {
	if s.doc != nil {
		return s.doc, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading facts file %s: %w", s.path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading facts file %s: %w", s.path, err)
	}

	s.doc = doc

	return doc, nil
}

// SapHanaInfo implements Source.
func (s *FileSource) SapHanaInfo(_ context.Context) (*saphana.Info, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	return doc.SapHana, nil
}

// Static is a Source backed by an in-memory document.
type Static struct {
	Document Document
}

// SapHanaInfo implements Source.
func (s *Static) SapHanaInfo(_ context.Context) (*saphana.Info, error) {
	return s.Document.SapHana, nil
}
