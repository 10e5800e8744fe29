package yaml

import (
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/lburgazzoli/ipu-lint/pkg/util"
)

const documentStart = "---\n"

// Renderer writes values as YAML documents.
type Renderer[T any] struct {
	writer        io.Writer
	documentStart bool
}

// Option is a functional option for configuring a Renderer.
type Option[T any] = util.Option[Renderer[T]]

// NewRenderer creates a YAML renderer writing to stdout unless WithWriter is given.
func NewRenderer[T any](opts ...Option[T]) *Renderer[T] {
	r := &Renderer[T]{
		writer: os.Stdout,
	}

	util.ApplyOptions(r, opts...)

	return r
}

// WithWriter sets the output writer.
func WithWriter[T any](w io.Writer) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.writer = w
	})
}

// WithDocumentStart prefixes every rendered value with a "---" marker so
// consecutive runs can be appended to the same stream.
func WithDocumentStart[T any](enabled bool) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.documentStart = enabled
	})
}

// Render marshals value and writes it.
func (r *Renderer[T]) Render(value T) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}

	if r.documentStart {
		data = append([]byte(documentStart), data...)
	}

	if _, err := r.writer.Write(data); err != nil {
		return fmt.Errorf("writing YAML output: %w", err)
	}

	return nil
}
