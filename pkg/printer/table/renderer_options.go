package table

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/lburgazzoli/ipu-lint/pkg/util"
)

const (
	// DefaultMaxRowWidth caps a cell before it wraps at word boundaries.
	DefaultMaxRowWidth = 100

	// MinRowWidth is the narrowest cell WithMaxRowWidth accepts.
	MinRowWidth = 20
)

// DefaultTableOptions draws a borderless table with left-aligned headers and
// wrapped cells.
//
//nolint:gochecknoglobals
var DefaultTableOptions = []tablewriter.Option{
	tablewriter.WithHeaderAlignment(tw.AlignLeft),
	tablewriter.WithRowAutoWrap(tw.WrapNormal),
	tablewriter.WithRowMaxWidth(DefaultMaxRowWidth),
	tablewriter.WithRendition(tw.Rendition{
		Settings: tw.Settings{
			Separators: tw.Separators{
				BetweenColumns: tw.Off,
				BetweenRows:    tw.Off,
			},
			Lines: tw.Lines{
				ShowTop:        tw.On,
				ShowBottom:     tw.On,
				ShowHeaderLine: tw.On,
			},
		},
	}),
}

// Option is a functional option for configuring a Renderer.
type Option[T any] = util.Option[Renderer[T]]

// WithWriter sets the output writer.
func WithWriter[T any](w io.Writer) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.writer = w
	})
}

// WithHeaders sets the column headers. Headers also name the struct fields
// a row is read from.
func WithHeaders[T any](headers ...string) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.headers = headers
	})
}

// WithFormatter sets the formatter of a column. Column names are case insensitive.
func WithFormatter[T any](columnName string, formatter ColumnFormatter) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		if r.formatters == nil {
			r.formatters = make(map[string]ColumnFormatter)
		}

		r.formatters[strings.ToUpper(columnName)] = formatter
	})
}

// WithTableOptions appends tablewriter options. Later options win.
func WithTableOptions[T any](values ...tablewriter.Option) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.tableOptions = append(r.tableOptions, values...)
	})
}

// WithMaxRowWidth caps cell width, never going below MinRowWidth.
// It must follow WithTableOptions to override the width those set.
func WithMaxRowWidth[T any](width int) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.tableOptions = append(r.tableOptions, tablewriter.WithRowMaxWidth(max(width, MinRowWidth)))
	})
}
