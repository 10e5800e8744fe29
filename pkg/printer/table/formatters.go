package table

import (
	"github.com/lburgazzoli/ipu-lint/pkg/util/jq"
)

// ColumnFormatter transforms a value for display in a column.
type ColumnFormatter func(value any) any

// JQFormatter runs query against the value. Query errors are shown in the cell.
func JQFormatter(query string) ColumnFormatter {
	return func(value any) any {
		result, err := jq.Query[any](value, query)
		if err != nil {
			return err.Error()
		}

		return result
	}
}

// ChainFormatters feeds the output of each formatter into the next.
func ChainFormatters(formatters ...ColumnFormatter) ColumnFormatter {
	switch len(formatters) {
	case 0:
		return func(value any) any {
			return value
		}
	case 1:
		return formatters[0]
	}

	return func(value any) any {
		result := value
		for _, formatter := range formatters {
			result = formatter(result)
		}

		return result
	}
}
