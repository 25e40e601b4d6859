// Package categories provides CLI helpers to display the category registry.
package categories

import (
	"context"
	"encoding/json"
	"io"

	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/printers"
)

// Categories prints the life areas values are grouped by.
type Categories struct {
	JSON bool
	Out  io.Writer
}

// Do renders the registry as a table, or as JSON.
func (c *Categories) Do(_ context.Context) error {
	all := category.All()
	if c.JSON {
		enc := json.NewEncoder(c.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}

	pp := printers.PrettyPrint{Out: c.Out}
	pp.NewLine()
	pp.Categories(all)
	pp.NewLine()
	return nil
}
