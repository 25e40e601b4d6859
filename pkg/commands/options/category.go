package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/actd/pkg/category"
)

// CategoryOptions narrows output to one category.
type CategoryOptions struct {
	Category string
}

// AddCategoryArgs wires the category filter on the provided command.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	ids := make([]string, 0)
	for _, c := range category.All() {
		ids = append(ids, string(c.ID))
	}
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Only show values in this category, one of "+strings.Join(ids, ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ids, cobra.ShellCompDirectiveNoFileComp
	})
}
