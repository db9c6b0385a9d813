package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/five82/folio/internal/app"
	"github.com/five82/folio/internal/nav"
)

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List routed paths and their menu links",
		Long: `Print the route table with the menu label (if any) for each path.

Fails if a menu link points at a path with no route.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			routes, err := app.Routes()
			if err != nil {
				return err
			}

			labels := make(map[string]string)
			for _, link := range nav.Menu() {
				labels[link.Path] = link.Label
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Path", "View", "Menu"})
			for _, r := range routes.Routes() {
				t.AppendRow(table.Row{r.Path, r.View.String(), labels[r.Path]})
			}
			t.Render()
			return nil
		},
	}
}
