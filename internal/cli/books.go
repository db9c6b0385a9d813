package cli

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/five82/folio/internal/app"
	"github.com/five82/folio/internal/catalog"
	"github.com/five82/folio/internal/fetch"
	"github.com/five82/folio/internal/logger"
)

func newBooksCommand(opts *app.Options) *cobra.Command {
	var logStderr bool

	cmd := &cobra.Command{
		Use:   "books",
		Short: "Fetch and print the book list once",
		Long: `Fetch GET /catalog/books and print the result as a table.

On failure the error message is printed and the command exits non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(*opts)
			if err != nil {
				return err
			}

			var log *logger.Logger
			if logStderr {
				log = logger.NewWriter("folio-books", cmd.ErrOrStderr())
			} else {
				log, err = logger.New("folio-books", cfg.LogFile)
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
			}
			defer func() { _ = log.Close() }()

			client, err := catalog.NewClient(cfg.CatalogURL, cfg.RequestTimeout, log)
			if err != nil {
				return fmt.Errorf("init catalog client: %w", err)
			}

			ctl := fetch.New(client.FetchBooks, fetch.WithName("books-cli"), fetch.WithLogger(log))
			defer ctl.Teardown()

			task := ctl.Start(cmd.Context())
			ctl.Apply(task())

			st := ctl.State()
			if st.Phase == fetch.Error {
				return errors.New(st.Message)
			}

			w := cmd.OutOrStdout()
			if len(st.Data) == 0 {
				_, _ = fmt.Fprintln(w, "(0 books)")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(w)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"#", "Title", "Author", "URL"})
			for i, book := range st.Data {
				t.AppendRow(table.Row{i + 1, book.Title, book.Author.FullName(), book.URL})
			}
			t.Render()
			_, _ = fmt.Fprintf(w, "(%d books)\n", len(st.Data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&logStderr, "log-stderr", false, "write JSON logs to stderr instead of the log file")
	return cmd
}
