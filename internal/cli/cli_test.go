package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func isolateEnv(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FOLIO_CATALOG_URL", "")
	t.Setenv("FOLIO_REQUEST_TIMEOUT", "")
	t.Setenv("FOLIO_START_PATH", "")
	t.Setenv("FOLIO_LOG_FILE", filepath.Join(home, "folio.log"))
}

func catalogServer(t *testing.T, status int, body string) string {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/catalog/books", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "folio v"+Version)
}

func TestRoutes_ListsTableWithMenuLabels(t *testing.T) {
	out, err := runCLI(t, "routes")
	require.NoError(t, err)

	for _, want := range []string{"PATH", "/bookinstance/create", "create-book-instance", "All books", "Create new genre"} {
		assert.Contains(t, out, want)
	}
}

func TestBooks_PrintsTable(t *testing.T) {
	isolateEnv(t)
	url := catalogServer(t, http.StatusOK,
		`{"book_list":[{"_id":"1","title":"Dune","url":"/book/1","author":{"first_name":"Frank","last_name":"Herbert"}}]}`)

	out, err := runCLI(t, "books", "--catalog-url", url)
	require.NoError(t, err)

	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Frank Herbert")
	assert.Contains(t, out, "/book/1")
	assert.Contains(t, out, "(1 books)")
}

func TestBooks_LogStderrKeepsLogsOffStdout(t *testing.T) {
	isolateEnv(t)
	url := catalogServer(t, http.StatusOK,
		`{"book_list":[{"_id":"1","title":"Dune","url":"/book/1","author":{"first_name":"Frank","last_name":"Herbert"}}]}`)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"books", "--catalog-url", url, "--log-stderr"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "(1 books)")
	assert.NotContains(t, stdout.String(), "book list fetched")

	logs := stderr.String()
	assert.Contains(t, logs, `"role":"folio-books"`)
	assert.Contains(t, logs, `"component":"catalog"`)
	assert.Contains(t, logs, "book list fetched")
	assert.NoFileExists(t, filepath.Join(os.Getenv("HOME"), "folio.log"))
}

func TestBooks_EmptyList(t *testing.T) {
	isolateEnv(t)
	url := catalogServer(t, http.StatusOK, `{"book_list":[]}`)

	out, err := runCLI(t, "books", "--catalog-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "(0 books)")
}

func TestBooks_StatusFailure(t *testing.T) {
	isolateEnv(t)
	url := catalogServer(t, http.StatusInternalServerError, `oops`)

	_, err := runCLI(t, "books", "--catalog-url", url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned status 500")
}

func TestBooks_InvalidConfig(t *testing.T) {
	isolateEnv(t)

	_, err := runCLI(t, "books", "--catalog-url", "ftp://library")
	assert.Error(t, err)
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := runCLI(t, "extra")
	assert.Error(t, err)
}
