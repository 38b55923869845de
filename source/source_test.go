package source

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body>héllo</body></html>"), 0o644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "<html><body>héllo</body></html>", text)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
}

func TestLoad_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<table><tr><td>x</td></tr></table>"))
	}))
	defer srv.Close()

	text, err := Load(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<table><tr><td>x</td></tr></table>", text)
}

func TestLoad_URLStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Load(srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestLoad_LegacyEncoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "café" with an ISO-8859-1 e-acute.
		w.Write([]byte{'c', 'a', 'f', 0xE9})
	}))
	defer srv.Close()

	text, err := Load(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestDecode_UndeclaredUTF8PassesThrough(t *testing.T) {
	raw := []byte("naïve — résumé")
	text, err := decode(raw, "")
	require.NoError(t, err)
	assert.Equal(t, string(raw), text)
}
