// Package source loads raw HTML text from a file path or an http(s) URL.
//
// Fetched bytes are decoded to UTF-8 using the declared Content-Type and
// byte sniffing, so documents served in legacy encodings normalize to the
// same text a UTF-8 document would.
package source

import (
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Load returns the decoded text behind src. Sources beginning with
// "http://" or "https://" are fetched with an HTTP GET; anything else is
// treated as a filesystem path.
func Load(src string) (string, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return fetchURL(src)
	}
	return readFile(src)
}

func fetchURL(rawURL string) (string, error) {
	resp, err := http.Get(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "fetching %s", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "reading response body from %s", rawURL)
	}

	return decode(raw, resp.Header.Get("Content-Type"))
}

func readFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading file %s", path)
	}
	return decode(raw, "")
}

// decode converts raw bytes to UTF-8. The encoding comes from the
// Content-Type header (when present), a BOM, or a scan of the document's
// first bytes. Input that is already well-formed UTF-8 passes through
// untouched when no encoding was declared.
func decode(raw []byte, contentType string) (string, error) {
	enc, _, certain := charset.DetermineEncoding(raw, contentType)
	if !certain && utf8.Valid(raw) {
		return string(raw), nil
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", errors.Wrap(err, "decoding text")
	}
	return string(out), nil
}
