package symbols

import (
	"bufio"
	"bytes"
	"crypto/sha1" // #nosec G505 -- cache key derivation, not security
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// diskCache is an http.RoundTripper that stores successful responses on
// disk. The key includes the current day, so cached entries expire daily.
type diskCache struct {
	base http.RoundTripper
	dir  string
}

// cachedClient returns an HTTP client with the daily disk cache under the
// system temp directory.
func cachedClient() *http.Client {
	return &http.Client{
		Transport: &diskCache{base: http.DefaultTransport, dir: os.TempDir()},
	}
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("auszug-%x", sha1.Sum([]byte(key))) // #nosec G401

	if resp, err := c.get(key, req); err == nil {
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		// Cache write failures are ignored; the live response stands.
		return resp, nil
	}
	// Re-read from disk so the body is a fresh reader.
	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key)) // #nosec G304 -- path is a derived hash
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0600)
}
