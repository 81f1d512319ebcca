package artwork

import (
	"context"
	"crypto/md5"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Fetcher retrieves card artwork over HTTP and converts it to ANSI art.
// Converted art is cached on disk keyed by the source URL, so a card is
// only downloaded once per cache lifetime.
type Fetcher struct {
	Client    *http.Client
	CacheDir  string // Empty disables the cache
	Rows      int    // Artwork height in terminal rows
	TrueColor bool
}

// NewFetcher returns a fetcher with a 15 second request timeout.
func NewFetcher(cacheDir string, rows int, trueColor bool) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: 15 * time.Second},
		CacheDir:  cacheDir,
		Rows:      rows,
		TrueColor: trueColor,
	}
}

// Fetch downloads, decodes and converts the artwork at url. Any failure
// (network, HTTP status, decode) is returned as an error; the caller
// fires the loader's failure signal and renders the fallback frame.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("no artwork source")
	}

	if art, ok := f.cached(url); ok {
		return art, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("error building artwork request: %v", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching artwork: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("artwork request failed with status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error decoding artwork: %v", err)
	}

	art := ToANSI(img, f.Rows, f.TrueColor)
	f.store(url, art)
	return art, nil
}

// cachePath derives the cache file for a source URL. The rows and color
// settings are part of the key so a config change does not serve art
// rendered at the wrong size.
func (f *Fetcher) cachePath(url string) string {
	key := fmt.Sprintf("%s|%d|%t", url, f.Rows, f.TrueColor)
	return filepath.Join(f.CacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
}

func (f *Fetcher) cached(url string) (string, bool) {
	if f.CacheDir == "" {
		return "", false
	}
	data, err := os.ReadFile(f.cachePath(url))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (f *Fetcher) store(url, art string) {
	if f.CacheDir == "" {
		return
	}
	if err := os.MkdirAll(f.CacheDir, 0755); err != nil {
		return
	}
	// Cache writes are best-effort; a failure just means a re-download.
	_ = os.WriteFile(f.cachePath(url), []byte(art), 0644)
}
