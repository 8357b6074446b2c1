// Package fetcher downloads the dataset archive over HTTP.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{},
	}
}

// GetBytes performs a single GET and returns the response body.
func (f *Fetcher) GetBytes(url string) ([]byte, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s, status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// DownloadArchive fetches the archive URL and writes it to path.
// If the file already exists and is newer than maxAge the download is
// skipped; maxAge <= 0 always downloads. Returns true when a download
// actually happened.
func (f *Fetcher) DownloadArchive(url, path string, maxAge time.Duration) (bool, error) {
	if maxAge > 0 {
		if info, err := os.Stat(path); err == nil {
			if time.Since(info.ModTime()) <= maxAge {
				return false, nil
			}
		}
	}

	data, err := f.GetBytes(url)
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("failed to save archive: %w", err)
	}
	return true, nil
}

// DiscoverArchiveURL scrapes the dataset index page and returns the
// first link pointing at the names archive.
func (f *Fetcher) DiscoverArchiveURL(indexURL string) (string, error) {
	data, err := f.GetBytes(indexURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse index page: %w", err)
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if strings.HasSuffix(href, "names.zip") {
			found = href
			return false
		}
		return true
	})

	if found == "" {
		return "", fmt.Errorf("no names.zip link found on %s", indexURL)
	}

	// Resolve relative links against the index page.
	if !strings.HasPrefix(found, "http://") && !strings.HasPrefix(found, "https://") {
		base := indexURL[:strings.LastIndex(indexURL, "/")+1]
		found = base + strings.TrimPrefix(found, "./")
	}
	return found, nil
}
