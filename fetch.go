package feedsync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Doer abstracts the HTTP transport so tests can fake the upstream.
// *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher pulls the raw listings XML from the feed endpoint. The response
// body is treated as opaque bytes; nothing is parsed or validated.
type Fetcher struct {
	client Doer
	url    string

	name     string
	password string
	id       string
}

func NewFetcher(client Doer, cfg Config) *Fetcher {
	return &Fetcher{
		client:   client,
		url:      cfg.FeedURL,
		name:     cfg.FeedName,
		password: cfg.FeedPassword,
		id:       cfg.FeedID,
	}
}

// formBody encodes the credential fields in wire order. The endpoint
// receives exactly "name=...&password=...&id=..."; url.Values.Encode sorts
// keys, so the body is assembled by hand.
func (f *Fetcher) formBody() string {
	pairs := [...][2]string{{"name", f.name}, {"password", f.password}, {"id", f.id}}

	var b strings.Builder
	for i, kv := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String()
}

// Fetch issues the POST and reads the full response into memory. Statuses
// >= 400 are errors.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, strings.NewReader(f.formBody()))
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("feed endpoint returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}
	return data, nil
}
