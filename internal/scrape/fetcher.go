package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/j-nivekk/miscdataworks/internal/record"
	"github.com/j-nivekk/miscdataworks/internal/webvtt"
)

// Outcome is the fetch-level result for one descriptor. Reason is empty on
// success.
type Outcome struct {
	Content   string
	Extension string
	Reason    string
}

// OK reports whether the fetch succeeded.
func (o Outcome) OK() bool { return o.Reason == "" }

// Fetcher performs single-attempt HTTP retrieval of matched descriptors.
type Fetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
	now       func() time.Time
}

// NewFetcher builds a Fetcher with a fixed per-request timeout. There are no
// retries: one WorkUnit issues at most one request.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Fetch downloads the descriptor's payload and normalizes it. The freshness
// check runs first: an expired or URL-less descriptor produces a failure
// outcome without touching the network.
func (f *Fetcher) Fetch(ctx context.Context, desc record.Descriptor, strip bool) Outcome {
	if !desc.Fetchable(f.now()) {
		return Outcome{Reason: ReasonExpiredURL}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, desc.URL, nil)
	if err != nil {
		return Outcome{Reason: fmt.Sprintf("Request failed: %v", err)}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Outcome{Reason: fmt.Sprintf("Request timed out after %s", f.timeout)}
		}
		return Outcome{Reason: fmt.Sprintf("Request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{Reason: fmt.Sprintf("HTTP error: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return Outcome{Reason: fmt.Sprintf("Request timed out after %s", f.timeout)}
		}
		return Outcome{Reason: fmt.Sprintf("Request failed: %v", err)}
	}

	extension := ExtContainer
	if strip {
		extension = ExtStripped
	}
	return Outcome{
		Content:   webvtt.Normalize(string(body), strip),
		Extension: extension,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
