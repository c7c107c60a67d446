package scrape_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/j-nivekk/miscdataworks/internal/record"
	"github.com/j-nivekk/miscdataworks/internal/scrape"
)

const futureExpiry = 4102444800 // 2100-01-01

func TestFetchSuccessWithoutStripping(t *testing.T) {
	body := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nHello"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	fetcher := scrape.NewFetcher(10*time.Second, "subscrape/test")
	outcome := fetcher.Fetch(context.Background(), record.Descriptor{URL: server.URL, URLExpire: futureExpiry}, false)

	if !outcome.OK() {
		t.Fatalf("expected success, got reason %q", outcome.Reason)
	}
	if outcome.Content != body {
		t.Fatalf("content altered without strip: %q", outcome.Content)
	}
	if outcome.Extension != scrape.ExtContainer {
		t.Fatalf("expected container extension, got %q", outcome.Extension)
	}
}

func TestFetchSuccessWithStripping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nHello"))
	}))
	defer server.Close()

	fetcher := scrape.NewFetcher(10*time.Second, "")
	outcome := fetcher.Fetch(context.Background(), record.Descriptor{URL: server.URL, URLExpire: futureExpiry}, true)

	if !outcome.OK() {
		t.Fatalf("expected success, got reason %q", outcome.Reason)
	}
	if outcome.Content != "Hello" {
		t.Fatalf("expected stripped content, got %q", outcome.Content)
	}
	if outcome.Extension != scrape.ExtStripped {
		t.Fatalf("expected txt extension, got %q", outcome.Extension)
	}
}

func TestFetchExpiredURLSkipsNetwork(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	fetcher := scrape.NewFetcher(10*time.Second, "")
	expired := time.Now().Add(-time.Second).Unix()
	outcome := fetcher.Fetch(context.Background(), record.Descriptor{URL: server.URL, URLExpire: expired}, false)

	if outcome.OK() || outcome.Reason != scrape.ReasonExpiredURL {
		t.Fatalf("expected expired reason, got %#v", outcome)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected zero requests, got %d", calls.Load())
	}
}

func TestFetchMissingURL(t *testing.T) {
	fetcher := scrape.NewFetcher(10*time.Second, "")
	outcome := fetcher.Fetch(context.Background(), record.Descriptor{URLExpire: futureExpiry}, false)
	if outcome.Reason != scrape.ReasonExpiredURL {
		t.Fatalf("expected expired/invalid reason, got %q", outcome.Reason)
	}
}

func TestFetchHTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusForbidden)
	}))
	defer server.Close()

	fetcher := scrape.NewFetcher(10*time.Second, "")
	outcome := fetcher.Fetch(context.Background(), record.Descriptor{URL: server.URL, URLExpire: futureExpiry}, false)

	if outcome.OK() || !strings.HasPrefix(outcome.Reason, "HTTP error:") {
		t.Fatalf("expected HTTP error family, got %#v", outcome)
	}
	if !strings.Contains(outcome.Reason, "403") {
		t.Fatalf("expected status in reason: %q", outcome.Reason)
	}
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	fetcher := scrape.NewFetcher(50*time.Millisecond, "")
	outcome := fetcher.Fetch(context.Background(), record.Descriptor{URL: server.URL, URLExpire: futureExpiry}, false)

	if outcome.OK() || !strings.HasPrefix(outcome.Reason, "Request timed out") {
		t.Fatalf("expected timeout family, got %#v", outcome)
	}
}

func TestFetchConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	fetcher := scrape.NewFetcher(time.Second, "")
	outcome := fetcher.Fetch(context.Background(), record.Descriptor{URL: server.URL, URLExpire: futureExpiry}, false)

	if outcome.OK() || !strings.HasPrefix(outcome.Reason, "Request failed:") {
		t.Fatalf("expected transport failure family, got %#v", outcome)
	}
}

func TestFetchSendsUserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	fetcher := scrape.NewFetcher(time.Second, "subscrape/test")
	fetcher.Fetch(context.Background(), record.Descriptor{URL: server.URL, URLExpire: futureExpiry}, false)

	if got != "subscrape/test" {
		t.Fatalf("unexpected user agent: %q", got)
	}
}
