package espn

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/fetch"
)

func TestStandings_RequestsWebHost(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/apis/v2/sports/racing/f1/standings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("season") != "2026" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"children": []}`)
	}))
	defer srv.Close()

	client := NewClient(fetch.New(), "http://unused.invalid", srv.URL, nil)

	resp, err := client.Standings(context.Background(), 2026)
	if err != nil {
		t.Fatalf("Standings returned error: %v", err)
	}
	if resp.Children != nil && len(resp.Children) != 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestScoreboard_CompactsDateRange(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/apis/site/v2/sports/racing/f1/scoreboard" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("dates") != "20260101-20261231" {
			t.Errorf("unexpected dates param %q", r.URL.Query().Get("dates"))
		}
		fmt.Fprint(w, `{"events": []}`)
	}))
	defer srv.Close()

	client := NewClient(fetch.New(), srv.URL, "http://unused.invalid", nil)

	if _, err := client.Scoreboard(context.Background(), "2026-01-01", "2026-12-31"); err != nil {
		t.Fatalf("Scoreboard returned error: %v", err)
	}
}

func TestScoreboard_RejectsBadDates(t *testing.T) {
	t.Parallel()

	client := NewClient(fetch.New(), "http://unused.invalid", "http://unused.invalid", nil)

	if _, err := client.Scoreboard(context.Background(), "01/06/2026", "2026-06-07"); !errors.Is(err, derr.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
