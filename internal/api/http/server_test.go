package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sportindex/sportindex/internal/application/service"
	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/pkg/models"
)

type sourceStub struct {
	list models.FixtureList
	err  error
}

func (s *sourceStub) TeamFixtures(context.Context, string) (models.FixtureList, error) {
	return s.list, s.err
}

type repoStub struct{}

func (repoStub) GetTeamFixtures(context.Context, string) (models.FixtureList, error) {
	return models.FixtureList{}, derr.ErrNotFound
}

func (repoStub) UpsertTeamFixtures(context.Context, models.FixtureList) error {
	return nil
}

func newTestServer(source *sourceStub) *httptest.Server {
	fixtures := service.NewFixtureService(zap.NewNop(), source, repoStub{}, nil, time.Minute)
	srv := NewServer(zap.NewNop(), fixtures)
	return httptest.NewServer(srv.Router())
}

func TestHandleTeamFixtures(t *testing.T) {
	t.Parallel()

	source := &sourceStub{list: models.FixtureList{
		Entity: models.Entity{ID: "fc-barcelona-5", Name: "FC Barcelona"},
		Matches: []models.Match{
			{ID: "el-clasico-2401", Datetime: "2026-03-01T20:00:00Z"},
		},
	}}
	srv := newTestServer(source)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/teams/fc-barcelona-5/fixtures")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type: %q", ct)
	}

	var list models.FixtureList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if list.Entity.ID != "fc-barcelona-5" || len(list.Matches) != 1 {
		t.Fatalf("unexpected body: %+v", list)
	}
}

func TestHandleTeamFixtures_ErrorStatuses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", derr.ErrNotFound, http.StatusNotFound},
		{"rate limited", fmt.Errorf("fetch: %w", derr.ErrRateLimited), http.StatusServiceUnavailable},
		{"upstream down", fmt.Errorf("fetch: %w", derr.ErrRequestFailed), http.StatusBadGateway},
		{"schema drift", fmt.Errorf("map: %w", derr.ErrSchemaMismatch), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(&sourceStub{err: tc.err})
			defer srv.Close()

			resp, err := http.Get(srv.URL + "/v1/teams/no-such-team/fixtures")
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestHandleHealthz(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&sourceStub{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}
