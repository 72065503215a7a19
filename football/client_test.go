package football

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/pkg/contracts"
)

const teamFixturesJSON = `{
	"pageProps": {
		"containers": [
			{"type": {"fullWidth": {"component": {"contentType": {"entityTitle": {"title": "FC Barcelona"}}}}}},
			{"type": {"fullWidth": {"component": {"contentType": {"matchCardsListsAppender": {"lists": [
				{
					"sectionHeader": {"title": "LaLiga", "subtitle": "Matchday 27"},
					"matchCards": [
						{
							"link": "/en/match/el-clasico-2401",
							"kickoff": "2026-03-01T20:00:00Z",
							"timePeriod": "PreMatch",
							"homeTeam": {"link": "/en/team/fc-barcelona-5", "name": "FC Barcelona"},
							"awayTeam": {"link": "/en/team/real-madrid-29", "name": "Real Madrid"},
							"competitionName": "LaLiga"
						}
					]
				}
			]}}}}}}
		]
	}
}`

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL), WithBuildID("build-1"))
}

func TestTeamFixtures(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/team/fc-barcelona-5/fixtures.json") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, teamFixturesJSON)
	}))

	list, err := client.TeamFixtures(context.Background(), "fc-barcelona-5")
	if err != nil {
		t.Fatalf("TeamFixtures returned error: %v", err)
	}

	if list.Entity.ID != "fc-barcelona-5" || list.Entity.Name != "FC Barcelona" {
		t.Fatalf("unexpected entity: %+v", list.Entity)
	}
	if len(list.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(list.Matches))
	}

	match := list.Matches[0]
	if match.ID != "el-clasico-2401" || match.Datetime != "2026-03-01T20:00:00Z" {
		t.Fatalf("unexpected match: %+v", match)
	}
	if match.Competition.Name != "LaLiga" || match.Contextual.StageLabel != "Matchday 27" {
		t.Errorf("unexpected context: %+v %+v", match.Competition, match.Contextual)
	}
}

func TestTeamFixtures_EmptyListMarshalsToEmptyArray(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"pageProps": {"containers": []}}`)
	}))

	list, err := client.TeamFixtures(context.Background(), "fc-barcelona-5")
	if err != nil {
		t.Fatalf("TeamFixtures returned error: %v", err)
	}

	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal fixture list: %v", err)
	}
	if !strings.Contains(string(data), `"matches":[]`) {
		t.Fatalf("empty list must serialize as an empty array, got %s", data)
	}
}

func TestTeamFixtures_UpstreamErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"not found", http.StatusNotFound, "", derr.ErrNotFound},
		{"rate limited", http.StatusTooManyRequests, "", derr.ErrRateLimited},
		{"blocked", http.StatusForbidden, "", derr.ErrRequestFailed},
		{"server error", http.StatusInternalServerError, "", derr.ErrRequestFailed},
		{"broken json", http.StatusOK, `{"pageProps": `, derr.ErrSchemaMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))

			_, err := client.TeamFixtures(context.Background(), "fc-barcelona-5")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTeamFixtures_RequiresTeamID(t *testing.T) {
	t.Parallel()

	client := New(WithBuildID("build-1"))
	if _, err := client.TeamFixtures(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty team id")
	}
}

func TestPlayerStats_Unsupported(t *testing.T) {
	t.Parallel()

	client := New(WithBuildID("build-1"))
	if _, err := client.PlayerStats(context.Background(), "pedri-371254", 2026); !errors.Is(err, derr.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestEvents_Dispatch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/team/fc-barcelona-5/fixtures.json") {
			fmt.Fprint(w, teamFixturesJSON)
			return
		}
		http.NotFound(w, r)
	}))

	result, err := client.Events(context.Background(), "team", contracts.Query{TeamID: "fc-barcelona-5"})
	if err != nil {
		t.Fatalf("Events returned error: %v", err)
	}
	if result == nil {
		t.Fatal("expected a fixture list")
	}

	if _, err := client.Events(context.Background(), "weather", contracts.Query{}); err == nil {
		t.Fatal("expected error for unknown selector")
	}
}
