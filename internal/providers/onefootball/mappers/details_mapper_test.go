package mappers

import (
	"errors"
	"testing"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
)

const matchDetailsPage = `{
	"pageProps": {
		"containers": [
			{"type": {"fullWidth": {"component": {"contentType": {"matchScore": {
				"link": "/en/match/el-clasico-2401",
				"kickoff": "2026-03-01T20:00:00Z",
				"timePeriod": "FullTime",
				"homeTeam": {"link": "/en/team/fc-barcelona-5", "name": "FC Barcelona", "score": "2"},
				"awayTeam": {"link": "/en/team/real-madrid-29", "name": "Real Madrid", "score": "1"}
			}}}}}},
			{"type": {"fullWidth": {"component": {"contentType": {"matchEvents": {"events": [
				{
					"name": "Lamine Yamal",
					"timeline": "23",
					"teamSide": 0,
					"type": {"$case": "goal", "goal": {"type": "goal", "assistant": "Pedri"}}
				},
				{
					"name": "Jude Bellingham",
					"timeline": 67,
					"teamSide": 1,
					"type": {"$case": "card", "card": {"card": "yellow"}}
				}
			]}}}}}},
			{"type": {"grid": {"items": [
				{"components": [
					{"contentType": {"matchInfo": {"entries": [
						{"title": "Stadium", "subtitle": "Camp Nou"},
						{"title": "TV guide", "subtitle": "ESPN+"},
						{"title": "TV guide", "subtitle": "DAZN"}
					]}}}
				]}
			]}}}
		]
	}
}`

func TestToMatchDetails(t *testing.T) {
	t.Parallel()

	match, err := ToMatchDetails(decodePage(t, matchDetailsPage), "el-clasico-2401")
	if err != nil {
		t.Fatalf("ToMatchDetails returned error: %v", err)
	}

	if match.ID != "el-clasico-2401" {
		t.Fatalf("unexpected match id: %q", match.ID)
	}
	if match.HomeTeam.Score == nil || *match.HomeTeam.Score != "2" {
		t.Fatalf("unexpected home score: %v", match.HomeTeam.Score)
	}
	if match.Details == nil {
		t.Fatal("expected details to be populated")
	}

	events := match.Details.Events
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	goal := events[0]
	if goal.Name != "Lamine Yamal" || goal.Minute != "23" || goal.Team != "home" {
		t.Errorf("unexpected goal event: %+v", goal)
	}
	if goal.Extras["assistant"] != "Pedri" {
		t.Errorf("expected oneof payload in extras, got %v", goal.Extras)
	}
	if _, ok := goal.Extras["type"]; ok {
		t.Error("variant discriminator must not leak into extras")
	}

	card := events[1]
	if card.Minute != "67" || card.Team != "away" || card.Extras["card"] != "yellow" {
		t.Errorf("unexpected card event: %+v", card)
	}

	if match.Details.Stadium == nil || match.Details.Stadium.Name != "Camp Nou" {
		t.Errorf("unexpected stadium: %+v", match.Details.Stadium)
	}
	if len(match.Details.TVGuide) != 2 || match.Details.TVGuide[1].Name != "DAZN" {
		t.Errorf("unexpected tv guide: %+v", match.Details.TVGuide)
	}
}

func TestToMatchDetails_WithoutScore(t *testing.T) {
	t.Parallel()

	page := decodePage(t, `{"pageProps": {"containers": []}}`)
	if _, err := ToMatchDetails(page, "m-1"); !errors.Is(err, derr.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

const playerPage = `{
	"pageProps": {
		"containers": [
			{"type": {"fullWidth": {"component": {"contentType": {"transferHeader": {
				"transferPlayerHeader": {"playerName": "Pedri"}
			}}}}}},
			{"type": {"fullWidth": {"component": {"contentType": {"entityNavigation": {"links": [
				{"urlPath": "/en/team/fc-barcelona-5", "title": "FC Barcelona"},
				{"urlPath": "/en/team/spain-229", "title": "Spain"}
			]}}}}}},
			{"type": {"fullWidth": {"component": {"contentType": {"transferDetails": {"entries": [
				{"title": "Central Midfield", "subtitle": "Position"},
				{"title": "23", "subtitle": "Age"},
				{"title": "Spain", "subtitle": "Country"},
				{"title": "1.74m", "subtitle": "Height"},
				{"title": "8", "subtitle": "Jersey number"}
			]}}}}}}
		]
	}
}`

func TestToPlayer(t *testing.T) {
	t.Parallel()

	player, err := ToPlayer(decodePage(t, playerPage), "pedri-371254")
	if err != nil {
		t.Fatalf("ToPlayer returned error: %v", err)
	}

	if player.ID != "pedri-371254" || player.Name != "Pedri" {
		t.Fatalf("unexpected player identity: %+v", player)
	}
	if player.Position != "Central Midfield" || player.Age != "23" || player.Number != "8" {
		t.Errorf("unexpected player attributes: %+v", player)
	}
	if len(player.Teams) != 2 || player.Teams[0].ID != "fc-barcelona-5" || player.Teams[1].Name != "Spain" {
		t.Errorf("unexpected player teams: %+v", player.Teams)
	}
}

func TestToPlayer_WithoutName(t *testing.T) {
	t.Parallel()

	page := decodePage(t, `{"pageProps": {"containers": []}}`)
	if _, err := ToPlayer(page, "p-1"); !errors.Is(err, derr.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestSplitSquadTitle(t *testing.T) {
	t.Parallel()

	name, number := splitSquadTitle("Robert Lewandowski (9)")
	if name != "Robert Lewandowski" || number == nil || *number != 9 {
		t.Fatalf("unexpected split: %q %v", name, number)
	}

	name, number = splitSquadTitle("Head Coach")
	if name != "Head Coach" || number != nil {
		t.Fatalf("expected title without number to pass through, got %q %v", name, number)
	}
}

func TestToSquad(t *testing.T) {
	t.Parallel()

	page := decodePage(t, `{"pageProps": {"containers": [
		{"type": {"fullWidth": {"component": {"contentType": {"entityTitle": {"title": "FC Barcelona"}}}}}},
		{"type": {"fullWidth": {"component": {"contentType": {"entityNavigation": {"links": [
			{"urlPath": "/en/player/ter-stegen-43202", "title": "Marc-André ter Stegen (1)", "subtitle": "Goalkeeper"},
			{"urlPath": "/en/player/pedri-371254", "title": "Pedri (8)", "subtitle": "Midfielder"}
		]}}}}}}
	]}}`)

	squad, err := ToSquad(page, "fc-barcelona-5")
	if err != nil {
		t.Fatalf("ToSquad returned error: %v", err)
	}

	if squad.Entity.Name != "FC Barcelona" {
		t.Fatalf("unexpected entity: %+v", squad.Entity)
	}
	if len(squad.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(squad.Players))
	}

	keeper := squad.Players[0]
	if keeper.ID != "ter-stegen-43202" || keeper.Name != "Marc-André ter Stegen" {
		t.Errorf("unexpected keeper: %+v", keeper)
	}
	if keeper.Number == nil || *keeper.Number != 1 || keeper.Position != "Goalkeeper" {
		t.Errorf("unexpected keeper attributes: %+v", keeper)
	}
}
