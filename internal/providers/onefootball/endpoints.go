package onefootball

import "fmt"

// OneFootball has no public API. The endpoints below are the Next.js
// page-data routes its website loads; they require the current build id and
// change shape without notice.

const (
	DefaultBaseURL  = "https://www.onefootball.com"
	DefaultLanguage = "en"
)

func homeURL(base, language string) string {
	return fmt.Sprintf("%s/%s/home", base, language)
}

func dataBase(base, buildID, language string) string {
	return fmt.Sprintf("%s/_next/data/%s/%s", base, buildID, language)
}

func allCompetitionsURL(base, buildID, language, letter string) string {
	return fmt.Sprintf("%s/all-competitions/%s.json?directory-entity=all-competitions&entity-page=%s",
		dataBase(base, buildID, language), letter, letter)
}

func competitionStandingsURL(base, buildID, language, competitionID string) string {
	return fmt.Sprintf("%s/competition/%s/table.json?competition-id=%s&entity-page=table",
		dataBase(base, buildID, language), competitionID, competitionID)
}

func competitionFixturesURL(base, buildID, language, competitionID string) string {
	return fmt.Sprintf("%s/competition/%s/fixtures.json?competition-id=%s&entity-page=fixtures",
		dataBase(base, buildID, language), competitionID, competitionID)
}

func competitionResultsURL(base, buildID, language, competitionID string) string {
	return fmt.Sprintf("%s/competition/%s/results.json?competition-id=%s&entity-page=results",
		dataBase(base, buildID, language), competitionID, competitionID)
}

func allTeamsURL(base, buildID, language, letter string, page int) string {
	return fmt.Sprintf("%s/all-teams/%s.json?page=%d&directory-entity=all-teams&entity-page=%s",
		dataBase(base, buildID, language), letter, page, letter)
}

func teamFixturesURL(base, buildID, language, teamID string) string {
	return fmt.Sprintf("%s/team/%s/fixtures.json?team-id=%s&entity-page=fixtures",
		dataBase(base, buildID, language), teamID, teamID)
}

func teamResultsURL(base, buildID, language, teamID string) string {
	return fmt.Sprintf("%s/team/%s/results.json?team-id=%s&entity-page=results",
		dataBase(base, buildID, language), teamID, teamID)
}

func teamSquadURL(base, buildID, language, teamID string) string {
	return fmt.Sprintf("%s/team/%s/squad.json?team-id=%s&entity-page=squad",
		dataBase(base, buildID, language), teamID, teamID)
}

func matchesURL(base, buildID, language, date string) string {
	return fmt.Sprintf("%s/matches.json?date=%s", dataBase(base, buildID, language), date)
}

func matchDetailsURL(base, buildID, language, matchID string) string {
	return fmt.Sprintf("%s/match/%s.json?match-id=%s", dataBase(base, buildID, language), matchID, matchID)
}

func playerDetailsURL(base, buildID, language, playerID string) string {
	return fmt.Sprintf("%s/player/%s.json?player-id=%s", dataBase(base, buildID, language), playerID, playerID)
}
