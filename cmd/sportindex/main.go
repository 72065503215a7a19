package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/sportindex/sportindex/f1"
	"github.com/sportindex/sportindex/football"
	"github.com/sportindex/sportindex/pkg/models"
)

const usage = `Usage: sportindex [-json] <sport> <command> [args]

Football commands:
  football competitions
  football standings <competition-id>
  football fixtures <competition-id>
  football results <competition-id>
  football team-fixtures <team-id>
  football team-results <team-id>
  football squad <team-id>
  football matches <yyyy-mm-dd>
  football match <match-id>
  football player <player-id>

F1 commands:
  f1 standings <season>
  f1 scoreboard <yyyy-mm-dd> <yyyy-mm-dd>
`

func main() {
	asJSON := flag.Bool("json", false, "print raw JSON instead of a table")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var (
		result any
		err    error
	)

	switch args[0] {
	case "football":
		result, err = runFootball(ctx, args[1], args[2:])
	case "f1":
		result, err = runF1(ctx, args[1], args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown sport %q\n", args[0])
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			color.Red("error: %v", err)
			os.Exit(1)
		}
		return
	}

	printResult(result)
}

func runFootball(ctx context.Context, command string, args []string) (any, error) {
	client := football.New()

	switch command {
	case "competitions":
		return client.Competitions(ctx)
	case "standings":
		return client.CompetitionStandings(ctx, arg(args, 0))
	case "fixtures":
		return client.CompetitionFixtures(ctx, arg(args, 0))
	case "results":
		return client.CompetitionResults(ctx, arg(args, 0))
	case "team-fixtures":
		return client.TeamFixtures(ctx, arg(args, 0))
	case "team-results":
		return client.TeamResults(ctx, arg(args, 0))
	case "squad":
		return client.TeamPlayers(ctx, arg(args, 0))
	case "matches":
		return client.Matches(ctx, arg(args, 0))
	case "match":
		return client.MatchDetails(ctx, arg(args, 0))
	case "player":
		return client.PlayerDetails(ctx, arg(args, 0))
	default:
		return nil, fmt.Errorf("unknown football command %q", command)
	}
}

func runF1(ctx context.Context, command string, args []string) (any, error) {
	client := f1.New()

	switch command {
	case "standings":
		season, err := strconv.Atoi(arg(args, 0))
		if err != nil {
			return nil, fmt.Errorf("season must be a year: %w", err)
		}
		return client.SeasonStandings(ctx, season)
	case "scoreboard":
		return client.Scoreboard(ctx, arg(args, 0), arg(args, 1))
	default:
		return nil, fmt.Errorf("unknown f1 command %q", command)
	}
}

func arg(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return args[i]
}

func printResult(result any) {
	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	switch v := result.(type) {
	case models.FixtureList:
		header.Println(v.Entity.Name)
		printMatches(v.Matches, dim)
	case models.MatchDay:
		header.Println(v.Date)
		printMatches(v.Matches, dim)
	case models.Match:
		printMatches([]models.Match{v}, dim)
		if v.Details != nil {
			for _, e := range v.Details.Events {
				fmt.Printf("  %s' %s (%s)\n", e.Minute, e.Name, e.Team)
			}
		}
	case models.StandingsTable:
		header.Println(v.Competition.Name)
		for _, row := range v.Standings {
			fmt.Printf("%3d  %-28s %3d pts\n", row.Position, row.Team.Name, row.Points)
		}
	case models.Directory:
		for _, entry := range v.Entries {
			fmt.Printf("%-40s %s\n", entry.Name, dim.Sprint(entry.ID))
		}
	case models.Squad:
		header.Println(v.Entity.Name)
		for _, p := range v.Players {
			number := "--"
			if p.Number != nil {
				number = strconv.Itoa(*p.Number)
			}
			fmt.Printf("%3s  %-28s %s\n", number, p.Name, dim.Sprint(p.Position))
		}
	case models.SeasonStandings:
		header.Println("Drivers")
		for _, d := range v.Drivers {
			fmt.Printf("%3.0f  %-28s %6.1f pts\n", d.Position, d.Driver.Name, d.Points)
		}
		header.Println("Constructors")
		for _, c := range v.Constructors {
			fmt.Printf("%3.0f  %-28s %6.1f pts\n", c.Position, c.Constructor.Name, c.Points)
		}
	case models.Scoreboard:
		for _, e := range v.Events {
			header.Println(e.Name)
			fmt.Printf("  %s  %s, %s\n", e.StartDatetime, e.Circuit.City, e.Circuit.Country)
		}
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	}
}

func printMatches(matches []models.Match, dim *color.Color) {
	for _, m := range matches {
		score := "vs"
		if m.HomeTeam.Score != nil && m.AwayTeam.Score != nil {
			score = fmt.Sprintf("%s:%s", *m.HomeTeam.Score, *m.AwayTeam.Score)
		}
		fmt.Printf("%s  %-24s %s %-24s %s\n",
			m.Datetime, m.HomeTeam.Name, score, m.AwayTeam.Name,
			dim.Sprint(m.Competition.Name),
		)
	}
}
