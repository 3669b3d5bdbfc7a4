package leaguestanding

import (
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/fixture"
)

type Record struct {
	Played       int
	Win          int
	Draw         int
	Lose         int
	GoalsFor     int
	GoalsAgainst int
}

// Standing represents a league table row for one team.
type Standing struct {
	Rank        int
	Team        fixture.TeamRef
	Points      int
	GoalsDiff   int
	Group       string
	Form        string
	Status      string
	Description string
	All         Record
	Home        Record
	Away        Record
	UpdatedAt   *time.Time
}

// Table is one league season; Groups holds one slice per group (a single one for plain leagues).
type Table struct {
	League fixture.LeagueRef
	Groups [][]Standing
}
