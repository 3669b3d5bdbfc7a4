package team

import "github.com/riskibarqy/football-hub/internal/domain/fixture"

// Team is a real football club as described by the provider.
type Team struct {
	ID       int64
	Name     string
	Code     string
	Country  string
	Founded  *int
	National bool
	Logo     string
}

type Venue struct {
	ID       *int64
	Name     string
	Address  string
	City     string
	Capacity int
	Surface  string
	Image    string
}

// Profile is the team plus its home venue.
type Profile struct {
	Team  Team
	Venue Venue
}

type HomeAwayTotal struct {
	Home  int
	Away  int
	Total int
}

type GoalSplit struct {
	Total   HomeAwayTotal
	Average string
}

type FormationUsage struct {
	Formation string
	Played    int
}

// SeasonStatistics is the aggregate of one team in one league season.
type SeasonStatistics struct {
	League        fixture.LeagueRef
	Team          fixture.TeamRef
	Form          string
	Played        HomeAwayTotal
	Wins          HomeAwayTotal
	Draws         HomeAwayTotal
	Loses         HomeAwayTotal
	GoalsFor      GoalSplit
	GoalsAgainst  GoalSplit
	CleanSheet    HomeAwayTotal
	FailedToScore HomeAwayTotal
	Lineups       []FormationUsage
}

type SquadPlayer struct {
	ID       int64
	Name     string
	Age      *int
	Number   *int
	Position string
	Photo    string
}

type Squad struct {
	Team    fixture.TeamRef
	Players []SquadPlayer
}

// PlayersByPosition groups squad players keeping provider order within each position.
func (s Squad) PlayersByPosition() map[string][]SquadPlayer {
	out := make(map[string][]SquadPlayer, 4)
	for _, player := range s.Players {
		out[player.Position] = append(out[player.Position], player)
	}
	return out
}
