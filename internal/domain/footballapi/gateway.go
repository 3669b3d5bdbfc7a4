package footballapi

import (
	"context"

	"github.com/riskibarqy/football-hub/internal/domain/fixture"
	"github.com/riskibarqy/football-hub/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-hub/internal/domain/team"
)

// Response mirrors the provider envelope. An empty Errors list is the success signal,
// even when Response is empty.
type Response[T any] struct {
	Response T
	Errors   []string
	Results  int
}

func (r Response[T]) HasErrors() bool {
	return len(r.Errors) > 0
}

// Gateway is the remote football statistics API. Every method returns an error on
// transport, HTTP or decoding failure.
type Gateway interface {
	FetchFixtureByID(ctx context.Context, fixtureID int64) (Response[[]fixture.Fixture], error)
	FetchLineups(ctx context.Context, fixtureID int64) (Response[[]fixture.TeamLineup], error)
	FetchStatistics(ctx context.Context, fixtureID int64, teamID *int64) (Response[[]fixture.TeamStatistics], error)
	FetchEvents(ctx context.Context, fixtureID int64) (Response[[]fixture.Event], error)
	FetchTeamProfile(ctx context.Context, teamID int64) (Response[[]team.Profile], error)
	FetchTeamStatistics(ctx context.Context, leagueID int64, season int, teamID int64) (Response[team.SeasonStatistics], error)
	FetchTeamSquad(ctx context.Context, teamID int64, season int) (Response[[]team.Squad], error)
	FetchStandings(ctx context.Context, leagueID int64, season int) (Response[[]leaguestanding.Table], error)
}
