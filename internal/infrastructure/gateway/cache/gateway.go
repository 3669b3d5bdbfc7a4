package cache

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-hub/internal/domain/fixture"
	"github.com/riskibarqy/football-hub/internal/domain/footballapi"
	"github.com/riskibarqy/football-hub/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-hub/internal/domain/team"
	basecache "github.com/riskibarqy/football-hub/internal/platform/cache"
)

// Gateway is a read-through cache in front of another gateway. Responses carrying provider
// errors and failed calls are never stored.
type Gateway struct {
	next  footballapi.Gateway
	cache *basecache.Store
}

var _ footballapi.Gateway = (*Gateway)(nil)

func NewGateway(next footballapi.Gateway, cache *basecache.Store) *Gateway {
	return &Gateway{next: next, cache: cache}
}

func (g *Gateway) FetchFixtureByID(ctx context.Context, fixtureID int64) (footballapi.Response[[]fixture.Fixture], error) {
	return load(ctx, g.cache, fmt.Sprintf("fixture:%d", fixtureID), func(ctx context.Context) (footballapi.Response[[]fixture.Fixture], error) {
		return g.next.FetchFixtureByID(ctx, fixtureID)
	})
}

func (g *Gateway) FetchLineups(ctx context.Context, fixtureID int64) (footballapi.Response[[]fixture.TeamLineup], error) {
	return load(ctx, g.cache, fmt.Sprintf("fixture:%d:lineups", fixtureID), func(ctx context.Context) (footballapi.Response[[]fixture.TeamLineup], error) {
		return g.next.FetchLineups(ctx, fixtureID)
	})
}

func (g *Gateway) FetchStatistics(ctx context.Context, fixtureID int64, teamID *int64) (footballapi.Response[[]fixture.TeamStatistics], error) {
	key := fmt.Sprintf("fixture:%d:statistics", fixtureID)
	if teamID != nil {
		key = fmt.Sprintf("%s:team:%d", key, *teamID)
	}
	return load(ctx, g.cache, key, func(ctx context.Context) (footballapi.Response[[]fixture.TeamStatistics], error) {
		return g.next.FetchStatistics(ctx, fixtureID, teamID)
	})
}

func (g *Gateway) FetchEvents(ctx context.Context, fixtureID int64) (footballapi.Response[[]fixture.Event], error) {
	return load(ctx, g.cache, fmt.Sprintf("fixture:%d:events", fixtureID), func(ctx context.Context) (footballapi.Response[[]fixture.Event], error) {
		return g.next.FetchEvents(ctx, fixtureID)
	})
}

func (g *Gateway) FetchTeamProfile(ctx context.Context, teamID int64) (footballapi.Response[[]team.Profile], error) {
	return load(ctx, g.cache, fmt.Sprintf("team:%d", teamID), func(ctx context.Context) (footballapi.Response[[]team.Profile], error) {
		return g.next.FetchTeamProfile(ctx, teamID)
	})
}

func (g *Gateway) FetchTeamStatistics(ctx context.Context, leagueID int64, season int, teamID int64) (footballapi.Response[team.SeasonStatistics], error) {
	key := fmt.Sprintf("team:%d:statistics:%d:%d", teamID, leagueID, season)
	return load(ctx, g.cache, key, func(ctx context.Context) (footballapi.Response[team.SeasonStatistics], error) {
		return g.next.FetchTeamStatistics(ctx, leagueID, season, teamID)
	})
}

func (g *Gateway) FetchTeamSquad(ctx context.Context, teamID int64, season int) (footballapi.Response[[]team.Squad], error) {
	return load(ctx, g.cache, fmt.Sprintf("team:%d:squad:%d", teamID, season), func(ctx context.Context) (footballapi.Response[[]team.Squad], error) {
		return g.next.FetchTeamSquad(ctx, teamID, season)
	})
}

func (g *Gateway) FetchStandings(ctx context.Context, leagueID int64, season int) (footballapi.Response[[]leaguestanding.Table], error) {
	return load(ctx, g.cache, fmt.Sprintf("standings:%d:%d", leagueID, season), func(ctx context.Context) (footballapi.Response[[]leaguestanding.Table], error) {
		return g.next.FetchStandings(ctx, leagueID, season)
	})
}

func load[T any](ctx context.Context, store *basecache.Store, key string, fetch func(context.Context) (footballapi.Response[T], error)) (footballapi.Response[T], error) {
	return basecache.GetOrLoad(ctx, store, key, func(ctx context.Context) (footballapi.Response[T], bool, error) {
		resp, err := fetch(ctx)
		if err != nil {
			return footballapi.Response[T]{}, false, err
		}
		return resp, !resp.HasErrors(), nil
	})
}
