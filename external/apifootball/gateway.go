package apifootball

import (
	"context"
	"net/url"
	"strconv"

	"github.com/riskibarqy/football-hub/internal/domain/fixture"
	"github.com/riskibarqy/football-hub/internal/domain/footballapi"
	"github.com/riskibarqy/football-hub/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-hub/internal/domain/team"
)

var _ footballapi.Gateway = (*Client)(nil)

func (c *Client) FetchFixtureByID(ctx context.Context, fixtureID int64) (footballapi.Response[[]fixture.Fixture], error) {
	var payload envelope[[]fixtureItem]
	if err := c.getJSON(ctx, "/fixtures", url.Values{"id": {formatID(fixtureID)}}, &payload); err != nil {
		return footballapi.Response[[]fixture.Fixture]{}, err
	}
	return toResponse(payload, mapFixtures), nil
}

func (c *Client) FetchLineups(ctx context.Context, fixtureID int64) (footballapi.Response[[]fixture.TeamLineup], error) {
	var payload envelope[[]lineupItem]
	if err := c.getJSON(ctx, "/fixtures/lineups", url.Values{"fixture": {formatID(fixtureID)}}, &payload); err != nil {
		return footballapi.Response[[]fixture.TeamLineup]{}, err
	}
	return toResponse(payload, mapLineups), nil
}

func (c *Client) FetchStatistics(ctx context.Context, fixtureID int64, teamID *int64) (footballapi.Response[[]fixture.TeamStatistics], error) {
	query := url.Values{"fixture": {formatID(fixtureID)}}
	if teamID != nil {
		query.Set("team", formatID(*teamID))
	}

	var payload envelope[[]statisticsItem]
	if err := c.getJSON(ctx, "/fixtures/statistics", query, &payload); err != nil {
		return footballapi.Response[[]fixture.TeamStatistics]{}, err
	}
	return toResponse(payload, mapStatistics), nil
}

func (c *Client) FetchEvents(ctx context.Context, fixtureID int64) (footballapi.Response[[]fixture.Event], error) {
	var payload envelope[[]eventItem]
	if err := c.getJSON(ctx, "/fixtures/events", url.Values{"fixture": {formatID(fixtureID)}}, &payload); err != nil {
		return footballapi.Response[[]fixture.Event]{}, err
	}
	return toResponse(payload, mapEvents), nil
}

func (c *Client) FetchTeamProfile(ctx context.Context, teamID int64) (footballapi.Response[[]team.Profile], error) {
	var payload envelope[[]teamItem]
	if err := c.getJSON(ctx, "/teams", url.Values{"id": {formatID(teamID)}}, &payload); err != nil {
		return footballapi.Response[[]team.Profile]{}, err
	}
	return toResponse(payload, mapTeamProfiles), nil
}

func (c *Client) FetchTeamStatistics(ctx context.Context, leagueID int64, season int, teamID int64) (footballapi.Response[team.SeasonStatistics], error) {
	query := url.Values{
		"league": {formatID(leagueID)},
		"season": {strconv.Itoa(season)},
		"team":   {formatID(teamID)},
	}

	var payload envelope[teamStatisticsItem]
	if err := c.getJSON(ctx, "/teams/statistics", query, &payload); err != nil {
		return footballapi.Response[team.SeasonStatistics]{}, err
	}
	return toResponse(payload, mapTeamStatistics), nil
}

func (c *Client) FetchTeamSquad(ctx context.Context, teamID int64, season int) (footballapi.Response[[]team.Squad], error) {
	query := url.Values{
		"team":   {formatID(teamID)},
		"season": {strconv.Itoa(season)},
	}

	var payload envelope[[]squadItem]
	if err := c.getJSON(ctx, "/players/squads", query, &payload); err != nil {
		return footballapi.Response[[]team.Squad]{}, err
	}
	return toResponse(payload, mapSquads), nil
}

func (c *Client) FetchStandings(ctx context.Context, leagueID int64, season int) (footballapi.Response[[]leaguestanding.Table], error) {
	query := url.Values{
		"league": {formatID(leagueID)},
		"season": {strconv.Itoa(season)},
	}

	var payload envelope[[]standingsItem]
	if err := c.getJSON(ctx, "/standings", query, &payload); err != nil {
		return footballapi.Response[[]leaguestanding.Table]{}, err
	}
	return toResponse(payload, mapStandings), nil
}

func toResponse[W, T any](payload envelope[W], mapFn func(W) T) footballapi.Response[T] {
	return footballapi.Response[T]{
		Response: mapFn(payload.Response.Data),
		Errors:   []string(payload.Errors),
		Results:  payload.Results,
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
