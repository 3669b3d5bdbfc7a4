package apifootball

import (
	"strings"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/fixture"
	"github.com/riskibarqy/football-hub/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-hub/internal/domain/team"
)

func mapTeamRef(src teamRef) fixture.TeamRef {
	return fixture.TeamRef{
		ID:     src.ID,
		Name:   strings.TrimSpace(src.Name),
		Logo:   strings.TrimSpace(src.Logo),
		Winner: src.Winner,
	}
}

func mapPersonRef(src personRef) fixture.PersonRef {
	return fixture.PersonRef{ID: src.ID, Name: strings.TrimSpace(src.Name)}
}

func mapLeagueRef(src leagueRef) fixture.LeagueRef {
	return fixture.LeagueRef{
		ID:      src.ID,
		Name:    strings.TrimSpace(src.Name),
		Country: strings.TrimSpace(src.Country),
		Logo:    src.Logo,
		Season:  src.Season,
		Round:   strings.TrimSpace(src.Round),
	}
}

func mapGoals(src goals) fixture.Goals {
	return fixture.Goals{Home: src.Home, Away: src.Away}
}

func mapFixtures(items []fixtureItem) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		out = append(out, fixture.Fixture{
			ID:        item.Fixture.ID,
			Referee:   strings.TrimSpace(item.Fixture.Referee),
			Timezone:  item.Fixture.Timezone,
			KickoffAt: parseProviderTime(item.Fixture.Date),
			Venue: fixture.Venue{
				ID:   item.Fixture.Venue.ID,
				Name: strings.TrimSpace(item.Fixture.Venue.Name),
				City: strings.TrimSpace(item.Fixture.Venue.City),
			},
			Status: fixture.Status{
				Long:    item.Fixture.Status.Long,
				Short:   fixture.NormalizeStatus(item.Fixture.Status.Short),
				Elapsed: item.Fixture.Status.Elapsed,
			},
			League: mapLeagueRef(item.League),
			Home:   mapTeamRef(item.Teams.Home),
			Away:   mapTeamRef(item.Teams.Away),
			Goals:  mapGoals(item.Goals),
			Score: fixture.Score{
				Halftime:  mapGoals(item.Score.Halftime),
				Fulltime:  mapGoals(item.Score.Fulltime),
				Extratime: mapGoals(item.Score.Extratime),
				Penalty:   mapGoals(item.Score.Penalty),
			},
		})
	}
	return out
}

func mapLineupPlayers(items []lineupPlayer) []fixture.LineupPlayer {
	out := make([]fixture.LineupPlayer, 0, len(items))
	for _, item := range items {
		out = append(out, fixture.LineupPlayer{
			ID:     item.Player.ID,
			Name:   strings.TrimSpace(item.Player.Name),
			Number: item.Player.Number,
			Pos:    item.Player.Pos,
			Grid:   item.Player.Grid,
		})
	}
	return out
}

func mapLineups(items []lineupItem) []fixture.TeamLineup {
	out := make([]fixture.TeamLineup, 0, len(items))
	for _, item := range items {
		out = append(out, fixture.TeamLineup{
			Team:        mapTeamRef(item.Team),
			Coach:       mapPersonRef(item.Coach),
			Formation:   item.Formation,
			StartXI:     mapLineupPlayers(item.StartXI),
			Substitutes: mapLineupPlayers(item.Substitutes),
		})
	}
	return out
}

func mapStatistics(items []statisticsItem) []fixture.TeamStatistics {
	out := make([]fixture.TeamStatistics, 0, len(items))
	for _, item := range items {
		entries := make([]fixture.StatEntry, 0, len(item.Statistics))
		for _, stat := range item.Statistics {
			entries = append(entries, fixture.StatEntry{Type: strings.TrimSpace(stat.Type), Value: stat.Value})
		}
		out = append(out, fixture.TeamStatistics{Team: mapTeamRef(item.Team), Statistics: entries})
	}
	return out
}

func mapEvents(items []eventItem) []fixture.Event {
	out := make([]fixture.Event, 0, len(items))
	for _, item := range items {
		out = append(out, fixture.Event{
			Time:     fixture.EventTime{Elapsed: item.Time.Elapsed, Extra: item.Time.Extra},
			Team:     mapTeamRef(item.Team),
			Player:   mapPersonRef(item.Player),
			Assist:   mapPersonRef(item.Assist),
			Type:     strings.TrimSpace(item.Type),
			Detail:   strings.TrimSpace(item.Detail),
			Comments: item.Comments,
		})
	}
	return out
}

func mapTeamProfiles(items []teamItem) []team.Profile {
	out := make([]team.Profile, 0, len(items))
	for _, item := range items {
		out = append(out, team.Profile{
			Team: team.Team{
				ID:       item.Team.ID,
				Name:     strings.TrimSpace(item.Team.Name),
				Code:     strings.TrimSpace(item.Team.Code),
				Country:  strings.TrimSpace(item.Team.Country),
				Founded:  item.Team.Founded,
				National: item.Team.National,
				Logo:     item.Team.Logo,
			},
			Venue: team.Venue{
				ID:       item.Venue.ID,
				Name:     strings.TrimSpace(item.Venue.Name),
				Address:  strings.TrimSpace(item.Venue.Address),
				City:     strings.TrimSpace(item.Venue.City),
				Capacity: item.Venue.Capacity,
				Surface:  item.Venue.Surface,
				Image:    item.Venue.Image,
			},
		})
	}
	return out
}

func mapHomeAwayTotal(src homeAwayTotal) team.HomeAwayTotal {
	return team.HomeAwayTotal{Home: derefInt(src.Home), Away: derefInt(src.Away), Total: derefInt(src.Total)}
}

func mapGoalSplit(src goalSplit) team.GoalSplit {
	return team.GoalSplit{Total: mapHomeAwayTotal(src.Total), Average: src.Average.Total}
}

func mapTeamStatistics(src teamStatisticsItem) team.SeasonStatistics {
	lineups := make([]team.FormationUsage, 0, len(src.Lineups))
	for _, item := range src.Lineups {
		lineups = append(lineups, team.FormationUsage{Formation: item.Formation, Played: item.Played})
	}

	return team.SeasonStatistics{
		League:        mapLeagueRef(src.League),
		Team:          mapTeamRef(src.Team),
		Form:          src.Form,
		Played:        mapHomeAwayTotal(src.Fixtures.Played),
		Wins:          mapHomeAwayTotal(src.Fixtures.Wins),
		Draws:         mapHomeAwayTotal(src.Fixtures.Draws),
		Loses:         mapHomeAwayTotal(src.Fixtures.Loses),
		GoalsFor:      mapGoalSplit(src.Goals.For),
		GoalsAgainst:  mapGoalSplit(src.Goals.Against),
		CleanSheet:    mapHomeAwayTotal(src.CleanSheet),
		FailedToScore: mapHomeAwayTotal(src.FailedToScore),
		Lineups:       lineups,
	}
}

func mapSquads(items []squadItem) []team.Squad {
	out := make([]team.Squad, 0, len(items))
	for _, item := range items {
		players := make([]team.SquadPlayer, 0, len(item.Players))
		for _, player := range item.Players {
			players = append(players, team.SquadPlayer{
				ID:       player.ID,
				Name:     strings.TrimSpace(player.Name),
				Age:      player.Age,
				Number:   player.Number,
				Position: strings.TrimSpace(player.Position),
				Photo:    player.Photo,
			})
		}
		out = append(out, team.Squad{Team: mapTeamRef(item.Team), Players: players})
	}
	return out
}

func mapStandingRecord(src standingRecord) leaguestanding.Record {
	return leaguestanding.Record{
		Played:       src.Played,
		Win:          src.Win,
		Draw:         src.Draw,
		Lose:         src.Lose,
		GoalsFor:     src.Goals.For,
		GoalsAgainst: src.Goals.Against,
	}
}

func mapStandings(items []standingsItem) []leaguestanding.Table {
	out := make([]leaguestanding.Table, 0, len(items))
	for _, item := range items {
		groups := make([][]leaguestanding.Standing, 0, len(item.League.Standings))
		for _, group := range item.League.Standings {
			rows := make([]leaguestanding.Standing, 0, len(group))
			for _, row := range group {
				var updatedAt *time.Time
				if parsed := parseProviderTime(row.Update); !parsed.IsZero() {
					updatedAt = &parsed
				}
				rows = append(rows, leaguestanding.Standing{
					Rank:        row.Rank,
					Team:        mapTeamRef(row.Team),
					Points:      row.Points,
					GoalsDiff:   row.GoalsDiff,
					Group:       strings.TrimSpace(row.Group),
					Form:        strings.TrimSpace(row.Form),
					Status:      row.Status,
					Description: strings.TrimSpace(row.Description),
					All:         mapStandingRecord(row.All),
					Home:        mapStandingRecord(row.Home),
					Away:        mapStandingRecord(row.Away),
					UpdatedAt:   updatedAt,
				})
			}
			groups = append(groups, rows)
		}
		out = append(out, leaguestanding.Table{League: mapLeagueRef(item.League.leagueRef), Groups: groups})
	}
	return out
}

// parseProviderTime accepts RFC3339 timestamps with or without an offset; failures give the zero time.
func parseProviderTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func derefInt(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
