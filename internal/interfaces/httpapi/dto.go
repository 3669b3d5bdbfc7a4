package httpapi

import (
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/fixture"
	"github.com/riskibarqy/football-hub/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-hub/internal/domain/team"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

type teamRefDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo,omitempty"`
	Winner *bool  `json:"winner,omitempty"`
}

type personRefDTO struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name"`
}

type leagueRefDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Season  int    `json:"season,omitempty"`
	Round   string `json:"round,omitempty"`
}

type goalsDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type fixtureDTO struct {
	ID         int64        `json:"id"`
	Referee    string       `json:"referee,omitempty"`
	KickoffAt  string       `json:"kickoff_at"`
	Venue      string       `json:"venue,omitempty"`
	City       string       `json:"city,omitempty"`
	Status     string       `json:"status"`
	StatusLong string       `json:"status_long,omitempty"`
	Elapsed    *int         `json:"elapsed,omitempty"`
	IsLive     bool         `json:"is_live"`
	League     leagueRefDTO `json:"league"`
	Home       teamRefDTO   `json:"home"`
	Away       teamRefDTO   `json:"away"`
	Goals      goalsDTO     `json:"goals"`
	Halftime   goalsDTO     `json:"halftime"`
	Penalty    goalsDTO     `json:"penalty"`
}

type lineupPlayerDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
	Pos    string `json:"pos,omitempty"`
	Grid   string `json:"grid,omitempty"`
}

type lineupDTO struct {
	Team        teamRefDTO        `json:"team"`
	Coach       personRefDTO      `json:"coach"`
	Formation   string            `json:"formation"`
	StartXI     []lineupPlayerDTO `json:"start_xi"`
	Substitutes []lineupPlayerDTO `json:"substitutes"`
}

type statEntryDTO struct {
	Type  string            `json:"type"`
	Value fixture.StatValue `json:"value"`
}

type teamStatisticsDTO struct {
	Team       teamRefDTO     `json:"team"`
	Statistics []statEntryDTO `json:"statistics"`
}

type eventDTO struct {
	Key      string       `json:"key"`
	Category string       `json:"category"`
	Elapsed  int          `json:"elapsed"`
	Extra    *int         `json:"extra,omitempty"`
	Team     teamRefDTO   `json:"team"`
	Player   personRefDTO `json:"player"`
	Assist   personRefDTO `json:"assist"`
	Type     string       `json:"type"`
	Detail   string       `json:"detail"`
	Comments *string      `json:"comments,omitempty"`
}

type fixtureDetailDTO struct {
	Fixture    *fixtureDTO         `json:"fixture"`
	Lineups    []lineupDTO         `json:"lineups"`
	Statistics []teamStatisticsDTO `json:"statistics"`
	Events     []eventDTO          `json:"events"`
}

type teamDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	Country  string `json:"country,omitempty"`
	Founded  *int   `json:"founded,omitempty"`
	National bool   `json:"national"`
	Logo     string `json:"logo,omitempty"`
}

type venueDTO struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Capacity int    `json:"capacity"`
	Surface  string `json:"surface,omitempty"`
	Image    string `json:"image,omitempty"`
}

type homeAwayTotalDTO struct {
	Home  int `json:"home"`
	Away  int `json:"away"`
	Total int `json:"total"`
}

type goalSplitDTO struct {
	Total   homeAwayTotalDTO `json:"total"`
	Average string           `json:"average"`
}

type formationUsageDTO struct {
	Formation string `json:"formation"`
	Played    int    `json:"played"`
}

type seasonStatisticsDTO struct {
	League        leagueRefDTO        `json:"league"`
	Form          string              `json:"form"`
	Played        homeAwayTotalDTO    `json:"played"`
	Wins          homeAwayTotalDTO    `json:"wins"`
	Draws         homeAwayTotalDTO    `json:"draws"`
	Loses         homeAwayTotalDTO    `json:"loses"`
	GoalsFor      goalSplitDTO        `json:"goals_for"`
	GoalsAgainst  goalSplitDTO        `json:"goals_against"`
	CleanSheet    homeAwayTotalDTO    `json:"clean_sheet"`
	FailedToScore homeAwayTotalDTO    `json:"failed_to_score"`
	Lineups       []formationUsageDTO `json:"lineups"`
}

type squadPlayerDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Age      *int   `json:"age,omitempty"`
	Number   *int   `json:"number,omitempty"`
	Position string `json:"position"`
	Photo    string `json:"photo,omitempty"`
}

type squadDTO struct {
	Players    []squadPlayerDTO            `json:"players"`
	ByPosition map[string][]squadPlayerDTO `json:"by_position"`
}

type teamProfileDTO struct {
	Team       teamDTO              `json:"team"`
	Venue      venueDTO             `json:"venue"`
	Statistics *seasonStatisticsDTO `json:"statistics"`
	Squad      *squadDTO            `json:"squad"`
}

type recordDTO struct {
	Played       int `json:"played"`
	Win          int `json:"win"`
	Draw         int `json:"draw"`
	Lose         int `json:"lose"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
}

type standingDTO struct {
	Rank        int        `json:"rank"`
	Team        teamRefDTO `json:"team"`
	Points      int        `json:"points"`
	GoalsDiff   int        `json:"goals_diff"`
	Group       string     `json:"group,omitempty"`
	Form        string     `json:"form,omitempty"`
	Status      string     `json:"status,omitempty"`
	Description string     `json:"description,omitempty"`
	All         recordDTO  `json:"all"`
	Home        recordDTO  `json:"home"`
	Away        recordDTO  `json:"away"`
	UpdatedAt   string     `json:"updated_at,omitempty"`
}

type standingTableDTO struct {
	League leagueRefDTO    `json:"league"`
	Groups [][]standingDTO `json:"groups"`
}

type warmFixturesRequest struct {
	FixtureIDs []int64 `json:"fixture_ids" validate:"required,min=1,max=100,dive,gt=0"`
}

type warmItemDTO struct {
	FixtureID  int64  `json:"fixture_id"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type warmResultDTO struct {
	Items        []warmItemDTO `json:"items"`
	SuccessCount int           `json:"success_count"`
	FailedCount  int           `json:"failed_count"`
}

func teamRefToDTO(ref fixture.TeamRef) teamRefDTO {
	return teamRefDTO{ID: ref.ID, Name: ref.Name, Logo: ref.Logo, Winner: ref.Winner}
}

func personRefToDTO(ref fixture.PersonRef) personRefDTO {
	return personRefDTO{ID: ref.ID, Name: ref.Name}
}

func leagueRefToDTO(ref fixture.LeagueRef) leagueRefDTO {
	return leagueRefDTO{
		ID:      ref.ID,
		Name:    ref.Name,
		Country: ref.Country,
		Logo:    ref.Logo,
		Season:  ref.Season,
		Round:   ref.Round,
	}
}

func goalsToDTO(goals fixture.Goals) goalsDTO {
	return goalsDTO{Home: goals.Home, Away: goals.Away}
}

func fixtureToDTO(item fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:         item.ID,
		Referee:    item.Referee,
		KickoffAt:  item.KickoffAt.UTC().Format(time.RFC3339),
		Venue:      item.Venue.Name,
		City:       item.Venue.City,
		Status:     item.Status.Short,
		StatusLong: item.Status.Long,
		Elapsed:    item.Status.Elapsed,
		IsLive:     item.IsLive(),
		League:     leagueRefToDTO(item.League),
		Home:       teamRefToDTO(item.Home),
		Away:       teamRefToDTO(item.Away),
		Goals:      goalsToDTO(item.Goals),
		Halftime:   goalsToDTO(item.Score.Halftime),
		Penalty:    goalsToDTO(item.Score.Penalty),
	}
}

func lineupPlayersToDTO(players []fixture.LineupPlayer) []lineupPlayerDTO {
	out := make([]lineupPlayerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, lineupPlayerDTO{ID: p.ID, Name: p.Name, Number: p.Number, Pos: p.Pos, Grid: p.Grid})
	}
	return out
}

func eventToDTO(event fixture.Event) eventDTO {
	return eventDTO{
		Key:      event.Key(),
		Category: event.Category().String(),
		Elapsed:  event.Time.Elapsed,
		Extra:    event.Time.Extra,
		Team:     teamRefToDTO(event.Team),
		Player:   personRefToDTO(event.Player),
		Assist:   personRefToDTO(event.Assist),
		Type:     event.Type,
		Detail:   event.Detail,
		Comments: event.Comments,
	}
}

func fixtureDetailToDTO(bundle usecase.FixtureDetailBundle) any {
	out := fixtureDetailDTO{
		Lineups:    make([]lineupDTO, 0, len(bundle.Lineups)),
		Statistics: make([]teamStatisticsDTO, 0, len(bundle.Statistics)),
		Events:     make([]eventDTO, 0, len(bundle.Events)),
	}
	if bundle.Fixture != nil {
		item := fixtureToDTO(*bundle.Fixture)
		out.Fixture = &item
	}
	for _, lineup := range bundle.Lineups {
		out.Lineups = append(out.Lineups, lineupDTO{
			Team:        teamRefToDTO(lineup.Team),
			Coach:       personRefToDTO(lineup.Coach),
			Formation:   lineup.Formation,
			StartXI:     lineupPlayersToDTO(lineup.StartXI),
			Substitutes: lineupPlayersToDTO(lineup.Substitutes),
		})
	}
	for _, stats := range bundle.Statistics {
		entries := make([]statEntryDTO, 0, len(stats.Statistics))
		for _, entry := range stats.Statistics {
			entries = append(entries, statEntryDTO{Type: entry.Type, Value: entry.Value})
		}
		out.Statistics = append(out.Statistics, teamStatisticsDTO{Team: teamRefToDTO(stats.Team), Statistics: entries})
	}
	for _, event := range bundle.Events {
		out.Events = append(out.Events, eventToDTO(event))
	}
	return out
}

func homeAwayTotalToDTO(v team.HomeAwayTotal) homeAwayTotalDTO {
	return homeAwayTotalDTO{Home: v.Home, Away: v.Away, Total: v.Total}
}

func goalSplitToDTO(v team.GoalSplit) goalSplitDTO {
	return goalSplitDTO{Total: homeAwayTotalToDTO(v.Total), Average: v.Average}
}

func squadPlayersToDTO(players []team.SquadPlayer) []squadPlayerDTO {
	out := make([]squadPlayerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, squadPlayerDTO{
			ID:       p.ID,
			Name:     p.Name,
			Age:      p.Age,
			Number:   p.Number,
			Position: p.Position,
			Photo:    p.Photo,
		})
	}
	return out
}

func teamProfileToDTO(details usecase.TeamProfileDetails) any {
	profile := details.Profile
	out := teamProfileDTO{
		Team: teamDTO{
			ID:       profile.Team.ID,
			Name:     profile.Team.Name,
			Code:     profile.Team.Code,
			Country:  profile.Team.Country,
			Founded:  profile.Team.Founded,
			National: profile.Team.National,
			Logo:     profile.Team.Logo,
		},
		Venue: venueDTO{
			Name:     profile.Venue.Name,
			Address:  profile.Venue.Address,
			City:     profile.Venue.City,
			Capacity: profile.Venue.Capacity,
			Surface:  profile.Venue.Surface,
			Image:    profile.Venue.Image,
		},
	}

	if stats := details.Statistics; stats != nil {
		lineups := make([]formationUsageDTO, 0, len(stats.Lineups))
		for _, usage := range stats.Lineups {
			lineups = append(lineups, formationUsageDTO{Formation: usage.Formation, Played: usage.Played})
		}
		out.Statistics = &seasonStatisticsDTO{
			League:        leagueRefToDTO(stats.League),
			Form:          stats.Form,
			Played:        homeAwayTotalToDTO(stats.Played),
			Wins:          homeAwayTotalToDTO(stats.Wins),
			Draws:         homeAwayTotalToDTO(stats.Draws),
			Loses:         homeAwayTotalToDTO(stats.Loses),
			GoalsFor:      goalSplitToDTO(stats.GoalsFor),
			GoalsAgainst:  goalSplitToDTO(stats.GoalsAgainst),
			CleanSheet:    homeAwayTotalToDTO(stats.CleanSheet),
			FailedToScore: homeAwayTotalToDTO(stats.FailedToScore),
			Lineups:       lineups,
		}
	}

	if squad := details.Squad; squad != nil {
		grouped := squad.PlayersByPosition()
		byPosition := make(map[string][]squadPlayerDTO, len(grouped))
		for position, players := range grouped {
			byPosition[position] = squadPlayersToDTO(players)
		}
		out.Squad = &squadDTO{Players: squadPlayersToDTO(squad.Players), ByPosition: byPosition}
	}

	return out
}

func recordToDTO(v leaguestanding.Record) recordDTO {
	return recordDTO{
		Played:       v.Played,
		Win:          v.Win,
		Draw:         v.Draw,
		Lose:         v.Lose,
		GoalsFor:     v.GoalsFor,
		GoalsAgainst: v.GoalsAgainst,
	}
}

func standingsToDTO(tables []leaguestanding.Table) any {
	out := make([]standingTableDTO, 0, len(tables))
	for _, table := range tables {
		groups := make([][]standingDTO, 0, len(table.Groups))
		for _, group := range table.Groups {
			rows := make([]standingDTO, 0, len(group))
			for _, row := range group {
				item := standingDTO{
					Rank:        row.Rank,
					Team:        teamRefToDTO(row.Team),
					Points:      row.Points,
					GoalsDiff:   row.GoalsDiff,
					Group:       row.Group,
					Form:        row.Form,
					Status:      row.Status,
					Description: row.Description,
					All:         recordToDTO(row.All),
					Home:        recordToDTO(row.Home),
					Away:        recordToDTO(row.Away),
				}
				if row.UpdatedAt != nil {
					item.UpdatedAt = row.UpdatedAt.UTC().Format(time.RFC3339)
				}
				rows = append(rows, item)
			}
			groups = append(groups, rows)
		}
		out = append(out, standingTableDTO{League: leagueRefToDTO(table.League), Groups: groups})
	}
	return out
}

func warmResultToDTO(res usecase.WarmResult) warmResultDTO {
	items := make([]warmItemDTO, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, warmItemDTO{
			FixtureID:  item.FixtureID,
			Status:     string(item.Status),
			Message:    item.Message,
			DurationMs: item.DurationMs,
		})
	}
	return warmResultDTO{Items: items, SuccessCount: res.SuccessCount, FailedCount: res.FailedCount}
}
