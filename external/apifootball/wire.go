package apifootball

import (
	"bytes"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-hub/internal/domain/fixture"
)

// envelope is the shape shared by every API-Football v3 endpoint.
type envelope[T any] struct {
	Errors   providerErrors `json:"errors"`
	Results  int            `json:"results"`
	Response flexible[T]    `json:"response"`
}

// providerErrors accepts both `["msg"]` and `{"field": "msg"}`; object values are
// flattened in key order.
type providerErrors []string

func (p *providerErrors) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = nil
		return nil
	}

	if trimmed[0] == '[' {
		var items []any
		if err := sonic.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if text := errorText(item); text != "" {
				out = append(out, text)
			}
		}
		*p = out
		return nil
	}

	var byKey map[string]any
	if err := sonic.Unmarshal(trimmed, &byKey); err != nil {
		return err
	}
	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if text := errorText(byKey[key]); text != "" {
			out = append(out, text)
		}
	}
	*p = out
	return nil
}

func errorText(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case nil:
		return ""
	default:
		raw, err := sonic.Marshal(typed)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(raw))
	}
}

// flexible decodes T, treating null and the empty array the provider sends in place of an
// object on failed requests as the zero value.
type flexible[T any] struct {
	Data T
}

func (f *flexible[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var direct T
	err := sonic.Unmarshal(trimmed, &direct)
	if err == nil {
		f.Data = direct
		return nil
	}
	if bytes.Equal(bytes.Join(bytes.Fields(trimmed), nil), []byte("[]")) {
		return nil
	}
	return err
}

type teamRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type personRef struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

type leagueRef struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
	Season  int    `json:"season"`
	Round   string `json:"round"`
}

type goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type fixtureItem struct {
	Fixture struct {
		ID       int64  `json:"id"`
		Referee  string `json:"referee"`
		Timezone string `json:"timezone"`
		Date     string `json:"date"`
		Venue    struct {
			ID   *int64 `json:"id"`
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League leagueRef `json:"league"`
	Teams  struct {
		Home teamRef `json:"home"`
		Away teamRef `json:"away"`
	} `json:"teams"`
	Goals goals `json:"goals"`
	Score struct {
		Halftime  goals `json:"halftime"`
		Fulltime  goals `json:"fulltime"`
		Extratime goals `json:"extratime"`
		Penalty   goals `json:"penalty"`
	} `json:"score"`
}

type lineupPlayer struct {
	Player struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Number int    `json:"number"`
		Pos    string `json:"pos"`
		Grid   string `json:"grid"`
	} `json:"player"`
}

type lineupItem struct {
	Team        teamRef        `json:"team"`
	Coach       personRef      `json:"coach"`
	Formation   string         `json:"formation"`
	StartXI     []lineupPlayer `json:"startXI"`
	Substitutes []lineupPlayer `json:"substitutes"`
}

type statisticsItem struct {
	Team       teamRef `json:"team"`
	Statistics []struct {
		Type  string            `json:"type"`
		Value fixture.StatValue `json:"value"`
	} `json:"statistics"`
}

type eventItem struct {
	Time struct {
		Elapsed int  `json:"elapsed"`
		Extra   *int `json:"extra"`
	} `json:"time"`
	Team     teamRef   `json:"team"`
	Player   personRef `json:"player"`
	Assist   personRef `json:"assist"`
	Type     string    `json:"type"`
	Detail   string    `json:"detail"`
	Comments *string   `json:"comments"`
}

type teamItem struct {
	Team struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Code     string `json:"code"`
		Country  string `json:"country"`
		Founded  *int   `json:"founded"`
		National bool   `json:"national"`
		Logo     string `json:"logo"`
	} `json:"team"`
	Venue struct {
		ID       *int64 `json:"id"`
		Name     string `json:"name"`
		Address  string `json:"address"`
		City     string `json:"city"`
		Capacity int    `json:"capacity"`
		Surface  string `json:"surface"`
		Image    string `json:"image"`
	} `json:"venue"`
}

type homeAwayTotal struct {
	Home  *int `json:"home"`
	Away  *int `json:"away"`
	Total *int `json:"total"`
}

type goalSplit struct {
	Total   homeAwayTotal `json:"total"`
	Average struct {
		Total string `json:"total"`
	} `json:"average"`
}

type teamStatisticsItem struct {
	League   leagueRef `json:"league"`
	Team     teamRef   `json:"team"`
	Form     string    `json:"form"`
	Fixtures struct {
		Played homeAwayTotal `json:"played"`
		Wins   homeAwayTotal `json:"wins"`
		Draws  homeAwayTotal `json:"draws"`
		Loses  homeAwayTotal `json:"loses"`
	} `json:"fixtures"`
	Goals struct {
		For     goalSplit `json:"for"`
		Against goalSplit `json:"against"`
	} `json:"goals"`
	CleanSheet    homeAwayTotal `json:"clean_sheet"`
	FailedToScore homeAwayTotal `json:"failed_to_score"`
	Lineups       []struct {
		Formation string `json:"formation"`
		Played    int    `json:"played"`
	} `json:"lineups"`
}

type squadItem struct {
	Team    teamRef `json:"team"`
	Players []struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Age      *int   `json:"age"`
		Number   *int   `json:"number"`
		Position string `json:"position"`
		Photo    string `json:"photo"`
	} `json:"players"`
}

type standingRecord struct {
	Played int `json:"played"`
	Win    int `json:"win"`
	Draw   int `json:"draw"`
	Lose   int `json:"lose"`
	Goals  struct {
		For     int `json:"for"`
		Against int `json:"against"`
	} `json:"goals"`
}

type standingRow struct {
	Rank        int            `json:"rank"`
	Team        teamRef        `json:"team"`
	Points      int            `json:"points"`
	GoalsDiff   int            `json:"goalsDiff"`
	Group       string         `json:"group"`
	Form        string         `json:"form"`
	Status      string         `json:"status"`
	Description string         `json:"description"`
	All         standingRecord `json:"all"`
	Home        standingRecord `json:"home"`
	Away        standingRecord `json:"away"`
	Update      string         `json:"update"`
}

type standingsItem struct {
	League struct {
		leagueRef
		Standings [][]standingRow `json:"standings"`
	} `json:"league"`
}
