package fixture

import (
	"strings"
	"time"
)

const (
	StatusNotStarted = "NS"
	StatusFirstHalf  = "1H"
	StatusHalfTime   = "HT"
	StatusSecondHalf = "2H"
	StatusFinished   = "FT"
	StatusPostponed  = "PST"
	StatusCancelled  = "CANC"
)

// TeamRef is the light team reference embedded in most provider payloads.
type TeamRef struct {
	ID     int64
	Name   string
	Logo   string
	Winner *bool
}

// PersonRef references a player or coach. ID is nil when the provider does not know it.
type PersonRef struct {
	ID   *int64
	Name string
}

type Venue struct {
	ID   *int64
	Name string
	City string
}

type Status struct {
	Long    string
	Short   string
	Elapsed *int
}

type LeagueRef struct {
	ID      int64
	Name    string
	Country string
	Logo    string
	Season  int
	Round   string
}

type Goals struct {
	Home *int
	Away *int
}

type Score struct {
	Halftime  Goals
	Fulltime  Goals
	Extratime Goals
	Penalty   Goals
}

// Fixture is one match as reported by the statistics provider.
type Fixture struct {
	ID        int64
	Referee   string
	Timezone  string
	KickoffAt time.Time
	Venue     Venue
	Status    Status
	League    LeagueRef
	Home      TeamRef
	Away      TeamRef
	Goals     Goals
	Score     Score
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusNotStarted
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFirstHalf, StatusHalfTime, StatusSecondHalf, "ET", "BT", "P", "LIVE", "INT":
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, "AET", "PEN":
		return true
	default:
		return false
	}
}

func (f Fixture) IsLive() bool {
	return IsLiveStatus(f.Status.Short)
}

func (f Fixture) IsFinished() bool {
	return IsFinishedStatus(f.Status.Short)
}
