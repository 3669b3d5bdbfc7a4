package fixture

import (
	"fmt"
	"strings"
)

const (
	EventTypeGoal  = "goal"
	EventTypeCard  = "card"
	EventTypeSubst = "subst"
	EventTypeVar   = "var"
)

type CategoryKind string

const (
	CategoryGoal         CategoryKind = "goal"
	CategoryCard         CategoryKind = "card"
	CategorySubstitution CategoryKind = "substitution"
	CategoryVar          CategoryKind = "var"
	CategoryOther        CategoryKind = "other"
)

const (
	VariantNormal  = "normal"
	VariantPenalty = "penalty"
	VariantOwn     = "own"
	VariantYellow  = "yellow"
	VariantRed     = "red"
	VariantGoal    = "goal"
	VariantCard    = "card"
	VariantOther   = "other"
)

// Category is the derived classification of an event. Variant is empty for kinds without one.
type Category struct {
	Kind    CategoryKind
	Variant string
}

func (c Category) String() string {
	if c.Variant == "" {
		return string(c.Kind)
	}
	return string(c.Kind) + ":" + c.Variant
}

type EventTime struct {
	Elapsed int
	Extra   *int
}

// Event is one on-pitch occurrence. The provider does not key these records.
type Event struct {
	Time     EventTime
	Team     TeamRef
	Player   PersonRef
	Assist   PersonRef
	Type     string
	Detail   string
	Comments *string
}

func (e Event) Category() Category {
	eventType := strings.ToLower(e.Type)
	detail := strings.ToLower(e.Detail)

	switch {
	case strings.Contains(eventType, EventTypeGoal):
		switch {
		case strings.Contains(detail, "own"):
			return Category{Kind: CategoryGoal, Variant: VariantOwn}
		case strings.Contains(detail, "penalty"):
			return Category{Kind: CategoryGoal, Variant: VariantPenalty}
		default:
			return Category{Kind: CategoryGoal, Variant: VariantNormal}
		}
	case strings.Contains(eventType, EventTypeCard):
		// "Second Yellow card" sends the player off.
		if strings.Contains(detail, "red") || strings.Contains(detail, "second yellow") {
			return Category{Kind: CategoryCard, Variant: VariantRed}
		}
		return Category{Kind: CategoryCard, Variant: VariantYellow}
	case strings.Contains(eventType, EventTypeSubst):
		return Category{Kind: CategorySubstitution}
	case strings.Contains(eventType, EventTypeVar):
		switch {
		case strings.Contains(detail, "goal"):
			return Category{Kind: CategoryVar, Variant: VariantGoal}
		case strings.Contains(detail, "penalty"):
			return Category{Kind: CategoryVar, Variant: VariantPenalty}
		case strings.Contains(detail, "card"):
			return Category{Kind: CategoryVar, Variant: VariantCard}
		default:
			return Category{Kind: CategoryVar, Variant: VariantOther}
		}
	default:
		return Category{Kind: CategoryOther}
	}
}

// IsActualGoal excludes goal-typed entries that did not change the score,
// such as "Penalty won" or "Missed Penalty".
func (e Event) IsActualGoal() bool {
	if !strings.EqualFold(strings.TrimSpace(e.Type), EventTypeGoal) {
		return false
	}
	detail := strings.ToLower(e.Detail)
	return !strings.Contains(detail, "won") && !strings.Contains(detail, "missed")
}

func (e Event) IsOwnGoal() bool {
	return e.IsActualGoal() && e.Category().Variant == VariantOwn
}

func (e Event) IsPenaltyGoal() bool {
	return e.IsActualGoal() && e.Category().Variant == VariantPenalty
}

// Key identifies an event: elapsed minute, team id, player id (0 when unknown), type and detail.
func (e Event) Key() string {
	var playerID int64
	if e.Player.ID != nil {
		playerID = *e.Player.ID
	}
	return fmt.Sprintf("%d_%d_%d_%s_%s", e.Time.Elapsed, e.Team.ID, playerID, e.Type, e.Detail)
}
