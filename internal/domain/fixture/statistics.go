package fixture

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// StatValue holds a provider statistic that can be a number, a string such as "54%", or null.
type StatValue struct {
	raw   any
	valid bool
}

func NewStatValue(raw any) StatValue {
	if raw == nil {
		return StatValue{}
	}
	return StatValue{raw: raw, valid: true}
}

func (v StatValue) Valid() bool {
	return v.valid
}

func (v StatValue) Raw() any {
	return v.raw
}

func (v StatValue) String() string {
	if !v.valid {
		return ""
	}
	switch typed := v.raw.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}

// Float parses numeric and percentage values; ok is false for null or non-numeric values.
func (v StatValue) Float() (float64, bool) {
	if !v.valid {
		return 0, false
	}
	switch typed := v.raw.(type) {
	case float64:
		return typed, true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(typed), "%"), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// MarshalJSON writes the raw provider value, or null.
func (v StatValue) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return sonic.Marshal(v.raw)
}

func (v *StatValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = NewStatValue(raw)
	return nil
}

type StatEntry struct {
	Type  string
	Value StatValue
}

// TeamStatistics is the per-team statistics block of a fixture.
type TeamStatistics struct {
	Team       TeamRef
	Statistics []StatEntry
}

// Lookup finds a statistic by type name, case-insensitively.
func (s TeamStatistics) Lookup(statType string) (StatValue, bool) {
	for _, item := range s.Statistics {
		if strings.EqualFold(strings.TrimSpace(item.Type), strings.TrimSpace(statType)) {
			return item.Value, true
		}
	}
	return StatValue{}, false
}
