package fixture

import (
	"testing"

	"github.com/bytedance/sonic"
)

func TestStatValue_Float(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw    any
		want   float64
		wantOK bool
	}{
		{raw: "54%", want: 54, wantOK: true},
		{raw: float64(12), want: 12, wantOK: true},
		{raw: 7, want: 7, wantOK: true},
		{raw: nil, wantOK: false},
		{raw: "n/a", wantOK: false},
	}

	for _, tc := range cases {
		got, ok := NewStatValue(tc.raw).Float()
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("Float(%v): got=(%v,%v) want=(%v,%v)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestTeamStatistics_LookupSurvivesJSON(t *testing.T) {
	t.Parallel()

	stats := TeamStatistics{
		Team: TeamRef{ID: 33, Name: "Manchester United"},
		Statistics: []StatEntry{
			{Type: "Ball Possession", Value: NewStatValue("54%")},
			{Type: "Total Shots", Value: NewStatValue(float64(14))},
			{Type: "expected_goals", Value: NewStatValue(nil)},
		},
	}

	raw, err := sonic.Marshal(stats)
	if err != nil {
		t.Fatalf("encode statistics: %v", err)
	}
	var decoded TeamStatistics
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode statistics: %v", err)
	}

	possession, ok := decoded.Lookup("ball possession")
	if !ok || possession.String() != "54%" {
		t.Fatalf("unexpected possession: %#v", possession)
	}
	shots, _ := decoded.Lookup("Total Shots")
	if got, ok := shots.Float(); !ok || got != 14 {
		t.Fatalf("unexpected shots: %v %v", got, ok)
	}
	xg, _ := decoded.Lookup("expected_goals")
	if xg.Valid() {
		t.Fatalf("expected null statistic to stay invalid")
	}
	if _, ok := decoded.Lookup("Corner Kicks"); ok {
		t.Fatalf("expected missing statistic")
	}
}
