package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/fixture"
	"github.com/riskibarqy/football-hub/internal/domain/footballapi"
	footballapimock "github.com/riskibarqy/football-hub/internal/mocks/domain/footballapi"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/result"
	"github.com/stretchr/testify/mock"
)

const testFixtureID int64 = 1001

var errNetwork = errors.New("dial tcp: connection reset by peer")

func sampleFixture(id int64) fixture.Fixture {
	home := int(2)
	away := int(1)
	return fixture.Fixture{
		ID:        id,
		Referee:   "Michael Oliver",
		Timezone:  "UTC",
		KickoffAt: time.Date(2026, 8, 16, 14, 0, 0, 0, time.UTC),
		Status:    fixture.Status{Long: "Match Finished", Short: fixture.StatusFinished},
		League:    fixture.LeagueRef{ID: 39, Name: "Premier League", Country: "England", Season: 2026, Round: "Regular Season - 1"},
		Home:      fixture.TeamRef{ID: 33, Name: "Manchester United"},
		Away:      fixture.TeamRef{ID: 40, Name: "Liverpool"},
		Goals:     fixture.Goals{Home: &home, Away: &away},
	}
}

func sampleLineups() []fixture.TeamLineup {
	return []fixture.TeamLineup{
		{
			Team:      fixture.TeamRef{ID: 33, Name: "Manchester United"},
			Formation: "4-2-3-1",
			StartXI:   []fixture.LineupPlayer{{ID: 882, Name: "B. Fernandes", Number: 8, Pos: "M", Grid: "2:3"}},
		},
		{
			Team:      fixture.TeamRef{ID: 40, Name: "Liverpool"},
			Formation: "4-3-3",
			StartXI:   []fixture.LineupPlayer{{ID: 306, Name: "M. Salah", Number: 11, Pos: "F", Grid: "4:3"}},
		},
	}
}

func sampleStatistics() []fixture.TeamStatistics {
	return []fixture.TeamStatistics{
		{
			Team:       fixture.TeamRef{ID: 33, Name: "Manchester United"},
			Statistics: []fixture.StatEntry{{Type: "Ball Possession", Value: fixture.NewStatValue("54%")}},
		},
		{
			Team:       fixture.TeamRef{ID: 40, Name: "Liverpool"},
			Statistics: []fixture.StatEntry{{Type: "Ball Possession", Value: fixture.NewStatValue("46%")}},
		},
	}
}

func sampleEvents(count int) []fixture.Event {
	events := make([]fixture.Event, 0, count)
	for i := 0; i < count; i++ {
		events = append(events, fixture.Event{
			Time:   fixture.EventTime{Elapsed: 10 * (i + 1)},
			Team:   fixture.TeamRef{ID: 33, Name: "Manchester United"},
			Player: fixture.PersonRef{Name: "B. Fernandes"},
			Type:   fixture.EventTypeCard,
			Detail: "Yellow Card",
		})
	}
	return events
}

func newTestFixtureDetailService(gateway footballapi.Gateway) *FixtureDetailService {
	return NewFixtureDetailService(gateway, logging.NewNop())
}

func expectStates[T any](t *testing.T, got []result.Envelope[T], want ...result.State) {
	t.Helper()

	if len(got) != len(want) {
		states := make([]string, 0, len(got))
		for _, envelope := range got {
			states = append(states, string(envelope.State()))
		}
		t.Fatalf("unexpected envelope sequence: got=%v want=%v", states, want)
	}
	for i := range want {
		if got[i].State() != want[i] {
			t.Fatalf("unexpected envelope state at %d: got=%s want=%s", i, got[i].State(), want[i])
		}
	}
}

func TestFixtureDetailService_GetFixtureDetail_MandatoryFailureEmitsOnlyLoadingAndError(t *testing.T) {
	t.Parallel()

	gateway := footballapimock.NewGateway(t)
	gateway.
		On("FetchFixtureByID", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Fixture]{}, errNetwork).
		Once()

	service := newTestFixtureDetailService(gateway)
	got := result.Collect(service.GetFixtureDetail(context.Background(), testFixtureID))

	expectStates(t, got, result.StateLoading, result.StateError)
	if !strings.Contains(got[1].Message(), "connection reset") {
		t.Fatalf("unexpected error message: %q", got[1].Message())
	}
	gateway.AssertNotCalled(t, "FetchLineups", mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "FetchStatistics", mock.Anything, mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "FetchEvents", mock.Anything, mock.Anything)
}

func TestFixtureDetailService_GetFixtureDetail_ToleratesSingleOptionalFailure(t *testing.T) {
	t.Parallel()

	gateway := footballapimock.NewGateway(t)
	gateway.
		On("FetchFixtureByID", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Fixture]{Response: []fixture.Fixture{sampleFixture(testFixtureID)}}, nil).
		Once()
	gateway.
		On("FetchLineups", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.TeamLineup]{Response: sampleLineups()}, nil).
		Once()
	gateway.
		On("FetchStatistics", mock.Anything, testFixtureID, (*int64)(nil)).
		Return(footballapi.Response[[]fixture.TeamStatistics]{}, errNetwork).
		Once()
	gateway.
		On("FetchEvents", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Event]{Response: sampleEvents(3)}, nil).
		Once()

	service := newTestFixtureDetailService(gateway)
	got := result.Collect(service.GetFixtureDetail(context.Background(), testFixtureID))

	expectStates(t, got, result.StateLoading, result.StateSuccess)
	bundle, ok := got[1].Data()
	if !ok {
		t.Fatalf("expected success payload")
	}
	if len(bundle.Lineups) != 2 || len(bundle.Events) != 3 {
		t.Fatalf("unexpected surviving branches: lineups=%d events=%d", len(bundle.Lineups), len(bundle.Events))
	}
	if bundle.Statistics == nil || len(bundle.Statistics) != 0 {
		t.Fatalf("expected empty non-nil statistics, got %#v", bundle.Statistics)
	}
}

func TestFixtureDetailService_GetFixtureDetail_EventsProviderErrorsAreFatal(t *testing.T) {
	t.Parallel()

	gateway := footballapimock.NewGateway(t)
	gateway.
		On("FetchFixtureByID", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Fixture]{Response: []fixture.Fixture{sampleFixture(testFixtureID)}}, nil).
		Once()
	gateway.
		On("FetchLineups", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.TeamLineup]{Response: sampleLineups()}, nil).
		Once()
	gateway.
		On("FetchStatistics", mock.Anything, testFixtureID, (*int64)(nil)).
		Return(footballapi.Response[[]fixture.TeamStatistics]{Response: sampleStatistics()}, nil).
		Once()
	gateway.
		On("FetchEvents", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Event]{Errors: []string{"Rate limit reached for events"}}, nil).
		Once()

	service := newTestFixtureDetailService(gateway)
	got := result.Collect(service.GetFixtureDetail(context.Background(), testFixtureID))

	expectStates(t, got, result.StateLoading, result.StateError)
	if got[1].Message() != "Rate limit reached for events" {
		t.Fatalf("unexpected error message: %q", got[1].Message())
	}
}

func TestFixtureDetailService_GetFixtureDetail_ConcreteScenario(t *testing.T) {
	t.Parallel()

	want := sampleFixture(testFixtureID)
	gateway := footballapimock.NewGateway(t)
	gateway.
		On("FetchFixtureByID", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Fixture]{Response: []fixture.Fixture{want}, Results: 1}, nil).
		Once()
	gateway.
		On("FetchLineups", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.TeamLineup]{}, errNetwork).
		Once()
	gateway.
		On("FetchStatistics", mock.Anything, testFixtureID, (*int64)(nil)).
		Return(footballapi.Response[[]fixture.TeamStatistics]{Response: sampleStatistics(), Results: 2}, nil).
		Once()
	gateway.
		On("FetchEvents", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Event]{Response: sampleEvents(5), Results: 5}, nil).
		Once()

	service := newTestFixtureDetailService(gateway)
	got := result.Collect(service.GetFixtureDetail(context.Background(), testFixtureID))

	expectStates(t, got, result.StateLoading, result.StateSuccess)
	bundle, _ := got[1].Data()
	if bundle.Fixture == nil || !reflect.DeepEqual(*bundle.Fixture, want) {
		t.Fatalf("unexpected fixture: %#v", bundle.Fixture)
	}
	if bundle.Lineups == nil || len(bundle.Lineups) != 0 {
		t.Fatalf("expected empty lineups, got %#v", bundle.Lineups)
	}
	if len(bundle.Statistics) != 2 {
		t.Fatalf("unexpected statistics count: got=%d want=2", len(bundle.Statistics))
	}
	if len(bundle.Events) != 5 {
		t.Fatalf("unexpected events count: got=%d want=5", len(bundle.Events))
	}
}

func TestFixtureDetailService_GetFixtureDetail_EmptyFixtureResponseIsSuccess(t *testing.T) {
	t.Parallel()

	gateway := footballapimock.NewGateway(t)
	gateway.On("FetchFixtureByID", mock.Anything, testFixtureID).Return(footballapi.Response[[]fixture.Fixture]{}, nil).Once()
	gateway.On("FetchLineups", mock.Anything, testFixtureID).Return(footballapi.Response[[]fixture.TeamLineup]{}, nil).Once()
	gateway.On("FetchStatistics", mock.Anything, testFixtureID, (*int64)(nil)).Return(footballapi.Response[[]fixture.TeamStatistics]{}, nil).Once()
	gateway.On("FetchEvents", mock.Anything, testFixtureID).Return(footballapi.Response[[]fixture.Event]{}, nil).Once()

	service := newTestFixtureDetailService(gateway)
	envelope, ok := result.Terminal(service.GetFixtureDetail(context.Background(), testFixtureID))
	if !ok || !envelope.IsSuccess() {
		t.Fatalf("expected success, got state=%s message=%q", envelope.State(), envelope.Message())
	}
	bundle, _ := envelope.Data()
	if bundle.Fixture != nil {
		t.Fatalf("expected nil fixture, got %#v", bundle.Fixture)
	}
}

func TestFixtureDetailService_GetFixtureDetail_Idempotent(t *testing.T) {
	t.Parallel()

	gateway := footballapimock.NewGateway(t)
	gateway.
		On("FetchFixtureByID", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Fixture]{Response: []fixture.Fixture{sampleFixture(testFixtureID)}}, nil).
		Twice()
	gateway.
		On("FetchLineups", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.TeamLineup]{Response: sampleLineups()}, nil).
		Twice()
	gateway.
		On("FetchStatistics", mock.Anything, testFixtureID, (*int64)(nil)).
		Return(footballapi.Response[[]fixture.TeamStatistics]{Response: sampleStatistics()}, nil).
		Twice()
	gateway.
		On("FetchEvents", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Event]{Response: sampleEvents(2)}, nil).
		Twice()

	service := newTestFixtureDetailService(gateway)
	first, _ := result.Terminal(service.GetFixtureDetail(context.Background(), testFixtureID))
	second, _ := result.Terminal(service.GetFixtureDetail(context.Background(), testFixtureID))

	firstBundle, ok := first.Data()
	if !ok {
		t.Fatalf("expected first call to succeed: %q", first.Message())
	}
	secondBundle, ok := second.Data()
	if !ok {
		t.Fatalf("expected second call to succeed: %q", second.Message())
	}
	if !reflect.DeepEqual(firstBundle, secondBundle) {
		t.Fatalf("bundles differ between identical calls:\nfirst=%#v\nsecond=%#v", firstBundle, secondBundle)
	}
}

func TestFixtureDetailService_GetFixtureDetail_RejectsInvalidFixtureID(t *testing.T) {
	t.Parallel()

	gateway := footballapimock.NewGateway(t)
	service := newTestFixtureDetailService(gateway)

	got := result.Collect(service.GetFixtureDetail(context.Background(), 0))
	expectStates(t, got, result.StateLoading, result.StateError)
	if !strings.Contains(got[1].Message(), "fixture id must be greater than zero") {
		t.Fatalf("unexpected error message: %q", got[1].Message())
	}
}

func TestFixtureDetailService_GetFixtureDetailProgressive_StagesLineupsFirst(t *testing.T) {
	t.Parallel()

	issued := make(chan string, 2)
	gateway := footballapimock.NewGateway(t)
	gateway.
		On("FetchLineups", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.TeamLineup]{Response: sampleLineups()}, nil).
		Once()
	gateway.
		On("FetchStatistics", mock.Anything, testFixtureID, (*int64)(nil)).
		Run(func(mock.Arguments) { issued <- "statistics" }).
		Return(footballapi.Response[[]fixture.TeamStatistics]{Response: sampleStatistics()}, nil).
		Once()
	gateway.
		On("FetchEvents", mock.Anything, testFixtureID).
		Run(func(mock.Arguments) { issued <- "events" }).
		Return(footballapi.Response[[]fixture.Event]{Response: sampleEvents(4)}, nil).
		Once()

	service := newTestFixtureDetailService(gateway)
	stream := service.GetFixtureDetailProgressive(context.Background(), testFixtureID)

	if envelope := <-stream; !envelope.IsLoading() {
		t.Fatalf("expected loading first, got %s", envelope.State())
	}
	// The producer is blocked on the unbuffered send of the first Success until it is received.
	if len(issued) != 0 {
		t.Fatalf("phase two calls issued before the lineups snapshot was delivered")
	}

	first := <-stream
	if !first.IsSuccess() {
		t.Fatalf("expected first success, got %s (%q)", first.State(), first.Message())
	}
	partial, _ := first.Data()
	if len(partial.Lineups) != 2 || len(partial.Statistics) != 0 || len(partial.Events) != 0 {
		t.Fatalf("unexpected partial bundle: lineups=%d statistics=%d events=%d",
			len(partial.Lineups), len(partial.Statistics), len(partial.Events))
	}
	if partial.Fixture != nil {
		t.Fatalf("expected progressive bundle without fixture")
	}

	final := <-stream
	if !final.IsSuccess() {
		t.Fatalf("expected final success, got %s (%q)", final.State(), final.Message())
	}
	full, _ := final.Data()
	if len(full.Lineups) != 2 || len(full.Statistics) != 2 || len(full.Events) != 4 {
		t.Fatalf("unexpected full bundle: lineups=%d statistics=%d events=%d",
			len(full.Lineups), len(full.Statistics), len(full.Events))
	}

	if _, open := <-stream; open {
		t.Fatalf("expected stream to close after terminal envelope")
	}
	if len(issued) != 2 {
		t.Fatalf("expected both phase two calls, got %d", len(issued))
	}
}

func TestFixtureDetailService_GetFixtureDetailProgressive_LineupsFailureStopsEarly(t *testing.T) {
	t.Parallel()

	gateway := footballapimock.NewGateway(t)
	gateway.
		On("FetchLineups", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.TeamLineup]{Errors: []string{"fixture not covered"}}, nil).
		Once()

	service := newTestFixtureDetailService(gateway)
	got := result.Collect(service.GetFixtureDetailProgressive(context.Background(), testFixtureID))

	expectStates(t, got, result.StateLoading, result.StateError)
	if got[1].Message() != "fixture not covered" {
		t.Fatalf("unexpected error message: %q", got[1].Message())
	}
	gateway.AssertNotCalled(t, "FetchStatistics", mock.Anything, mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "FetchEvents", mock.Anything, mock.Anything)
}

func TestFixtureDetailService_GetFixtureDetailProgressive_PhaseTwoFailureAfterSnapshot(t *testing.T) {
	t.Parallel()

	gateway := footballapimock.NewGateway(t)
	gateway.
		On("FetchLineups", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.TeamLineup]{Response: sampleLineups()}, nil).
		Once()
	gateway.
		On("FetchStatistics", mock.Anything, testFixtureID, (*int64)(nil)).
		Return(footballapi.Response[[]fixture.TeamStatistics]{}, errNetwork).
		Once()
	gateway.
		On("FetchEvents", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Event]{Response: sampleEvents(1)}, nil).
		Maybe()

	service := newTestFixtureDetailService(gateway)
	got := result.Collect(service.GetFixtureDetailProgressive(context.Background(), testFixtureID))

	expectStates(t, got, result.StateLoading, result.StateSuccess, result.StateError)
}

func TestFixtureDetailService_GetStatistics_ForwardsTeamFilter(t *testing.T) {
	t.Parallel()

	teamID := int64(33)
	gateway := footballapimock.NewGateway(t)
	gateway.
		On("FetchStatistics", mock.Anything, testFixtureID, mock.MatchedBy(func(v *int64) bool { return v != nil && *v == teamID })).
		Return(footballapi.Response[[]fixture.TeamStatistics]{Response: sampleStatistics()[:1]}, nil).
		Once()

	service := newTestFixtureDetailService(gateway)
	envelope, _ := result.Terminal(service.GetStatistics(context.Background(), testFixtureID, &teamID))
	bundle, ok := envelope.Data()
	if !ok {
		t.Fatalf("expected success, got %q", envelope.Message())
	}
	if len(bundle.Statistics) != 1 || len(bundle.Lineups) != 0 || len(bundle.Events) != 0 {
		t.Fatalf("unexpected statistics-only bundle: %#v", bundle)
	}
}

func TestFixtureDetailService_GetLineupsAndEvents_SingleBranch(t *testing.T) {
	t.Parallel()

	gateway := footballapimock.NewGateway(t)
	gateway.
		On("FetchLineups", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.TeamLineup]{Response: sampleLineups()}, nil).
		Once()
	gateway.
		On("FetchEvents", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Event]{Errors: []string{"events unavailable"}}, nil).
		Once()

	service := newTestFixtureDetailService(gateway)

	lineups, _ := result.Terminal(service.GetLineups(context.Background(), testFixtureID))
	if bundle, ok := lineups.Data(); !ok || len(bundle.Lineups) != 2 {
		t.Fatalf("unexpected lineups result: state=%s", lineups.State())
	}

	events, _ := result.Terminal(service.GetEvents(context.Background(), testFixtureID))
	if !events.IsError() || events.Message() != "events unavailable" {
		t.Fatalf("unexpected events result: state=%s message=%q", events.State(), events.Message())
	}
}
