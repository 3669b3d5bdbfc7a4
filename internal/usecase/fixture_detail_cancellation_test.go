package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/fixture"
	"github.com/riskibarqy/football-hub/internal/domain/footballapi"
	gatewaycache "github.com/riskibarqy/football-hub/internal/infrastructure/gateway/cache"
	footballapimock "github.com/riskibarqy/football-hub/internal/mocks/domain/footballapi"
	basecache "github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/result"
	"github.com/stretchr/testify/mock"
)

func TestFixtureDetailService_GetFixtureDetail_CancellingOneViewerKeepsOtherIntact(t *testing.T) {
	t.Parallel()

	lineupsStarted := make(chan struct{}, 1)
	releaseLineups := make(chan struct{})

	inner := footballapimock.NewGateway(t)
	inner.
		On("FetchFixtureByID", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Fixture]{Response: []fixture.Fixture{sampleFixture(testFixtureID)}}, nil).
		Once()
	inner.
		On("FetchLineups", mock.Anything, testFixtureID).
		Return(func(ctx context.Context, _ int64) (footballapi.Response[[]fixture.TeamLineup], error) {
			lineupsStarted <- struct{}{}
			select {
			case <-ctx.Done():
				return footballapi.Response[[]fixture.TeamLineup]{}, ctx.Err()
			case <-releaseLineups:
				return footballapi.Response[[]fixture.TeamLineup]{Response: sampleLineups()}, nil
			}
		}).
		Once()
	inner.
		On("FetchStatistics", mock.Anything, testFixtureID, (*int64)(nil)).
		Return(footballapi.Response[[]fixture.TeamStatistics]{Response: sampleStatistics()}, nil).
		Once()
	inner.
		On("FetchEvents", mock.Anything, testFixtureID).
		Return(footballapi.Response[[]fixture.Event]{Response: sampleEvents(3)}, nil).
		Once()

	store := basecache.NewStore(time.Minute, basecache.WithLogger(logging.NewNop()))
	service := newTestFixtureDetailService(gatewaycache.NewGateway(inner, store))

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	first := service.GetFixtureDetail(firstCtx, testFixtureID)
	<-lineupsStarted
	cancelFirst()
	for _, envelope := range result.Collect(first) {
		if envelope.IsSuccess() {
			t.Fatalf("cancelled invocation must not emit success")
		}
	}

	second := service.GetFixtureDetail(context.Background(), testFixtureID)
	time.Sleep(50 * time.Millisecond)
	close(releaseLineups)

	envelope, ok := result.Terminal(second)
	if !ok || !envelope.IsSuccess() {
		t.Fatalf("expected success for the uncancelled invocation, got state=%s message=%q", envelope.State(), envelope.Message())
	}
	bundle, _ := envelope.Data()
	if bundle.Fixture == nil || bundle.Fixture.ID != testFixtureID {
		t.Fatalf("unexpected fixture: %#v", bundle.Fixture)
	}
	if len(bundle.Lineups) != 2 {
		t.Fatalf("expected lineups from the shared fetch, got %d", len(bundle.Lineups))
	}
	if len(bundle.Statistics) != 2 || len(bundle.Events) != 3 {
		t.Fatalf("unexpected bundle: statistics=%d events=%d", len(bundle.Statistics), len(bundle.Events))
	}
}
