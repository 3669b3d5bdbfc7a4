package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-hub/internal/domain/fixture"
	"github.com/riskibarqy/football-hub/internal/domain/footballapi"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/result"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// FixtureDetailBundle merges everything the match screen shows for one fixture.
// List fields are never nil.
type FixtureDetailBundle struct {
	Fixture    *fixture.Fixture
	Lineups    []fixture.TeamLineup
	Statistics []fixture.TeamStatistics
	Events     []fixture.Event
}

func newFixtureDetailBundle() FixtureDetailBundle {
	return FixtureDetailBundle{
		Lineups:    []fixture.TeamLineup{},
		Statistics: []fixture.TeamStatistics{},
		Events:     []fixture.Event{},
	}
}

type FixtureDetailService struct {
	gateway footballapi.Gateway
	logger  *logging.Logger
}

func NewFixtureDetailService(gateway footballapi.Gateway, logger *logging.Logger) *FixtureDetailService {
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureDetailService{
		gateway: gateway,
		logger:  logger,
	}
}

// GetFixtureDetail fetches the fixture, then lineups, statistics and events concurrently.
// A failing fixture lookup is fatal; a failing optional lookup yields an empty list.
func (s *FixtureDetailService) GetFixtureDetail(ctx context.Context, fixtureID int64) <-chan result.Envelope[FixtureDetailBundle] {
	return result.Stream(ctx, func(ctx context.Context, _ *result.Emitter[FixtureDetailBundle]) (FixtureDetailBundle, error) {
		return s.fetchFixtureDetail(ctx, fixtureID)
	}, result.WithFormatter(UserMessage))
}

func (s *FixtureDetailService) fetchFixtureDetail(ctx context.Context, fixtureID int64) (bundle FixtureDetailBundle, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureDetailService.GetFixtureDetail", attribute.Int64("fixture.id", fixtureID))
	defer func() { finishSpan(span, err) }()

	if err := validateFixtureID(fixtureID); err != nil {
		return FixtureDetailBundle{}, err
	}

	fixtureResp, err := s.gateway.FetchFixtureByID(ctx, fixtureID)
	if err != nil {
		return FixtureDetailBundle{}, fmt.Errorf("fetch fixture fixture_id=%d: %w", fixtureID, err)
	}

	var (
		lineups attempt[[]fixture.TeamLineup]
		stats   attempt[[]fixture.TeamStatistics]
		events  attempt[[]fixture.Event]
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		lineups = attemptCall(ctx, func(ctx context.Context) (footballapi.Response[[]fixture.TeamLineup], error) {
			return s.gateway.FetchLineups(ctx, fixtureID)
		})
	})
	wg.Go(func() {
		stats = attemptCall(ctx, func(ctx context.Context) (footballapi.Response[[]fixture.TeamStatistics], error) {
			return s.gateway.FetchStatistics(ctx, fixtureID, nil)
		})
	})
	wg.Go(func() {
		events = attemptCall(ctx, func(ctx context.Context) (footballapi.Response[[]fixture.Event], error) {
			return s.gateway.FetchEvents(ctx, fixtureID)
		})
	})
	wg.Wait()

	lineupResp := lineups.orEmpty(ctx, s.logger, "lineups", fixtureID)
	statsResp := stats.orEmpty(ctx, s.logger, "statistics", fixtureID)
	eventsResp := events.orEmpty(ctx, s.logger, "events", fixtureID)

	// Substituted responses carry no errors, so only genuinely returned rejections land here.
	if rejected := collectProviderErrors(fixtureResp.Errors, lineupResp.Errors, statsResp.Errors, eventsResp.Errors); len(rejected) > 0 {
		return FixtureDetailBundle{}, providerRejection(rejected)
	}

	bundle = newFixtureDetailBundle()
	bundle.Fixture = firstOrNil(fixtureResp.Response)
	bundle.Lineups = nonNil(lineupResp.Response)
	bundle.Statistics = nonNil(statsResp.Response)
	bundle.Events = nonNil(eventsResp.Response)

	return bundle, nil
}

// GetLineups fetches only the team sheets; Fixture stays nil.
func (s *FixtureDetailService) GetLineups(ctx context.Context, fixtureID int64) <-chan result.Envelope[FixtureDetailBundle] {
	return result.Stream(ctx, func(ctx context.Context, _ *result.Emitter[FixtureDetailBundle]) (FixtureDetailBundle, error) {
		items, err := s.fetchLineups(ctx, fixtureID)
		if err != nil {
			return FixtureDetailBundle{}, err
		}
		bundle := newFixtureDetailBundle()
		bundle.Lineups = items
		return bundle, nil
	}, result.WithFormatter(UserMessage))
}

// GetStatistics fetches only team statistics, optionally for one team.
func (s *FixtureDetailService) GetStatistics(ctx context.Context, fixtureID int64, teamID *int64) <-chan result.Envelope[FixtureDetailBundle] {
	return result.Stream(ctx, func(ctx context.Context, _ *result.Emitter[FixtureDetailBundle]) (FixtureDetailBundle, error) {
		items, err := s.fetchStatistics(ctx, fixtureID, teamID)
		if err != nil {
			return FixtureDetailBundle{}, err
		}
		bundle := newFixtureDetailBundle()
		bundle.Statistics = items
		return bundle, nil
	}, result.WithFormatter(UserMessage))
}

// GetEvents fetches only the match events.
func (s *FixtureDetailService) GetEvents(ctx context.Context, fixtureID int64) <-chan result.Envelope[FixtureDetailBundle] {
	return result.Stream(ctx, func(ctx context.Context, _ *result.Emitter[FixtureDetailBundle]) (FixtureDetailBundle, error) {
		items, err := s.fetchEvents(ctx, fixtureID)
		if err != nil {
			return FixtureDetailBundle{}, err
		}
		bundle := newFixtureDetailBundle()
		bundle.Events = items
		return bundle, nil
	}, result.WithFormatter(UserMessage))
}

// GetFixtureDetailProgressive emits a lineups-only Success as soon as the team sheets are in,
// then a final Success once statistics and events have been fetched concurrently.
// Fixture stays nil throughout.
func (s *FixtureDetailService) GetFixtureDetailProgressive(ctx context.Context, fixtureID int64) <-chan result.Envelope[FixtureDetailBundle] {
	return result.Stream(ctx, func(ctx context.Context, emitter *result.Emitter[FixtureDetailBundle]) (bundle FixtureDetailBundle, err error) {
		ctx, span := startUsecaseSpan(ctx, "usecase.FixtureDetailService.GetFixtureDetailProgressive", attribute.Int64("fixture.id", fixtureID))
		defer func() { finishSpan(span, err) }()

		lineups, err := s.fetchLineups(ctx, fixtureID)
		if err != nil {
			return FixtureDetailBundle{}, err
		}

		partial := newFixtureDetailBundle()
		partial.Lineups = lineups
		if !emitter.Emit(partial) {
			return FixtureDetailBundle{}, ctx.Err()
		}

		var (
			stats  []fixture.TeamStatistics
			events []fixture.Event
		)
		p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
		p.Go(func(ctx context.Context) error {
			items, err := s.fetchStatistics(ctx, fixtureID, nil)
			stats = items
			return err
		})
		p.Go(func(ctx context.Context) error {
			items, err := s.fetchEvents(ctx, fixtureID)
			events = items
			return err
		})
		if err := p.Wait(); err != nil {
			return FixtureDetailBundle{}, err
		}

		bundle = newFixtureDetailBundle()
		bundle.Lineups = lineups
		bundle.Statistics = stats
		bundle.Events = events
		return bundle, nil
	}, result.WithFormatter(UserMessage))
}

func (s *FixtureDetailService) fetchLineups(ctx context.Context, fixtureID int64) ([]fixture.TeamLineup, error) {
	if err := validateFixtureID(fixtureID); err != nil {
		return nil, err
	}

	resp, err := s.gateway.FetchLineups(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("fetch lineups fixture_id=%d: %w", fixtureID, err)
	}
	if resp.HasErrors() {
		return nil, providerRejection(resp.Errors)
	}

	return nonNil(resp.Response), nil
}

func (s *FixtureDetailService) fetchStatistics(ctx context.Context, fixtureID int64, teamID *int64) ([]fixture.TeamStatistics, error) {
	if err := validateFixtureID(fixtureID); err != nil {
		return nil, err
	}
	if teamID != nil && *teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	resp, err := s.gateway.FetchStatistics(ctx, fixtureID, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetch statistics fixture_id=%d: %w", fixtureID, err)
	}
	if resp.HasErrors() {
		return nil, providerRejection(resp.Errors)
	}

	return nonNil(resp.Response), nil
}

func (s *FixtureDetailService) fetchEvents(ctx context.Context, fixtureID int64) ([]fixture.Event, error) {
	if err := validateFixtureID(fixtureID); err != nil {
		return nil, err
	}

	resp, err := s.gateway.FetchEvents(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("fetch events fixture_id=%d: %w", fixtureID, err)
	}
	if resp.HasErrors() {
		return nil, providerRejection(resp.Errors)
	}

	return nonNil(resp.Response), nil
}

func validateFixtureID(fixtureID int64) error {
	if fixtureID <= 0 {
		return fmt.Errorf("%w: fixture id must be greater than zero", ErrInvalidInput)
	}
	return nil
}
