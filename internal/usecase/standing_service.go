package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-hub/internal/domain/footballapi"
	"github.com/riskibarqy/football-hub/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-hub/internal/platform/result"
	"go.opentelemetry.io/otel/attribute"
)

type StandingService struct {
	gateway footballapi.Gateway
}

func NewStandingService(gateway footballapi.Gateway) *StandingService {
	return &StandingService{gateway: gateway}
}

// GetStandings fetches the league tables of one season. No tables is an empty success.
func (s *StandingService) GetStandings(ctx context.Context, leagueID int64, season int) <-chan result.Envelope[[]leaguestanding.Table] {
	return result.Stream(ctx, func(ctx context.Context, _ *result.Emitter[[]leaguestanding.Table]) (tables []leaguestanding.Table, err error) {
		ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.GetStandings",
			attribute.Int64("league.id", leagueID),
			attribute.Int("league.season", season),
		)
		defer func() { finishSpan(span, err) }()

		if leagueID <= 0 {
			return nil, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
		}
		if season <= 0 {
			return nil, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
		}

		resp, err := s.gateway.FetchStandings(ctx, leagueID, season)
		if err != nil {
			return nil, fmt.Errorf("fetch standings league_id=%d season=%d: %w", leagueID, season, err)
		}
		if resp.HasErrors() {
			return nil, providerRejection(resp.Errors)
		}

		return nonNil(resp.Response), nil
	}, result.WithFormatter(UserMessage))
}
