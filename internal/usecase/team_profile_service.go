package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-hub/internal/domain/footballapi"
	"github.com/riskibarqy/football-hub/internal/domain/team"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/result"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// SquadSeason is the season every squad lookup targets, whatever season the caller asked for.
// TODO: pass the caller's season through once product confirms squads should follow it.
const SquadSeason = 2025

// TeamProfileDetails is the team screen payload. Statistics is present only when league and
// season were both supplied and the lookup succeeded; Squad only when the squad lookup
// succeeded with at least one record.
type TeamProfileDetails struct {
	Profile    team.Profile
	Statistics *team.SeasonStatistics
	Squad      *team.Squad
}

type TeamProfileService struct {
	gateway footballapi.Gateway
	logger  *logging.Logger
}

func NewTeamProfileService(gateway footballapi.Gateway, logger *logging.Logger) *TeamProfileService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamProfileService{
		gateway: gateway,
		logger:  logger,
	}
}

// GetTeamProfile fetches profile, season statistics and squad concurrently. Only the profile
// is mandatory; statistics is skipped entirely unless both league and season are given.
func (s *TeamProfileService) GetTeamProfile(ctx context.Context, teamID int64, season *int, league *int64) <-chan result.Envelope[TeamProfileDetails] {
	return result.Stream(ctx, func(ctx context.Context, _ *result.Emitter[TeamProfileDetails]) (TeamProfileDetails, error) {
		return s.fetchTeamProfile(ctx, teamID, season, league)
	}, result.WithFormatter(UserMessage))
}

func (s *TeamProfileService) fetchTeamProfile(ctx context.Context, teamID int64, season *int, league *int64) (details TeamProfileDetails, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamProfileService.GetTeamProfile", attribute.Int64("team.id", teamID))
	defer func() { finishSpan(span, err) }()

	if err := validateTeamID(teamID); err != nil {
		return TeamProfileDetails{}, err
	}

	var (
		profileResp footballapi.Response[[]team.Profile]
		stats       *team.SeasonStatistics
		squad       *team.Squad
	)

	// The mandatory branch is the only one that can fail the group; when it does the
	// optional lookups are cancelled with it.
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		resp, err := s.gateway.FetchTeamProfile(ctx, teamID)
		if err != nil {
			return fmt.Errorf("fetch team profile team_id=%d: %w", teamID, err)
		}
		profileResp = resp
		return nil
	})
	if league != nil && season != nil {
		p.Go(func(ctx context.Context) error {
			stats = s.fetchSeasonStatistics(ctx, teamID, *league, *season)
			return nil
		})
	}
	p.Go(func(ctx context.Context) error {
		squad = s.fetchSquad(ctx, teamID)
		return nil
	})
	if err := p.Wait(); err != nil {
		return TeamProfileDetails{}, err
	}

	if profileResp.HasErrors() {
		s.logger.WarnContext(ctx, "team profile response carried provider errors",
			"team_id", teamID,
			"errors", profileResp.Errors,
		)
	}

	profile := firstOrNil(profileResp.Response)
	if profile == nil {
		return TeamProfileDetails{}, teamProfileNotFound(teamID)
	}

	return TeamProfileDetails{
		Profile:    *profile,
		Statistics: stats,
		Squad:      squad,
	}, nil
}

// GetBasicTeamProfile fetches only the profile; Statistics and Squad stay nil.
func (s *TeamProfileService) GetBasicTeamProfile(ctx context.Context, teamID int64) <-chan result.Envelope[TeamProfileDetails] {
	return result.Stream(ctx, func(ctx context.Context, _ *result.Emitter[TeamProfileDetails]) (details TeamProfileDetails, err error) {
		ctx, span := startUsecaseSpan(ctx, "usecase.TeamProfileService.GetBasicTeamProfile", attribute.Int64("team.id", teamID))
		defer func() { finishSpan(span, err) }()

		if err := validateTeamID(teamID); err != nil {
			return TeamProfileDetails{}, err
		}

		resp, err := s.gateway.FetchTeamProfile(ctx, teamID)
		if err != nil {
			return TeamProfileDetails{}, fmt.Errorf("fetch team profile team_id=%d: %w", teamID, err)
		}

		profile := firstOrNil(resp.Response)
		if profile == nil {
			return TeamProfileDetails{}, teamProfileNotFound(teamID)
		}

		return TeamProfileDetails{Profile: *profile}, nil
	}, result.WithFormatter(UserMessage))
}

func (s *TeamProfileService) fetchSeasonStatistics(ctx context.Context, teamID, leagueID int64, season int) *team.SeasonStatistics {
	resp, err := s.gateway.FetchTeamStatistics(ctx, leagueID, season, teamID)
	if err != nil {
		s.logger.WarnContext(ctx, "team statistics lookup failed, leaving statistics empty",
			"team_id", teamID,
			"league_id", leagueID,
			"season", season,
			"error", err,
		)
		return nil
	}
	if resp.HasErrors() {
		s.logger.WarnContext(ctx, "team statistics rejected by provider, leaving statistics empty",
			"team_id", teamID,
			"league_id", leagueID,
			"season", season,
			"errors", resp.Errors,
		)
		return nil
	}

	stats := resp.Response
	return &stats
}

func (s *TeamProfileService) fetchSquad(ctx context.Context, teamID int64) *team.Squad {
	resp, err := s.gateway.FetchTeamSquad(ctx, teamID, SquadSeason)
	if err != nil {
		s.logger.WarnContext(ctx, "team squad lookup failed, leaving squad empty",
			"team_id", teamID,
			"season", SquadSeason,
			"error", err,
		)
		return nil
	}

	return firstOrNil(resp.Response)
}

func teamProfileNotFound(teamID int64) error {
	return crerr.WithHint(fmt.Errorf("%w: team profile team_id=%d", ErrNotFound, teamID), "team profile not found")
}

func validateTeamID(teamID int64) error {
	if teamID <= 0 {
		return fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}
	return nil
}
