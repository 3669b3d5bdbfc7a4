package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/result"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

var errRouteNotFound = fmt.Errorf("%w: no such route", usecase.ErrNotFound)

type Handler struct {
	fixtureService  *usecase.FixtureDetailService
	warmService     *usecase.FixtureWarmService
	teamService     *usecase.TeamProfileService
	standingService *usecase.StandingService
	logger          *logging.Logger
	validator       *validator.Validate
	upgrader        websocket.Upgrader
}

func NewHandler(
	fixtureService *usecase.FixtureDetailService,
	warmService *usecase.FixtureWarmService,
	teamService *usecase.TeamProfileService,
	standingService *usecase.StandingService,
	logger *logging.Logger,
	allowedOrigins []string,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		fixtureService:  fixtureService,
		warmService:     warmService,
		teamService:     teamService,
		standingService: standingService,
		logger:          logger,
		validator:       validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type fixtureStatisticsQuery struct {
	Team *int64 `validate:"omitempty,gt=0"`
}

type teamProfileQuery struct {
	Season *int   `validate:"omitempty,gte=1900,lte=2100"`
	League *int64 `validate:"omitempty,gt=0"`
}

type standingsQuery struct {
	Season *int `validate:"required,gte=1900,lte=2100"`
}

func (h *Handler) GetFixtureDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureDetail")
	defer span.End()

	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondTerminal(ctx, h, w, "get fixture detail", h.fixtureService.GetFixtureDetail(ctx, fixtureID), fixtureDetailToDTO)
}

func (h *Handler) GetFixtureLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureLineups")
	defer span.End()

	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondTerminal(ctx, h, w, "get fixture lineups", h.fixtureService.GetLineups(ctx, fixtureID), fixtureDetailToDTO)
}

func (h *Handler) GetFixtureStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureStatistics")
	defer span.End()

	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var query fixtureStatisticsQuery
	if query.Team, err = optionalInt64Query(r.URL.Query(), "team"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondTerminal(ctx, h, w, "get fixture statistics", h.fixtureService.GetStatistics(ctx, fixtureID, query.Team), fixtureDetailToDTO)
}

func (h *Handler) GetFixtureEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureEvents")
	defer span.End()

	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondTerminal(ctx, h, w, "get fixture events", h.fixtureService.GetEvents(ctx, fixtureID), fixtureDetailToDTO)
}

func (h *Handler) WarmFixtureDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WarmFixtureDetails")
	defer span.End()

	var req warmFixturesRequest
	if err := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.warmService.WarmFixtureDetails(ctx, req.FixtureIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "warm fixture details failed", "fixtures", len(req.FixtureIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, warmResultToDTO(res))
}

func (h *Handler) GetTeamProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamProfile")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	values := r.URL.Query()
	var query teamProfileQuery
	if query.Season, err = optionalIntQuery(values, "season"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if query.League, err = optionalInt64Query(values, "league"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondTerminal(ctx, h, w, "get team profile", h.teamService.GetTeamProfile(ctx, teamID, query.Season, query.League), teamProfileToDTO)
}

func (h *Handler) GetBasicTeamProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBasicTeamProfile")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondTerminal(ctx, h, w, "get basic team profile", h.teamService.GetBasicTeamProfile(ctx, teamID), teamProfileToDTO)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var query standingsQuery
	if query.Season, err = optionalIntQuery(r.URL.Query(), "season"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondTerminal(ctx, h, w, "get standings", h.standingService.GetStandings(ctx, leagueID, *query.Season), standingsToDTO)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// respondTerminal drains the stream and writes its terminal envelope. A stream that closes
// without one means the client went away, so only the log line is left to write.
func respondTerminal[T any](ctx context.Context, h *Handler, w http.ResponseWriter, op string, stream <-chan result.Envelope[T], toDTO func(T) any) {
	envelope, ok := result.Terminal(stream)
	if !ok {
		h.logger.InfoContext(ctx, op+" abandoned", "error", ctx.Err())
		return
	}
	if envelope.IsError() {
		h.logger.WarnContext(ctx, op+" failed", "message", envelope.Message(), "error", envelope.Cause())
	}

	writeTerminal(ctx, w, envelope, toDTO)
}

func pathID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, key, raw)
	}
	return id, nil
}

func optionalInt64Query(values url.Values, key string) (*int64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	out, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, key, raw)
	}
	return &out, nil
}

func optionalIntQuery(values url.Values, key string) (*int, error) {
	value, err := optionalInt64Query(values, key)
	if err != nil || value == nil {
		return nil, err
	}
	out := int(*value)
	return &out, nil
}
