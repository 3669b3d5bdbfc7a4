package httpapi

import (
	"context"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/football-hub/internal/platform/result"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

const (
	streamModeFull        = "full"
	streamModeProgressive = "progressive"
	streamWriteWait       = 10 * time.Second
)

type streamQuery struct {
	Mode string `validate:"oneof=full progressive"`
}

// StreamFixtureDetail upgrades to a websocket and forwards every envelope of the fixture
// detail stream as one JSON text frame, then closes normally. The aggregation is cancelled
// as soon as the client disconnects.
func (h *Handler) StreamFixtureDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamFixtureDetail")
	defer span.End()

	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := streamQuery{Mode: r.URL.Query().Get("mode")}
	if query.Mode == "" {
		query.Mode = streamModeFull
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(ctx, "websocket upgrade failed", "fixture_id", fixtureID, "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go watchPeer(conn, cancel)

	var stream <-chan result.Envelope[usecase.FixtureDetailBundle]
	if query.Mode == streamModeProgressive {
		stream = h.fixtureService.GetFixtureDetailProgressive(ctx, fixtureID)
	} else {
		stream = h.fixtureService.GetFixtureDetail(ctx, fixtureID)
	}

	frames := 0
	for envelope := range stream {
		payload, err := sonic.Marshal(toEnvelopeDTO(envelope, fixtureDetailToDTO))
		if err != nil {
			h.logger.ErrorContext(ctx, "encode stream frame failed", "fixture_id", fixtureID, "error", err)
			return
		}
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.InfoContext(ctx, "stream client gone", "fixture_id", fixtureID, "frames", frames, "error", err)
			return
		}
		frames++
	}

	h.logger.DebugContext(ctx, "fixture stream finished", "fixture_id", fixtureID, "mode", query.Mode, "frames", frames)
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(streamWriteWait),
	)
}

// watchPeer reads until the connection fails, which is how a client close surfaces.
func watchPeer(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
