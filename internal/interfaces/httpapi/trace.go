package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("football-hub/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a child span under the request span for aggregator handlers and for the
// terminal envelope write. Everything else rides on the request span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	switch name {
	case "httpapi.Handler.Healthz":
		return false
	case "httpapi.writeTerminal":
		return true
	}
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// shouldTraceRequest drops health checks and CORS preflights.
func shouldTraceRequest(r *http.Request) bool {
	if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(r.URL.Path)) {
	case "/healthz", "/health", "/livez", "/readyz":
		return false
	default:
		return true
	}
}

var routeParams = map[string]string{
	"fixtures": "{fixtureID}",
	"teams":    "{teamID}",
	"leagues":  "{leagueID}",
}

// requestSpanName keeps span names low-cardinality by replacing numeric path ids with the
// route parameter they fill, e.g. GET /v1/fixtures/{fixtureID}/lineups.
func requestSpanName(r *http.Request) string {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	for i, segment := range segments {
		if _, err := strconv.ParseInt(segment, 10, 64); err != nil || i == 0 {
			continue
		}
		param, ok := routeParams[segments[i-1]]
		if !ok {
			param = "{id}"
		}
		segments[i] = param
	}
	return r.Method + " /" + strings.Join(segments, "/")
}
