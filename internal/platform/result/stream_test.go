package result

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStream_LoadingThenSuccess(t *testing.T) {
	t.Parallel()

	got := Collect(Stream(context.Background(), func(context.Context, *Emitter[int]) (int, error) {
		return 42, nil
	}))

	if len(got) != 2 {
		t.Fatalf("expected 2 envelopes, got %d", len(got))
	}
	if !got[0].IsLoading() {
		t.Fatalf("expected loading first, got %s", got[0].State())
	}
	data, ok := got[1].Data()
	if !got[1].IsSuccess() || !ok || data != 42 {
		t.Fatalf("unexpected terminal envelope: state=%s data=%d ok=%v", got[1].State(), data, ok)
	}
}

func TestStream_IntermediateSuccessBeforeTerminal(t *testing.T) {
	t.Parallel()

	got := Collect(Stream(context.Background(), func(_ context.Context, emitter *Emitter[string]) (string, error) {
		emitter.Emit("partial")
		return "complete", nil
	}))

	states := make([]State, 0, len(got))
	for _, item := range got {
		states = append(states, item.State())
	}
	if len(got) != 3 || states[0] != StateLoading || states[1] != StateSuccess || states[2] != StateSuccess {
		t.Fatalf("unexpected sequence: %v", states)
	}
	if data, _ := got[2].Data(); data != "complete" {
		t.Fatalf("expected final payload, got %q", data)
	}
}

func TestStream_ErrorUsesFormatter(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	ch := Stream(context.Background(), func(_ context.Context, emitter *Emitter[string]) (string, error) {
		emitter.Emit("partial")
		return "", boom
	}, WithFormatter(func(err error) string { return "formatted: " + err.Error() }))

	last, ok := Terminal(ch)
	if !ok || !last.IsError() {
		t.Fatalf("expected terminal error, got state=%s ok=%v", last.State(), ok)
	}
	if last.Message() != "formatted: boom" {
		t.Fatalf("unexpected message: %q", last.Message())
	}
	if _, hasData := last.Data(); hasData {
		t.Fatalf("error envelope must not carry data")
	}
	if !errors.Is(last.Cause(), boom) {
		t.Fatalf("expected producer error as cause, got %v", last.Cause())
	}
}

func TestStream_PanicBecomesError(t *testing.T) {
	t.Parallel()

	last, ok := Terminal(Stream(context.Background(), func(context.Context, *Emitter[int]) (int, error) {
		panic("unexpected nil")
	}))
	if !ok || !last.IsError() {
		t.Fatalf("expected terminal error after panic, got %s", last.State())
	}
	if last.Message() != fallbackMessage {
		t.Fatalf("expected fallback message, got %q", last.Message())
	}
}

func TestStream_CancelStopsEmission(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	ch := Stream(ctx, func(ctx context.Context, _ *Emitter[int]) (int, error) {
		<-release
		return 1, nil
	})

	first := <-ch
	if !first.IsLoading() {
		t.Fatalf("expected loading first, got %s", first.State())
	}

	cancel()
	close(release)

	select {
	case envelope, open := <-ch:
		if open {
			t.Fatalf("expected no envelope after cancel, got %s", envelope.State())
		}
	case <-time.After(time.Second):
		t.Fatalf("stream was not closed after cancel")
	}
}

func TestEnvelope_FailureWithData(t *testing.T) {
	t.Parallel()

	envelope := FailureWithData("stale", []int{1, 2})
	data, ok := envelope.Data()
	if !envelope.IsError() || !envelope.IsTerminal() || !ok || len(data) != 2 {
		t.Fatalf("unexpected envelope: state=%s ok=%v data=%v", envelope.State(), ok, data)
	}
}
