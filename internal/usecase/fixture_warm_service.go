package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/result"
)

const (
	defaultWarmWorkers = 4
	defaultWarmTimeout = 20 * time.Second
	maxWarmFixtures    = 100
)

type WarmStatus string

const (
	WarmStatusSuccess WarmStatus = "success"
	WarmStatusError   WarmStatus = "error"
)

type WarmItem struct {
	FixtureID  int64
	Status     WarmStatus
	Message    string
	DurationMs int64
}

type WarmResult struct {
	Items        []WarmItem
	SuccessCount int
	FailedCount  int
}

// FixtureWarmService runs the fixture detail aggregation for many fixtures ahead of time so
// the gateway cache is hot when clients open the match screen.
type FixtureWarmService struct {
	details *FixtureDetailService
	workers int
	timeout time.Duration
	logger  *logging.Logger
}

func NewFixtureWarmService(details *FixtureDetailService, workers int, timeout time.Duration, logger *logging.Logger) *FixtureWarmService {
	if workers < 1 {
		workers = defaultWarmWorkers
	}
	if timeout <= 0 {
		timeout = defaultWarmTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureWarmService{
		details: details,
		workers: workers,
		timeout: timeout,
		logger:  logger,
	}
}

// WarmFixtureDetails aggregates every fixture on its own context, so one slow or failing
// fixture never cancels another.
func (s *FixtureWarmService) WarmFixtureDetails(ctx context.Context, fixtureIDs []int64) (WarmResult, error) {
	ids, err := normalizeFixtureIDs(fixtureIDs)
	if err != nil {
		return WarmResult{}, err
	}

	workerCount := s.workers
	if workerCount > len(ids) {
		workerCount = len(ids)
	}

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	results := make(chan WarmItem, len(ids))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, fixtureID := range ids {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			item := s.warmOne(ctx, fixtureID)
			if item.Status == WarmStatusSuccess {
				successCount.Add(1)
			} else {
				failedCount.Add(1)
			}
			results <- item
		}); err != nil {
			workers.Done()
			workers.Wait()
			return WarmResult{}, fmt.Errorf("submit warm task: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := WarmResult{Items: make([]WarmItem, 0, len(ids))}
	for item := range results {
		out.Items = append(out.Items, item)
	}
	sort.SliceStable(out.Items, func(i, j int) bool { return out.Items[i].FixtureID < out.Items[j].FixtureID })
	out.SuccessCount = int(successCount.Load())
	out.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "fixture details warmed",
		"fixtures", len(ids),
		"success", out.SuccessCount,
		"failed", out.FailedCount,
	)

	return out, nil
}

func (s *FixtureWarmService) warmOne(ctx context.Context, fixtureID int64) WarmItem {
	started := time.Now()
	taskCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	item := WarmItem{FixtureID: fixtureID}
	envelope, ok := result.Terminal(s.details.GetFixtureDetail(taskCtx, fixtureID))
	switch {
	case !ok:
		item.Status = WarmStatusError
		item.Message = UserMessage(taskCtx.Err())
	case envelope.IsError():
		item.Status = WarmStatusError
		item.Message = envelope.Message()
	default:
		item.Status = WarmStatusSuccess
	}
	item.DurationMs = time.Since(started).Milliseconds()

	return item
}

func normalizeFixtureIDs(fixtureIDs []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(fixtureIDs))
	out := make([]int64, 0, len(fixtureIDs))
	for _, id := range fixtureIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: fixture id must be greater than zero, got %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: at least one fixture id is required", ErrInvalidInput)
	}
	if len(out) > maxWarmFixtures {
		return nil, fmt.Errorf("%w: at most %d fixtures can be warmed at once", ErrInvalidInput, maxWarmFixtures)
	}
	return out, nil
}
