package search

import (
	"context"
	"errors"
	"io"
	"testing"

	"employee-directory/internal/api"
	"employee-directory/internal/worker"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type countingIndicator struct {
	shows, hides int
}

func (c *countingIndicator) Show() { c.shows++ }
func (c *countingIndicator) Hide() { c.hides++ }

// heldPool keeps submitted tasks until the test releases them.
type heldPool struct {
	tasks []worker.Task
	err   error
}

func (p *heldPool) Submit(_ context.Context, t worker.Task) error {
	if p.err != nil {
		return p.err
	}
	p.tasks = append(p.tasks, t)
	return nil
}

func (p *heldPool) Stop() {}

type searcherFunc func(ctx context.Context, q string) ([]api.Employee, error)

func (f searcherFunc) Search(ctx context.Context, q string) ([]api.Employee, error) {
	return f(ctx, q)
}

type harness struct {
	coord     *Coordinator
	indicator *countingIndicator
	pool      *heldPool
	queries   []string
	rendered  [][]api.Employee
	hook      *test.Hook
}

func newHarness(search searcherFunc) *harness {
	h := &harness{indicator: &countingIndicator{}, pool: &heldPool{}}
	logger, hook := test.NewNullLogger()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	h.hook = hook
	h.coord = NewCoordinator(context.Background(), CoordinatorConfig{
		Searcher: searcherFunc(func(ctx context.Context, q string) ([]api.Employee, error) {
			h.queries = append(h.queries, q)
			return search(ctx, q)
		}),
		Pool:      h.pool,
		Indicator: h.indicator,
		Render: func(e []api.Employee) error {
			h.rendered = append(h.rendered, e)
			return nil
		},
		Log: logrus.NewEntry(logger),
	})
	return h
}

func byName(names ...string) []api.Employee {
	out := make([]api.Employee, 0, len(names))
	for i, n := range names {
		out = append(out, api.Employee{ID: i + 1, Name: n})
	}
	return out
}

func TestFetchTrimsAndRenders(t *testing.T) {
	h := newHarness(func(_ context.Context, q string) ([]api.Employee, error) {
		return byName("Alice"), nil
	})

	seq := h.coord.Fetch("  alice  ")
	require.Equal(t, uint64(1), seq)
	require.Equal(t, 1, h.indicator.shows)
	require.Equal(t, 0, h.indicator.hides)

	h.pool.tasks[0]()
	require.Equal(t, []string{"alice"}, h.queries)
	require.Equal(t, 1, h.indicator.hides)
	require.Equal(t, [][]api.Employee{byName("Alice")}, h.rendered)
}

func TestFetchDropsStaleResponses(t *testing.T) {
	h := newHarness(func(_ context.Context, q string) ([]api.Employee, error) {
		return byName(q), nil
	})

	h.coord.Fetch("a")
	h.coord.Fetch("ab")
	require.Equal(t, uint64(2), h.coord.Latest())

	// the newer request settles first, then the older one
	h.pool.tasks[1]()
	h.pool.tasks[0]()

	require.Equal(t, [][]api.Employee{byName("ab")}, h.rendered)
	require.Equal(t, 2, h.indicator.shows)
	require.Equal(t, 2, h.indicator.hides)
}

func TestFetchFailureLeavesTableAlone(t *testing.T) {
	h := newHarness(func(_ context.Context, q string) ([]api.Employee, error) {
		return nil, errors.New("boom")
	})

	h.coord.Fetch("x")
	h.pool.tasks[0]()

	require.Empty(t, h.rendered)
	require.Equal(t, 1, h.indicator.shows)
	require.Equal(t, 1, h.indicator.hides)
	require.Equal(t, logrus.ErrorLevel, h.hook.LastEntry().Level)
	require.Equal(t, "search failed", h.hook.LastEntry().Message)
}

func TestFetchSubmitFailureHidesIndicator(t *testing.T) {
	h := newHarness(func(_ context.Context, q string) ([]api.Employee, error) {
		t.Fatal("search should not run")
		return nil, nil
	})
	h.pool.err = worker.ErrStopped

	h.coord.Fetch("x")
	require.Equal(t, 1, h.indicator.shows)
	require.Equal(t, 1, h.indicator.hides)
	require.Empty(t, h.rendered)
}

func TestFetchDispatchesCompletion(t *testing.T) {
	var posted []func()
	ind := &countingIndicator{}
	var rendered int
	c := NewCoordinator(context.Background(), CoordinatorConfig{
		Searcher: searcherFunc(func(context.Context, string) ([]api.Employee, error) {
			return nil, nil
		}),
		Indicator: ind,
		Dispatch:  func(fn func()) { posted = append(posted, fn) },
		Render:    func([]api.Employee) error { rendered++; return nil },
	})

	c.Fetch("")
	require.Len(t, posted, 1)
	require.Equal(t, 0, ind.hides)

	posted[0]()
	require.Equal(t, 1, ind.hides)
	require.Equal(t, 1, rendered)
}

func TestFetchLogsRenderError(t *testing.T) {
	h := newHarness(func(_ context.Context, q string) ([]api.Employee, error) {
		return nil, nil
	})
	h.coord.cfg.Render = func([]api.Employee) error { return errors.New("no container") }

	h.coord.Fetch("")
	h.pool.tasks[0]()
	require.Equal(t, "render search results", h.hook.LastEntry().Message)
	require.Equal(t, 1, h.indicator.hides)
}
