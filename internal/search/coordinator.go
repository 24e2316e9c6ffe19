// Package search issues employee searches for the live page: it debounces
// keystrokes, keeps the loading indicator balanced and drops stale responses.
package search

import (
	"context"
	"strings"

	"employee-directory/internal/api"
	"employee-directory/internal/page"
	"employee-directory/internal/worker"

	"github.com/sirupsen/logrus"
)

// Searcher fetches the employees matching query. An empty query means all.
type Searcher interface {
	Search(ctx context.Context, query string) ([]api.Employee, error)
}

// CoordinatorConfig 為 Coordinator 的相依元件
type CoordinatorConfig struct {
	Searcher  Searcher
	Pool      worker.Pool
	Indicator page.Indicator
	// Dispatch posts a completion back onto the goroutine that owns the page.
	Dispatch func(func())
	// Render receives the results of the latest request.
	Render func([]api.Employee) error
	Log    *logrus.Entry
}

// Coordinator issues searches. Fetch and every completion run on the page's
// owning goroutine, so seq needs no locking.
type Coordinator struct {
	ctx context.Context
	cfg CoordinatorConfig
	seq uint64
}

func NewCoordinator(ctx context.Context, cfg CoordinatorConfig) *Coordinator {
	if cfg.Pool == nil {
		cfg.Pool = worker.Inline{}
	}
	if cfg.Dispatch == nil {
		cfg.Dispatch = func(fn func()) { fn() }
	}
	if cfg.Log == nil {
		cfg.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Coordinator{ctx: ctx, cfg: cfg}
}

// Fetch starts a search for the trimmed query and returns its sequence number.
func (c *Coordinator) Fetch(query string) uint64 {
	q := strings.TrimSpace(query)
	c.seq++
	seq := c.seq
	c.cfg.Indicator.Show()

	err := c.cfg.Pool.Submit(c.ctx, func() {
		employees, err := c.cfg.Searcher.Search(c.ctx, q)
		c.cfg.Dispatch(func() { c.complete(seq, q, employees, err) })
	})
	if err != nil {
		c.complete(seq, q, nil, err)
	}
	return seq
}

// Latest returns the sequence number of the most recently issued request.
func (c *Coordinator) Latest() uint64 {
	return c.seq
}

func (c *Coordinator) complete(seq uint64, q string, employees []api.Employee, err error) {
	c.cfg.Indicator.Hide()
	log := c.cfg.Log.WithFields(logrus.Fields{"query": q, "seq": seq})
	if err != nil {
		log.WithError(err).Error("search failed")
		return
	}
	if seq != c.seq {
		log.WithField("latest", c.seq).Debug("dropping stale search response")
		return
	}
	if err := c.cfg.Render(employees); err != nil {
		log.WithError(err).Error("render search results")
	}
}
