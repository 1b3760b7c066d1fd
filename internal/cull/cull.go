// Package cull classifies many volumes against one frustum in parallel.
package cull

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/cullcore/internal/logger"
	"github.com/Faultbox/cullcore/internal/scene"
	"github.com/Faultbox/cullcore/pkg/geom"
)

// minChunk keeps tiny inputs from being split into one goroutine per volume.
const minChunk = 64

// Result is the outcome for one volume.
type Result struct {
	Name        string
	Kind        scene.Kind
	Containment geom.Containment
	Visible     bool
}

// Stats summarizes a Cull call.
type Stats struct {
	Total     int
	Visible   int
	Culled    int
	Contained int
	Elapsed   time.Duration
}

// Culler tests volumes against Frustum using up to Workers goroutines.
// The frustum is only read, so one Culler may serve concurrent calls.
type Culler struct {
	Frustum   geom.Frustum
	Workers   int // 0 means GOMAXPROCS
	ChunkSize int // volumes per task, 0 means automatic
	Logger    *zap.Logger
}

// New creates a culler for f.
func New(f geom.Frustum, workers int, log *zap.Logger) *Culler {
	return &Culler{Frustum: f, Workers: workers, Logger: log}
}

func (c *Culler) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (c *Culler) chunkSize(n, workers int) int {
	if c.ChunkSize > 0 {
		return c.ChunkSize
	}
	return max((n+workers-1)/workers, minChunk)
}

// Cull classifies every volume. Results keep input order. It stops early and
// returns the context error when ctx is cancelled.
func (c *Culler) Cull(ctx context.Context, volumes []scene.Volume) ([]Result, Stats, error) {
	log := logger.OrNop(c.Logger)
	start := time.Now()

	f := c.Frustum
	if !f.IsNormalized() {
		// sphere tests need unit normals
		f.Normalize()
	}

	n := len(volumes)
	workers := c.workers()
	chunk := c.chunkSize(n, workers)
	results := make([]Result, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < n && gctx.Err() == nil; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				v := volumes[i]
				cont := v.Containment(f)
				results[i] = Result{
					Name:        v.Name,
					Kind:        v.Kind,
					Containment: cont,
					Visible:     cont != geom.Disjoint,
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	stats := Summarize(results)
	stats.Elapsed = time.Since(start)

	log.Debug("cull finished",
		zap.Int("total", stats.Total),
		zap.Int("visible", stats.Visible),
		zap.Int("culled", stats.Culled),
		zap.Int("workers", workers),
		zap.Int("chunk", chunk),
		zap.Duration("elapsed", stats.Elapsed))

	return results, stats, nil
}

// CullScene runs Cull over every volume in s.
func (c *Culler) CullScene(ctx context.Context, s *scene.Scene) ([]Result, Stats, error) {
	return c.Cull(ctx, s.Volumes)
}

// Summarize counts results. Elapsed is left zero.
func Summarize(results []Result) Stats {
	s := Stats{Total: len(results)}
	for _, r := range results {
		if r.Visible {
			s.Visible++
		} else {
			s.Culled++
		}
		if r.Containment == geom.Contains {
			s.Contained++
		}
	}
	return s
}

// VisibleNames returns the names of visible volumes in input order.
func VisibleNames(results []Result) []string {
	var names []string
	for _, r := range results {
		if r.Visible {
			names = append(names, r.Name)
		}
	}
	return names
}
