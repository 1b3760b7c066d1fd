package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/cullcore/internal/camera"
	"github.com/Faultbox/cullcore/internal/config"
	"github.com/Faultbox/cullcore/internal/cull"
	"github.com/Faultbox/cullcore/internal/scene"
	"github.com/Faultbox/cullcore/pkg/geom"
	"github.com/Faultbox/cullcore/pkg/math"
)

var (
	errNoScene        = errors.New("no scene file given, use -scene or scene.path")
	errDegenerateView = errors.New("orbit camera view matrix is not invertible")
)

func lens(cfg config.CameraConfig) camera.Lens {
	return camera.Lens{
		FOV:       math.DegToRad(cfg.FOV),
		Aspect:    cfg.Aspect,
		Near:      cfg.Near,
		Far:       cfg.Far,
		ZeroToOne: cfg.Projection == config.ProjectionD3D,
	}
}

// newCamera builds the fly camera described by cfg. Angles in cfg are degrees.
func newCamera(cfg config.CameraConfig) *camera.FlyCamera {
	c := camera.NewFlyCamera(lens(cfg))
	c.Position = math.Vec3{cfg.Position.X, cfg.Position.Y, cfg.Position.Z}
	c.Rotate(math.DegToRad(cfg.Yaw), math.DegToRad(cfg.Pitch))
	return c
}

// worldFrustum returns the frustum cfg asks for: analytic planes moved by the
// camera, or planes extracted from the view-projection matrix.
func worldFrustum(cfg config.CameraConfig) geom.Frustum {
	c := newCamera(cfg)
	if cfg.Projection == config.ProjectionAnalytic {
		return c.WorldFrustum()
	}
	return c.ExtractedFrustum()
}

// newOrbitCamera builds an orbit camera turned by cfg's yaw and pitch and
// framing bounds when ok.
func newOrbitCamera(cfg config.CameraConfig, bounds geom.AABB, ok bool) *camera.OrbitCamera {
	c := camera.NewOrbitCamera(lens(cfg))
	c.RotationY = math.DegToRad(cfg.Yaw)
	c.RotationX = math.Clamp(math.DegToRad(cfg.Pitch), c.MinPitch, c.MaxPitch)
	if ok {
		c.FitToBounds(bounds)
	}
	return c
}

// sceneFrustum returns the world frustum to cull s with. Orbit mode frames
// the scene bounds, so it depends on s.
func sceneFrustum(cfg config.CameraConfig, s *scene.Scene) (geom.Frustum, error) {
	if cfg.Mode != config.ModeOrbit {
		return worldFrustum(cfg), nil
	}

	bounds, ok := s.Bounds()
	c := newOrbitCamera(cfg, bounds, ok)
	if cfg.Projection != config.ProjectionAnalytic {
		return c.ExtractedFrustum(), nil
	}
	f, ok := c.WorldFrustum()
	if !ok {
		return geom.Frustum{}, errDegenerateView
	}
	return f, nil
}

// stopped reports whether err only says that ctx was cancelled.
func stopped(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, context.Canceled)
}

// run culls the configured scene once, then again on every change when
// watching, until ctx is done. Cancellation is a clean stop.
func run(ctx context.Context, cfg *config.Config, out io.Writer, log *zap.Logger) error {
	if cfg.Scene.Path == "" {
		return errNoScene
	}

	c := cull.New(geom.Frustum{}, cfg.Culling.Workers, log)
	c.ChunkSize = cfg.Culling.ChunkSize

	s, err := scene.Load(cfg.Scene.Path, log)
	if err != nil {
		return err
	}
	if err := cullAndReport(ctx, c, cfg.Camera, s, out, log); err != nil {
		if stopped(ctx, err) {
			return nil
		}
		return err
	}

	if !cfg.Scene.Watch {
		return nil
	}

	w, err := scene.Watch(cfg.Scene.Path, log)
	if err != nil {
		return err
	}
	defer w.Close()

	log.Info("watching scene", zap.String("path", cfg.Scene.Path))
	for {
		select {
		case <-ctx.Done():
			return nil
		case u, ok := <-w.Updates():
			if !ok {
				return nil
			}
			if u.Err != nil {
				// keep the last good scene, the file may be mid-save
				log.Warn("scene reload failed", zap.Error(u.Err))
				continue
			}
			if err := cullAndReport(ctx, c, cfg.Camera, u.Scene, out, log); err != nil {
				if stopped(ctx, err) {
					return nil
				}
				return err
			}
		}
	}
}

func cullAndReport(ctx context.Context, c *cull.Culler, cam config.CameraConfig, s *scene.Scene, out io.Writer, log *zap.Logger) error {
	f, err := sceneFrustum(cam, s)
	if err != nil {
		return err
	}
	c.Frustum = f
	log.Debug("frustum ready", zap.Stringer("frustum", f),
		zap.String("projection", cam.Projection), zap.String("mode", cam.Mode))

	results, stats, err := c.CullScene(ctx, s)
	if err != nil {
		return fmt.Errorf("culling: %w", err)
	}
	log.Debug("visible volumes", zap.Strings("names", cull.VisibleNames(results)))
	report(out, results, stats)
	return nil
}

func report(out io.Writer, results []cull.Result, stats cull.Stats) {
	for _, r := range results {
		fmt.Fprintf(out, "%-8s %-10s %s\n", r.Kind, r.Containment, r.Name)
	}
	fmt.Fprintf(out, "total %d, visible %d (%d contained), culled %d in %v\n",
		stats.Total, stats.Visible, stats.Contained, stats.Culled, stats.Elapsed)
}
