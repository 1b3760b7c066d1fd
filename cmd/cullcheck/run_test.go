package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/cullcore/internal/config"
	"github.com/Faultbox/cullcore/internal/scene"
	"github.com/Faultbox/cullcore/pkg/geom"
	"github.com/Faultbox/cullcore/pkg/math"
)

const testScene = `
points:
  - name: ahead
    position: {x: 0, y: 0, z: 10}
boxes:
  - name: behind
    min: {x: -1, y: -1, z: -20}
    max: {x: 1, y: 1, z: -10}
spheres:
  - name: right
    center: {x: 30, y: 0, z: 0}
    radius: 2
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunRequiresScene(t *testing.T) {
	err := run(context.Background(), config.Default(), &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, errNoScene)
}

func TestRunReportsVisibility(t *testing.T) {
	for _, projection := range []string{config.ProjectionAnalytic, config.ProjectionGL, config.ProjectionD3D} {
		t.Run(projection, func(t *testing.T) {
			cfg := config.Default()
			cfg.Scene.Path = writeScene(t, testScene)
			cfg.Camera.Projection = projection

			var out bytes.Buffer
			require.NoError(t, run(context.Background(), cfg, &out, zap.NewNop()))

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			require.Len(t, lines, 4)
			assert.Contains(t, lines[0], "contains")
			assert.Contains(t, lines[0], "ahead")
			assert.Contains(t, lines[1], "disjoint")
			assert.Contains(t, lines[2], "disjoint")
			assert.Contains(t, lines[3], "visible 1")
		})
	}
}

func TestRunYawTurnsCamera(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Path = writeScene(t, testScene)
	cfg.Camera.Yaw = 90

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out, zap.NewNop()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines[0], "disjoint")
	assert.Contains(t, lines[2], "contains")
}

func TestRunMissingScene(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Path = filepath.Join(t.TempDir(), "missing.yaml")

	assert.Error(t, run(context.Background(), cfg, &bytes.Buffer{}, zap.NewNop()))
}

func TestRunWatchStopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Path = writeScene(t, testScene)
	cfg.Scene.Watch = true

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, cfg, &bytes.Buffer{}, zap.NewNop())
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop")
	}
}

func TestRunCancelledBeforeCull(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Path = writeScene(t, testScene)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, &out, zap.NewNop()))
	assert.Empty(t, out.String())
}

func TestRunOrbitFramesScene(t *testing.T) {
	for _, projection := range []string{config.ProjectionAnalytic, config.ProjectionGL, config.ProjectionD3D} {
		t.Run(projection, func(t *testing.T) {
			cfg := config.Default()
			cfg.Scene.Path = writeScene(t, testScene)
			cfg.Camera.Projection = projection
			cfg.Camera.Mode = config.ModeOrbit
			cfg.Camera.Yaw, cfg.Camera.Pitch = 40, 25

			core, logs := observer.New(zapcore.DebugLevel)
			var out bytes.Buffer
			require.NoError(t, run(context.Background(), cfg, &out, zap.New(core)))

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			require.Len(t, lines, 4)
			assert.Contains(t, lines[3], "visible 3")

			visible := logs.FilterMessage("visible volumes").All()
			require.Len(t, visible, 1)
			assert.Equal(t, []interface{}{"ahead", "behind", "right"}, visible[0].ContextMap()["names"])
		})
	}
}

func TestSceneFrustumOrbit(t *testing.T) {
	cam := config.Default().Camera
	cam.Mode = config.ModeOrbit
	cam.Pitch = 200 // past the orbit pitch limit

	b := geom.NewAABB(-5, 5, -5, 5, -5, 5)
	c := newOrbitCamera(cam, b, true)
	assert.InDelta(t, c.MaxPitch, c.RotationX, 1e-6)
	assert.Equal(t, math.Vec3{}, c.Center)
	assert.Greater(t, c.Distance, float32(5))

	// nothing to frame: the default orbit around the origin
	f, err := sceneFrustum(cam, &scene.Scene{})
	require.NoError(t, err)
	assert.True(t, f.TestPoint(math.Vec3{}))
}

func TestWorldFrustumSources(t *testing.T) {
	cam := config.Default().Camera
	cam.Position = config.Vector{X: 2, Y: 1, Z: -4}
	cam.Yaw, cam.Pitch = 30, 10
	cam.Near, cam.Far = 0.5, 100

	analytic := worldFrustum(cam)
	cam.Projection = config.ProjectionGL
	extracted := worldFrustum(cam)

	want, got := analytic.Planes(), extracted.Planes()
	for i := range want {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want[i].Normal[j], got[i].Normal[j], 1e-3, geom.FrustumPlane(i).String())
		}
		assert.InDelta(t, want[i].Distance, got[i].Distance, 2e-2, geom.FrustumPlane(i).String())
	}

	c := newCamera(cam)
	assert.InDelta(t, math.DegToRad(30), c.Yaw, 1e-6)
	assert.True(t, analytic.TestPoint(c.Position.Add(c.Forward().Scale(10))))
}
