package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/cullcore/internal/logger"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	cam := c.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera.fov must be in (0, 180) degrees, got %v", cam.FOV))
	}
	if cam.Aspect <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera.aspect must be positive, got %v", cam.Aspect))
	}
	if cam.Near <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera.near must be positive, got %v", cam.Near))
	}
	if cam.Far <= cam.Near {
		err = multierr.Append(err, fmt.Errorf("camera.far (%v) must be greater than camera.near (%v)", cam.Far, cam.Near))
	}
	switch cam.Projection {
	case ProjectionAnalytic, ProjectionGL, ProjectionD3D:
	default:
		err = multierr.Append(err, fmt.Errorf("camera.projection must be %s, %s or %s, got %q",
			ProjectionAnalytic, ProjectionGL, ProjectionD3D, cam.Projection))
	}
	switch cam.Mode {
	case "", ModeFly, ModeOrbit:
	default:
		err = multierr.Append(err, fmt.Errorf("camera.mode must be %s or %s, got %q", ModeFly, ModeOrbit, cam.Mode))
	}

	if c.Culling.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("culling.workers must not be negative, got %d", c.Culling.Workers))
	}
	if c.Culling.ChunkSize < 0 {
		err = multierr.Append(err, fmt.Errorf("culling.chunk_size must not be negative, got %d", c.Culling.ChunkSize))
	}

	if !logger.ValidLevel(c.Logging.Level) {
		err = multierr.Append(err, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	if c.Logging.StorageCapacity < 0 {
		err = multierr.Append(err, fmt.Errorf("logging.storage_capacity must not be negative, got %d", c.Logging.StorageCapacity))
	}

	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
