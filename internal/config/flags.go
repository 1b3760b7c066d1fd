package config

import (
	"flag"
	"strconv"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagScene      = flag.String("scene", "", "Path to scene file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFOV        = flag.Float64("fov", 0, "Vertical field of view in degrees")
	flagAspect     = flag.Float64("aspect", 0, "Viewport aspect ratio (width/height)")
	flagNear       = flag.Float64("near", 0, "Near plane distance")
	flagFar        = flag.Float64("far", 0, "Far plane distance")
	flagYaw        = optionalFloatFlag("yaw", "Camera yaw in degrees")
	flagPitch      = optionalFloatFlag("pitch", "Camera pitch in degrees")
	flagWorkers    = flag.Int("workers", 0, "Number of culling workers")
	flagProjection = flag.String("projection", "", "Frustum source: analytic, gl or d3d")
	flagWatch      = flag.Bool("watch", false, "Re-cull when the scene file changes")
	flagMode       = flag.String("mode", "", "Camera mode: fly or orbit")
)

// optionalFloat is a float flag that remembers whether it was given, so an
// explicit zero still overrides the config file.
type optionalFloat struct {
	value float64
	set   bool
}

func optionalFloatFlag(name, usage string) *optionalFloat {
	o := &optionalFloat{}
	flag.Var(o, name, usage)
	return o
}

func (o *optionalFloat) String() string {
	if o == nil || !o.set {
		return ""
	}
	return strconv.FormatFloat(o.value, 'g', -1, 64)
}

func (o *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.value, o.set = v, true
	return nil
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFOV > 0 {
		cfg.Camera.FOV = float32(*flagFOV)
	}
	if *flagAspect > 0 {
		cfg.Camera.Aspect = float32(*flagAspect)
	}
	if *flagNear > 0 {
		cfg.Camera.Near = float32(*flagNear)
	}
	if *flagFar > 0 {
		cfg.Camera.Far = float32(*flagFar)
	}
	if flagYaw.set {
		cfg.Camera.Yaw = float32(flagYaw.value)
	}
	if flagPitch.set {
		cfg.Camera.Pitch = float32(flagPitch.value)
	}
	if *flagWorkers > 0 {
		cfg.Culling.Workers = *flagWorkers
	}
	if *flagProjection != "" {
		cfg.Camera.Projection = *flagProjection
	}
	if *flagWatch {
		cfg.Scene.Watch = true
	}
	if *flagMode != "" {
		cfg.Camera.Mode = *flagMode
	}
}
