// Package config handles cullcore configuration loading and management.
package config

// Config holds all cullcheck settings.
type Config struct {
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Culling CullingConfig `yaml:"culling" toml:"culling"`
	Scene   SceneConfig   `yaml:"scene" toml:"scene"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// Vector is a 3D position in config files.
type Vector struct {
	X float32 `yaml:"x" toml:"x"`
	Y float32 `yaml:"y" toml:"y"`
	Z float32 `yaml:"z" toml:"z"`
}

// Projection kinds accepted by CameraConfig.Projection.
const (
	ProjectionAnalytic = "analytic" // frustum built from fov/aspect/near/far
	ProjectionGL       = "gl"       // extracted from a [-1,1] depth projection
	ProjectionD3D      = "d3d"      // extracted from a [0,1] depth projection
)

// Camera modes accepted by CameraConfig.Mode.
const (
	ModeFly   = "fly"   // placed by position, yaw and pitch
	ModeOrbit = "orbit" // framed around the scene bounds, rotated by yaw and pitch
)

// CameraConfig holds the viewing camera. Angles are in degrees.
type CameraConfig struct {
	FOV        float32 `yaml:"fov" toml:"fov"` // vertical
	Aspect     float32 `yaml:"aspect" toml:"aspect"`
	Near       float32 `yaml:"near" toml:"near"`
	Far        float32 `yaml:"far" toml:"far"`
	Position   Vector  `yaml:"position" toml:"position"`
	Yaw        float32 `yaml:"yaw" toml:"yaw"`
	Pitch      float32 `yaml:"pitch" toml:"pitch"`
	Projection string  `yaml:"projection" toml:"projection"`
	Mode       string  `yaml:"mode" toml:"mode"` // empty means fly
}

// CullingConfig holds batch culling settings.
type CullingConfig struct {
	Workers   int `yaml:"workers" toml:"workers"`       // 0 means GOMAXPROCS
	ChunkSize int `yaml:"chunk_size" toml:"chunk_size"` // volumes per task, 0 means automatic
}

// SceneConfig holds the scene file to cull.
type SceneConfig struct {
	Path  string `yaml:"path" toml:"path"`
	Watch bool   `yaml:"watch" toml:"watch"` // re-cull on file change
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level           string `yaml:"level" toml:"level"`
	LogFile         string `yaml:"log_file" toml:"log_file"`
	StorageCapacity int    `yaml:"storage_capacity" toml:"storage_capacity"` // 0 disables history
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			FOV:        75,
			Aspect:     16.0 / 9.0,
			Near:       0.1,
			Far:        1000,
			Projection: ProjectionAnalytic,
			Mode:       ModeFly,
		},
		Culling: CullingConfig{
			Workers:   0,
			ChunkSize: 0,
		},
		Scene: SceneConfig{
			Path:  "",
			Watch: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
