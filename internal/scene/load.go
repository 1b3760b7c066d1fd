package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/cullcore/internal/logger"
	"github.com/Faultbox/cullcore/pkg/geom"
	"github.com/Faultbox/cullcore/pkg/math"
)

// ErrDuplicateName is returned when two volumes share a name.
var ErrDuplicateName = errors.New("duplicate volume name")

// Format is a scene file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFromPath picks TOML for a .toml extension and YAML otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

type vector struct {
	X float32 `yaml:"x" toml:"x"`
	Y float32 `yaml:"y" toml:"y"`
	Z float32 `yaml:"z" toml:"z"`
}

func (v vector) vec3() math.Vec3 {
	return math.Vec3{v.X, v.Y, v.Z}
}

func fromVec3(v math.Vec3) vector {
	return vector{v[0], v[1], v[2]}
}

type pointEntry struct {
	Name     string `yaml:"name,omitempty" toml:"name,omitempty"`
	Position vector `yaml:"position" toml:"position"`
}

type boxEntry struct {
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
	Min  vector `yaml:"min" toml:"min"`
	Max  vector `yaml:"max" toml:"max"`
}

type sphereEntry struct {
	Name   string  `yaml:"name,omitempty" toml:"name,omitempty"`
	Center vector  `yaml:"center" toml:"center"`
	Radius float32 `yaml:"radius" toml:"radius"`
}

// file is the on-disk scene layout.
type file struct {
	Points  []pointEntry  `yaml:"points,omitempty" toml:"points,omitempty"`
	Boxes   []boxEntry    `yaml:"boxes,omitempty" toml:"boxes,omitempty"`
	Spheres []sphereEntry `yaml:"spheres,omitempty" toml:"spheres,omitempty"`
}

// Load reads a scene file, choosing the decoder by extension.
func Load(path string, log *zap.Logger) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	log = logger.OrNop(log).With(zap.String("scene", path))
	s, err := Parse(data, FormatFromPath(path), log)
	if err != nil {
		return nil, fmt.Errorf("loading scene from %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene. Inverted boxes and negative radii are fixed up with
// a warning; unnamed volumes get a random UUID.
func Parse(data []byte, format Format, log *zap.Logger) (*Scene, error) {
	log = logger.OrNop(log)

	var f file
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, err
	}

	s := &Scene{Volumes: make([]Volume, 0, len(f.Points)+len(f.Boxes)+len(f.Spheres))}

	for _, p := range f.Points {
		s.Volumes = append(s.Volumes, NewPoint(nameOrID(p.Name), p.Position.vec3()))
	}

	for _, b := range f.Boxes {
		box := geom.AABBFromMinMax(b.Min.vec3(), b.Max.vec3())
		name := nameOrID(b.Name)
		if !box.IsValid() {
			log.Warn("box min exceeds max, swapping bounds",
				zap.String("volume", name), zap.Stringer("box", box))
			box.Normalize()
		}
		s.Volumes = append(s.Volumes, NewBox(name, box))
	}

	for _, sp := range f.Spheres {
		name := nameOrID(sp.Name)
		if sp.Radius < 0 {
			log.Warn("negative sphere radius, using its magnitude",
				zap.String("volume", name), zap.Float32("radius", sp.Radius))
		}
		s.Volumes = append(s.Volumes, NewSphere(name, geom.NewSphere(sp.Center.vec3(), sp.Radius)))
	}

	if err := checkNames(s.Volumes); err != nil {
		return nil, err
	}

	log.Debug("scene parsed",
		zap.Int("points", len(f.Points)),
		zap.Int("boxes", len(f.Boxes)),
		zap.Int("spheres", len(f.Spheres)))
	return s, nil
}

func nameOrID(name string) string {
	if name != "" {
		return name
	}
	return uuid.NewString()
}

func checkNames(volumes []Volume) error {
	var err error
	seen := make(map[string]bool, len(volumes))
	for _, v := range volumes {
		if seen[v.Name] {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrDuplicateName, v.Name))
		}
		seen[v.Name] = true
	}
	return err
}

// Encode serializes the scene in the given format.
func (s *Scene) Encode(format Format) ([]byte, error) {
	var f file
	for _, v := range s.Volumes {
		switch v.Kind {
		case KindBox:
			f.Boxes = append(f.Boxes, boxEntry{Name: v.Name, Min: fromVec3(v.Box.MinPoint()), Max: fromVec3(v.Box.MaxPoint())})
		case KindSphere:
			f.Spheres = append(f.Spheres, sphereEntry{Name: v.Name, Center: fromVec3(v.Sphere.Center), Radius: v.Sphere.Radius})
		default:
			f.Points = append(f.Points, pointEntry{Name: v.Name, Position: fromVec3(v.Point)})
		}
	}

	if format == FormatTOML {
		return toml.Marshal(f)
	}
	return yaml.Marshal(f)
}

// SaveTo writes the scene to path, encoded by extension.
func (s *Scene) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := s.Encode(FormatFromPath(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
