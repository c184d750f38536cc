package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Configuration failures are non-fatal for the engine: Generate returns the
// error and an empty batch, and the caller decides whether to proceed with
// an uncluttered scene.
var (
	ErrNoClutterSpec = errors.New("random_table_objects section missing")
	ErrNoCategories  = errors.New("no object categories specified")
	ErrTableNotFound = errors.New("table not found in objects list")
)

// Defaults for optional layout parameters.
const (
	DefaultGridSize      = 0.1
	DefaultOccupancyRate = 0.5
	DefaultPadding       = 0.1
)

// SceneConfig is the scene description consumed by the engine. Only the keys
// the engine reads are modeled; simulator-specific keys elsewhere in the
// file are ignored rather than rejected, since the same file also feeds the
// simulator.
type SceneConfig struct {
	Objects            []SceneObject `yaml:"objects"`
	RandomTableObjects *ClutterSpec  `yaml:"random_table_objects"`
}

// SceneObject is one entry of the scene's objects list. The engine only
// needs the table entry's name, position, and orientation.
type SceneObject struct {
	Type        string    `yaml:"type,omitempty"`
	Name        string    `yaml:"name"`
	Category    string    `yaml:"category,omitempty"`
	FixedBase   bool      `yaml:"fixed_base,omitempty"`
	Position    []float64 `yaml:"position,omitempty"`
	Orientation []float64 `yaml:"orientation,omitempty"` // x, y, z, w
}

// ClutterSpec is the random_table_objects section.
// Optional fields use pointers where the zero value is meaningful
// (padding 0 is a valid request, so absence must be distinguishable).
type ClutterSpec struct {
	TableName   string  `yaml:"table_name"`
	TableLength float64 `yaml:"table_length"`
	TableWidth  float64 `yaml:"table_width"`
	TableHeight float64 `yaml:"table_height"`

	Categories     []string     `yaml:"categories"`
	NumObjects     CountRequest `yaml:"num_objects"`
	GridSize       float64      `yaml:"grid_size"`
	OccupancyRate  *float64     `yaml:"occupancy_rate"`
	Padding        *float64     `yaml:"padding"`
	RandomModels   *bool        `yaml:"random_models"`
	AxisAligned    bool         `yaml:"axis_aligned"`
	AutoSupplement bool         `yaml:"auto_supplement"`
}

// UnmarshalYAML accepts num_objects as either a scalar total or a sequence
// of per-category counts.
func (c *CountRequest) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var total int
		if err := value.Decode(&total); err != nil {
			return fmt.Errorf("num_objects: %w", err)
		}
		c.Total = &total
		c.PerCategory = nil
	case yaml.SequenceNode:
		var counts []int
		if err := value.Decode(&counts); err != nil {
			return fmt.Errorf("num_objects: %w", err)
		}
		c.Total = nil
		c.PerCategory = counts
	default:
		return fmt.Errorf("num_objects: expected scalar or sequence, got %v", value.Kind)
	}
	return nil
}

// LoadSceneConfig reads and parses a YAML scene configuration file.
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene config: %w", err)
	}
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scene config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the clutter section for the required table fields and
// well-formed layout parameters.
func (s *ClutterSpec) Validate() error {
	if s.TableName == "" {
		return errors.New("table_name is required")
	}
	if s.TableLength <= 0 {
		return fmt.Errorf("table_length must be positive, got %f", s.TableLength)
	}
	if s.TableWidth <= 0 {
		return fmt.Errorf("table_width must be positive, got %f", s.TableWidth)
	}
	if s.TableHeight < 0 {
		return fmt.Errorf("table_height must be non-negative, got %f", s.TableHeight)
	}
	if s.GridSize < 0 {
		return fmt.Errorf("grid_size must be positive when set, got %f", s.GridSize)
	}
	if s.OccupancyRate != nil && (*s.OccupancyRate < 0 || *s.OccupancyRate > 1) {
		return fmt.Errorf("occupancy_rate must be in [0, 1], got %f", *s.OccupancyRate)
	}
	if s.Padding != nil && *s.Padding < 0 {
		return fmt.Errorf("padding must be non-negative, got %f", *s.Padding)
	}
	if s.NumObjects.Total != nil && *s.NumObjects.Total < 0 {
		return fmt.Errorf("num_objects must be non-negative, got %d", *s.NumObjects.Total)
	}
	for i, c := range s.NumObjects.PerCategory {
		if c < 0 {
			return fmt.Errorf("num_objects[%d] must be non-negative, got %d", i, c)
		}
	}
	return nil
}

// layoutParams are the resolved optional parameters of a ClutterSpec.
// Resolution never writes back into the caller-owned spec.
type layoutParams struct {
	gridSize       float64
	occupancyRate  float64
	padding        float64
	randomModels   bool
	axisAligned    bool
	autoSupplement bool
}

func (s *ClutterSpec) params() layoutParams {
	p := layoutParams{
		gridSize:       DefaultGridSize,
		occupancyRate:  DefaultOccupancyRate,
		padding:        DefaultPadding,
		randomModels:   true,
		axisAligned:    s.AxisAligned,
		autoSupplement: s.AutoSupplement,
	}
	if s.GridSize > 0 {
		p.gridSize = s.GridSize
	}
	if s.OccupancyRate != nil {
		p.occupancyRate = *s.OccupancyRate
	}
	if s.Padding != nil {
		p.padding = *s.Padding
	}
	if s.RandomModels != nil {
		p.randomModels = *s.RandomModels
	}
	return p
}

// TableSurface resolves the clutter section against the objects list into a
// Surface. The table entry must carry a 3-component position; a missing or
// malformed orientation degrades to identity with a warning.
func (c *SceneConfig) TableSurface() (Surface, error) {
	spec := c.RandomTableObjects
	if spec == nil {
		return Surface{}, ErrNoClutterSpec
	}
	if err := spec.Validate(); err != nil {
		return Surface{}, err
	}

	for _, obj := range c.Objects {
		if obj.Name != spec.TableName {
			continue
		}
		if len(obj.Position) != 3 {
			return Surface{}, fmt.Errorf("table %q: position must have 3 components, got %d",
				spec.TableName, len(obj.Position))
		}
		padding := DefaultPadding
		if spec.Padding != nil {
			padding = *spec.Padding
		}
		surface := Surface{
			Length:   spec.TableLength,
			Width:    spec.TableWidth,
			Height:   spec.TableHeight,
			Padding:  padding,
			Position: mgl64.Vec3{obj.Position[0], obj.Position[1], obj.Position[2]},
		}
		if len(obj.Orientation) == 4 {
			q := mgl64.Quat{
				W: obj.Orientation[3],
				V: mgl64.Vec3{obj.Orientation[0], obj.Orientation[1], obj.Orientation[2]},
			}
			surface.Orientation = &q
		} else if obj.Orientation != nil {
			logrus.Warnf("table %q: orientation must have 4 components, got %d, assuming identity",
				spec.TableName, len(obj.Orientation))
		}
		return surface, nil
	}

	return Surface{}, fmt.Errorf("%w: %q", ErrTableNotFound, spec.TableName)
}
