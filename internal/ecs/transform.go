package ecs

import (
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/spriteforge/pkg/math"
)

// Transform places an entity in the world.
type Transform struct {
	Translation math.Vec3
	Rotation    math.Vec3 // Euler angles, degrees
	Scale       math.Vec3
}

// NewTransform returns an identity transform (unit scale).
func NewTransform() Transform {
	return Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// UnmarshalYAML decodes `{translation: [x,y,z], rotation: [...], scale: [...]}`;
// omitted fields keep their identity values.
func (t *Transform) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Translation *[3]float32 `yaml:"translation,flow"`
		Rotation    *[3]float32 `yaml:"rotation,flow"`
		Scale       *[3]float32 `yaml:"scale,flow"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*t = NewTransform()
	if raw.Translation != nil {
		t.Translation = math.Vec3{X: raw.Translation[0], Y: raw.Translation[1], Z: raw.Translation[2]}
	}
	if raw.Rotation != nil {
		t.Rotation = math.Vec3{X: raw.Rotation[0], Y: raw.Rotation[1], Z: raw.Rotation[2]}
	}
	if raw.Scale != nil {
		t.Scale = math.Vec3{X: raw.Scale[0], Y: raw.Scale[1], Z: raw.Scale[2]}
	}
	return nil
}
