// Package prefab implements data-driven scene prefabs: sprite sheet
// declarations, sprite render attachments and their two-phase loading
// protocol (resolve sub-assets, then attach components to entities).
package prefab

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Reference names a loaded sprite sheet either by its position in the
// loaded set or by its declared name, so a declaration does not need to
// know load order statically.
type Reference struct {
	index *int
	name  *string
}

// ByIndex returns a reference to the sheet at the given loaded-set index.
func ByIndex(i int) Reference {
	return Reference{index: &i}
}

// ByName returns a reference to the first sheet loaded under name.
func ByName(name string) Reference {
	return Reference{name: &name}
}

// String renders the reference for diagnostics.
func (r *Reference) String() string {
	switch {
	case r == nil:
		return "<none>"
	case r.index != nil:
		return fmt.Sprintf("#%d", *r.index)
	case r.name != nil:
		return fmt.Sprintf("%q", *r.name)
	}
	return "<empty>"
}

// UnmarshalYAML accepts a bare integer (index) or string (name).
func (r *Reference) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!int":
		var i int
		if err := node.Decode(&i); err != nil {
			return err
		}
		*r = ByIndex(i)
		return nil
	case "!!str":
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*r = ByName(s)
		return nil
	}
	return fmt.Errorf("sheet reference must be an index or a name, got %s", node.Tag)
}

// MarshalYAML emits the same scalar form UnmarshalYAML accepts.
func (r Reference) MarshalYAML() (interface{}, error) {
	switch {
	case r.index != nil:
		return *r.index, nil
	case r.name != nil:
		return *r.name, nil
	}
	return nil, fmt.Errorf("empty sheet reference")
}
