package blueprintc

import (
	"encoding/base64"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/blueprint/internal/core/blueprint"
	"github.com/zeusync/blueprint/internal/core/models"
	"github.com/zeusync/blueprint/internal/core/schema"
	"github.com/zeusync/blueprint/internal/core/systems/transform"
	"github.com/zeusync/blueprint/pkg/encoding"
)

// entitySource is the YAML authoring form of a blueprint tree.
type entitySource struct {
	Components []componentSource `yaml:"components"`
	Children   []entitySource    `yaml:"children"`
}

// componentSource holds one component. TransformDef components use
// Position and Scale; anything else takes Data (base64) or Text verbatim.
type componentSource struct {
	Type     string      `yaml:"type"`
	Position *[3]float32 `yaml:"position"`
	Scale    *[3]float32 `yaml:"scale"`
	Data     string      `yaml:"data"`
	Text     string      `yaml:"text"`
}

func parseSource(data []byte, types *schema.TypeList) (*blueprint.Tree, error) {
	var src entitySource
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("parse blueprint source: %w", err)
	}
	return src.tree(types)
}

func (s entitySource) tree(types *schema.TypeList) (*blueprint.Tree, error) {
	t := blueprint.NewTree()
	for i, c := range s.Components {
		defType := models.Hash(c.Type)
		if types.ReverseLookup(defType) == 0 {
			return nil, fmt.Errorf("component %d: unknown def type %q", i, c.Type)
		}
		payload, err := c.payload()
		if err != nil {
			return nil, fmt.Errorf("component %d (%s): %w", i, c.Type, err)
		}
		t.Write(defType, payload)
	}
	for _, child := range s.Children {
		ct, err := child.tree(types)
		if err != nil {
			return nil, err
		}
		t.AddChild(ct)
	}
	return t, nil
}

func (c componentSource) payload() ([]byte, error) {
	def, err := c.def()
	if err != nil {
		return nil, err
	}
	return def.Serialize()
}

// def builds the typed def for c. TransformDef is structured; everything
// else is carried as raw bytes.
func (c componentSource) def() (encoding.Serializable, error) {
	if c.Type == transform.DefName {
		def := transform.NewDef(transform.Zero)
		if c.Position != nil {
			def.Position = transform.Vec3{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]}
		}
		if c.Scale != nil {
			def.Scale = transform.Vec3{X: c.Scale[0], Y: c.Scale[1], Z: c.Scale[2]}
		}
		return &def, nil
	}
	raw := encoding.Raw(c.Text)
	if c.Data != "" {
		data, err := base64.StdEncoding.DecodeString(c.Data)
		if err != nil {
			return nil, err
		}
		raw = data
	}
	return &raw, nil
}

// describe decodes a payload for display when its def type is structured.
func describe(name string, data []byte) (string, error) {
	var def encoding.Serializable
	switch name {
	case transform.DefName:
		def = &transform.Def{}
	default:
		return "", nil
	}
	if err := def.Deserialize(data); err != nil {
		return "", err
	}
	return fmt.Sprintf(" %+v", def), nil
}
