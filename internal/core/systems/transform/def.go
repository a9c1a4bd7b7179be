package transform

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/zeusync/blueprint/internal/core/models"
	"github.com/zeusync/blueprint/pkg/encoding"
)

// DefName is the component def type name handled by the transform system.
const DefName = "TransformDef"

// DefType is the hash of DefName.
var DefType = models.Hash(DefName)

var ErrInvalidDef = errors.New("invalid transform def")

// Table layout:
//
//	table TransformDef {
//	  px: float; py: float; pz: float;
//	  sx: float = 1; sy: float = 1; sz: float = 1;
//	}
const defFields = 6

// Def is the authored form of a transform component.
type Def struct {
	Position Vec3
	Scale    Vec3
}

var _ encoding.Serializable = (*Def)(nil)

// NewDef returns a Def at position with unit scale.
func NewDef(position Vec3) Def {
	return Def{Position: position, Scale: One}
}

// Serialize encodes d as a finished TransformDef buffer.
func (d *Def) Serialize() ([]byte, error) {
	b := flatbuffers.NewBuilder(64)
	b.StartObject(defFields)
	b.PrependFloat32Slot(0, d.Position.X, 0)
	b.PrependFloat32Slot(1, d.Position.Y, 0)
	b.PrependFloat32Slot(2, d.Position.Z, 0)
	b.PrependFloat32Slot(3, d.Scale.X, 1)
	b.PrependFloat32Slot(4, d.Scale.Y, 1)
	b.PrependFloat32Slot(5, d.Scale.Z, 1)
	b.Finish(b.EndObject())
	return b.FinishedBytes(), nil
}

// Deserialize decodes a TransformDef buffer into d. An empty buffer yields
// the default transform.
func (d *Def) Deserialize(data []byte) (err error) {
	if len(data) == 0 {
		*d = NewDef(Zero)
		return nil
	}
	if len(data) < flatbuffers.SizeUOffsetT {
		return fmt.Errorf("%w: %d bytes", ErrInvalidDef, len(data))
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidDef, r)
		}
	}()

	tab := flatbuffers.Table{Bytes: data, Pos: flatbuffers.GetUOffsetT(data)}
	field := func(slot int, def float32) float32 {
		o := flatbuffers.UOffsetT(tab.Offset(flatbuffers.VOffsetT(4 + 2*slot)))
		if o == 0 {
			return def
		}
		return tab.GetFloat32(o + tab.Pos)
	}
	*d = Def{
		Position: Vec3{field(0, 0), field(1, 0), field(2, 0)},
		Scale:    Vec3{field(3, 1), field(4, 1), field(5, 1)},
	}
	return nil
}
