package schema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Table layout shared by the encoder and decoder:
//
//	table ComponentDef { def_type: ushort; def: [ubyte]; }
//	table EntityDef    { components: [ComponentDef]; children: [EntityDef]; }
//	root_type EntityDef;
const (
	componentDefTypeSlot = 0
	componentDefDataSlot = 1
	componentDefFields   = 2

	entityDefComponentsSlot = 0
	entityDefChildrenSlot   = 1
	entityDefFields         = 2
)

func vtableOffset(slot int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT(4 + 2*slot)
}

// ComponentDef is a read view of one encoded component record.
type ComponentDef struct {
	_tab flatbuffers.Table
}

func (rcv *ComponentDef) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

// DefType returns the discriminant of the component.
func (rcv *ComponentDef) DefType() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset(componentDefTypeSlot)))
	if o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

// DefBytes returns the payload without copying it out of the buffer.
func (rcv *ComponentDef) DefBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset(componentDefDataSlot)))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

// EntityDef is a read view of one encoded entity record.
type EntityDef struct {
	_tab flatbuffers.Table
}

// GetRootAsEntityDef returns the EntityDef at the root of buf.
func GetRootAsEntityDef(buf []byte, offset flatbuffers.UOffsetT) *EntityDef {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &EntityDef{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *EntityDef) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *EntityDef) Components(obj *ComponentDef, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset(entityDefComponentsSlot)))
	if o != 0 && j >= 0 && j < rcv._tab.VectorLen(o) {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * flatbuffers.UOffsetT(flatbuffers.SizeUOffsetT)
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *EntityDef) ComponentsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset(entityDefComponentsSlot)))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *EntityDef) Children(obj *EntityDef, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset(entityDefChildrenSlot)))
	if o != 0 && j >= 0 && j < rcv._tab.VectorLen(o) {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * flatbuffers.UOffsetT(flatbuffers.SizeUOffsetT)
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *EntityDef) ChildrenLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset(entityDefChildrenSlot)))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// vectorFits reports whether the offset vector in slot, when present, lies
// entirely inside the buffer.
func (rcv *EntityDef) vectorFits(slot int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset(slot)))
	if o == 0 {
		return true
	}
	size := uint64(len(rcv._tab.Bytes))
	start := uint64(rcv._tab.Vector(o))
	if start > size {
		return false
	}
	n := uint64(rcv._tab.VectorLen(o))
	return n*uint64(flatbuffers.SizeUOffsetT) <= size-start
}
