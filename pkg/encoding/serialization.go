package encoding

// Serializable is a component def that converts itself to and from the
// opaque payload bytes a blueprint carries for it.
type Serializable interface {
	Serialize() ([]byte, error)
	Deserialize([]byte) error
}

// Raw is a payload kept as is.
type Raw []byte

var _ Serializable = (*Raw)(nil)

func (r *Raw) Serialize() ([]byte, error) {
	return []byte(*r), nil
}

func (r *Raw) Deserialize(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}
