package models

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Entity is an opaque identifier for one composed object.
// It carries no structure; components live in the systems that own them.
type Entity uint64

// NullEntity is returned by creation calls that fail.
const NullEntity Entity = 0

func (e Entity) IsNull() bool { return e == NullEntity }

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// HashValue identifies a component def type by the hash of its type name.
type HashValue uint64

// NoneHash is the reserved "none" def type. Nothing is ever registered for it.
const NoneHash HashValue = 0

// Hash returns the def type hash for a component type name.
// The empty name hashes to NoneHash.
func Hash(name string) HashValue {
	if name == "" {
		return NoneHash
	}
	return HashValue(xxhash.Sum64String(name))
}
