package schema

import (
	"fmt"
	"slices"

	"github.com/zeusync/blueprint/internal/core/models"
)

// NoneName is the conventional name of discriminant 0.
const NoneName = "NONE"

// TypeEntry maps one binary discriminant to a component def type name.
type TypeEntry struct {
	Discriminant uint16
	Name         string
}

// TypeList maps binary discriminants to def type hashes.
//
// It must mirror the discriminant numbering of the encoded ComponentDef
// records exactly; discriminant 0 is always NONE and maps to models.NoneHash.
type TypeList struct {
	hashes []models.HashValue
	names  []string
}

// NewTypeList builds a TypeList positionally: names[i] is the def type with
// discriminant i. names[0] is the NONE slot whatever it is called. A later
// empty name terminates the list. Repeating a name is rejected.
func NewTypeList(names []string) (*TypeList, error) {
	if len(names) == 0 {
		return nil, ErrEmptyTypeList
	}
	l := &TypeList{
		hashes: []models.HashValue{models.NoneHash},
		names:  []string{NoneName},
	}
	for _, name := range names[1:] {
		if name == "" {
			break
		}
		if slices.Contains(l.names, name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateType, name)
		}
		l.hashes = append(l.hashes, models.Hash(name))
		l.names = append(l.names, name)
	}
	return l, nil
}

// NewTypeListFromTable builds a TypeList from an explicit discriminant table.
// Gaps in the numbering decode as NONE. Reusing a discriminant or a name, or
// assigning discriminant 0, is rejected.
func NewTypeListFromTable(entries []TypeEntry) (*TypeList, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTypeList
	}
	size := 1
	for _, e := range entries {
		if int(e.Discriminant)+1 > size {
			size = int(e.Discriminant) + 1
		}
	}
	l := &TypeList{
		hashes: make([]models.HashValue, size),
		names:  make([]string, size),
	}
	l.names[0] = NoneName
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Discriminant == 0 {
			return nil, fmt.Errorf("%w: %s", ErrReservedType, e.Name)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("%w: discriminant %d has no name", ErrDuplicateType, e.Discriminant)
		}
		if l.names[e.Discriminant] != "" {
			return nil, fmt.Errorf("%w: discriminant %d", ErrDuplicateType, e.Discriminant)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateType, e.Name)
		}
		seen[e.Name] = struct{}{}
		l.hashes[e.Discriminant] = models.Hash(e.Name)
		l.names[e.Discriminant] = e.Name
	}
	return l, nil
}

// Len returns the number of discriminants, NONE included.
func (l *TypeList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.hashes)
}

// Lookup returns the def type hash for a discriminant, or NoneHash when the
// discriminant is unknown.
func (l *TypeList) Lookup(discriminant int) models.HashValue {
	if l == nil || discriminant < 0 || discriminant >= len(l.hashes) {
		return models.NoneHash
	}
	return l.hashes[discriminant]
}

// ReverseLookup returns the discriminant for a def type hash, or 0 (NONE)
// when the hash is not in the list. It is a linear scan and is only used
// when encoding.
func (l *TypeList) ReverseLookup(hash models.HashValue) int {
	if l == nil || hash == models.NoneHash {
		return 0
	}
	for i, h := range l.hashes {
		if h == hash {
			return i
		}
	}
	return 0
}

// Name returns the def type name of a discriminant, or "" if unknown.
func (l *TypeList) Name(discriminant int) string {
	if l == nil || discriminant < 0 || discriminant >= len(l.names) {
		return ""
	}
	return l.names[discriminant]
}

// NameOf returns the def type name for a hash, or "" if unknown.
func (l *TypeList) NameOf(hash models.HashValue) string {
	if d := l.ReverseLookup(hash); d != 0 {
		return l.names[d]
	}
	return ""
}
