package cast

import (
	"math"
	"math/rand/v2"
)

// IndexKind tags a ListIndex result.
type IndexKind int

const (
	// IndexInvalid means the value does not name a position in the list.
	IndexInvalid IndexKind = iota
	// IndexAll addresses every item at once.
	IndexAll
	// IndexNumber is a concrete 1-based position.
	IndexNumber
)

func (k IndexKind) String() string {
	switch k {
	case IndexInvalid:
		return "invalid"
	case IndexAll:
		return "all"
	case IndexNumber:
		return "number"
	default:
		return "unknown"
	}
}

// ListIndex is the result of resolving a dynamic value against a list: a
// concrete 1-based position, or one of two sentinels that cannot collide
// with a real index.
type ListIndex struct {
	Kind IndexKind
	N    int // set only when Kind is IndexNumber
}

var (
	// Invalid is the sentinel for values that name no position.
	Invalid = ListIndex{Kind: IndexInvalid}
	// All is the sentinel addressing every item.
	All = ListIndex{Kind: IndexAll}
)

// Index wraps a concrete 1-based position.
func Index(n int) ListIndex { return ListIndex{Kind: IndexNumber, N: n} }

// Valid reports whether the result names at least one position.
func (ix ListIndex) Valid() bool { return ix.Kind != IndexInvalid }

// ToListIndex resolves a dynamic value to a 1-based position in a list of
// the given length. The strings "all", "last", "random" and "any" are
// recognized before any numeric coercion; "all" resolves to the All
// sentinel only when acceptAll is set. Anything else coerces to a number,
// floors, and is accepted only inside [1, length]. rng supplies the
// randomness for "random"/"any"; nil uses the shared source.
func ToListIndex(index any, length int, acceptAll bool, rng *rand.Rand) ListIndex {
	switch index {
	case "all":
		if acceptAll {
			return All
		}
		return Invalid
	case "last":
		if length > 0 {
			return Index(length)
		}
		return Invalid
	case "random", "any":
		if length > 0 {
			return Index(1 + intN(rng, length))
		}
		return Invalid
	}
	// Floor before the range check, so 3.9 addresses item 3.
	f := math.Floor(ToNumber(index))
	if f < 1 || f > float64(length) {
		return Invalid
	}
	return Index(int(f))
}

func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}
