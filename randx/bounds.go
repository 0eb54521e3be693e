package randx

import "fmt"

type Kind uint8

const (
	// KindUnit draws from [0, 1).
	KindUnit Kind = iota
	// KindMax draws from [0, max).
	KindMax
	// KindRange draws from [min, max).
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindMax:
		return "max"
	case KindRange:
		return "range"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Bounds describes the interval a float is drawn from.
// The zero value is the unit interval.
type Bounds struct {
	kind     Kind
	min, max float64
}

func Unit() Bounds {
	return Bounds{kind: KindUnit, max: 1}
}

func Max(max float64) Bounds {
	return Bounds{kind: KindMax, max: max}
}

// Between returns the bounds [min, max). The arguments are swapped when
// min > max.
func Between(min, max float64) Bounds {
	if min > max {
		min, max = max, min
	}
	return Bounds{kind: KindRange, min: min, max: max}
}

func (b Bounds) Kind() Kind {
	return b.kind
}

// Min returns the inclusive lower end of the interval.
func (b Bounds) Min() float64 {
	return b.min
}

// Max returns the exclusive upper end of the interval. Unit bounds report 1.
func (b Bounds) Max() float64 {
	if b.kind == KindUnit {
		return 1
	}
	return b.max
}

func (b Bounds) String() string {
	return fmt.Sprintf("%s[%v, %v)", b.kind, b.Min(), b.Max())
}
