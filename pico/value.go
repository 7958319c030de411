package pico

import "fmt"

// ValueKind tags the runtime type of a Value.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindBool
	KindInt
	KindString
	KindClass
	KindInstance
)

// Value is a tagged runtime value. The zero Value is None, the absent
// value. Instances are carried by pointer, so every Value referring to the
// same instance shares its field map.
type Value struct {
	kind ValueKind
	data any
}

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Truthy reports the truth value used by if, and, or, and not. None,
// classes, class instances, False, 0, and "" are falsy; everything else is
// truthy. Instances are always falsy, even ones defining __eq__.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNone, KindClass, KindInstance:
		return false
	case KindBool:
		return v.data.(bool)
	case KindInt:
		return v.data.(int64) != 0
	case KindString:
		return v.data.(string) != ""
	default:
		return true
	}
}
