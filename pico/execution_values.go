package pico

import (
	"fmt"
	"io"
)

// printValue renders a value the way print does: numbers in decimal,
// strings raw, booleans as True/False, classes as "Class <name>", and
// instances through a 0-arg __str__ when one exists.
func (exec *Execution) printValue(w io.Writer, v Value) error {
	switch v.Kind() {
	case KindNone:
		_, err := io.WriteString(w, "None")
		return err
	case KindBool:
		s := "False"
		if v.Bool() {
			s = "True"
		}
		_, err := io.WriteString(w, s)
		return err
	case KindInt:
		_, err := fmt.Fprintf(w, "%d", v.Int())
		return err
	case KindString:
		_, err := io.WriteString(w, v.Str())
		return err
	case KindClass:
		_, err := fmt.Fprintf(w, "Class %s", v.Class().Name)
		return err
	case KindInstance:
		inst := v.Instance()
		if inst.HasMethod(strMethod, 0) {
			rendered, err := exec.callMethod(inst, strMethod, nil, Position{})
			if err != nil {
				return err
			}
			return exec.printValue(w, rendered)
		}
		_, err := fmt.Fprintf(w, "<%s instance at %p>", inst.Class.Name, inst)
		return err
	default:
		return fmt.Errorf("cannot print %s value", v.Kind())
	}
}

// equalValues implements ==. A left instance with a unary __eq__ decides;
// same-kind primitives compare natively; two None values are equal; all
// other pairs are incomparable.
func (exec *Execution) equalValues(lhs, rhs Value, pos Position) (bool, error) {
	if inst := lhs.Instance(); inst != nil && inst.HasMethod(eqMethod, 1) {
		result, err := exec.callMethod(inst, eqMethod, []Value{rhs}, pos)
		if err != nil {
			return false, err
		}
		return result.Truthy(), nil
	}
	if native, ok := comparePrimitives(lhs, rhs, false); ok {
		return native, nil
	}
	if lhs.IsNone() && rhs.IsNone() {
		return true, nil
	}
	return false, exec.errorAt(pos, "cannot compare %s and %s for equality", lhs.Kind(), rhs.Kind())
}

// lessValues implements <. A left instance with a unary __lt__ decides;
// same-kind primitives compare natively; everything else is incomparable.
func (exec *Execution) lessValues(lhs, rhs Value, pos Position) (bool, error) {
	if inst := lhs.Instance(); inst != nil && inst.HasMethod(ltMethod, 1) {
		result, err := exec.callMethod(inst, ltMethod, []Value{rhs}, pos)
		if err != nil {
			return false, err
		}
		return result.Truthy(), nil
	}
	if native, ok := comparePrimitives(lhs, rhs, true); ok {
		return native, nil
	}
	return false, exec.errorAt(pos, "cannot compare %s and %s for order", lhs.Kind(), rhs.Kind())
}

// comparePrimitives applies the native comparison when both operands are
// the same primitive kind. less selects < instead of ==.
func comparePrimitives(lhs, rhs Value, less bool) (bool, bool) {
	if lhs.Kind() != rhs.Kind() {
		return false, false
	}
	switch lhs.Kind() {
	case KindBool:
		if less {
			return !lhs.Bool() && rhs.Bool(), true
		}
		return lhs.Bool() == rhs.Bool(), true
	case KindInt:
		if less {
			return lhs.Int() < rhs.Int(), true
		}
		return lhs.Int() == rhs.Int(), true
	case KindString:
		if less {
			return lhs.Str() < rhs.Str(), true
		}
		return lhs.Str() == rhs.Str(), true
	default:
		return false, false
	}
}

func (exec *Execution) compareValues(op CompareOp, lhs, rhs Value, pos Position) (bool, error) {
	switch op {
	case CmpEq:
		return exec.equalValues(lhs, rhs, pos)
	case CmpNotEq:
		eq, err := exec.equalValues(lhs, rhs, pos)
		return !eq, err
	case CmpLess:
		return exec.lessValues(lhs, rhs, pos)
	case CmpLessOrEq:
		less, err := exec.lessValues(lhs, rhs, pos)
		if err != nil {
			return false, err
		}
		if less {
			return true, nil
		}
		return exec.equalValues(lhs, rhs, pos)
	case CmpGreater:
		lessOrEq, err := exec.compareValues(CmpLessOrEq, lhs, rhs, pos)
		return !lessOrEq, err
	case CmpGreaterOrEq:
		less, err := exec.lessValues(lhs, rhs, pos)
		return !less, err
	default:
		return false, exec.errorAt(pos, "unknown comparison %v", op)
	}
}
