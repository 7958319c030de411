package pico

import (
	"context"
	"io"
	"strings"
	"testing"
)

func newTestExecution(t *testing.T, out io.Writer) *Execution {
	t.Helper()
	if out == nil {
		out = io.Discard
	}
	engine := NewEngine(Config{Output: out})
	script := &Script{engine: engine}
	return script.newExecution(context.Background(), RunOptions{Output: out})
}

func TestTruthy(t *testing.T) {
	cls := &ClassDef{Name: "P"}
	cases := []struct {
		name string
		val  Value
		want bool
	}{
		{"none", NewNone(), false},
		{"false", NewBool(false), false},
		{"true", NewBool(true), true},
		{"zero", NewInt(0), false},
		{"nonzero", NewInt(7), true},
		{"negative", NewInt(-1), true},
		{"empty string", NewString(""), false},
		{"string", NewString("x"), true},
		{"class", NewClass(cls), false},
		{"instance", NewInstanceValue(newInstance(cls)), false},
	}
	for _, tc := range cases {
		if got := tc.val.Truthy(); got != tc.want {
			t.Errorf("%s: Truthy() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPrintValuePrimitives(t *testing.T) {
	exec := newTestExecution(t, nil)
	cases := []struct {
		val  Value
		want string
	}{
		{NewNone(), "None"},
		{NewBool(true), "True"},
		{NewBool(false), "False"},
		{NewInt(-42), "-42"},
		{NewString("hello\nworld"), "hello\nworld"},
		{NewClass(&ClassDef{Name: "Point"}), "Class Point"},
	}
	for _, tc := range cases {
		var sb strings.Builder
		if err := exec.printValue(&sb, tc.val); err != nil {
			t.Fatalf("printValue failed: %v", err)
		}
		if sb.String() != tc.want {
			t.Errorf("printValue = %q, want %q", sb.String(), tc.want)
		}
	}
}

func TestPrintValueInstanceWithoutStr(t *testing.T) {
	exec := newTestExecution(t, nil)
	inst := newInstance(&ClassDef{Name: "Point"})
	var sb strings.Builder
	if err := exec.printValue(&sb, NewInstanceValue(inst)); err != nil {
		t.Fatalf("printValue failed: %v", err)
	}
	if !strings.HasPrefix(sb.String(), "<Point instance at ") {
		t.Fatalf("printValue = %q, want identity rendering", sb.String())
	}
}

func TestPrintValueInstanceWithStr(t *testing.T) {
	exec := newTestExecution(t, nil)
	cls := &ClassDef{Name: "Greeter", Methods: []*Method{{
		Name: strMethod,
		Body: &MethodBody{Body: &ReturnStmt{Value: &StringLiteral{Value: "hello"}}},
	}}}
	var sb strings.Builder
	if err := exec.printValue(&sb, NewInstanceValue(newInstance(cls))); err != nil {
		t.Fatalf("printValue failed: %v", err)
	}
	if sb.String() != "hello" {
		t.Fatalf("printValue = %q, want %q", sb.String(), "hello")
	}
}

func TestEqualPrimitives(t *testing.T) {
	exec := newTestExecution(t, nil)
	cases := []struct {
		name     string
		lhs, rhs Value
		want     bool
	}{
		{"equal ints", NewInt(3), NewInt(3), true},
		{"unequal ints", NewInt(3), NewInt(4), false},
		{"equal strings", NewString("ab"), NewString("ab"), true},
		{"unequal strings", NewString("ab"), NewString("ac"), false},
		{"equal bools", NewBool(true), NewBool(true), true},
		{"unequal bools", NewBool(true), NewBool(false), false},
		{"none none", NewNone(), NewNone(), true},
	}
	for _, tc := range cases {
		got, err := exec.equalValues(tc.lhs, tc.rhs, Position{})
		if err != nil {
			t.Fatalf("%s: equalValues failed: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: equalValues = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEqualMixedKindsFails(t *testing.T) {
	exec := newTestExecution(t, nil)
	pairs := [][2]Value{
		{NewInt(1), NewString("1")},
		{NewBool(true), NewInt(1)},
		{NewNone(), NewInt(0)},
		{NewClass(&ClassDef{Name: "A"}), NewClass(&ClassDef{Name: "A"})},
	}
	for _, pair := range pairs {
		if _, err := exec.equalValues(pair[0], pair[1], Position{}); err == nil {
			t.Errorf("equalValues(%v, %v) should fail", pair[0].Kind(), pair[1].Kind())
		}
	}
}

func TestLessPrimitives(t *testing.T) {
	exec := newTestExecution(t, nil)
	cases := []struct {
		name     string
		lhs, rhs Value
		want     bool
	}{
		{"int less", NewInt(1), NewInt(2), true},
		{"int not less", NewInt(2), NewInt(1), false},
		{"string less", NewString("ab"), NewString("b"), true},
		{"bool less", NewBool(false), NewBool(true), true},
		{"bool not less", NewBool(true), NewBool(true), false},
	}
	for _, tc := range cases {
		got, err := exec.lessValues(tc.lhs, tc.rhs, Position{})
		if err != nil {
			t.Fatalf("%s: lessValues failed: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: lessValues = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLessNoneFails(t *testing.T) {
	exec := newTestExecution(t, nil)
	if _, err := exec.lessValues(NewNone(), NewNone(), Position{}); err == nil {
		t.Fatalf("lessValues(None, None) should fail; only equality treats two Nones specially")
	}
}

// The derived comparisons must satisfy:
//
//	NotEq(x,y)     == !Eq(x,y)
//	LessOrEq(x,y)  == Less(x,y) || Eq(x,y)
//	Greater(x,y)   == !LessOrEq(x,y)
//	GreaterOrEq(x,y) == !Less(x,y)
func TestComparisonCoherence(t *testing.T) {
	exec := newTestExecution(t, nil)
	values := []Value{
		NewInt(1), NewInt(2), NewInt(2),
		NewString("a"), NewString("b"),
		NewBool(false), NewBool(true),
	}
	for _, lhs := range values {
		for _, rhs := range values {
			if lhs.Kind() != rhs.Kind() {
				continue
			}
			eq, err := exec.compareValues(CmpEq, lhs, rhs, Position{})
			if err != nil {
				t.Fatalf("eq failed: %v", err)
			}
			notEq, _ := exec.compareValues(CmpNotEq, lhs, rhs, Position{})
			less, _ := exec.compareValues(CmpLess, lhs, rhs, Position{})
			lessOrEq, _ := exec.compareValues(CmpLessOrEq, lhs, rhs, Position{})
			greater, _ := exec.compareValues(CmpGreater, lhs, rhs, Position{})
			greaterOrEq, _ := exec.compareValues(CmpGreaterOrEq, lhs, rhs, Position{})

			if notEq != !eq {
				t.Errorf("NotEq(%v,%v) incoherent", lhs, rhs)
			}
			if lessOrEq != (less || eq) {
				t.Errorf("LessOrEq(%v,%v) incoherent", lhs, rhs)
			}
			if greater != !lessOrEq {
				t.Errorf("Greater(%v,%v) incoherent", lhs, rhs)
			}
			if greaterOrEq != !less {
				t.Errorf("GreaterOrEq(%v,%v) incoherent", lhs, rhs)
			}
		}
	}
}

// A left instance with __eq__/__lt__ decides comparisons; the result is
// coerced through Truthy.
func TestInstanceComparisonDispatch(t *testing.T) {
	exec := newTestExecution(t, nil)
	cls := &ClassDef{Name: "Flag", Methods: []*Method{
		{
			Name:   eqMethod,
			Params: []string{"other"},
			Body:   &MethodBody{Body: &ReturnStmt{Value: &NumberLiteral{Value: 1}}},
		},
		{
			Name:   ltMethod,
			Params: []string{"other"},
			Body:   &MethodBody{Body: &ReturnStmt{Value: &StringLiteral{Value: ""}}},
		},
	}}
	inst := NewInstanceValue(newInstance(cls))

	eq, err := exec.equalValues(inst, NewInt(5), Position{})
	if err != nil {
		t.Fatalf("equalValues failed: %v", err)
	}
	if !eq {
		t.Fatalf("__eq__ returning 1 should coerce to true")
	}

	less, err := exec.lessValues(inst, NewInt(5), Position{})
	if err != nil {
		t.Fatalf("lessValues failed: %v", err)
	}
	if less {
		t.Fatalf("__lt__ returning \"\" should coerce to false")
	}
}

func TestInstanceWithoutEqFails(t *testing.T) {
	exec := newTestExecution(t, nil)
	inst := NewInstanceValue(newInstance(&ClassDef{Name: "Bare"}))
	if _, err := exec.equalValues(inst, inst, Position{}); err == nil {
		t.Fatalf("comparing instances without __eq__ should fail")
	}
}
