package pico

func NewNone() Value            { return Value{kind: KindNone} }
func NewBool(b bool) Value      { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value      { return Value{kind: KindInt, data: i} }
func NewString(s string) Value  { return Value{kind: KindString, data: s} }
func NewClass(c *ClassDef) Value {
	return Value{kind: KindClass, data: c}
}
func NewInstanceValue(inst *Instance) Value {
	return Value{kind: KindInstance, data: inst}
}
