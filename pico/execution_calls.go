package pico

const (
	initMethod = "__init__"
	strMethod  = "__str__"
	eqMethod   = "__eq__"
	ltMethod   = "__lt__"
	addMethod  = "__add__"
)

// callMethod dispatches a method on an instance. The body runs against a
// fresh flat closure holding self and the bound formal parameters; self is
// synthesized here on every invocation rather than stored in the field map.
func (exec *Execution) callMethod(inst *Instance, name string, args []Value, pos Position) (Value, error) {
	m := inst.Class.GetMethod(name)
	if m == nil {
		return NewNone(), exec.errorAt(pos, "%s instance has no method %s", inst.Class.Name, name)
	}
	if len(m.Params) != len(args) {
		return NewNone(), exec.errorAt(pos, "%s.%s expects %d arguments, got %d",
			inst.Class.Name, name, len(m.Params), len(args))
	}
	if len(exec.callStack) >= exec.recursionCap {
		return NewNone(), exec.errorAt(pos, "recursion limit of %d exceeded", exec.recursionCap)
	}

	local := Closure{"self": NewInstanceValue(inst)}
	for i, param := range m.Params {
		local[param] = args[i]
	}

	exec.callStack = append(exec.callStack, callFrame{
		Function: inst.Class.Name + "." + name,
		Pos:      pos,
	})
	result, err := exec.eval(m.Body, local)
	exec.callStack = exec.callStack[:len(exec.callStack)-1]
	if err != nil {
		return NewNone(), err
	}
	return result, nil
}
