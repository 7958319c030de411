package pico

import "strings"

func (exec *Execution) evalVariableValue(node *VariableValue, env Closure) (Value, error) {
	val, ok := env[node.Names[0]]
	if !ok {
		return NewNone(), exec.errorAt(node.Pos(), "unknown variable %s", node.Names[0])
	}
	for _, name := range node.Names[1:] {
		inst := val.Instance()
		if inst == nil {
			return NewNone(), exec.errorAt(node.Pos(), "%s value has no field %s", val.Kind(), name)
		}
		field, ok := inst.Fields[name]
		if !ok {
			return NewNone(), exec.errorAt(node.Pos(), "%s instance has no field %s", inst.Class.Name, name)
		}
		val = field
	}
	return val, nil
}

// evalMethodCall is deliberately permissive: a non-instance target or a
// missing method yields None without evaluating the arguments. Programs
// relying on this are almost certainly buggy, but the behavior is part of
// the language.
func (exec *Execution) evalMethodCall(node *MethodCall, env Closure) (Value, error) {
	obj, err := exec.eval(node.Object, env)
	if err != nil {
		return NewNone(), err
	}
	inst := obj.Instance()
	if inst == nil || !inst.HasMethod(node.Method, len(node.Args)) {
		return NewNone(), nil
	}
	args := make([]Value, len(node.Args))
	for i, argNode := range node.Args {
		arg, err := exec.eval(argNode, env)
		if err != nil {
			return NewNone(), err
		}
		args[i] = arg
	}
	return exec.callMethod(inst, node.Method, args, node.Pos())
}

func (exec *Execution) evalNewInstance(node *NewInstance, env Closure) (Value, error) {
	inst := newInstance(node.Class)
	if inst.HasMethod(initMethod, len(node.Args)) {
		args := make([]Value, len(node.Args))
		for i, argNode := range node.Args {
			arg, err := exec.eval(argNode, env)
			if err != nil {
				return NewNone(), err
			}
			args[i] = arg
		}
		if _, err := exec.callMethod(inst, initMethod, args, node.Pos()); err != nil {
			return NewNone(), err
		}
	}
	return NewInstanceValue(inst), nil
}

func (exec *Execution) evalStringify(node *Stringify, env Closure) (Value, error) {
	val, err := exec.eval(node.Arg, env)
	if err != nil {
		return NewNone(), err
	}
	if val.IsNone() {
		return NewString("None"), nil
	}
	var sb strings.Builder
	if err := exec.printValue(&sb, val); err != nil {
		return NewNone(), exec.wrapErr(err, node.Pos())
	}
	return NewString(sb.String()), nil
}
