package pico

import "errors"

// eval executes a single AST node against a closure and returns the node's
// value. Statements that produce nothing return None.
func (exec *Execution) eval(n Node, env Closure) (Value, error) {
	if err := exec.step(); err != nil {
		return NewNone(), exec.wrapErr(err, n.Pos())
	}

	switch node := n.(type) {
	case *Compound:
		return exec.evalCompound(node, env)
	case *MethodBody:
		return exec.evalMethodBody(node, env)
	case *ReturnStmt:
		return exec.evalReturn(node, env)
	case *ClassDefinition:
		env[node.Class.Name] = NewClass(node.Class)
		return NewNone(), nil
	case *IfElse:
		return exec.evalIfElse(node, env)
	case *Assignment:
		return exec.evalAssignment(node, env)
	case *FieldAssignment:
		return exec.evalFieldAssignment(node, env)
	case *PrintStmt:
		return exec.evalPrint(node, env)
	case *VariableValue:
		return exec.evalVariableValue(node, env)
	case *NumberLiteral:
		return NewInt(node.Value), nil
	case *StringLiteral:
		return NewString(node.Value), nil
	case *BoolLiteral:
		return NewBool(node.Value), nil
	case *NoneLiteral:
		return NewNone(), nil
	case *MethodCall:
		return exec.evalMethodCall(node, env)
	case *NewInstance:
		return exec.evalNewInstance(node, env)
	case *Stringify:
		return exec.evalStringify(node, env)
	case *BinaryExpr:
		return exec.evalBinaryExpr(node, env)
	case *NotExpr:
		return exec.evalNotExpr(node, env)
	case *ComparisonExpr:
		return exec.evalComparisonExpr(node, env)
	default:
		return NewNone(), exec.errorAt(n.Pos(), "cannot execute node %T", n)
	}
}

func (exec *Execution) evalCompound(node *Compound, env Closure) (Value, error) {
	for _, stmt := range node.Statements {
		if _, err := exec.eval(stmt, env); err != nil {
			return NewNone(), err
		}
	}
	return NewNone(), nil
}

// evalMethodBody runs a method's statements and intercepts the return
// unwind. Runtime errors pass through untouched.
func (exec *Execution) evalMethodBody(node *MethodBody, env Closure) (Value, error) {
	if _, err := exec.eval(node.Body, env); err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			return ret.value, nil
		}
		return NewNone(), err
	}
	return NewNone(), nil
}

// evalReturn evaluates the expression first, then initiates the unwind
// carrying the result.
func (exec *Execution) evalReturn(node *ReturnStmt, env Closure) (Value, error) {
	val, err := exec.eval(node.Value, env)
	if err != nil {
		return NewNone(), err
	}
	return NewNone(), &returnSignal{value: val}
}

func (exec *Execution) evalIfElse(node *IfElse, env Closure) (Value, error) {
	cond, err := exec.eval(node.Condition, env)
	if err != nil {
		return NewNone(), err
	}
	if cond.Truthy() {
		return exec.eval(node.Then, env)
	}
	if node.Else != nil {
		return exec.eval(node.Else, env)
	}
	return NewNone(), nil
}

func (exec *Execution) evalAssignment(node *Assignment, env Closure) (Value, error) {
	val, err := exec.eval(node.Value, env)
	if err != nil {
		return NewNone(), err
	}
	env[node.Var] = val
	return val, nil
}

func (exec *Execution) evalFieldAssignment(node *FieldAssignment, env Closure) (Value, error) {
	obj, err := exec.eval(node.Object, env)
	if err != nil {
		return NewNone(), err
	}
	inst := obj.Instance()
	if inst == nil {
		return NewNone(), exec.errorAt(node.Pos(), "cannot assign field %s on %s value", node.Field, obj.Kind())
	}
	val, err := exec.eval(node.Value, env)
	if err != nil {
		return NewNone(), err
	}
	inst.Fields[node.Field] = val
	return val, nil
}

func (exec *Execution) evalPrint(node *PrintStmt, env Closure) (Value, error) {
	for i, arg := range node.Args {
		val, err := exec.eval(arg, env)
		if err != nil {
			return NewNone(), err
		}
		if i > 0 {
			if _, err := exec.out.Write([]byte(" ")); err != nil {
				return NewNone(), exec.wrapErr(err, node.Pos())
			}
		}
		if err := exec.printValue(exec.out, val); err != nil {
			return NewNone(), exec.wrapErr(err, node.Pos())
		}
	}
	if _, err := exec.out.Write([]byte("\n")); err != nil {
		return NewNone(), exec.wrapErr(err, node.Pos())
	}
	return NewNone(), nil
}
