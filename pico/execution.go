package pico

import (
	"context"
	"errors"
	"io"
	"os"
)

// Config controls interpreter execution bounds and output wiring.
type Config struct {
	StepQuota      int
	RecursionLimit int
	Output         io.Writer
}

// Engine compiles and executes picoscript programs with deterministic
// limits.
type Engine struct {
	config Config
}

// NewEngine constructs an Engine, applying defaults for zero-value fields.
func NewEngine(cfg Config) *Engine {
	if cfg.StepQuota <= 0 {
		cfg.StepQuota = 500000
	}
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = 128
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &Engine{config: cfg}
}

// Compile lexes and parses source into a runnable Script.
func (e *Engine) Compile(source string) (*Script, error) {
	return e.CompileWithClasses(source, nil)
}

// CompileWithClasses compiles source with previously declared classes
// already in scope, the way a REPL accumulating declarations across inputs
// needs. The classes a script itself declares are available from Classes.
func (e *Engine) CompileWithClasses(source string, classes map[string]*ClassDef) (*Script, error) {
	lex, err := NewLexerString(source)
	if err != nil {
		return nil, err
	}
	p := newParser(lex)
	for name, cls := range classes {
		p.classes[name] = cls
	}
	program, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	return &Script{engine: e, program: program, source: source, classes: p.classes}, nil
}

// Script is a compiled program bound to its engine.
type Script struct {
	engine  *Engine
	program *Compound
	source  string
	classes map[string]*ClassDef
}

// Classes returns every class in scope after compilation, including ones
// seeded through CompileWithClasses.
func (s *Script) Classes() map[string]*ClassDef {
	return s.classes
}

// RunOptions adjusts a single execution. Globals seeds the top-level
// closure and receives every top-level binding the program makes; Output
// overrides the engine's sink.
type RunOptions struct {
	Globals Closure
	Output  io.Writer
}

// Run interprets the program. It returns the top-level closure so callers
// can inspect the program's final bindings.
func (s *Script) Run(ctx context.Context, opts RunOptions) (Closure, error) {
	exec := s.newExecution(ctx, opts)
	closure := opts.Globals
	if closure == nil {
		closure = make(Closure)
	}
	if _, err := exec.eval(s.program, closure); err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			return closure, exec.errorAt(s.program.Pos(), "return outside of a method body")
		}
		return closure, err
	}
	return closure, nil
}

func (s *Script) newExecution(ctx context.Context, opts RunOptions) *Execution {
	out := opts.Output
	if out == nil {
		out = s.engine.config.Output
	}
	return &Execution{
		engine:       s.engine,
		script:       s,
		ctx:          ctx,
		out:          out,
		quota:        s.engine.config.StepQuota,
		recursionCap: s.engine.config.RecursionLimit,
	}
}

// Execution carries the evaluator-wide services AST execution needs: the
// output sink, the host context, and the execution bounds.
type Execution struct {
	engine       *Engine
	script       *Script
	ctx          context.Context
	out          io.Writer
	quota        int
	recursionCap int
	steps        int
	callStack    []callFrame
}

type callFrame struct {
	Function string
	Pos      Position
}

// Output returns the sink print and value rendering write to.
func (exec *Execution) Output() io.Writer {
	return exec.out
}

var errStepQuotaExceeded = errors.New("step quota exceeded")

func (exec *Execution) step() error {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		return errStepQuotaExceeded
	}
	if exec.ctx != nil && (exec.steps&63) == 0 {
		select {
		case <-exec.ctx.Done():
			return exec.ctx.Err()
		default:
		}
	}
	return nil
}

// returnSignal is the non-local unwind a return statement initiates. It is
// a distinct type from RuntimeError so that a runtime error inside a method
// body is never mistaken for the method's result.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string {
	return "return outside of a method body"
}
