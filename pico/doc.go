// Package pico implements the picoscript execution engine. Picoscript is a
// small dynamically typed, indentation-structured scripting language with
// the following constructs:
//   - Integer and string literals, True/False, and None.
//   - Variables, dotted field access, and field assignment via `self.x = e`.
//   - User-defined classes with single inheritance and instance methods,
//     created with `class Name(Base):` and instantiated as `Name(args)`.
//   - Special methods __init__, __str__, __eq__, __lt__, and __add__ invoked
//     implicitly by construction, printing, comparison, and `+`.
//   - `print`, arithmetic, string concatenation, comparisons, short-circuit
//     and/or/not, `if`/`else`, `return`, and `str(expr)`.
//
// Blocks are delimited by two-space indentation. Comments beginning with `#`
// run to end of line. The interpreter enforces a simple step quota and a
// recursion limit, rejecting scripts that exceed configured execution bounds.
package pico
