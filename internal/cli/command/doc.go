// Package command binds named operations to typed positional parameters and
// dispatches raw input tokens to them.
//
// A Command is built once from an explicit Definition. The parameter schema
// is declared, never inferred: each Param has one of four primitive kinds,
// may be optional, and the last one may be variadic. Binding walks the raw
// tokens and the params in lockstep, coerces each token, and reports the
// first failure to the output sink instead of returning it to the shell.
package command
