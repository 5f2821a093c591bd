// Package errors provides structured error types for the js-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the script resource name and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEval, errors.KindScriptError).
//		Resource("boot.js").
//		Cause(engineErr).
//		Detail("evaluate bootstrap").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ContextLive()
//	err := errors.UnhandledType("*goja.Symbol")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
