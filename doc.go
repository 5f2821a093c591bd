// Package jsbridge embeds a JavaScript runtime in Go host applications.
//
// The library is a bridge layer: it moves data across the host/script
// boundary through a closed tagged value model, invokes script-defined
// functions from host code, exposes host-defined callbacks to scripts, and
// translates script failures into structured diagnostics. The JavaScript
// engine itself (goja) is treated as an opaque collaborator reached only
// through its embedding interface.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	js-bridge/           Root package with shared lifecycle interfaces
//	├── bridge/          Context, Value model, facades, marshaling, diagnostics
//	├── errors/          Structured error types for debugging
//	└── cmd/run/         CLI evaluator with an interactive REPL
//
// # Quick Start
//
//	ctx, err := bridge.NewContext(handler)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	result := ctx.Evaluate("hello.js", "6 * 7")
//	fmt.Println(result) // Int(42)
//
// # Thread Safety
//
// A Context and every handle derived from it belong to a single goroutine.
// The embedded engine is not thread-safe; callers needing concurrency must
// serialize access externally.
package jsbridge
