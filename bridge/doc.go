// Package bridge is the host/script boundary: a tagged value model, a
// bidirectional marshaling protocol, exception translation, and the
// callback retention that lets host functions be called safely from
// script code.
//
// # Quick Start
//
//	handler := bridge.ScriptExceptionHandlerFunc(func(e *bridge.ScriptException) {
//	    log.Printf("script error: %v", e)
//	})
//
//	ctx, err := bridge.NewContext(handler)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	v := ctx.Evaluate("add.js", "1 + 2")
//	fmt.Println(v) // Int(3)
//
// # Value Model
//
// Every datum crossing the boundary is one of a closed variant set:
//
//	Script value        Boundary Value
//	──────────────────────────────────
//	32-bit integer      Int
//	number              Double
//	boolean             Bool
//	string              *String (owned buffer)
//	array               *Array
//	function            *Function
//	other object        *Object
//	null / undefined    nil
//
// Host-defined Callback values travel the other way: marshaling one into
// script scope synthesizes a script-callable function whose trampoline
// wraps the call arguments, invokes Callback.Call, and unwraps the
// result. The bridge retains the Callback for as long as script code can
// reach the synthesized function and releases it from a collector
// finalizer afterwards.
//
// # Failure Model
//
// Script-level failures never escape the public surface. Each operation
// traps them, translates the pending engine error into a
// ScriptException, reports it to the registered handler, and returns
// nil, false or no-op. Lifecycle violations (a second live Context, use
// after Close, a Callback without an implementation) are host
// programming errors and are raised to the immediate caller instead.
package bridge
