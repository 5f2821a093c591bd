package bridge

import (
	"sync/atomic"

	"github.com/wippyai/js-bridge/errors"
)

// Callback is a host-defined invocable that scripts can call once it has
// been marshaled into script scope. The bridge retains a callback when it
// synthesizes the script-side function and releases it when the engine
// collector reports that function unreachable, so Retain/Release must be
// safe against that release firing on an arbitrary later collection pass.
type Callback interface {
	Value
	Call(args []Value) (Value, error)
	Retain()
	Release()
}

// BaseCallback provides the reference-counting half of Callback with an
// atomic counter. Its Call reports host misuse; embedders override it.
type BaseCallback struct {
	refs atomic.Int32
}

func (*BaseCallback) ValueType() Type { return TypeCallback }

// Call is the default implementation. Invoking a Callback that provides
// no implementation is a programming error raised to the immediate
// caller, not a script-level failure.
func (*BaseCallback) Call([]Value) (Value, error) {
	return nil, errors.NotImplemented("Callback.Call")
}

func (b *BaseCallback) Retain() { b.refs.Add(1) }

func (b *BaseCallback) Release() { b.refs.Add(-1) }

// Refs returns the current reference count.
func (b *BaseCallback) Refs() int32 { return b.refs.Load() }

// CallbackFunc adapts a plain function to Callback.
type CallbackFunc struct {
	BaseCallback
	Fn func(args []Value) (Value, error)
}

// NewCallbackFunc wraps fn as a Callback.
func NewCallbackFunc(fn func(args []Value) (Value, error)) *CallbackFunc {
	return &CallbackFunc{Fn: fn}
}

func (f *CallbackFunc) Call(args []Value) (Value, error) {
	if f.Fn == nil {
		return nil, errors.NotImplemented("Callback.Call")
	}
	return f.Fn(args)
}

// callbackBox pins a Callback while the synthesized script function can
// still reach it. The trampoline closure is the only reference holder, so
// the box becomes collectible exactly when script code can no longer call
// the callback; its finalizer then drops the bridge's retain count.
type callbackBox struct {
	cb Callback
}
