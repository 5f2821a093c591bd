package bridge

import (
	"math"
	"reflect"
	"runtime"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/wippyai/js-bridge/errors"
)

// wrap converts an engine value into the closed boundary representation.
// Classification order is fixed (integer, double, boolean, string, array,
// function, plain object) since an engine value may satisfy several
// predicates; null and undefined map to nil. A value outside the closed
// set is an internal-contract violation, not a script-level error.
func (c *Context) wrap(v goja.Value) (Value, error) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, nil
	}

	if obj, ok := v.(*goja.Object); ok {
		switch obj.ClassName() {
		case "Number":
			return Double(obj.ToFloat()), nil
		case "Boolean":
			return Bool(obj.ToBoolean()), nil
		case "String":
			return NewString(obj.String()), nil
		case "Array":
			return &Array{ctx: c, obj: obj}, nil
		}
		if call, ok := goja.AssertFunction(obj); ok {
			return &Function{ctx: c, obj: obj, call: call}, nil
		}
		return &Object{ctx: c, obj: obj}, nil
	}

	if et := v.ExportType(); et != nil {
		switch et.Kind() {
		case reflect.Int64:
			n := v.ToInteger()
			if n >= math.MinInt32 && n <= math.MaxInt32 {
				return Int(n), nil
			}
			return Double(v.ToFloat()), nil
		case reflect.Float64:
			return Double(v.ToFloat()), nil
		case reflect.Bool:
			return Bool(v.ToBoolean()), nil
		case reflect.String:
			return NewString(v.String()), nil
		}
		return nil, errors.UnhandledType(et.String())
	}

	return nil, errors.UnhandledType("<nil export type>")
}

// mustWrap is wrap for paths whose public contract has no error channel.
// The internal-contract violation is fatal there.
func (c *Context) mustWrap(v goja.Value) Value {
	out, err := c.wrap(v)
	if err != nil {
		panic(err)
	}
	return out
}

// unwrap performs the inverse conversion. Scalars copy by value, handles
// resolve their held engine value, and a Callback is synthesized into a
// fresh script-callable function.
func (c *Context) unwrap(v Value) goja.Value {
	if v == nil {
		return goja.Null()
	}
	switch t := v.(type) {
	case Int:
		return c.vm.ToValue(int64(t))
	case Double:
		return c.vm.ToValue(float64(t))
	case Bool:
		return c.vm.ToValue(bool(t))
	case *String:
		return c.vm.ToValue(t.Value())
	case *Object:
		return t.obj
	case *Array:
		return t.obj
	case *Function:
		return t.obj
	case Callback:
		return c.newCallbackFunction(t)
	}
	return goja.Null()
}

// unwrapSlice maps a host-ordered argument sequence to an equal-length,
// order-preserving engine value sequence.
func (c *Context) unwrapSlice(values []Value) []goja.Value {
	out := make([]goja.Value, len(values))
	for i, v := range values {
		out[i] = c.unwrap(v)
	}
	return out
}

// newCallbackFunction boxes cb behind a native trampoline. The retain
// taken here is dropped by the box finalizer once the collector reports
// the synthesized function unreachable; that is the only point where the
// engine's collection and host reference counting meet.
func (c *Context) newCallbackFunction(cb Callback) goja.Value {
	cb.Retain()
	box := &callbackBox{cb: cb}

	fn := c.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		args := make([]Value, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = c.mustWrap(a)
		}

		result, err := box.cb.Call(args)
		if err != nil {
			// Policy for a failing callback: surface it to script code
			// as a catchable exception rather than aborting the host.
			panic(c.vm.NewGoError(err))
		}
		return c.unwrap(result)
	})

	log := c.log
	runtime.SetFinalizer(box, func(b *callbackBox) {
		log.Debug("callback released by collector", zap.String("type", "callback"))
		b.cb.Release()
	})
	return fn
}
