package bridge

import (
	"github.com/dop251/goja"
)

// Function is a typed view over a script-heap function.
type Function struct {
	ctx  *Context
	obj  *goja.Object
	call goja.Callable
}

func (*Function) ValueType() Type { return TypeFunction }

// Call invokes the function with this bound to the global object.
func (f *Function) Call(args []Value) Value {
	var out Value
	f.ctx.trap("Function.Call", func() {
		res, err := f.call(f.ctx.vm.GlobalObject(), f.ctx.unwrapSlice(args)...)
		if err != nil {
			f.ctx.reportError(err, "")
			return
		}
		out = f.ctx.mustWrap(res)
	})
	return out
}

// Construct invokes the function as a constructor and returns the new
// instance.
func (f *Function) Construct(args []Value) *Object {
	var out *Object
	f.ctx.trap("Function.Construct", func() {
		ctor, ok := goja.AssertConstructor(f.obj)
		if !ok {
			f.ctx.report(&ScriptException{
				Name:         "TypeError",
				ErrorMessage: "value is not a constructor",
				LineNumber:   -1,
			})
			return
		}
		inst, err := ctor(nil, f.ctx.unwrapSlice(args)...)
		if err != nil {
			f.ctx.reportError(err, "")
			return
		}
		out = &Object{ctx: f.ctx, obj: inst}
	})
	return out
}

// Equals applies script-level equality.
func (f *Function) Equals(other *Function) bool {
	if other == nil {
		return false
	}
	var out bool
	f.ctx.trap("Function.Equals", func() {
		out = f.obj.Equals(other.obj)
	})
	return out
}
