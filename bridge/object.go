package bridge

import (
	"github.com/dop251/goja"
)

// Object is a typed view over a script-heap object. The handle keeps the
// underlying value rooted for as long as it is reachable from host code;
// identity is defined by the engine, not by handle address.
type Object struct {
	ctx *Context
	obj *goja.Object
}

func (*Object) ValueType() Type { return TypeObject }

// Get returns the property named key, nil for undefined, or nil with a
// reported exception when a script-level accessor fails.
func (o *Object) Get(key string) Value {
	var out Value
	o.ctx.trap("Object.Get", func() {
		out = o.ctx.mustWrap(o.obj.Get(key))
	})
	return out
}

// Set assigns the property named key. Failures are reported and leave
// the object unchanged.
func (o *Object) Set(key string, value Value) {
	o.ctx.trap("Object.Set", func() {
		if err := o.obj.Set(key, o.ctx.unwrap(value)); err != nil {
			o.ctx.reportError(err, "")
		}
	})
}

// Keys returns the enumerable own property names in the order reported
// by the engine.
func (o *Object) Keys() []string {
	var out []string
	o.ctx.trap("Object.Keys", func() {
		out = o.obj.Keys()
	})
	return out
}

// ContainsKey reports whether key resolves on the object or its
// prototype chain, mirroring the script-level "in" operator.
func (o *Object) ContainsKey(key string) bool {
	var out bool
	o.ctx.trap("Object.ContainsKey", func() {
		out = o.obj.Get(key) != nil
	})
	return out
}

// Equals applies script-level equality, not handle identity.
func (o *Object) Equals(other *Object) bool {
	if other == nil {
		return false
	}
	var out bool
	o.ctx.trap("Object.Equals", func() {
		out = o.obj.Equals(other.obj)
	})
	return out
}

// CallMethod looks up name as a function-valued property and invokes it
// with this bound to the object.
func (o *Object) CallMethod(name string, args []Value) Value {
	var out Value
	o.ctx.trap("Object.CallMethod", func() {
		fn, ok := goja.AssertFunction(o.obj.Get(name))
		if !ok {
			o.ctx.report(&ScriptException{
				Name:         "TypeError",
				ErrorMessage: name + " is not a function",
				LineNumber:   -1,
			})
			return
		}
		res, err := fn(o.obj, o.ctx.unwrapSlice(args)...)
		if err != nil {
			o.ctx.reportError(err, "")
			return
		}
		out = o.ctx.mustWrap(res)
	})
	return out
}

// InstanceOf delegates to the cached instanceof helper with [this, type]
// as its arguments.
func (o *Object) InstanceOf(typ *Function) bool {
	if typ == nil || o.ctx.instanceOf == nil {
		return false
	}
	res := o.ctx.instanceOf.Call([]Value{o, typ})
	b, ok := res.(Bool)
	return ok && bool(b)
}
