package bridge

import (
	"strconv"

	"github.com/dop251/goja"
)

// Array is a typed view over a script-heap array. Index operations
// coerce to unsigned 32-bit; bounds are whatever the engine enforces, so
// an out-of-range Get yields nil rather than an error.
type Array struct {
	ctx *Context
	obj *goja.Object
}

func (*Array) ValueType() Type { return TypeArray }

// Get returns the element at index, or nil for a hole or out-of-range
// access.
func (a *Array) Get(index int) Value {
	var out Value
	a.ctx.trap("Array.Get", func() {
		out = a.ctx.mustWrap(a.obj.Get(indexKey(index)))
	})
	return out
}

// Set assigns the element at index, growing the array as the engine
// sees fit.
func (a *Array) Set(index int, value Value) {
	a.ctx.trap("Array.Set", func() {
		if err := a.obj.Set(indexKey(index), a.ctx.unwrap(value)); err != nil {
			a.ctx.reportError(err, "")
		}
	})
}

// Length returns the current element count.
func (a *Array) Length() int {
	var out int
	a.ctx.trap("Array.Length", func() {
		out = int(a.obj.Get("length").ToInteger())
	})
	return out
}

// Equals applies script-level equality.
func (a *Array) Equals(other *Array) bool {
	if other == nil {
		return false
	}
	var out bool
	a.ctx.trap("Array.Equals", func() {
		out = a.obj.Equals(other.obj)
	})
	return out
}

func indexKey(index int) string {
	return strconv.FormatUint(uint64(uint32(index)), 10)
}
