package bridge

import (
	"testing"
)

func evalArray(t *testing.T, ctx *Context, source string) *Array {
	t.Helper()
	v := ctx.Evaluate("t", source)
	a, ok := v.(*Array)
	if !ok {
		t.Fatalf("Evaluate(%q) = %#v, want *Array", source, v)
	}
	return a
}

func TestArray_GetSetLength(t *testing.T) {
	ctx, rec := newTestContext(t)
	a := evalArray(t, ctx, "[10, 20, 30]")

	if got := a.Length(); got != 3 {
		t.Fatalf("Length() = %d, want 3", got)
	}
	if got := a.Get(0); got != Int(10) {
		t.Errorf("Get(0) = %#v, want Int(10)", got)
	}
	if got := a.Get(2); got != Int(30) {
		t.Errorf("Get(2) = %#v, want Int(30)", got)
	}

	// Out of range reads are not errors: the engine yields undefined.
	if got := a.Get(5); got != nil {
		t.Errorf("Get(5) = %#v, want nil", got)
	}
	if len(rec.exceptions) != 0 {
		t.Fatalf("unexpected exceptions: %v", rec.exceptions)
	}

	a.Set(1, NewString("mid"))
	s, ok := a.Get(1).(*String)
	if !ok || s.Value() != "mid" {
		t.Errorf("Get(1) after Set = %#v, want *String(mid)", a.Get(1))
	}

	// Writing past the end grows the array.
	a.Set(4, Int(50))
	if got := a.Length(); got != 5 {
		t.Errorf("Length() after sparse write = %d, want 5", got)
	}
	if got := a.Get(3); got != nil {
		t.Errorf("hole = %#v, want nil", got)
	}
}

func TestArray_Equals(t *testing.T) {
	ctx, _ := newTestContext(t)

	ctx.Evaluate("t", "arr = [1]")
	a := evalArray(t, ctx, "arr")
	b := evalArray(t, ctx, "arr")
	other := evalArray(t, ctx, "[1]")

	if !a.Equals(b) {
		t.Errorf("handles on one script array not equal")
	}
	if a.Equals(other) {
		t.Errorf("distinct arrays reported equal")
	}
	if a.Equals(nil) {
		t.Errorf("Equals(nil) = true")
	}
}

func TestFunction_Call(t *testing.T) {
	ctx, rec := newTestContext(t)

	ctx.Evaluate("t", "base = 40")
	v := ctx.Evaluate("t", "(function(n) { return this.base + n; })")
	fn, ok := v.(*Function)
	if !ok {
		t.Fatalf("Evaluate = %#v, want *Function", v)
	}

	// Call binds this to the global object.
	if got := fn.Call([]Value{Int(2)}); got != Int(42) {
		t.Errorf("Call = %#v, want Int(42)", got)
	}
	if len(rec.exceptions) != 0 {
		t.Errorf("unexpected exceptions: %v", rec.exceptions)
	}
}

func TestFunction_CallThrow(t *testing.T) {
	ctx, rec := newTestContext(t)

	v := ctx.Evaluate("t", "(function() { throw new TypeError('bad call'); })")
	fn := v.(*Function)

	if got := fn.Call(nil); got != nil {
		t.Errorf("Call = %#v, want nil", got)
	}
	if len(rec.exceptions) != 1 {
		t.Fatalf("reported %d exceptions, want 1", len(rec.exceptions))
	}
	if rec.exceptions[0].Name != "TypeError" {
		t.Errorf("Name = %q, want TypeError", rec.exceptions[0].Name)
	}
}

func TestFunction_Equals(t *testing.T) {
	ctx, _ := newTestContext(t)

	ctx.Evaluate("t", "f = function() {}")
	a := ctx.Evaluate("t", "f").(*Function)
	b := ctx.Evaluate("t", "f").(*Function)
	other := ctx.Evaluate("t", "(function() {})").(*Function)

	if !a.Equals(b) {
		t.Errorf("handles on one script function not equal")
	}
	if a.Equals(other) {
		t.Errorf("distinct functions reported equal")
	}
}

func TestFunction_ArgumentOrder(t *testing.T) {
	ctx, _ := newTestContext(t)

	v := ctx.Evaluate("t", "(function(a, b, c) { return '' + a + '|' + b + '|' + c; })")
	fn := v.(*Function)

	got := fn.Call([]Value{Int(1), NewString("two"), Bool(true)})
	s, ok := got.(*String)
	if !ok || s.Value() != "1|two|true" {
		t.Errorf("Call = %#v, want 1|two|true", got)
	}
}
