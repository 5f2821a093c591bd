package bridge

import (
	"testing"
)

func TestRoundTrip_Scalars(t *testing.T) {
	ctx, rec := newTestContext(t)
	g := ctx.GlobalObject()

	tests := []struct {
		name string
		v    Value
	}{
		{"int", Int(42)},
		{"negative int", Int(-1)},
		{"double", Double(2.5)},
		{"bool true", Bool(true)},
		{"bool false", Bool(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Set("x", tt.v)
			if got := ctx.Evaluate("t", "x"); got != tt.v {
				t.Errorf("round trip = %#v, want %#v", got, tt.v)
			}
		})
	}

	if len(rec.exceptions) != 0 {
		t.Errorf("unexpected exceptions: %v", rec.exceptions)
	}
}

func TestRoundTrip_String(t *testing.T) {
	ctx, _ := newTestContext(t)
	g := ctx.GlobalObject()

	g.Set("x", NewString("héllo wörld"))
	got, ok := ctx.Evaluate("t", "x").(*String)
	if !ok || got.Value() != "héllo wörld" {
		t.Fatalf("round trip = %#v, want the original text", ctx.Evaluate("t", "x"))
	}

	// Script-side verification that the value arrived as a string.
	if v := ctx.Evaluate("t", "typeof x"); v.(*String).Value() != "string" {
		t.Errorf("typeof = %#v, want string", v)
	}
}

func TestRoundTrip_NilIsNull(t *testing.T) {
	ctx, _ := newTestContext(t)
	g := ctx.GlobalObject()

	g.Set("x", nil)
	if got := ctx.Evaluate("t", "x === null"); got != Bool(true) {
		t.Errorf("x === null = %#v, want Bool(true)", got)
	}
}

func TestRoundTrip_Handles(t *testing.T) {
	ctx, _ := newTestContext(t)
	g := ctx.GlobalObject()

	obj := ctx.Evaluate("t", "({tag: 7})").(*Object)
	g.Set("back", obj)
	if got := ctx.Evaluate("t", "back.tag"); got != Int(7) {
		t.Errorf("handle round trip lost identity: %#v", got)
	}

	arr := ctx.Evaluate("t", "[1,2]").(*Array)
	g.Set("arr2", arr)
	if got := ctx.Evaluate("t", "arr2.length"); got != Int(2) {
		t.Errorf("array handle round trip: %#v", got)
	}

	fn := ctx.Evaluate("t", "(function() { return 11; })").(*Function)
	g.Set("fn2", fn)
	if got := ctx.Evaluate("t", "fn2()"); got != Int(11) {
		t.Errorf("function handle round trip: %#v", got)
	}
}

func TestWrap_Classification(t *testing.T) {
	ctx, _ := newTestContext(t)

	tests := []struct {
		name   string
		source string
		want   Type
	}{
		{"integral number is int", "3", TypeInt},
		{"fractional number is double", "3.25", TypeDouble},
		{"large integer is double", "4294967296", TypeDouble},
		{"number object is double", "new Number(3)", TypeDouble},
		{"boolean object is bool", "new Boolean(false)", TypeBool},
		{"string object is string", "new String('s')", TypeString},
		{"array before object", "[1]", TypeArray},
		{"function before object", "(function() {})", TypeFunction},
		{"plain object", "({})", TypeObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ctx.Evaluate("t", tt.source)
			if v == nil {
				t.Fatalf("Evaluate(%q) = nil", tt.source)
			}
			if got := v.ValueType(); got != tt.want {
				t.Errorf("type of %q = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestWrap_WrapperObjectValues(t *testing.T) {
	ctx, _ := newTestContext(t)

	if got := ctx.Evaluate("t", "new Number(2.5)"); got != Double(2.5) {
		t.Errorf("Number object = %#v, want Double(2.5)", got)
	}
	if got := ctx.Evaluate("t", "new Boolean(true)"); got != Bool(true) {
		t.Errorf("Boolean object = %#v, want Bool(true)", got)
	}
	s, ok := ctx.Evaluate("t", "new String('boxed')").(*String)
	if !ok || s.Value() != "boxed" {
		t.Errorf("String object = %#v, want *String(boxed)", s)
	}
}
