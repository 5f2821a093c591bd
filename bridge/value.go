package bridge

// Type identifies the variant held by a boundary Value.
type Type int

const (
	TypeInt Type = iota
	TypeDouble
	TypeBool
	TypeString
	TypeObject
	TypeArray
	TypeFunction
	TypeCallback
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeDouble:
		return "double"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeFunction:
		return "function"
	case TypeCallback:
		return "callback"
	}
	return "unknown"
}

// Value is a datum crossing the host/script boundary. The variant set is
// closed: Int, Double, Bool, *String, *Object, *Array, *Function and
// Callback are the only implementations. The absent value (JavaScript
// null or undefined) crosses the boundary as a nil Value, not a variant.
type Value interface {
	ValueType() Type
}

// Int is a 32-bit signed script integer.
type Int int32

func (Int) ValueType() Type { return TypeInt }

// Double is a 64-bit script number.
type Double float64

func (Double) ValueType() Type { return TypeDouble }

// Bool is a script boolean.
type Bool bool

func (Bool) ValueType() Type { return TypeBool }

// String owns a host-allocated byte buffer. The buffer is NUL-terminated
// at length+1 so it can be handed to width-sensitive consumers unchanged.
type String struct {
	buf []byte
}

// NewString copies s into a freshly owned buffer.
func NewString(s string) *String {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &String{buf: buf}
}

func (*String) ValueType() Type { return TypeString }

// Len returns the byte length, excluding the terminator.
func (s *String) Len() int { return len(s.buf) - 1 }

// Value returns the string contents.
func (s *String) Value() string { return string(s.buf[:len(s.buf)-1]) }

// Bytes returns the owned buffer without the terminator. Mutations are
// visible to every reader of this String but never to its copies.
func (s *String) Bytes() []byte { return s.buf[:len(s.buf)-1] }

// Copy duplicates the buffer. The copy is independently owned: mutating
// or dropping the source does not affect it.
func (s *String) Copy() *String {
	buf := make([]byte, len(s.buf))
	copy(buf, s.buf)
	return &String{buf: buf}
}
