package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in bridge processing the error occurred
type Phase string

const (
	PhaseCompile   Phase = "compile"   // script compilation
	PhaseEval      Phase = "eval"      // script evaluation
	PhaseMarshal   Phase = "marshal"   // value conversion across the boundary
	PhaseCall      Phase = "call"      // script function / callback invocation
	PhaseLifecycle Phase = "lifecycle" // context construction and teardown
	PhaseDebug     Phase = "debug"     // debug protocol plumbing
)

// Kind categorizes the error
type Kind string

const (
	KindScriptError    Kind = "script_error"    // script-level failure, routed to the handler
	KindUnhandledType  Kind = "unhandled_type"  // engine value outside the closed variant set
	KindContextLive    Kind = "context_live"    // second Context while one is live
	KindNotImplemented Kind = "not_implemented" // callback with no Call implementation
	KindInvalidInput   Kind = "invalid_input"
	KindClosed         Kind = "closed" // operation on a torn-down context
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string // script resource name, when known
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Resource != "" {
		b.WriteString(" in ")
		b.WriteString(e.Resource)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Resource sets the script resource name
func (b *Builder) Resource(name string) *Builder {
	b.err.Resource = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ContextLive creates the lifecycle error for a second live Context
func ContextLive() *Error {
	return &Error{
		Phase:  PhaseLifecycle,
		Kind:   KindContextLive,
		Detail: "a Context is already live in this process",
	}
}

// Closed creates an error for an operation on a torn-down context
func Closed(op string) *Error {
	return &Error{
		Phase:  PhaseLifecycle,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s on closed Context", op),
	}
}

// NotImplemented creates an error for a missing host implementation
func NotImplemented(what string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindNotImplemented,
		Detail: fmt.Sprintf("%s not implemented", what),
	}
}

// UnhandledType creates the internal-contract violation for an engine value
// that matches none of the boundary classifications
func UnhandledType(engineType string) *Error {
	return &Error{
		Phase:  PhaseMarshal,
		Kind:   KindUnhandledType,
		Detail: fmt.Sprintf("engine value of type %s has no boundary representation", engineType),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Script creates a script-level error record for a failure in the named resource
func Script(phase Phase, resource string, cause error) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindScriptError,
		Resource: resource,
		Cause:    cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
