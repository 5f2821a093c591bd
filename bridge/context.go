package bridge

import (
	"runtime"
	"sync/atomic"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	jsbridge "github.com/wippyai/js-bridge"
	"github.com/wippyai/js-bridge/errors"
)

// The engine is process-wide state: at most one Context may be live.
var contextLive atomic.Bool

// instanceOfSource is the fixed bootstrap expression whose result backs
// Object.InstanceOf.
const instanceOfSource = "(function(x, y) { return (x instanceof y); })"

// Config holds configuration for Context creation.
type Config struct {
	// MaxCallStackSize bounds script recursion depth. 0 means the engine
	// default (unbounded until Go stack exhaustion).
	MaxCallStackSize int

	// Logger receives bridge diagnostics. nil means no-op.
	Logger *zap.Logger
}

// Context owns the single running engine instance and its global
// execution scope. All operations are single-threaded: the calling
// goroutine must hold exclusive access for the duration of each call.
type Context struct {
	vm         *goja.Runtime
	handler    ScriptExceptionHandler
	instanceOf *Function
	sources    map[string][]string
	log        *zap.Logger
	closed     bool

	debugHandler DebugMessageHandler
	debugQueue   []string
	debugSeq     int
}

// NewContext constructs the Context with default configuration. handler
// receives every script-level failure and must be non-nil.
func NewContext(handler ScriptExceptionHandler) (*Context, error) {
	return NewContextWithConfig(handler, nil)
}

// NewContextWithConfig constructs the Context. It fails with a lifecycle
// error if a Context is already live in this process.
func NewContextWithConfig(handler ScriptExceptionHandler, cfg *Config) (*Context, error) {
	if handler == nil {
		return nil, errors.InvalidInput(errors.PhaseLifecycle, "nil script exception handler")
	}
	if !contextLive.CompareAndSwap(false, true) {
		return nil, errors.ContextLive()
	}

	vm := goja.New()
	log := Logger()
	if cfg != nil {
		if cfg.MaxCallStackSize > 0 {
			vm.SetMaxCallStackSize(cfg.MaxCallStackSize)
		}
		if cfg.Logger != nil {
			log = cfg.Logger
		}
	}

	c := &Context{
		vm:      vm,
		handler: handler,
		sources: make(map[string][]string),
		log:     log,
	}
	retain(handler)

	v, err := vm.RunScript("instanceof", instanceOfSource)
	if err != nil {
		release(handler)
		contextLive.Store(false)
		return nil, errors.Script(errors.PhaseLifecycle, "instanceof", err)
	}
	helper, err := c.wrap(v)
	if err != nil {
		release(handler)
		contextLive.Store(false)
		return nil, err
	}
	fn, ok := helper.(*Function)
	if !ok {
		release(handler)
		contextLive.Store(false)
		return nil, errors.InvalidInput(errors.PhaseLifecycle, "instanceof bootstrap did not yield a function")
	}
	c.instanceOf = fn

	c.log.Debug("context constructed")
	return c, nil
}

// Close tears the Context down in reverse construction order: the
// instanceof helper, the exception handler, the debug handler, then the
// engine instance. A new Context may be constructed afterwards.
func (c *Context) Close() error {
	if c.closed {
		return errors.Closed("Close")
	}
	c.closed = true

	c.instanceOf = nil
	release(c.handler)
	c.handler = nil
	if c.debugHandler != nil {
		release(c.debugHandler)
		c.debugHandler = nil
	}
	c.debugQueue = nil

	c.vm.Interrupt("context closed")
	c.vm = nil

	contextLive.Store(false)
	c.log.Debug("context closed")
	return nil
}

// Evaluate compiles and runs source under resourceName as its diagnostic
// origin. On failure the translated exception is reported to the handler
// and the result is nil. Calling Evaluate on a closed Context is host
// misuse and panics with a lifecycle error.
func (c *Context) Evaluate(resourceName, source string) Value {
	c.checkLive("Evaluate")
	c.rememberSource(resourceName, source)

	v, err := c.vm.RunScript(resourceName, source)
	if err != nil {
		c.reportError(err, resourceName)
		return nil
	}
	return c.mustWrap(v)
}

// GlobalObject returns a fresh handle rooted at the execution scope's
// global object.
func (c *Context) GlobalObject() *Object {
	c.checkLive("GlobalObject")
	return &Object{ctx: c, obj: c.vm.GlobalObject()}
}

// IdleNotificationDeadline requests garbage collection work bounded by
// the deadline and reports whether idle work remains. The Go collector
// owns the engine heap, so the hint maps to a collection cycle; deadline
// only bounds the request, not script execution.
func (c *Context) IdleNotificationDeadline(deadlineSeconds float64) bool {
	c.checkLive("IdleNotificationDeadline")
	c.log.Debug("idle notification", zap.Float64("deadline_s", deadlineSeconds))
	runtime.GC()
	return false
}

func (c *Context) checkLive(op string) {
	if c.closed {
		panic(errors.Closed(op))
	}
}

// report forwards a translated exception to the registered handler.
func (c *Context) report(e *ScriptException) {
	c.log.Debug("script exception",
		zap.String("name", e.Name),
		zap.String("file", e.FileName),
		zap.Int("line", e.LineNumber))
	if c.handler != nil {
		c.handler.HandleScriptException(e)
	}
}

func (c *Context) reportError(err error, resource string) {
	c.report(c.translate(err, resource))
}

// trap runs fn and converts an engine-level panic into a reported
// ScriptException. Every public operation below Context goes through it;
// panics that are not engine failures keep propagating. op names the
// public entry point for the lifecycle check.
func (c *Context) trap(op string, fn func()) {
	c.checkLive(op)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ex, ok := r.(*goja.Exception); ok {
			c.report(c.translate(ex, ""))
			return
		}
		panic(r)
	}()
	fn()
}

func retain(h any) {
	if r, ok := h.(jsbridge.Retainable); ok {
		r.Retain()
	}
}

func release(h any) {
	if r, ok := h.(jsbridge.Retainable); ok {
		r.Release()
	}
}
