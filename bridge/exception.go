package bridge

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dop251/goja"
)

// ScriptException is the structured record for a script-level failure.
// String fields are empty when the engine supplied nothing; LineNumber is
// -1 when no position could be determined.
type ScriptException struct {
	Name         string
	ErrorMessage string
	FileName     string
	StackTrace   string
	SourceLine   string
	LineNumber   int
}

func (e *ScriptException) Error() string {
	if e.FileName != "" && e.LineNumber >= 0 {
		return fmt.Sprintf("%s: %s (%s:%d)", e.Name, e.ErrorMessage, e.FileName, e.LineNumber)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.ErrorMessage)
}

// ScriptExceptionHandler receives every script-level failure caught at the
// public boundary. Exactly one handler is registered per Context; it is
// invoked synchronously before the failing operation returns.
type ScriptExceptionHandler interface {
	HandleScriptException(*ScriptException)
}

// ScriptExceptionHandlerFunc adapts a function to ScriptExceptionHandler.
type ScriptExceptionHandlerFunc func(*ScriptException)

func (f ScriptExceptionHandlerFunc) HandleScriptException(e *ScriptException) { f(e) }

var (
	// "at funcName (file:line:col)" or "at file:line:col", as printed by
	// the engine's stack renderer.
	stackFrameRe = regexp.MustCompile(`at (?:[^()\n]+ \()?([^():\n]+):(\d+):\d+\)?`)

	// "file: Line line:col ...", as printed by the engine's compiler.
	compileLineRe = regexp.MustCompile(`([^\s:]+): Line (\d+):\d+`)

	errorNameRe = regexp.MustCompile(`^([A-Z][A-Za-z]*Error)\b`)
)

// parsePosition extracts the first resource name and 1-based line number
// from engine-rendered failure text.
func parsePosition(text string) (file string, line int, ok bool) {
	if m := stackFrameRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[2])
		if err == nil {
			return m[1], n, true
		}
	}
	if m := compileLineRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[2])
		if err == nil {
			return m[1], n, true
		}
	}
	return "", -1, false
}

// translate converts an engine failure into a ScriptException. resource is
// the diagnostic origin used when the failure text carries no position.
func (c *Context) translate(err error, resource string) *ScriptException {
	if ex, ok := err.(*goja.Exception); ok {
		return c.translateThrown(ex, resource)
	}

	se := &ScriptException{
		Name:         "Error",
		ErrorMessage: err.Error(),
		FileName:     resource,
		LineNumber:   -1,
	}
	if m := errorNameRe.FindStringSubmatch(se.ErrorMessage); m != nil {
		se.Name = m[1]
	}
	if file, line, ok := parsePosition(se.ErrorMessage); ok {
		se.FileName = file
		se.LineNumber = line
	}
	se.SourceLine = c.sourceLine(se.FileName, se.LineNumber)
	return se
}

func (c *Context) translateThrown(ex *goja.Exception, resource string) *ScriptException {
	se := &ScriptException{
		Name:       "Error",
		FileName:   resource,
		LineNumber: -1,
	}

	v := ex.Value()
	if obj, ok := v.(*goja.Object); ok {
		if s := propString(obj, "name"); s != "" {
			se.Name = s
		}
		se.ErrorMessage = propString(obj, "message")
		se.StackTrace = propString(obj, "stack")
	}
	if se.StackTrace == "" {
		se.StackTrace = ex.String()
	}
	if se.ErrorMessage == "" && v != nil {
		se.ErrorMessage = v.String()
	}
	if file, line, ok := parsePosition(se.StackTrace); ok {
		se.FileName = file
		se.LineNumber = line
	}
	se.SourceLine = c.sourceLine(se.FileName, se.LineNumber)
	return se
}

// propString reads a string-convertible property. A throwing accessor on
// the exception object must not disturb translation, so failures read as
// absent.
func propString(obj *goja.Object, name string) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	v := obj.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}

// sourceLine returns the text of the failing line from sources seen by
// Evaluate, or "" when unavailable.
func (c *Context) sourceLine(file string, line int) string {
	if line < 1 {
		return ""
	}
	lines, ok := c.sources[file]
	if !ok || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// rememberSource records the script text so exception translation can
// report the offending line.
func (c *Context) rememberSource(resource, source string) {
	c.sources[resource] = strings.Split(source, "\n")
}
