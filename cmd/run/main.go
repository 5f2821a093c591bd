package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/js-bridge/bridge"
)

func main() {
	var (
		scriptFile  = flag.String("file", "", "Path to a JavaScript file to evaluate")
		expr        = flag.String("expr", "", "Expression to evaluate")
		name        = flag.String("name", "", "Resource name used in diagnostics (defaults to the file name)")
		interactive = flag.Bool("i", false, "Interactive REPL")
		verbose     = flag.Bool("v", false, "Verbose bridge logging")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
		bridge.SetLogger(log)
	}

	// With no input and a terminal attached, drop into the REPL.
	if *scriptFile == "" && *expr == "" && !*interactive {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			*interactive = true
		} else {
			fmt.Fprintln(os.Stderr, "Usage: run -file <script.js> [-name origin]")
			fmt.Fprintln(os.Stderr, "       run -expr <expression>")
			fmt.Fprintln(os.Stderr, "       run -i  (interactive REPL)")
			os.Exit(1)
		}
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*scriptFile, *expr, *name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// stderrHandler prints reported script exceptions with their source
// position and offending line.
type stderrHandler struct {
	reported bool
}

func (h *stderrHandler) HandleScriptException(e *bridge.ScriptException) {
	h.reported = true
	fmt.Fprintf(os.Stderr, "%s\n", e.Error())
	if e.SourceLine != "" {
		fmt.Fprintf(os.Stderr, "  %s\n", e.SourceLine)
	}
	if e.StackTrace != "" {
		fmt.Fprintln(os.Stderr, e.StackTrace)
	}
}

func run(scriptFile, expr, name string) error {
	source := expr
	resource := name
	if resource == "" {
		resource = "<expr>"
	}

	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		source = string(data)
		if name == "" {
			resource = scriptFile
		}
	}

	handler := &stderrHandler{}
	ctx, err := bridge.NewContext(handler)
	if err != nil {
		return err
	}
	defer ctx.Close()

	result := ctx.Evaluate(resource, source)
	if handler.reported {
		os.Exit(1)
	}

	fmt.Println(formatValue(result))
	return nil
}

// formatValue renders a boundary value with its variant tag.
func formatValue(v bridge.Value) string {
	if v == nil {
		return "null"
	}
	switch t := v.(type) {
	case bridge.Int:
		return fmt.Sprintf("int: %d", int32(t))
	case bridge.Double:
		return fmt.Sprintf("double: %g", float64(t))
	case bridge.Bool:
		return fmt.Sprintf("bool: %t", bool(t))
	case *bridge.String:
		return fmt.Sprintf("string: %q", t.Value())
	case *bridge.Array:
		return fmt.Sprintf("array: length %d", t.Length())
	case *bridge.Function:
		return "function"
	case *bridge.Object:
		keys := t.Keys()
		if len(keys) == 0 {
			return "object: {}"
		}
		return "object: {" + strings.Join(keys, ", ") + "}"
	}
	return fmt.Sprintf("%s", v.ValueType())
}
