package bridge

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/wippyai/js-bridge/errors"
)

// DebugMessageHandler receives debug-protocol messages as JSON text.
type DebugMessageHandler interface {
	HandleDebugMessage(message string)
}

// DebugMessageHandlerFunc adapts a function to DebugMessageHandler.
type DebugMessageHandlerFunc func(string)

func (f DebugMessageHandlerFunc) HandleDebugMessage(m string) { f(m) }

// debugRequest is the command envelope accepted by SendDebugCommand.
type debugRequest struct {
	Seq       int             `json:"seq"`
	Type      string          `json:"type"`
	Command   string          `json:"command"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// debugResponse is the message envelope delivered to the handler.
type debugResponse struct {
	Seq        int    `json:"seq"`
	RequestSeq int    `json:"request_seq"`
	Type       string `json:"type"`
	Command    string `json:"command"`
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Body       any    `json:"body,omitempty"`
}

// SetDebugMessageHandler installs handler for debug-protocol messages.
// At most one handler is retained at a time; the previous one is
// released on replacement. nil uninstalls.
func (c *Context) SetDebugMessageHandler(handler DebugMessageHandler) {
	c.checkLive("SetDebugMessageHandler")
	if c.debugHandler != nil {
		release(c.debugHandler)
	}
	if handler != nil {
		retain(handler)
	}
	c.debugHandler = handler
}

// SendDebugCommand queues a JSON debug command. Delivery of the response
// happens synchronously when ProcessDebugMessages is pumped.
func (c *Context) SendDebugCommand(command string) {
	c.checkLive("SendDebugCommand")
	c.debugQueue = append(c.debugQueue, command)
}

// ProcessDebugMessages drains the queued commands, executing each and
// delivering its response to the installed handler. Without a handler
// the responses are dropped.
func (c *Context) ProcessDebugMessages() {
	c.checkLive("ProcessDebugMessages")
	queue := c.debugQueue
	c.debugQueue = nil

	for _, cmd := range queue {
		resp := c.handleDebugCommand(cmd)
		out, err := json.Marshal(resp)
		if err != nil {
			c.log.Debug("debug response marshal failed", zap.Error(err))
			continue
		}
		if c.debugHandler != nil {
			c.debugHandler.HandleDebugMessage(string(out))
		}
	}
}

func (c *Context) handleDebugCommand(command string) *debugResponse {
	c.debugSeq++
	resp := &debugResponse{
		Seq:  c.debugSeq,
		Type: "response",
	}

	var req debugRequest
	if err := json.Unmarshal([]byte(command), &req); err != nil {
		e := errors.Wrap(errors.PhaseDebug, errors.KindInvalidInput, err, "malformed debug command")
		resp.Message = e.Error()
		return resp
	}
	resp.RequestSeq = req.Seq
	resp.Command = req.Command

	switch req.Command {
	case "version":
		resp.Success = true
		resp.Body = map[string]string{"engine": "goja"}
	case "evaluate":
		var args struct {
			Expression string `json:"expression"`
		}
		if err := json.Unmarshal(req.Arguments, &args); err != nil || args.Expression == "" {
			resp.Message = "evaluate requires an expression argument"
			return resp
		}
		v, err := c.vm.RunScript("debug-command", args.Expression)
		if err != nil {
			resp.Message = err.Error()
			return resp
		}
		resp.Success = true
		if v != nil {
			resp.Body = map[string]string{"text": v.String()}
		}
	default:
		resp.Message = "unknown command " + req.Command
	}
	return resp
}
