package control

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pulsodoro/internal/core/timekeeper"
)

// JSON-RPC 2.0 method reference
//
//   Method         Params                                   Result
//   ────────────   ──────────────────────────────────────   ─────────────────
//   Start          (none)                                   timekeeper.Status
//   Pause          (none)                                   timekeeper.Status
//   Reset          (none)                                   timekeeper.Status
//   Skip           (none)                                   timekeeper.Status
//   Status         (none)                                   timekeeper.Status
//   SetDurations   {Focus: int, ShortBreak: int, LongBreak: int} (minutes)   timekeeper.Status
//
// Error codes:
//   -32700  Parse error
//   -32601  Method not found
//   -32602  Invalid params
//   -32603  Internal error
//   -32000  Application error

const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
	codeAppError       = -32000
)

// Commander is the command surface exposed over the socket.
type Commander interface {
	Start() timekeeper.Status
	Pause() timekeeper.Status
	Reset() timekeeper.Status
	Skip() timekeeper.Status
	Status() timekeeper.Status
	SetDurations(focus, shortBreak, longBreak int) (timekeeper.Status, error)
}

// Request is a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC 2.0 error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string { return e.Message }

// DurationParams carries SetDurations arguments in minutes.
type DurationParams struct {
	Focus      int
	ShortBreak int
	LongBreak  int
}

// DefaultSocketPath prefers $XDG_RUNTIME_DIR/pulsodoro/pulsodoro.sock and
// falls back to ~/.local/state/pulsodoro/pulsodoro.sock.
func DefaultSocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "pulsodoro", "pulsodoro.sock")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "pulsodoro.sock")
	}
	return filepath.Join(home, ".local", "state", "pulsodoro", "pulsodoro.sock")
}
