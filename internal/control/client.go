package control

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"pulsodoro/internal/core/timekeeper"
)

// Client calls a running Pulsodoro instance over its control socket.
type Client struct {
	conn    net.Conn
	mu      sync.Mutex
	nextID  int
	scanner *bufio.Scanner
	encoder *json.Encoder
	timeout time.Duration
}

// Dial connects to the control server at socketPath.
func Dial(socketPath string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	conn, err := net.DialTimeout("unix", socketPath, timeout)
	if err != nil {
		return nil, fmt.Errorf("control: dial: %w", err)
	}
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxRequestSize)
	return &Client{
		conn:    conn,
		scanner: scanner,
		encoder: json.NewEncoder(conn),
		timeout: timeout,
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Call performs a JSON-RPC call and unmarshals the result into dest.
func (c *Client) Call(method string, params interface{}, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	req := Request{JSONRPC: "2.0", ID: c.nextID, Method: method}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("control: marshal params: %w", err)
		}
		req.Params = data
	}

	_ = c.conn.SetDeadline(time.Now().Add(c.timeout))
	defer c.conn.SetDeadline(time.Time{})

	if err := c.encoder.Encode(req); err != nil {
		return fmt.Errorf("control: send: %w", err)
	}

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return fmt.Errorf("control: read: %w", err)
		}
		return fmt.Errorf("control: connection closed")
	}

	var resp Response
	if err := json.Unmarshal(c.scanner.Bytes(), &resp); err != nil {
		return fmt.Errorf("control: unmarshal response: %w", err)
	}
	if resp.Error != nil {
		return resp.Error
	}
	if dest != nil {
		if err := json.Unmarshal(resp.Result, dest); err != nil {
			return fmt.Errorf("control: unmarshal result: %w", err)
		}
	}
	return nil
}

func (c *Client) statusCall(method string, params interface{}) (timekeeper.Status, error) {
	var status timekeeper.Status
	err := c.Call(method, params, &status)
	return status, err
}

func (c *Client) Start() (timekeeper.Status, error)  { return c.statusCall("Start", nil) }
func (c *Client) Pause() (timekeeper.Status, error)  { return c.statusCall("Pause", nil) }
func (c *Client) Reset() (timekeeper.Status, error)  { return c.statusCall("Reset", nil) }
func (c *Client) Skip() (timekeeper.Status, error)   { return c.statusCall("Skip", nil) }
func (c *Client) Status() (timekeeper.Status, error) { return c.statusCall("Status", nil) }

// SetDurations updates interval lengths in minutes.
func (c *Client) SetDurations(focus, shortBreak, longBreak int) (timekeeper.Status, error) {
	return c.statusCall("SetDurations", DurationParams{Focus: focus, ShortBreak: shortBreak, LongBreak: longBreak})
}
