//go:build !windows

package engine

import (
	"bufio"
	"encoding/json"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"emperror.dev/errors"
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command   []interface{} `json:"command"`
	RequestID int64         `json:"request_id"`
}

// ipcResponse is a JSON line received from mpv's IPC socket. Lines with a
// non-empty Event are asynchronous events, not replies.
type ipcResponse struct {
	Data      interface{} `json:"data"`
	Error     string      `json:"error"`
	RequestID int64       `json:"request_id"`
	Event     string      `json:"event"`
}

const (
	ipcMaxRetries   = 3
	ipcRetryDelay   = 100 * time.Millisecond
	ipcReadDeadline = 1 * time.Second
	ipcMaxLineBytes = 1 << 20
)

// errPropertyUnavailable is returned by mpv when nothing is loaded
var errPropertyUnavailable = errors.New("property unavailable")

// mpvError is an error reported by mpv itself; it is never retried
type mpvError struct {
	msg string
}

func (e *mpvError) Error() string { return "mpv error: " + e.msg }

func (e *mpvError) Is(target error) bool {
	return target == errPropertyUnavailable && e.msg == "property unavailable"
}

// ipcClient sends commands to one mpv socket
type ipcClient struct {
	socketPath string
	nextID     atomic.Int64
}

// send sends a JSON-IPC command, retrying transient connection errors.
func (c *ipcClient) send(command ...interface{}) (interface{}, error) {
	id := c.nextID.Add(1)

	var lastErr error
	for attempt := 0; attempt < ipcMaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(ipcRetryDelay)
		}

		result, err := doSendCommand(c.socketPath, id, command)
		if err == nil {
			return result, nil
		}
		var me *mpvError
		if errors.As(err, &me) {
			return nil, err
		}
		lastErr = err
	}

	return nil, errors.Wrapf(lastErr, "ipc command %v failed after %d attempts", command[0], ipcMaxRetries)
}

// doSendCommand performs a single IPC command attempt.
func doSendCommand(socketPath string, id int64, command []interface{}) (interface{}, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, errors.Wrap(err, "connect")
	}
	defer conn.Close()

	payload, err := json.Marshal(ipcCommand{Command: command, RequestID: id})
	if err != nil {
		return nil, errors.Wrap(err, "marshal")
	}

	// mpv requires newline-delimited JSON
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return nil, errors.Wrap(err, "write")
	}

	if err := conn.SetReadDeadline(time.Now().Add(ipcReadDeadline)); err != nil {
		return nil, errors.Wrap(err, "set deadline")
	}

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), ipcMaxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var resp ipcResponse
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			return nil, errors.Wrap(err, "unmarshal")
		}
		if resp.Event != "" || resp.RequestID != id {
			continue
		}
		if resp.Error != "" && resp.Error != "success" {
			return nil, &mpvError{msg: resp.Error}
		}
		return resp.Data, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read")
	}
	return nil, errors.New("read: connection closed before reply")
}
