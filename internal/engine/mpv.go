//go:build !windows

package engine

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/rs/zerolog"

	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/surface"
)

const (
	DefaultMPVBinary  = "mpv"
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

func init() {
	register(NameMPV, func(opts Options) (Engine, error) {
		return NewMPV(opts.MPVBinary, opts.Logger), nil
	}, false)
}

// MPV implements Engine by driving an mpv process over JSON-IPC.
type MPV struct {
	binary   string
	ipc      *ipcClient
	cmd      *exec.Cmd
	exited   chan struct{} // closed when the mpv process exits
	attached bool          // connected to an mpv we did not start
	wid      surface.Handle
	path     string // current media target
	unloaded bool   // Stop dropped the file; Play reloads it
	volume   int
	log      *zerolog.Logger

	launch func() error // starts the process and connects ipc
}

// NewMPV creates an mpv engine; the process starts on the first Open.
func NewMPV(binary string, logger *zerolog.Logger) *MPV {
	if binary == "" {
		binary = DefaultMPVBinary
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	m := &MPV{
		binary: binary,
		exited: make(chan struct{}),
		volume: model.DefaultVolume,
		log:    logger,
	}
	m.launch = m.start
	return m
}

// Socket returns the IPC socket path, "" before the process started.
func (m *MPV) Socket() string {
	if m.ipc == nil {
		return ""
	}
	return m.ipc.socketPath
}

// running reports whether there is an mpv to talk to.
func (m *MPV) running() bool {
	if m.ipc == nil {
		return false
	}
	if m.attached {
		return true
	}
	if m.cmd == nil {
		return false
	}
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

// launchArgs builds the mpv command line.
func (m *MPV) launchArgs(socketPath string) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", socketPath),
		"--idle=yes",
		"--force-window=yes",
		"--pause=yes",
		fmt.Sprintf("--volume=%d", m.volume),
	}
	if m.wid.IsValid() {
		args = append(args, fmt.Sprintf("--wid=%d", m.wid.Value))
	}
	return args
}

// start launches the mpv process and waits for its socket.
func (m *MPV) start() error {
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return errors.Wrap(err, "generate socket name")
	}
	socketPath := filepath.Join(os.TempDir(), fmt.Sprintf("video-player-%x.sock", randomBytes))

	m.cmd = exec.Command(m.binary, m.launchArgs(socketPath)...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return errors.Wrap(err, "start mpv")
	}
	m.log.Info().Msgf("mpv started (pid %d, socket %s)", m.cmd.Process.Pid, socketPath)

	// Reap the process to prevent zombies
	exited := make(chan struct{})
	m.exited = exited
	cmd := m.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	m.ipc = &ipcClient{socketPath: socketPath}
	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			m.log.Warn().Msg("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return errors.Wrap(err, "mpv socket not ready")
	}
	return nil
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.ipc.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return errors.Errorf("socket %s not ready after %d attempts", m.ipc.socketPath, socketWaitRetries)
}

// Open loads a file paused, starting mpv if needed.
func (m *MPV) Open(path string) error {
	target, err := sanitizeMediaTarget(path)
	if err != nil {
		return errors.Wrap(err, "invalid media target")
	}
	if !m.running() {
		if err := m.launch(); err != nil {
			return err
		}
	}
	if err := m.set("pause", true); err != nil {
		return err
	}
	if _, err := m.ipc.send("loadfile", target, "replace"); err != nil {
		return errors.Wrapf(err, "load %s", target)
	}
	m.path = target
	m.unloaded = false
	return nil
}

// Play resumes playback, reloading the file after a Stop. An mpv that exited
// (its own window was closed) is relaunched with the current file.
func (m *MPV) Play() error {
	if m.path == "" {
		return nil
	}
	if !m.running() {
		m.log.Info().Str("path", m.path).Msg("mpv not running, relaunching")
		if err := m.launch(); err != nil {
			return errors.Wrap(err, "relaunch mpv")
		}
		m.unloaded = true
	}
	if m.unloaded {
		if _, err := m.ipc.send("loadfile", m.path, "replace"); err != nil {
			return errors.Wrapf(err, "reload %s", m.path)
		}
		m.unloaded = false
	}
	return m.set("pause", false)
}

// Pause pauses playback.
func (m *MPV) Pause() error {
	if !m.running() {
		return nil
	}
	return m.set("pause", true)
}

// Stop unloads the current file; mpv stays idle.
func (m *MPV) Stop() error {
	if !m.running() {
		return nil
	}
	if _, err := m.ipc.send("stop"); err != nil {
		return err
	}
	m.unloaded = true
	return nil
}

// IsPlaying reports whether media is playing and not paused.
func (m *MPV) IsPlaying() (bool, error) {
	state, err := m.State()
	if err != nil {
		return false, err
	}
	return state == model.StatePlaying, nil
}

// State maps mpv's idle-active and pause properties to a PlaybackState.
func (m *MPV) State() (model.PlaybackState, error) {
	if !m.running() {
		return model.StateStopped, nil
	}
	idle, err := m.getBool("idle-active")
	if err != nil {
		return model.StateStopped, err
	}
	if idle {
		return model.StateStopped, nil
	}
	paused, err := m.getBool("pause")
	if err != nil {
		return model.StateStopped, err
	}
	if paused {
		return model.StatePaused, nil
	}
	return model.StatePlaying, nil
}

// SetVolume sets the volume now, or at launch if mpv is not running yet.
func (m *MPV) SetVolume(volume int) error {
	m.volume = model.ClampVolume(volume)
	if !m.running() {
		return nil
	}
	return m.set("volume", m.volume)
}

// TimeMs returns the playback position, 0 when nothing is loaded.
func (m *MPV) TimeMs() (int, error) {
	return m.getMillis("time-pos")
}

// SetTimeMs seeks to an absolute position.
func (m *MPV) SetTimeMs(ms int) error {
	if !m.running() {
		return nil
	}
	_, err := m.ipc.send("seek", float64(ms)/1000, "absolute")
	return err
}

// DurationMs returns the media length, 0 when unknown.
func (m *MPV) DurationMs() (int, error) {
	return m.getMillis("duration")
}

// BindSurface embeds video into a native window. mpv reads --wid only at
// launch, so a binding made after start applies to the next process.
func (m *MPV) BindSurface(h surface.Handle) error {
	if !h.IsValid() {
		return errors.Wrapf(surface.ErrUnsupported, "handle %s", h)
	}
	m.wid = h
	if m.running() {
		m.log.Warn().Msgf("mpv already running, surface %s applies on next launch", h)
	}
	return nil
}

// Close quits mpv if this engine started it and removes the socket.
func (m *MPV) Close() error {
	if m.attached || m.cmd == nil {
		return nil
	}

	if m.running() {
		// Try graceful quit via IPC
		_, _ = m.ipc.send("quit")
		select {
		case <-m.exited:
		case <-time.After(quitTimeout):
			_ = killProcess(m.cmd)
		}
	}

	if m.ipc != nil {
		_ = os.Remove(m.ipc.socketPath)
	}
	m.log.Info().Msg("mpv closed")
	return nil
}

func (m *MPV) set(property string, value interface{}) error {
	_, err := m.ipc.send("set_property", property, value)
	return errors.Wrapf(err, "set %s", property)
}

func (m *MPV) getBool(name string) (bool, error) {
	data, err := m.ipc.send("get_property", name)
	if errors.Is(err, errPropertyUnavailable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	val, ok := data.(bool)
	if !ok {
		return false, errors.Errorf("property %s: expected bool, got %T", name, data)
	}
	return val, nil
}

// getMillis reads a seconds property as whole milliseconds.
func (m *MPV) getMillis(name string) (int, error) {
	if !m.running() {
		return 0, nil
	}
	data, err := m.ipc.send("get_property", name)
	if errors.Is(err, errPropertyUnavailable) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if data == nil {
		return 0, nil
	}
	val, ok := data.(float64)
	if !ok {
		return 0, errors.Errorf("property %s: expected float64, got %T", name, data)
	}
	return int(val * 1000), nil
}

// sanitizeMediaTarget validates that a path or URL is safe to pass to mpv.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", errors.New("empty path")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", errors.New("invalid control characters in path")
	}

	// Prevent flag injection
	if strings.HasPrefix(l, "-") {
		return "", errors.New("path must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", errors.Wrap(err, "invalid URL")
		}
		switch strings.ToLower(u.Scheme) {
		case "file":
			return filepath.Clean(u.Path), nil
		case "http", "https":
			return l, nil
		default:
			return "", errors.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}
