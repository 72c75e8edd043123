package surface

import (
	"fmt"

	"emperror.dev/errors"
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// Kind identifies the platform family of a native handle
type Kind int

const (
	KindNone Kind = iota
	KindX11
	KindHWND
	KindNSObject
)

// String returns a human-friendly name of the handle kind
func (k Kind) String() string {
	switch k {
	case KindX11:
		return "x11"
	case KindHWND:
		return "hwnd"
	case KindNSObject:
		return "nsobject"
	default:
		return "none"
	}
}

// ErrUnsupported is returned when a window has no surface an engine can bind to
var ErrUnsupported = errors.New("native video surface not supported")

// Handle is a native window handle
type Handle struct {
	Kind  Kind
	Value uintptr
}

// IsValid reports whether the handle can be passed to an engine
func (h Handle) IsValid() bool {
	return h.Kind != KindNone && h.Value != 0
}

// String returns the handle formatted for logs
func (h Handle) String() string {
	return fmt.Sprintf("%s:%#x", h.Kind, h.Value)
}

// FromWindow reads the native handle of a shown Fyne window
func FromWindow(w fyne.Window) (Handle, error) {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return Handle{}, errors.Wrap(ErrUnsupported, "window has no native context")
	}

	var (
		h   Handle
		err error
	)
	nw.RunNative(func(ctx any) {
		h, err = FromContext(ctx)
	})
	return h, err
}

// FromContext converts a Fyne native window context into a Handle
func FromContext(ctx any) (Handle, error) {
	var h Handle
	switch c := ctx.(type) {
	case driver.X11WindowContext:
		h = Handle{Kind: KindX11, Value: c.WindowHandle}
	case *driver.X11WindowContext:
		h = Handle{Kind: KindX11, Value: c.WindowHandle}
	case driver.WindowsWindowContext:
		h = Handle{Kind: KindHWND, Value: c.HWND}
	case *driver.WindowsWindowContext:
		h = Handle{Kind: KindHWND, Value: c.HWND}
	case driver.MacWindowContext:
		h = Handle{Kind: KindNSObject, Value: c.NSWindow}
	case *driver.MacWindowContext:
		h = Handle{Kind: KindNSObject, Value: c.NSWindow}
	default:
		return Handle{}, errors.Wrapf(ErrUnsupported, "context %T", ctx)
	}

	if !h.IsValid() {
		return Handle{}, errors.Wrapf(ErrUnsupported, "window not realized (%s)", h)
	}
	return h, nil
}
