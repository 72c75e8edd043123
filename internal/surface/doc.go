package surface

// Package surface resolves the native drawing surface of a Fyne window so a
// media engine can render video into it. Each platform exposes a different
// handle kind; engines dispatch on Kind to pick the matching binding call.
