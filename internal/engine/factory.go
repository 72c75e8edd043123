package engine

import (
	"sort"

	"emperror.dev/errors"
	"github.com/rs/zerolog"
)

// Engine names
const (
	NameDefault = ""
	NameMPV     = "mpv"
	NameVLC     = "vlc"
)

// ErrUnknownEngine is returned for engine names not compiled into this build
var ErrUnknownEngine = errors.New("unknown media engine")

// Options configures engine construction
type Options struct {
	// MPVBinary is the mpv executable, "mpv" when empty
	MPVBinary string
	Logger    *zerolog.Logger
}

type constructor func(opts Options) (Engine, error)

// constructors is filled by the build-specific backend files
var constructors = map[string]constructor{}

// defaultName is the backend used when no name is configured
var defaultName string

func register(name string, c constructor, isDefault bool) {
	constructors[name] = c
	if isDefault || defaultName == "" {
		defaultName = name
	}
}

// New creates the engine registered under name, or the platform default for ""
func New(name string, opts Options) (Engine, error) {
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
	if name == NameDefault {
		name = defaultName
	}
	c, ok := constructors[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEngine, "%q (available: %v)", name, Available())
	}
	e, err := c(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create %s engine", name)
	}
	return e, nil
}

// Available returns the engine names compiled into this build
func Available() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
