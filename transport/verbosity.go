package transport

import (
	"fmt"
	"strings"
)

// Verbosity gates the transport's log output. It never changes control flow.
type Verbosity int

const (
	VerbosityNone Verbosity = iota + 1
	VerbosityWarning
	VerbosityInfo
	VerbosityDebug
)

// ParseVerbosity accepts the level names used in configuration files.
// An empty string means VerbosityNone.
func ParseVerbosity(name string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return VerbosityNone, nil
	case "warning", "warn":
		return VerbosityWarning, nil
	case "info":
		return VerbosityInfo, nil
	case "debug":
		return VerbosityDebug, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q", name)
	}
}

func (v Verbosity) String() string {
	switch v {
	case VerbosityNone:
		return "none"
	case VerbosityWarning:
		return "warning"
	case VerbosityInfo:
		return "info"
	case VerbosityDebug:
		return "debug"
	default:
		return fmt.Sprintf("verbosity(%d)", int(v))
	}
}
