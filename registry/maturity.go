package registry

import "fmt"

// MaturityLevel describes how far formatting support for a language has come.
type MaturityLevel int

const (
	MaturityExperimental MaturityLevel = iota
	MaturityBasicTests
	MaturityActivelyTested
	MaturityStable
)

var maturityNames = map[MaturityLevel]string{
	MaturityExperimental:   "experimental",
	MaturityBasicTests:     "basic-tests",
	MaturityActivelyTested: "actively-tested",
	MaturityStable:         "stable",
}

func (level MaturityLevel) String() string {
	if name, ok := maturityNames[level]; ok {
		return name
	}
	return "unknown"
}

func (level MaturityLevel) DisplayName() string {
	switch level {
	case MaturityExperimental:
		return "Experimental"
	case MaturityBasicTests:
		return "Basic Tests"
	case MaturityActivelyTested:
		return "Actively Tested"
	case MaturityStable:
		return "Stable"
	default:
		return "Unknown"
	}
}

func (level MaturityLevel) Symbol() string {
	switch level {
	case MaturityExperimental:
		return "○"
	case MaturityBasicTests:
		return "◐"
	case MaturityActivelyTested:
		return "●"
	case MaturityStable:
		return "✓"
	default:
		return "?"
	}
}

// Supported reports whether languages at this level count as supported.
func (level MaturityLevel) Supported() bool {
	return level > MaturityExperimental
}

// UnmarshalText lets the language table spell levels by name.
func (level *MaturityLevel) UnmarshalText(text []byte) error {
	for candidate, name := range maturityNames {
		if name == string(text) {
			*level = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown maturity level %q", text)
}

func (level MaturityLevel) MarshalText() ([]byte, error) {
	return []byte(level.String()), nil
}

// MaturityLevels returns the ordered set of known maturity levels.
func MaturityLevels() []MaturityLevel {
	return []MaturityLevel{
		MaturityExperimental,
		MaturityBasicTests,
		MaturityActivelyTested,
		MaturityStable,
	}
}
