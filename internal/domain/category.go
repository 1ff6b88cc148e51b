package domain

import "fmt"

// StarSize buckets the host star radius relative to the Sun.
type StarSize uint8

const (
	StarSizeUnknown StarSize = iota
	StarSizeSmall
	StarSizeSimilar
	StarSizeBigger
)

// StarSizes lists the classified star sizes in legend order.
var StarSizes = []StarSize{StarSizeSmall, StarSizeSimilar, StarSizeBigger}

var starSizeNames = [...]string{"Unknown", "Small", "Similar", "Bigger"}

func (s StarSize) String() string {
	if int(s) < len(starSizeNames) {
		return starSizeNames[s]
	}
	return starSizeNames[StarSizeUnknown]
}

// MarshalText implements encoding.TextMarshaler.
func (s StarSize) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StarSize) UnmarshalText(text []byte) error {
	v, err := ParseStarSize(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStarSize resolves a classified star size label.
func ParseStarSize(label string) (StarSize, error) {
	for _, s := range StarSizes {
		if s.String() == label {
			return s, nil
		}
	}
	return StarSizeUnknown, fmt.Errorf("unknown star size %q", label)
}

// Level is the shared label set of temperature and gravity classes.
type Level uint8

const (
	LevelUnknown Level = iota
	LevelLow
	LevelOptimal
	LevelHigh
	LevelExtreme
)

// Levels lists the classified levels in legend order.
var Levels = []Level{LevelLow, LevelOptimal, LevelHigh, LevelExtreme}

var levelNames = [...]string{"Unknown", "low", "optimal", "high", "extreme"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return levelNames[LevelUnknown]
}

// ParseLevel resolves a classified level label.
func ParseLevel(label string) (Level, error) {
	for _, l := range Levels {
		if l.String() == label {
			return l, nil
		}
	}
	return LevelUnknown, fmt.Errorf("unknown level %q", label)
}

// TemperatureClass buckets the planet equilibrium temperature.
type TemperatureClass Level

const (
	TemperatureUnknown = TemperatureClass(LevelUnknown)
	TemperatureLow     = TemperatureClass(LevelLow)
	TemperatureOptimal = TemperatureClass(LevelOptimal)
	TemperatureHigh    = TemperatureClass(LevelHigh)
	TemperatureExtreme = TemperatureClass(LevelExtreme)
)

func (t TemperatureClass) String() string { return Level(t).String() }

// MarshalText implements encoding.TextMarshaler.
func (t TemperatureClass) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// GravityClass buckets the planet radius, used as a surface gravity proxy.
type GravityClass Level

const (
	GravityUnknown = GravityClass(LevelUnknown)
	GravityLow     = GravityClass(LevelLow)
	GravityOptimal = GravityClass(LevelOptimal)
	GravityHigh    = GravityClass(LevelHigh)
	GravityExtreme = GravityClass(LevelExtreme)
)

func (g GravityClass) String() string { return Level(g).String() }

// MarshalText implements encoding.TextMarshaler.
func (g GravityClass) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Status is the composite habitability label.
type Status uint8

const (
	StatusPromising Status = iota + 1
	StatusChallenging
	StatusExtreme
)

// Statuses lists every status in legend order.
var Statuses = []Status{StatusPromising, StatusChallenging, StatusExtreme}

func (s Status) String() string {
	switch s {
	case StatusPromising:
		return "Promising"
	case StatusChallenging:
		return "Challenging"
	case StatusExtreme:
		return "Extreme"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if s.String() == "" {
		return nil, fmt.Errorf("invalid status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// ParseStatus resolves a status label.
func ParseStatus(label string) (Status, error) {
	for _, s := range Statuses {
		if s.String() == label {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", label)
}
