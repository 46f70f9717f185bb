package birthdays

import "fmt"

// LeapDayPolicy decides which date a 29 February birthday is observed on
// in a year that has no 29 February.
type LeapDayPolicy string

// Supported leap day policies
const (
	LeapDayFeb28 LeapDayPolicy = "feb28"
	LeapDayMar1  LeapDayPolicy = "mar1"
)

// DefaultWindowDays is how far ahead Upcoming looks when no window is configured.
const DefaultWindowDays = 7

// Params defines all configurable parameters for the upcoming-birthdays computation
type Params struct {
	// WindowDays is the default look-ahead, inclusive of today
	WindowDays int

	// LeapDay selects how 29 February birthdays are projected onto common years
	LeapDay LeapDayPolicy
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	WindowDays int
	LeapDay    string
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		WindowDays: DefaultWindowDays,
		LeapDay:    LeapDayFeb28,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero values keep the defaults. Returns an error for an unknown leap day policy.
func NewParams(config ParamsConfig) (*Params, error) {
	params := NewDefaultParams()

	if config.WindowDays > 0 {
		params.WindowDays = config.WindowDays
	}

	switch LeapDayPolicy(config.LeapDay) {
	case "":
	case LeapDayFeb28, LeapDayMar1:
		params.LeapDay = LeapDayPolicy(config.LeapDay)
	default:
		return nil, fmt.Errorf("unknown leap day policy %q", config.LeapDay)
	}

	return params, nil
}
