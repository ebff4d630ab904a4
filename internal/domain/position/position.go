package position

import "fmt"

// Position names a fielding assignment on the scorecard.
type Position string

const (
	Pitcher          Position = "pitcher"
	Catcher          Position = "catcher"
	FirstBase        Position = "first_base"
	SecondBase       Position = "second_base"
	Shortstop        Position = "shortstop"
	ThirdBase        Position = "third_base"
	MiddleInfield    Position = "middle_infield"
	LeftField        Position = "left_field"
	LeftCenterField  Position = "left_center_field"
	CenterField      Position = "center_field"
	RightCenterField Position = "right_center_field"
	RightField       Position = "right_field"
	ExtraHitter      Position = "extra_hitter"
)

// canonicalOrder lists fielding positions in scorecard order. ExtraHitter
// is not a fielding spot and stays out of this list.
var canonicalOrder = []Position{
	Pitcher,
	Catcher,
	FirstBase,
	SecondBase,
	Shortstop,
	ThirdBase,
	MiddleInfield,
	LeftField,
	LeftCenterField,
	CenterField,
	RightCenterField,
	RightField,
}

var allPositions = func() map[Position]struct{} {
	out := make(map[Position]struct{}, len(canonicalOrder)+1)
	for _, p := range canonicalOrder {
		out[p] = struct{}{}
	}
	out[ExtraHitter] = struct{}{}
	return out
}()

func IsKnown(p Position) bool {
	_, ok := allPositions[p]
	return ok
}

// Configuration selects how many infielders and outfielders take the
// field, which in turn decides the legal position set.
type Configuration struct {
	Infielders  int `json:"numInfielders"`
	Outfielders int `json:"numOutfielders"`
}

func DefaultConfiguration() Configuration {
	return Configuration{Infielders: 4, Outfielders: 3}
}

func (c Configuration) Validate() error {
	if c.Infielders != 4 && c.Infielders != 5 {
		return fmt.Errorf("infielders must be 4 or 5, got %d", c.Infielders)
	}
	if c.Outfielders != 3 && c.Outfielders != 4 {
		return fmt.Errorf("outfielders must be 3 or 4, got %d", c.Outfielders)
	}
	return nil
}

// Possible returns every legal assignment under cfg in canonical order,
// with ExtraHitter last. MiddleInfield needs a fifth infielder. Three
// outfielders play a plain center field; four play the two gap spots
// instead, never both.
func Possible(cfg Configuration) []Position {
	out := make([]Position, 0, len(canonicalOrder)+1)
	for _, p := range canonicalOrder {
		if legalFielding(cfg, p) {
			out = append(out, p)
		}
	}
	out = append(out, ExtraHitter)
	return out
}

// Required returns the assignments a complete defense must cover:
// Possible minus ExtraHitter.
func Required(cfg Configuration) []Position {
	out := make([]Position, 0, len(canonicalOrder))
	for _, p := range canonicalOrder {
		if legalFielding(cfg, p) {
			out = append(out, p)
		}
	}
	return out
}

func Legal(cfg Configuration, p Position) bool {
	if p == ExtraHitter {
		return true
	}
	return legalFielding(cfg, p)
}

func legalFielding(cfg Configuration, p Position) bool {
	switch p {
	case MiddleInfield:
		return cfg.Infielders == 5
	case CenterField:
		return cfg.Outfielders == 3
	case LeftCenterField, RightCenterField:
		return cfg.Outfielders == 4
	case ExtraHitter:
		return false
	default:
		_, ok := allPositions[p]
		return ok
	}
}

// DefaultFor picks the assignment for a newly added player: their
// primary position if legal and open, then their secondary, then the
// caller's fallback, then the first open spot in canonical order, and
// ExtraHitter when the field is full. The preference order is load
// bearing for quick-add and drag placement.
func DefaultFor(primary, secondary Position, cfg Configuration, occupied map[Position]bool, fallback Position) Position {
	if preferable(primary, cfg, occupied) {
		return primary
	}
	if preferable(secondary, cfg, occupied) {
		return secondary
	}
	if fallback != "" {
		return fallback
	}
	for _, p := range canonicalOrder {
		if legalFielding(cfg, p) && !occupied[p] {
			return p
		}
	}
	return ExtraHitter
}

func preferable(p Position, cfg Configuration, occupied map[Position]bool) bool {
	if p == "" || p == ExtraHitter {
		return false
	}
	return legalFielding(cfg, p) && !occupied[p]
}
