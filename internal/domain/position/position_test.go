package position

import "testing"

func contains(list []Position, p Position) bool {
	for _, item := range list {
		if item == p {
			return true
		}
	}
	return false
}

func TestPossible_StandardConfiguration(t *testing.T) {
	got := Possible(Configuration{Infielders: 4, Outfielders: 3})

	for _, excluded := range []Position{MiddleInfield, LeftCenterField, RightCenterField} {
		if contains(got, excluded) {
			t.Fatalf("4/3 configuration must exclude %s", excluded)
		}
	}
	if !contains(got, CenterField) {
		t.Fatalf("4/3 configuration must include center_field")
	}
	if !contains(got, ExtraHitter) {
		t.Fatalf("extra_hitter is always assignable")
	}
	// 9 fielding spots + extra hitter.
	if len(got) != 10 {
		t.Fatalf("unexpected position count: %d (%v)", len(got), got)
	}
}

func TestPossible_FiveInfieldersFourOutfielders(t *testing.T) {
	got := Possible(Configuration{Infielders: 5, Outfielders: 4})

	for _, included := range []Position{MiddleInfield, LeftCenterField, RightCenterField} {
		if !contains(got, included) {
			t.Fatalf("5/4 configuration must include %s", included)
		}
	}
	if contains(got, CenterField) {
		t.Fatalf("5/4 configuration must exclude plain center_field")
	}
}

func TestRequired_ExcludesExtraHitter(t *testing.T) {
	got := Required(Configuration{Infielders: 4, Outfielders: 3})
	if contains(got, ExtraHitter) {
		t.Fatalf("required positions must not include extra_hitter")
	}
	if len(got) != 9 {
		t.Fatalf("expected 9 required positions, got %d", len(got))
	}
}

func TestDefaultFor_PrefersPrimaryThenSecondary(t *testing.T) {
	cfg := DefaultConfiguration()

	got := DefaultFor(Shortstop, Pitcher, cfg, map[Position]bool{}, "")
	if got != Shortstop {
		t.Fatalf("expected shortstop, got %s", got)
	}

	got = DefaultFor(Shortstop, Pitcher, cfg, map[Position]bool{Shortstop: true}, "")
	if got != Pitcher {
		t.Fatalf("expected pitcher when shortstop occupied, got %s", got)
	}
}

func TestDefaultFor_FallbackBeatsCanonicalScan(t *testing.T) {
	cfg := DefaultConfiguration()
	occupied := map[Position]bool{Shortstop: true, Pitcher: true}

	got := DefaultFor(Shortstop, Pitcher, cfg, occupied, LeftField)
	if got != LeftField {
		t.Fatalf("expected fallback left_field, got %s", got)
	}
}

func TestDefaultFor_FirstOpenCanonicalPosition(t *testing.T) {
	cfg := DefaultConfiguration()
	occupied := map[Position]bool{Shortstop: true, Pitcher: true}

	got := DefaultFor(Shortstop, Pitcher, cfg, occupied, "")
	if got != Catcher {
		t.Fatalf("expected catcher (first open canonical spot), got %s", got)
	}
}

func TestDefaultFor_ExtraHitterWhenFieldFull(t *testing.T) {
	cfg := DefaultConfiguration()
	occupied := make(map[Position]bool)
	for _, p := range Required(cfg) {
		occupied[p] = true
	}

	got := DefaultFor(Shortstop, Pitcher, cfg, occupied, "")
	if got != ExtraHitter {
		t.Fatalf("expected extra_hitter, got %s", got)
	}
}

func TestDefaultFor_IllegalPrimarySkipped(t *testing.T) {
	// middle_infield is not legal with four infielders.
	cfg := Configuration{Infielders: 4, Outfielders: 3}

	got := DefaultFor(MiddleInfield, SecondBase, cfg, map[Position]bool{}, "")
	if got != SecondBase {
		t.Fatalf("expected second_base, got %s", got)
	}
}

func TestConfiguration_Validate(t *testing.T) {
	if err := (Configuration{Infielders: 4, Outfielders: 3}).Validate(); err != nil {
		t.Fatalf("valid configuration rejected: %v", err)
	}
	if err := (Configuration{Infielders: 6, Outfielders: 3}).Validate(); err == nil {
		t.Fatalf("expected error for 6 infielders")
	}
	if err := (Configuration{Infielders: 4, Outfielders: 5}).Validate(); err == nil {
		t.Fatalf("expected error for 5 outfielders")
	}
}
