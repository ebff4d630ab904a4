package usecase

import "context"

// Container identifies the three drop zones of the editor.
type Container string

const (
	ContainerRoster Container = "roster"
	ContainerLineup Container = "lineup"
	ContainerBench  Container = "bench"
)

func (c Container) Valid() bool {
	switch c {
	case ContainerRoster, ContainerLineup, ContainerBench:
		return true
	}
	return false
}

// DragState is the ephemeral pointer-drag state. It exists only while a
// drag is active and is reset to the zero value on drop or cancel.
type DragState struct {
	Role           TeamRole
	ActivePlayerID string
	Origin         Container
	Over           Container
}

func (d DragState) active() bool {
	return d.ActivePlayerID != ""
}

// DragStart records the dragged player and origin container and clears
// any stale hover target.
func (s *Session) DragStart(role TeamRole, playerID string, origin Container) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.team(role); err != nil {
		return err
	}
	if playerID == "" || !origin.Valid() {
		return ErrInvalidInput
	}

	s.drag = DragState{Role: role, ActivePlayerID: playerID, Origin: origin}
	return nil
}

// DragOver updates the hovered container, driving the selector layer's
// visual preview. An empty container marks hovering outside every zone.
func (s *Session) DragOver(over Container) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.drag.active() {
		return
	}
	if over != "" && !over.Valid() {
		over = ""
	}
	s.drag.Over = over
}

// DragEnd maps the (origin, destination) pair onto the editor intent
// and resets the drag state. Dropping on the origin container or
// outside every zone cancels without a state change. The returned
// Pending is settled immediately for the purely local transitions.
func (s *Session) DragEnd(ctx context.Context, over Container) *Pending {
	s.mu.Lock()
	drag := s.drag
	s.drag = DragState{}
	s.mu.Unlock()

	if !drag.active() {
		return settledPending(nil, true)
	}
	if over == "" || over == drag.Origin || !over.Valid() {
		return settledPending(nil, true)
	}

	switch {
	case drag.Origin == ContainerRoster && over == ContainerLineup:
		return s.AddPlayerToGame(ctx, drag.Role, drag.ActivePlayerID, false, nil)
	case drag.Origin == ContainerRoster && over == ContainerBench:
		return s.AddPlayerToGame(ctx, drag.Role, drag.ActivePlayerID, true, nil)
	case drag.Origin == ContainerBench && over == ContainerLineup:
		return settledPending(s.MovePlayerToLineup(drag.Role, drag.ActivePlayerID, nil), false)
	case drag.Origin == ContainerLineup && over == ContainerBench:
		return settledPending(s.MovePlayerToBench(drag.Role, drag.ActivePlayerID), false)
	case over == ContainerRoster:
		return s.RemovePlayerFromGame(ctx, drag.Role, drag.ActivePlayerID)
	}

	return settledPending(nil, true)
}

// Drag returns a copy of the current drag state.
func (s *Session) Drag() DragState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag
}
