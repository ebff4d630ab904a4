package usecase

import (
	"testing"
)

func TestDragEnd_RosterToLineup(t *testing.T) {
	_, sess := newEditor(t, nil)

	if err := sess.DragStart(RoleHome, "cmt-01", ContainerRoster); err != nil {
		t.Fatalf("drag start: %v", err)
	}
	if err := sess.DragEnd(t.Context(), ContainerLineup).Wait(); err != nil {
		t.Fatalf("drag end: %v", err)
	}

	snap := captureTeam(sess, RoleHome)
	if !snap.game["cmt-01"] || len(snap.entries) != 1 {
		t.Fatalf("roster->lineup drop must add the player to the lineup: %+v", snap)
	}
}

func TestDragEnd_RosterToBench(t *testing.T) {
	_, sess := newEditor(t, nil)

	if err := sess.DragStart(RoleHome, "cmt-01", ContainerRoster); err != nil {
		t.Fatalf("drag start: %v", err)
	}
	if err := sess.DragEnd(t.Context(), ContainerBench).Wait(); err != nil {
		t.Fatalf("drag end: %v", err)
	}

	snap := captureTeam(sess, RoleHome)
	if !snap.game["cmt-01"] {
		t.Fatalf("roster->bench drop must activate the player")
	}
	if len(snap.entries) != 0 {
		t.Fatalf("roster->bench drop must not touch the lineup")
	}
}

func TestDragEnd_BenchAndLineupMoves(t *testing.T) {
	_, sess := newEditor(t, nil)

	if err := sess.AddPlayerToGame(t.Context(), RoleHome, "cmt-01", false, nil).Wait(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// lineup -> bench
	if err := sess.DragStart(RoleHome, "cmt-01", ContainerLineup); err != nil {
		t.Fatalf("drag start: %v", err)
	}
	if err := sess.DragEnd(t.Context(), ContainerBench).Wait(); err != nil {
		t.Fatalf("lineup->bench: %v", err)
	}
	snap := captureTeam(sess, RoleHome)
	if len(snap.entries) != 0 || !snap.game["cmt-01"] {
		t.Fatalf("lineup->bench drop must bench the player: %+v", snap)
	}

	// bench -> lineup
	if err := sess.DragStart(RoleHome, "cmt-01", ContainerBench); err != nil {
		t.Fatalf("drag start: %v", err)
	}
	if err := sess.DragEnd(t.Context(), ContainerLineup).Wait(); err != nil {
		t.Fatalf("bench->lineup: %v", err)
	}
	snap = captureTeam(sess, RoleHome)
	if len(snap.entries) != 1 {
		t.Fatalf("bench->lineup drop must place the player: %+v", snap)
	}
}

func TestDragEnd_BackToRosterRemoves(t *testing.T) {
	_, sess := newEditor(t, nil)

	if err := sess.AddPlayerToGame(t.Context(), RoleHome, "cmt-01", false, nil).Wait(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := sess.DragStart(RoleHome, "cmt-01", ContainerLineup); err != nil {
		t.Fatalf("drag start: %v", err)
	}
	if err := sess.DragEnd(t.Context(), ContainerRoster).Wait(); err != nil {
		t.Fatalf("lineup->roster: %v", err)
	}

	snap := captureTeam(sess, RoleHome)
	if snap.game["cmt-01"] || len(snap.entries) != 0 {
		t.Fatalf("dropping on roster must remove from the game: %+v", snap)
	}
}

func TestDragEnd_SameContainerIsNoOp(t *testing.T) {
	_, sess := newEditor(t, nil)

	if err := sess.DragStart(RoleHome, "cmt-01", ContainerRoster); err != nil {
		t.Fatalf("drag start: %v", err)
	}
	if p := sess.DragEnd(t.Context(), ContainerRoster); !p.NoOp() {
		t.Fatalf("same-container drop must be a no-op")
	}

	snap := captureTeam(sess, RoleHome)
	if snap.game["cmt-01"] {
		t.Fatalf("no-op drop must not change state")
	}
	if sess.Drag().active() {
		t.Fatalf("drag state must reset")
	}
}

func TestDragEnd_WithoutActiveDragIsNoOp(t *testing.T) {
	_, sess := newEditor(t, nil)

	if p := sess.DragEnd(t.Context(), ContainerLineup); !p.NoOp() {
		t.Fatalf("drop without an active drag must be a no-op")
	}
}

func TestDragStart_Validation(t *testing.T) {
	_, sess := newEditor(t, nil)

	if err := sess.DragStart(RoleHome, "", ContainerRoster); err == nil {
		t.Fatalf("expected error for empty player id")
	}
	if err := sess.DragStart(RoleHome, "cmt-01", Container("dugout")); err == nil {
		t.Fatalf("expected error for unknown container")
	}
	if err := sess.DragStart(TeamRole("third"), "cmt-01", ContainerRoster); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
