package usecase

import (
	"context"

	"github.com/dugoutlabs/dugout/internal/domain/lineup"
	"github.com/dugoutlabs/dugout/internal/domain/position"
	"github.com/dugoutlabs/dugout/internal/domain/syncevent"
)

// asyncAction is one optimistic roster mutation in three phases. apply
// runs synchronously before the remote call is issued; confirm runs on
// remote success; compensate must be the exact inverse of apply's
// effect and runs on remote failure.
type asyncAction struct {
	name       string
	playerID   string
	apply      func(st *TeamState, optimistic bool) bool
	confirm    func(st *TeamState)
	compensate func(st *TeamState, err error)
	remote     func(ctx context.Context) error
	announce   syncevent.Kind
}

// dispatch applies the action phase immediately and, when optimistic,
// schedules the remote call on the worker pool. The returned Pending is
// already settled for no-ops and non-optimistic invocations.
func (s *Session) dispatch(ctx context.Context, role TeamRole, act asyncAction, optimistic bool) *Pending {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return settledPending(ErrClosed, false)
	}
	st, err := s.team(role)
	if err != nil {
		s.mu.Unlock()
		return settledPending(err, false)
	}

	applied := act.apply(st, optimistic)
	st.bump()
	s.mu.Unlock()

	if !applied {
		return settledPending(nil, true)
	}
	if !optimistic {
		return settledPending(nil, false)
	}

	pending := newPending()
	teamID := st.ID
	s.submit(func() {
		remoteErr := act.remote(ctx)

		s.mu.Lock()
		if remoteErr == nil {
			act.confirm(st)
		} else {
			act.compensate(st, remoteErr)
		}
		st.bump()
		s.mu.Unlock()

		if remoteErr != nil {
			s.logger.WarnContext(ctx, "optimistic action rolled back",
				"action", act.name, "game_id", s.gameID, "team_id", teamID, "error", remoteErr)
		} else if act.announce != "" {
			s.publish(syncevent.Event{
				Kind:     act.announce,
				GameID:   s.gameID,
				TeamID:   teamID,
				TeamRole: string(role),
				PlayerID: act.playerID,
			})
		}

		pending.settle(remoteErr)
	})

	return pending
}

// AddPlayerToGame activates a roster player for this game, placing them
// in the lineup (benchPlayer false) or on the bench. Adding a player
// who is missing from the roster or already in the game is a silent
// no-op. The membership insert is persisted optimistically; on failure
// the addition is reverted exactly.
func (s *Session) AddPlayerToGame(ctx context.Context, role TeamRole, playerID string, benchPlayer bool, index *int) *Pending {
	return s.dispatch(ctx, role, s.addPlayerAction(role, playerID, benchPlayer, index), true)
}

func (s *Session) addPlayerAction(role TeamRole, playerID string, benchPlayer bool, index *int) asyncAction {
	inserted := false

	return asyncAction{
		name:     "add_player_to_game",
		playerID: playerID,
		announce: syncevent.KindRosterAdd,
		apply: func(st *TeamState, optimistic bool) bool {
			player, ok := st.Roster[playerID]
			if !ok || st.inGame(playerID) {
				return false
			}

			st.GamePlayers[playerID] = struct{}{}
			if !optimistic {
				// External sync adds carry no lineup placement; that
				// arrives through its own channel.
				return true
			}

			st.PendingAdds[playerID] = struct{}{}
			if !benchPlayer {
				pos := position.DefaultFor(
					player.PrimaryPosition,
					player.SecondaryPosition,
					s.config.Fielding(string(role)),
					st.Lineup.Current.OccupiedPositions(),
					"",
				)
				st.Lineup.Current.Insert(playerID, pos, index)
				inserted = true
				st.Lineup.IsDirty = true
			}
			st.updatePreventSaving()
			return true
		},
		confirm: func(st *TeamState) {
			delete(st.PendingAdds, playerID)
			st.updatePreventSaving()
		},
		compensate: func(st *TeamState, _ error) {
			delete(st.GamePlayers, playerID)
			delete(st.PendingAdds, playerID)
			if inserted {
				st.Lineup.Current.Remove(playerID)
				st.Lineup.recomputeDirty()
			}
			st.updatePreventSaving()
		},
		remote: func(ctx context.Context) error {
			return s.rosterRepo.InsertMembership(ctx, s.gameID, s.teams[role].ID, playerID)
		},
	}
}

// RemovePlayerFromGame deactivates a game player, splicing them out of
// the lineup when placed. The removed entry is snapshotted and restored
// verbatim at its original batting slot if the membership delete fails.
func (s *Session) RemovePlayerFromGame(ctx context.Context, role TeamRole, playerID string) *Pending {
	return s.dispatch(ctx, role, asyncAction{
		name:     "remove_player_from_game",
		playerID: playerID,
		announce: syncevent.KindRosterRemove,
		apply: func(st *TeamState, optimistic bool) bool {
			if !st.inGame(playerID) {
				return false
			}

			delete(st.GamePlayers, playerID)
			var snapshot *lineup.Entry
			if entry, ok := st.Lineup.Current.Remove(playerID); ok {
				e := entry
				snapshot = &e
				st.Lineup.IsDirty = true
			}
			if optimistic {
				st.PendingDeletes[playerID] = snapshot
				st.updatePreventSaving()
			}
			return true
		},
		confirm: func(st *TeamState) {
			delete(st.PendingDeletes, playerID)
			st.updatePreventSaving()
		},
		compensate: func(st *TeamState, _ error) {
			st.GamePlayers[playerID] = struct{}{}
			if snapshot := st.PendingDeletes[playerID]; snapshot != nil {
				st.Lineup.Current.Restore(*snapshot)
			}
			st.Lineup.recomputeDirty()
			delete(st.PendingDeletes, playerID)
			st.updatePreventSaving()
		},
		remote: func(ctx context.Context) error {
			return s.rosterRepo.DeleteMembership(ctx, s.gameID, s.teams[role].ID, playerID)
		},
	}, true)
}

// MovePlayerToBench pulls a player out of the batting order without
// touching game membership. Purely local; the change rides the next
// explicit lineup save.
func (s *Session) MovePlayerToBench(role TeamRole, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.team(role)
	if err != nil {
		return err
	}
	if _, ok := st.Lineup.Current.Remove(playerID); ok {
		st.Lineup.IsDirty = true
		st.bump()
	}
	return nil
}

// MovePlayerToLineup places a benched game player into the batting
// order at index (append when nil), picking a fielding assignment the
// same way quick-add does. No-op for players not in the game or already
// placed.
func (s *Session) MovePlayerToLineup(role TeamRole, playerID string, index *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.team(role)
	if err != nil {
		return err
	}
	if !st.inGame(playerID) || st.Lineup.Current.Contains(playerID) {
		return nil
	}

	player := st.Roster[playerID]
	pos := position.DefaultFor(
		player.PrimaryPosition,
		player.SecondaryPosition,
		s.config.Fielding(string(role)),
		st.Lineup.Current.OccupiedPositions(),
		"",
	)
	st.Lineup.Current.Insert(playerID, pos, index)
	st.Lineup.IsDirty = true
	st.bump()
	return nil
}

// ReorderLineup moves an existing entry to a new batting slot. This is
// the in-container sort intent, distinct from the container-transition
// table.
func (s *Session) ReorderLineup(role TeamRole, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.team(role)
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}
	if !st.Lineup.Current.Move(from, to) {
		return ErrInvalidInput
	}
	st.Lineup.IsDirty = true
	st.bump()
	return nil
}

// SetLineupPosition reassigns the fielding position of a placed player.
// Needed to fix a lineup made invalid by a fielding-configuration
// change.
func (s *Session) SetLineupPosition(role TeamRole, playerID string, pos position.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.team(role)
	if err != nil {
		return err
	}
	if !position.Legal(s.config.Fielding(string(role)), pos) {
		return ErrInvalidInput
	}
	idx := st.Lineup.Current.IndexOf(playerID)
	if idx < 0 {
		return ErrNotFound
	}
	if st.Lineup.Current.Entries[idx].Position == pos {
		return nil
	}
	st.Lineup.Current.Entries[idx].Position = pos
	st.Lineup.IsDirty = true
	st.bump()
	return nil
}
