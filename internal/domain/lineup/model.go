package lineup

import "github.com/dugoutlabs/dugout/internal/domain/position"

// Entry places one player in the batting order with a fielding
// assignment. BattingOrder is 1-based and contiguous across a lineup.
type Entry struct {
	PlayerID     string            `json:"playerId"`
	BattingOrder int               `json:"battingOrder"`
	Position     position.Position `json:"position"`
}

// Lineup is the ordered batting order for one team in one game. Entry
// order is authoritative; BattingOrder is derived from it.
type Lineup struct {
	Entries []Entry `json:"entries"`
}

// FixBattingOrder renumbers every entry to its index plus one. Runs
// after every structural change and is idempotent.
func (l *Lineup) FixBattingOrder() {
	for i := range l.Entries {
		l.Entries[i].BattingOrder = i + 1
	}
}

// Insert adds a player at index (append when index is nil) with the
// given assignment and restores batting-order contiguity.
func (l *Lineup) Insert(playerID string, pos position.Position, index *int) {
	entry := Entry{PlayerID: playerID, Position: pos}
	if index == nil || *index < 0 || *index >= len(l.Entries) {
		l.Entries = append(l.Entries, entry)
	} else {
		at := *index
		l.Entries = append(l.Entries, Entry{})
		copy(l.Entries[at+1:], l.Entries[at:])
		l.Entries[at] = entry
	}
	l.FixBattingOrder()
}

// Remove splices the player's entry out, renumbers, and returns the
// removed entry so callers can restore it on rollback.
func (l *Lineup) Remove(playerID string) (Entry, bool) {
	idx := l.IndexOf(playerID)
	if idx < 0 {
		return Entry{}, false
	}
	removed := l.Entries[idx]
	l.Entries = append(l.Entries[:idx], l.Entries[idx+1:]...)
	l.FixBattingOrder()
	return removed, true
}

// Restore re-inserts a previously removed entry at its recorded
// batting-order slot. Only exact if the lineup has not been reshaped
// since the removal; concurrent structural edits during a pending
// window are a known race.
func (l *Lineup) Restore(entry Entry) {
	at := entry.BattingOrder - 1
	if at < 0 {
		at = 0
	}
	if at > len(l.Entries) {
		at = len(l.Entries)
	}
	l.Entries = append(l.Entries, Entry{})
	copy(l.Entries[at+1:], l.Entries[at:])
	l.Entries[at] = entry
	l.FixBattingOrder()
}

// Move shifts the entry at from to index to and renumbers. Used for
// reordering within the batting order.
func (l *Lineup) Move(from, to int) bool {
	if from < 0 || from >= len(l.Entries) || to < 0 || to >= len(l.Entries) {
		return false
	}
	if from == to {
		return true
	}
	entry := l.Entries[from]
	l.Entries = append(l.Entries[:from], l.Entries[from+1:]...)
	l.Entries = append(l.Entries, Entry{})
	copy(l.Entries[to+1:], l.Entries[to:])
	l.Entries[to] = entry
	l.FixBattingOrder()
	return true
}

func (l Lineup) IndexOf(playerID string) int {
	for i, entry := range l.Entries {
		if entry.PlayerID == playerID {
			return i
		}
	}
	return -1
}

func (l Lineup) Contains(playerID string) bool {
	return l.IndexOf(playerID) >= 0
}

// OccupiedPositions reports which fielding assignments are taken.
func (l Lineup) OccupiedPositions() map[position.Position]bool {
	out := make(map[position.Position]bool, len(l.Entries))
	for _, entry := range l.Entries {
		out[entry.Position] = true
	}
	return out
}

// Clone returns a deep copy; lineups are passed around as snapshots.
func (l Lineup) Clone() Lineup {
	if l.Entries == nil {
		return Lineup{}
	}
	entries := make([]Entry, len(l.Entries))
	copy(entries, l.Entries)
	return Lineup{Entries: entries}
}

// Equal is a deep comparison used to recompute dirtiness after
// rollbacks.
func (l Lineup) Equal(other Lineup) bool {
	if len(l.Entries) != len(other.Entries) {
		return false
	}
	for i := range l.Entries {
		if l.Entries[i] != other.Entries[i] {
			return false
		}
	}
	return true
}
