package player

import "errors"

// MaxPlayers is the fixed slot count the original server allocates
// player_ids from (spec §3, §4.5: "range(0, 128)").
const MaxPlayers = 128

// ErrServerFull is returned by Table.Add when every slot is occupied.
var ErrServerFull = errors.New("player: server full")

// Table assigns and tracks player_id slots. It is only ever touched from
// the server's dispatcher goroutine, so it needs no internal locking of
// its own (spec §5: "PlayerTable mutated only from the event loop").
type Table struct {
	slots [MaxPlayers]*Player
}

// Add finds the lowest free slot, assigns it to p.PlayerID and returns it.
// It returns ErrServerFull if the table has no free slot, matching the
// original's bounded player_id range rather than growing unbounded.
func (t *Table) Add(p *Player) (int8, error) {
	for i := 0; i < MaxPlayers; i++ {
		if t.slots[i] == nil {
			t.slots[i] = p
			p.PlayerID = int8(i)
			return p.PlayerID, nil
		}
	}
	return NoID, ErrServerFull
}

// Remove releases p's slot, if it has one.
func (t *Table) Remove(p *Player) {
	if p.PlayerID == NoID {
		return
	}
	if t.slots[p.PlayerID] == p {
		t.slots[p.PlayerID] = nil
	}
	p.PlayerID = NoID
}

// Get returns the player occupying id, or nil.
func (t *Table) Get(id int8) *Player {
	if id < 0 || int(id) >= MaxPlayers {
		return nil
	}
	return t.slots[id]
}

// GetByName returns the first player whose Name matches, or nil.
func (t *Table) GetByName(name string) *Player {
	for _, p := range t.slots {
		if p != nil && p.Name == name {
			return p
		}
	}
	return nil
}

// Range calls fn for every occupied slot, in slot order.
func (t *Table) Range(fn func(*Player)) {
	for _, p := range t.slots {
		if p != nil {
			fn(p)
		}
	}
}

// Len reports the number of occupied slots.
func (t *Table) Len() int {
	n := 0
	for _, p := range t.slots {
		if p != nil {
			n++
		}
	}
	return n
}
