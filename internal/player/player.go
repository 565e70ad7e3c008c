// Package player holds per-connection player state and the fixed-size
// table the server uses to assign and look up player IDs.
package player

import (
	"sync"

	"ccserver/internal/protocol"
)

// NoID is the sentinel player_id used before a Player has been assigned a
// slot in the table (spec §3 "Player.player_id: int8 or none").
const NoID int8 = -1

// Player is one connected client. Name/MPPass/IsOp/Position are only
// meaningful once the handshake has populated them; IP is set at accept
// time.
type Player struct {
	mu sync.RWMutex

	IP       string
	Name     string
	MPPass   string
	PlayerID int8
	Position protocol.Position
	IsOp     bool

	Outbound chan []byte
	Drop     *DropLatch
}

// New returns a Player ready to be handed to the server's accept path. The
// outbound channel is buffered so a slow reader does not stall packet
// production on the dispatcher.
func New(ip string) *Player {
	return &Player{
		IP:       ip,
		PlayerID: NoID,
		Outbound: make(chan []byte, 256),
		Drop:     NewDropLatch(),
	}
}

func (p *Player) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	prefix := ""
	if p.IsOp {
		prefix = "#"
	}
	return prefix + p.Name + "@" + p.IP
}

// SetOp updates operator status under lock; IsOp is read from other
// goroutines (outbound formatting, String) so it is not safe to touch
// directly.
func (p *Player) SetOp(op bool) {
	p.mu.Lock()
	p.IsOp = op
	p.mu.Unlock()
}

func (p *Player) Op() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.IsOp
}

// SetPosition records the player's last known position, as reported by a
// PositionUpdate packet.
func (p *Player) SetPosition(pos protocol.Position) {
	p.mu.Lock()
	p.Position = pos
	p.mu.Unlock()
}

func (p *Player) GetPosition() protocol.Position {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Position
}

// Send enqueues a framed packet for the outbound writer. It never blocks
// past the channel buffer; a full outbound queue means the connection is
// not keeping up and is dropped rather than let the dispatcher stall.
func (p *Player) Send(frame []byte) {
	select {
	case p.Outbound <- frame:
	default:
		p.Drop.Fire("Outbound queue full")
	}
}
