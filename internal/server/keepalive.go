package server

import (
	"time"

	"ccserver/internal/player"
	"ccserver/internal/protocol"
)

// pingInterval matches spec §4.2: a Ping every second keeps the client's
// connection timeout from firing during otherwise idle play.
const pingInterval = time.Second

// keepAliveLoop pings every connected player once per interval until the
// server stops.
func (s *Server) keepAliveLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !s.Running() {
			return
		}
		s.dispatch(func() {
			ping := protocol.NewPing()
			s.Players.Range(func(p *player.Player) {
				s.sendPacket(p, ping)
			})
		})
	}
}
