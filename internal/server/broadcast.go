package server

import (
	"ccserver/internal/player"
	"ccserver/internal/protocol"
)

// sendPacket packs pkt and enqueues it on p's outbound queue. Must only be
// called on the dispatcher goroutine.
func (s *Server) sendPacket(p *player.Player, pkt *protocol.Packet) {
	frame, err := pkt.Pack()
	if err != nil {
		s.Logger.Error().Err(err).Str("packet", pkt.Descriptor.Name).Msg("failed to pack outgoing packet")
		return
	}
	p.Send(frame)
}

// relayToAll sends pkt to every connected player, including the sender,
// stamping pkt's player_id field with the sender's slot first (spec §4.5
// "relay_to_all").
func (s *Server) relayToAll(sender *player.Player, pkt *protocol.Packet) {
	pkt.Values["player_id"] = sender.PlayerID
	s.Players.Range(func(p *player.Player) {
		s.sendPacket(p, pkt)
	})
}

// relayToOthers is relayToAll but skips the sender.
func (s *Server) relayToOthers(sender *player.Player, pkt *protocol.Packet) {
	pkt.Values["player_id"] = sender.PlayerID
	s.Players.Range(func(p *player.Player) {
		if p == sender {
			return
		}
		s.sendPacket(p, pkt)
	})
}

// announce sends a server-authored chat message (player_id -1) to every
// connected player.
func (s *Server) announce(message string) {
	pkt := protocol.NewChatMessage(-1, message)
	s.Players.Range(func(p *player.Player) {
		s.sendPacket(p, pkt)
	})
}

// Announce is the exported form of announce, for plugins/commands that
// need to broadcast a server-authored chat line (e.g. dice's roll
// announcements).
func (s *Server) Announce(message string) {
	s.announce(message)
}

// SendMessage sends a server-authored chat message to a single player,
// used for command replies.
func (s *Server) SendMessage(p *player.Player, message string) {
	s.sendPacket(p, protocol.NewChatMessage(-1, message))
}

// GetPlayer returns the connected player with the given name, or nil.
// Like every Players-table access, it must only be called from the
// dispatcher goroutine — which is where command handlers and plugin
// callbacks always run.
func (s *Server) GetPlayer(name string) *player.Player {
	return s.Players.GetByName(name)
}

// RemovePlayer drops a connected player with the given reason. The actual
// slot release and PlayerRemoving event happen once the connection's
// drop latch unblocks its inboundLoop/outboundLoop pair and
// handleConnection dispatches the teardown.
func (s *Server) RemovePlayer(p *player.Player, reason string) {
	p.Drop.Fire(reason)
}
