package server

import (
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"

	"ccserver/internal/player"
	"ccserver/internal/protocol"
	"ccserver/internal/world"
)

// handlePacket routes a decoded client packet to its handler. It always
// runs on the dispatcher goroutine (called only from inside dispatch).
func (s *Server) handlePacket(p *player.Player, pkt *protocol.Packet) {
	s.IncomingPacket.Fire(IncomingPacket{Player: p, Packet: pkt})

	switch pkt.Descriptor {
	case protocol.DescPlayerIdentification:
		s.handleIdentification(p, pkt)
	case protocol.DescClientSetBlock:
		s.handleSetBlock(p, pkt)
	case protocol.DescPositionUpdate:
		s.handlePositionUpdate(p, pkt)
	case protocol.DescChatMessage:
		s.handleChatMessage(p, pkt)
	}
}

func (s *Server) handleIdentification(p *player.Player, pkt *protocol.Packet) {
	p.Name = pkt.Str("username")
	p.MPPass = pkt.Str("mp_pass")

	if s.cfg.VerifyNames && !authenticated(p.Name, p.MPPass, s.Salt) {
		p.Drop.Fire("Could not authenticate user.")
		return
	}

	userType := protocol.UserTypeNormal
	if p.Op() {
		userType = protocol.UserTypeOperator
	}
	s.sendPacket(p, protocol.NewServerIdentification(s.cfg.Name, s.cfg.MOTD, userType))

	if s.Players.Len() >= s.cfg.MaxPlayers {
		s.sendPacket(p, protocol.NewDisconnect("Server full"))
		p.Drop.Fire("Server full")
		return
	}

	if _, err := s.Players.Add(p); err != nil {
		s.sendPacket(p, protocol.NewDisconnect("Server full"))
		p.Drop.Fire("Server full")
		return
	}

	p.Position = s.World.Spawn
	s.beginLevelTransfer(p)
}

// authenticated matches the original's name-verification scheme: md5(salt
// + username) must equal the client-supplied mp_pass.
func authenticated(username, mpPass, salt string) bool {
	sum := md5.Sum([]byte(salt + username))
	return hex.EncodeToString(sum[:]) == mpPass
}

// beginLevelTransfer streams the world to a freshly authenticated player.
// Compression runs off the dispatcher goroutine so a large level doesn't
// stall every other player's packet processing; the compressed chunks are
// handed back to the dispatcher as a continuation closure, preserving this
// player's send order against anything else queued for them meanwhile.
func (s *Server) beginLevelTransfer(p *player.Player) {
	w := s.World
	go func() {
		payload := world.Payload(w)
		compressed, err := world.Compress(payload, gzip.DefaultCompression)
		if err != nil {
			s.Logger.Error().Err(err).Str("player", p.String()).Msg("level compression failed")
			s.dispatch(func() { p.Drop.Fire("Level generation failed") })
			return
		}
		chunks := world.Chunks(compressed)
		s.dispatch(func() {
			s.sendLevel(p, w, chunks)
		})
	}()
}

func (s *Server) sendLevel(p *player.Player, w *world.World, chunks []world.Chunk) {
	s.sendPacket(p, protocol.NewLevelInitialize())
	for _, c := range chunks {
		s.sendPacket(p, protocol.NewLevelDataChunk(c.Data, c.Length, c.Percent))
	}
	s.sendPacket(p, protocol.NewLevelFinalize(w.Size()))

	s.relayExistingPlayersTo(p)

	s.PlayerAdded.Fire(p)
	s.Logger.Info().Str("player", p.String()).Msg("player joined")

	s.relayNewPlayerToOthers(p)
	s.sendPacket(p, protocol.NewSpawnPlayer(player.NoID, p.Name, w.Spawn))
	s.announce(p.Name + " joined")
}

func (s *Server) relayExistingPlayersTo(to *player.Player) {
	s.Players.Range(func(other *player.Player) {
		if other == to {
			return
		}
		s.sendPacket(to, protocol.NewSpawnPlayer(other.PlayerID, other.Name, other.GetPosition()))
	})
}

func (s *Server) relayNewPlayerToOthers(p *player.Player) {
	pkt := protocol.NewSpawnPlayer(p.PlayerID, p.Name, p.GetPosition())
	s.relayToOthers(p, pkt)
}

func (s *Server) handleSetBlock(p *player.Player, pkt *protocol.Packet) {
	pos := pkt.Pos("pos")
	block := pkt.UByte("block")
	if pkt.UByte("mode") != 1 {
		block = 0
	}
	s.World.SetBlock(pos, block)
	s.relayToAll(p, protocol.NewServerSetBlock(pos, block))
}

func (s *Server) handlePositionUpdate(p *player.Player, pkt *protocol.Packet) {
	p.SetPosition(pkt.Pos("position"))
	s.relayToOthers(p, protocol.NewPositionUpdate(p.PlayerID, pkt.Pos("position")))
}

func (s *Server) handleChatMessage(p *player.Player, pkt *protocol.Packet) {
	text := pkt.Str("message")
	if len(text) > 0 && text[0] == '/' {
		s.runCommand(p, text[1:])
		return
	}
	formatted := p.Name + ": " + text
	s.relayToAll(p, protocol.NewChatMessage(p.PlayerID, formatted))
}

// removePlayerLocked releases p's slot and announces its departure. Must
// only be called on the dispatcher goroutine.
func (s *Server) removePlayerLocked(p *player.Player, reason string) {
	s.PlayerRemoving.Fire(PlayerRemoval{Player: p, Reason: reason})
	s.relayToOthers(p, protocol.NewDespawnPlayer(p.PlayerID))
	s.announce(p.Name + " left (" + reason + ")")
	s.Players.Remove(p)
}
