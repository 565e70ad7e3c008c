package server

import (
	"errors"
	"io"
	"net"
	"time"

	"ccserver/internal/player"
	"ccserver/internal/protocol"
)

// ClientPacket pairs a decoded wire packet with the descriptor it was
// decoded against, so handlers can dispatch on descriptor identity rather
// than re-inspecting the raw ID byte.
type ClientPacket = protocol.Packet

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	attempt := 0
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			attempt++
			s.Logger.Warn().Err(err).Msg("accept failed")
			time.Sleep(maxBackoff(attempt))
			continue
		}
		attempt = 0
		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// handleConnection runs a player's inbound and outbound tasks until its
// drop latch fires, then tears down the socket. Exactly one of {peer
// closed, server drop, codec error} fires the latch (spec §5).
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	host, _, _ := net.SplitHostPort(conn.RemoteAddr().String())
	p := player.New(host)
	s.Logger.Debug().Str("ip", host).Msg("incoming connection")

	go s.inboundLoop(conn, p)
	go s.outboundLoop(conn, p)

	reason := p.Drop.Reason()
	s.Logger.Info().Str("player", p.String()).Str("reason", reason).Msg("connection closed")

	s.dispatch(func() {
		if p.PlayerID != player.NoID {
			s.removePlayerLocked(p, reason)
		}
	})
}

// inboundLoop reads framed packets until the connection errs or the drop
// latch fires, forwarding each to the dispatcher for handling.
func (s *Server) inboundLoop(conn net.Conn, p *player.Player) {
	for {
		pkt, err := protocol.ReadClientPacket(conn)
		if err != nil {
			reason := "Disconnected"
			switch {
			case errors.Is(err, io.EOF):
				// keep "Disconnected"
			case errors.Is(err, protocol.ErrInvalidPacket), errors.Is(err, protocol.ErrUnknownPacketID):
				reason = "protocol error"
				s.Logger.Error().Err(err).Str("player", p.String()).Msg("protocol error")
			default:
				reason = err.Error()
			}
			p.Drop.Fire(reason)
			return
		}
		s.dispatch(func() {
			s.handlePacket(p, pkt)
		})
		select {
		case <-p.Drop.Done():
			return
		default:
		}
	}
}

// outboundLoop drains p's outbound queue to the socket until the drop
// latch fires. It keeps draining whatever is already queued even after
// the latch fires, matching the original's "cancel, then flush what's
// pending" shutdown order.
func (s *Server) outboundLoop(conn net.Conn, p *player.Player) {
	for {
		select {
		case frame := <-p.Outbound:
			if _, err := conn.Write(frame); err != nil {
				p.Drop.Fire(err.Error())
				return
			}
		case <-p.Drop.Done():
			for {
				select {
				case frame := <-p.Outbound:
					_, _ = conn.Write(frame)
				default:
					return
				}
			}
		}
	}
}
