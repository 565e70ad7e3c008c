// Package server implements the Classic Protocol v7 game server: a
// single dispatcher goroutine owns the player table and world and
// processes every mutation through it, while one inbound and one
// outbound goroutine per connection handle socket I/O.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ccserver/internal/event"
	"ccserver/internal/player"
	"ccserver/internal/world"
)

// Config holds the values a deployment sets before calling New.
type Config struct {
	Name        string
	MOTD        string
	Addr        string // listen address, e.g. ":25565"
	MaxPlayers  int
	VerifyNames bool
}

// Server is a running Classic Protocol server. Players and World are only
// ever touched from the dispatcher loop that Start runs; every other
// goroutine reaches them by sending a closure through dispatch.
type Server struct {
	cfg    Config
	Salt   string
	World  *world.World
	Logger zerolog.Logger

	Players player.Table

	Starting       event.Event[*Server]
	Shutdown       event.Event[*Server]
	PlayerAdded    event.Event[*player.Player]
	PlayerRemoving event.Event[PlayerRemoval]
	IncomingPacket event.Event[IncomingPacket]

	plugins  []Plugin
	commands map[string]*Command

	actor    chan func()
	listener net.Listener
	wg       sync.WaitGroup

	mu      sync.Mutex
	running bool
}

// PlayerRemoval is the argument fired on PlayerRemoving: the player being
// dropped and why.
type PlayerRemoval struct {
	Player *player.Player
	Reason string
}

// IncomingPacket is the argument fired on IncomingPacket: a parsed client
// packet and the player it arrived from.
type IncomingPacket struct {
	Player *player.Player
	Packet *ClientPacket
}

// New builds an unstarted Server. Callers register plugins and commands
// before calling Start.
func New(cfg Config, w *world.World, logger zerolog.Logger) *Server {
	if cfg.MaxPlayers <= 0 || cfg.MaxPlayers > player.MaxPlayers {
		cfg.MaxPlayers = player.MaxPlayers
	}
	return &Server{
		cfg:      cfg,
		Salt:     generateSalt(),
		World:    w,
		Logger:   logger,
		commands: make(map[string]*Command),
		actor:    make(chan func(), 64),
	}
}

func generateSalt() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; there is
		// nothing sensible to fall back to for an auth secret.
		panic(fmt.Errorf("server: generating salt: %w", err))
	}
	return hex.EncodeToString(buf)
}

// dispatch runs fn on the dispatcher goroutine and waits for it to finish.
// Every read or write of Players/World from outside the dispatcher must go
// through this (spec §5 "mutated only from the event loop").
func (s *Server) dispatch(fn func()) {
	done := make(chan struct{})
	s.actor <- func() {
		fn()
		close(done)
	}
	<-done
}

// Running reports whether Start has been called and Stop has not.
func (s *Server) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start begins listening and runs the dispatcher loop until Stop is
// called or ctx is cancelled. It blocks until shutdown completes.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}
	s.listener = listener

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	s.Starting.Fire(s)
	s.Logger.Info().Str("addr", s.cfg.Addr).Msg("server started")

	s.wg.Add(1)
	go s.acceptLoop()

	s.wg.Add(1)
	go s.keepAliveLoop()

	go func() {
		<-ctx.Done()
		s.Stop("Server shutting down")
	}()

	for fn := range s.actor {
		fn()
	}
	s.wg.Wait()
	return nil
}

// Stop fires the Shutdown event, drops every connected player with
// reason, and stops accepting new connections. It blocks until every
// connection has finished tearing down, then closes the dispatcher
// channel so Start returns.
func (s *Server) Stop(reason string) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	s.dispatch(func() { s.Shutdown.Fire(s) })
	_ = s.listener.Close()

	s.dispatch(func() {
		s.Players.Range(func(p *player.Player) {
			p.Drop.Fire(reason)
		})
	})

	// acceptLoop, keepAliveLoop and every handleConnection goroutine still
	// need the dispatcher loop (running on Start's goroutine) to service
	// their closures as they wind down; only close the channel once wg
	// confirms none of them will send again.
	s.wg.Wait()
	close(s.actor)
}

func maxBackoff(attempt int) time.Duration {
	d := time.Duration(attempt) * 50 * time.Millisecond
	if d > time.Second {
		return time.Second
	}
	return d
}
