// Package autocracy grants operator status and enforces a ban list,
// following pyccs's "Autocracy" plugin: when no operator list is
// configured at startup, every player connecting from loopback becomes an
// operator, and any player named on the ban list is dropped the moment
// they join.
package autocracy

import (
	"sync"

	"ccserver/internal/player"
	"ccserver/internal/server"
)

// Plugin grants operator status to loopback connections (until an
// explicit operator list is configured) and enforces a ban list.
type Plugin struct {
	mu         sync.Mutex
	operators  map[string]bool
	bans       map[string]bool
	loopbackOp bool
}

// New returns an unconfigured autocracy plugin: no operators, no bans,
// loopback-operator bootstrap enabled.
func New() *Plugin {
	return &Plugin{
		operators:  make(map[string]bool),
		bans:       make(map[string]bool),
		loopbackOp: true,
	}
}

func (p *Plugin) Name() string { return "Autocracy" }

func (p *Plugin) Register(s *server.Server) error {
	s.Starting.Connect(func(srv *server.Server) {
		p.mu.Lock()
		if len(p.operators) == 0 {
			srv.Logger.Warn().Msg("no operators configured; players connecting from 127.0.0.1 will be granted operator status")
		} else {
			p.loopbackOp = false
		}
		p.mu.Unlock()
	})

	s.PlayerAdded.Connect(func(pl *player.Player) {
		p.grantIfEligible(s, pl)
		p.enforceBan(s, pl)
	})

	if err := s.RegisterCommand(&server.Command{
		Name:   "op",
		OpOnly: true,
		Doc:    "op [player] - grants a player operator powers",
		Handler: func(s *server.Server, pl *player.Player, args []string) {
			p.opCommand(s, pl, args)
		},
	}); err != nil {
		return err
	}
	if err := s.RegisterCommand(&server.Command{
		Name:   "deop",
		OpOnly: true,
		Doc:    "deop [player] - removes operator powers from a player",
		Handler: func(s *server.Server, pl *player.Player, args []string) {
			p.deopCommand(s, pl, args)
		},
	}); err != nil {
		return err
	}
	if err := s.RegisterCommand(&server.Command{
		Name:   "ban",
		OpOnly: true,
		Doc:    "ban [player] - bans a player by name",
		Handler: func(s *server.Server, pl *player.Player, args []string) {
			p.banCommand(s, pl, args)
		},
	}); err != nil {
		return err
	}
	return s.RegisterCommand(&server.Command{
		Name:   "unban",
		OpOnly: true,
		Doc:    "unban [player] - removes a ban by name",
		Handler: func(s *server.Server, pl *player.Player, args []string) {
			p.unbanCommand(s, pl, args)
		},
	})
}

func (p *Plugin) grantIfEligible(s *server.Server, pl *player.Player) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loopbackOp {
		if pl.IP != "127.0.0.1" {
			return
		}
	} else if !p.operators[pl.Name] {
		return
	}
	pl.SetOp(true)
	s.SendMessage(pl, "Granted operator status")
	s.Logger.Info().Str("player", pl.String()).Msg("granted operator status")
}

func (p *Plugin) enforceBan(s *server.Server, pl *player.Player) {
	p.mu.Lock()
	banned := p.bans[pl.Name]
	p.mu.Unlock()
	if banned {
		s.Logger.Info().Str("player", pl.String()).Msg("banned player attempted to join")
		s.RemovePlayer(pl, "Banned")
	}
}

func (p *Plugin) opCommand(s *server.Server, pl *player.Player, args []string) {
	if len(args) != 1 {
		s.SendMessage(pl, "&cExpected 1 argument")
		return
	}
	target := s.GetPlayer(args[0])
	if target == nil {
		s.SendMessage(pl, "&cCan't find that player.")
		return
	}
	target.SetOp(true)
	p.mu.Lock()
	p.operators[target.Name] = true
	p.mu.Unlock()
	s.SendMessage(pl, "Made "+target.String()+" an operator!")
	s.SendMessage(target, "Granted operator status by "+pl.Name)
}

func (p *Plugin) deopCommand(s *server.Server, pl *player.Player, args []string) {
	if len(args) != 1 {
		s.SendMessage(pl, "&cExpected 1 argument")
		return
	}
	target := s.GetPlayer(args[0])
	if target == nil {
		s.SendMessage(pl, "&cCan't find that player.")
		return
	}
	target.SetOp(false)
	p.mu.Lock()
	delete(p.operators, target.Name)
	p.mu.Unlock()
	s.SendMessage(pl, "Deoped "+target.String())
	s.SendMessage(target, "You were deoped by "+pl.Name)
}

func (p *Plugin) banCommand(s *server.Server, pl *player.Player, args []string) {
	if len(args) != 1 {
		s.SendMessage(pl, "&cExpected 1 argument")
		return
	}
	target := s.GetPlayer(args[0])
	if target == nil {
		s.SendMessage(pl, "&cCan't find that player.")
		return
	}
	p.mu.Lock()
	p.bans[target.Name] = true
	p.mu.Unlock()
	s.SendMessage(pl, "Banished "+target.String())
	s.RemovePlayer(target, "Banned")
}

func (p *Plugin) unbanCommand(s *server.Server, pl *player.Player, args []string) {
	if len(args) != 1 {
		s.SendMessage(pl, "&cExpected 1 argument")
		return
	}
	name := args[0]
	p.mu.Lock()
	_, banned := p.bans[name]
	delete(p.bans, name)
	p.mu.Unlock()
	if !banned {
		s.SendMessage(pl, "&cNo bans on that player.")
		return
	}
	s.SendMessage(pl, "Unbanned "+name)
}
