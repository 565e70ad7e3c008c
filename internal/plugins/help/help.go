// Package help adds a "/help" command that lists every registered
// command, itself included. spec.md names "help" as an example third-party plugin
// alongside autocracy and dice; pyccs itself ships no such plugin, so this
// one is new, built against the same server.Plugin surface as the others.
package help

import (
	"sort"
	"strings"

	"ccserver/internal/player"
	"ccserver/internal/server"
)

// Plugin adds a "/help" command listing every registered command name.
type Plugin struct{}

// New returns a help plugin.
func New() *Plugin { return &Plugin{} }

func (p *Plugin) Name() string { return "Help" }

func (p *Plugin) Register(s *server.Server) error {
	return s.RegisterCommand(&server.Command{
		Name: "help",
		Doc:  "help - lists available commands",
		Handler: func(s *server.Server, pl *player.Player, args []string) {
			helpCommand(s, pl)
		},
	})
}

func helpCommand(s *server.Server, pl *player.Player) {
	cmds := s.Commands()
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	s.SendMessage(pl, "Commands: "+strings.Join(names, ", "))
}
