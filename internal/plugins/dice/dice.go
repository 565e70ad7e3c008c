// Package dice implements the "/roll" chat command, a direct port of
// pyccs's DiceGames example plugin.
package dice

import (
	"fmt"
	"math/rand"
	"strconv"

	"ccserver/internal/player"
	"ccserver/internal/server"
)

// Plugin adds a "/roll [sides]" command that announces a random roll.
type Plugin struct {
	Color string
}

// New returns a dice plugin using pyccs's default chat color code.
func New() *Plugin {
	return &Plugin{Color: "b"}
}

func (p *Plugin) Name() string { return "DiceGames" }

func (p *Plugin) Register(s *server.Server) error {
	return s.RegisterCommand(&server.Command{
		Name: "roll",
		Doc:  "roll [sides] - rolls a die, defaulting to 20 sides",
		Handler: func(s *server.Server, pl *player.Player, args []string) {
			p.rollCommand(s, pl, args)
		},
	})
}

func (p *Plugin) rollCommand(s *server.Server, pl *player.Player, args []string) {
	sides := 20
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			s.SendMessage(pl, "&aExpected a number as first argument")
			return
		}
		sides = n
	}
	if sides <= 0 {
		s.SendMessage(pl, "&aExpected a number as first argument")
		return
	}
	roll := rand.Intn(sides) + 1
	s.Announce(fmt.Sprintf("&%s%s rolled a %d", p.Color, pl.Name, roll))
}
