package server

import (
	"fmt"
	"strings"

	"ccserver/internal/player"
)

// CommandHandler implements a chat slash-command. It always runs on the
// dispatcher goroutine, same as packet handling and plugin callbacks.
type CommandHandler func(s *Server, p *player.Player, args []string)

// Command is one registered slash-command.
type Command struct {
	Name    string
	Aliases []string
	OpOnly  bool
	Doc     string
	Handler CommandHandler
}

// ErrCommandExists is returned by RegisterCommand when name or one of its
// aliases is already taken; the first registrant wins.
var ErrCommandExists = fmt.Errorf("server: command already registered")

// RegisterCommand adds cmd under its name and every alias. It fails
// without registering anything if any of those names are already taken.
func (s *Server) RegisterCommand(cmd *Command) error {
	names := append([]string{cmd.Name}, cmd.Aliases...)
	for _, n := range names {
		if _, exists := s.commands[n]; exists {
			return fmt.Errorf("%w: %s", ErrCommandExists, n)
		}
	}
	for _, n := range names {
		s.commands[n] = cmd
	}
	return nil
}

// runCommand parses "name arg1 arg2 ..." out of a chat message body (the
// part after the leading '/') and dispatches it. Must only be called on
// the dispatcher goroutine.
func (s *Server) runCommand(p *player.Player, body string) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		s.SendMessage(p, "&cNo command given")
		return
	}
	name, args := fields[0], fields[1:]

	cmd, ok := s.commands[name]
	if !ok {
		s.SendMessage(p, fmt.Sprintf("&cUnknown command '%s'", name))
		return
	}
	if cmd.OpOnly && !p.Op() {
		s.SendMessage(p, "&cYou are not an operator")
		return
	}
	cmd.Handler(s, p, args)
}

// Commands returns every distinct registered command, in no particular
// order (a command registered under N aliases appears once). Used by the
// help plugin.
func (s *Server) Commands() []*Command {
	seen := make(map[*Command]bool, len(s.commands))
	out := make([]*Command, 0, len(s.commands))
	for _, cmd := range s.commands {
		if seen[cmd] {
			continue
		}
		seen[cmd] = true
		out = append(out, cmd)
	}
	return out
}
