package server

import "fmt"

// Plugin is a self-contained unit of server behavior: a set of commands
// and/or event subscriptions registered against a Server at startup. This
// mirrors the original's Plugin/callback-registry split, collapsed into
// one interface since Go has no dynamic module loading to speak of.
type Plugin interface {
	Name() string
	Register(s *Server) error
}

// ErrPluginExists is returned by RegisterPlugin when a plugin with the
// same Name is already registered.
var ErrPluginExists = fmt.Errorf("server: plugin already registered")

// RegisterPlugin runs p.Register against s. Should be called before
// Start: Start fires Starting exactly once, so a plugin registered after
// Start never sees that event.
func (s *Server) RegisterPlugin(p Plugin) error {
	for _, existing := range s.plugins {
		if existing.Name() == p.Name() {
			return fmt.Errorf("%w: %s", ErrPluginExists, p.Name())
		}
	}
	if err := p.Register(s); err != nil {
		return fmt.Errorf("server: registering plugin %s: %w", p.Name(), err)
	}
	s.plugins = append(s.plugins, p)
	s.Logger.Info().Str("plugin", p.Name()).Msg("registered plugin")
	return nil
}
