package dice

import (
	"io"
	"testing"

	"github.com/rs/zerolog"

	"ccserver/internal/player"
	"ccserver/internal/server"
	"ccserver/internal/world"
)

func testServer(t *testing.T) *server.Server {
	t.Helper()
	w := &world.World{DimX: 2, DimY: 2, DimZ: 2, Data: make([]byte, 8)}
	return server.New(server.Config{Name: "t", MaxPlayers: 8}, w, zerolog.New(io.Discard))
}

func TestRollRejectsNonNumericArgument(t *testing.T) {
	s := testServer(t)
	plugin := New()
	if err := plugin.Register(s); err != nil {
		t.Fatal(err)
	}
	p := player.New("127.0.0.1")
	p.Name = "roller"
	if _, err := s.Players.Add(p); err != nil {
		t.Fatal(err)
	}

	plugin.rollCommand(s, p, []string{"notanumber"})

	select {
	case <-p.Outbound:
	default:
		t.Fatal("expected an error reply to be queued")
	}
}

func TestRollAnnouncesToAllPlayers(t *testing.T) {
	s := testServer(t)
	plugin := New()
	if err := plugin.Register(s); err != nil {
		t.Fatal(err)
	}
	roller := player.New("127.0.0.1")
	roller.Name = "roller"
	other := player.New("127.0.0.1")
	other.Name = "other"
	if _, err := s.Players.Add(roller); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Players.Add(other); err != nil {
		t.Fatal(err)
	}

	plugin.rollCommand(s, roller, []string{"6"})

	select {
	case <-roller.Outbound:
	default:
		t.Fatal("expected the roller to receive the announcement")
	}
	select {
	case <-other.Outbound:
	default:
		t.Fatal("expected other players to receive the announcement")
	}
}
