package autocracy

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

func drain(t *testing.T, p *player.Player) string {
	t.Helper()
	select {
	case <-p.Outbound:
		return "got a message"
	default:
		t.Fatal("expected a reply")
		return ""
	}
}

func TestLoopbackPlayerGrantedOperator(t *testing.T) {
	s := testServer(t)
	plugin := New()
	if err := plugin.Register(s); err != nil {
		t.Fatal(err)
	}
	s.Starting.Fire(s)

	p := player.New("127.0.0.1")
	p.Name = "local"
	s.PlayerAdded.Fire(p)

	if !p.Op() {
		t.Fatal("expected loopback connection to be granted operator status")
	}
	drain(t, p)
}

func TestRemotePlayerNotGrantedOperator(t *testing.T) {
	s := testServer(t)
	plugin := New()
	if err := plugin.Register(s); err != nil {
		t.Fatal(err)
	}
	s.Starting.Fire(s)

	p := player.New("203.0.113.5")
	p.Name = "remote"
	s.PlayerAdded.Fire(p)

	if p.Op() {
		t.Fatal("non-loopback connection should not be granted operator status")
	}
}

func TestBannedPlayerIsRemoved(t *testing.T) {
	s := testServer(t)
	plugin := New()
	plugin.bans["bad"] = true
	if err := plugin.Register(s); err != nil {
		t.Fatal(err)
	}

	p := player.New("203.0.113.5")
	p.Name = "bad"
	s.PlayerAdded.Fire(p)

	select {
	case <-p.Drop.Done():
	default:
		t.Fatal("expected banned player's drop latch to fire")
	}
	if p.Drop.Reason() != "Banned" {
		t.Fatalf("expected Banned reason, got %q", p.Drop.Reason())
	}
}
