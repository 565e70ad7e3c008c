package server

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"ccserver/internal/player"
	"ccserver/internal/protocol"
	"ccserver/internal/world"
)

func testServer() *Server {
	w := &world.World{DimX: 4, DimY: 4, DimZ: 4, Data: make([]byte, 64)}
	return New(Config{Name: "test", MOTD: "motd", Addr: ":0", MaxPlayers: 4}, w, zerolog.New(io.Discard))
}

func drainOne(t *testing.T, p *player.Player) []byte {
	t.Helper()
	select {
	case frame := <-p.Outbound:
		return frame
	default:
		t.Fatal("expected a queued outbound frame")
		return nil
	}
}

func TestRegisterCommandRejectsDuplicateName(t *testing.T) {
	s := testServer()
	cmd := &Command{Name: "roll", Handler: func(*Server, *player.Player, []string) {}}
	if err := s.RegisterCommand(cmd); err != nil {
		t.Fatal(err)
	}
	if err := s.RegisterCommand(&Command{Name: "roll", Handler: cmd.Handler}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestRunCommandRejectsNonOperator(t *testing.T) {
	s := testServer()
	called := false
	_ = s.RegisterCommand(&Command{
		Name:   "op",
		OpOnly: true,
		Handler: func(*Server, *player.Player, []string) {
			called = true
		},
	})
	p := player.New("127.0.0.1")
	s.runCommand(p, "op target")
	if called {
		t.Fatal("op-only command should not run for a non-operator")
	}
	frame := drainOne(t, p)
	if len(frame) == 0 {
		t.Fatal("expected an error reply")
	}
}

func TestRunCommandUnknownName(t *testing.T) {
	s := testServer()
	p := player.New("127.0.0.1")
	s.runCommand(p, "nonexistent")
	drainOne(t, p)
}

func TestAuthenticatedMatchesSaltedMD5(t *testing.T) {
	salt := "abc123"
	username := "jacob"
	sum := md5.Sum([]byte(salt + username))
	expected := hex.EncodeToString(sum[:])

	if !authenticated(username, expected, salt) {
		t.Fatal("expected correctly salted hash to authenticate")
	}
	if authenticated(username, "wrong", salt) {
		t.Fatal("expected mismatched hash to fail")
	}
}

func TestRelayToOthersSkipsSender(t *testing.T) {
	s := testServer()
	sender := player.New("127.0.0.1")
	sender.Name = "sender"
	other := player.New("127.0.0.1")
	other.Name = "other"
	if _, err := s.Players.Add(sender); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Players.Add(other); err != nil {
		t.Fatal(err)
	}

	s.relayToOthers(sender, protocol.NewChatMessage(0, "hi"))

	select {
	case <-sender.Outbound:
		t.Fatal("sender should not receive its own relayed packet")
	default:
	}
	drainOne(t, other)
}

func TestHandleSetBlockUpdatesWorldAndBroadcasts(t *testing.T) {
	s := testServer()
	p := player.New("127.0.0.1")
	if _, err := s.Players.Add(p); err != nil {
		t.Fatal(err)
	}

	pkt := protocol.DescClientSetBlock.New()
	pkt.Values["pos"] = protocol.Position{X: 1, Y: 1, Z: 1}
	pkt.Values["mode"] = uint8(1)
	pkt.Values["block"] = uint8(0x01)

	s.handleSetBlock(p, pkt)

	if s.World.Data[s.World.DimX+1+1*(s.World.DimX*s.World.DimZ)] != 0x01 {
		t.Fatal("expected block to be written into world")
	}
	drainOne(t, p)
}
