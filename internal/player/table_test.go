package player

import "testing"

func TestAddAssignsLowestFreeSlot(t *testing.T) {
	var table Table
	a := New("127.0.0.1")
	b := New("127.0.0.1")

	id, err := table.Add(a)
	if err != nil || id != 0 {
		t.Fatalf("expected slot 0, got %d err %v", id, err)
	}
	id, err = table.Add(b)
	if err != nil || id != 1 {
		t.Fatalf("expected slot 1, got %d err %v", id, err)
	}

	table.Remove(a)
	c := New("127.0.0.1")
	id, err = table.Add(c)
	if err != nil || id != 0 {
		t.Fatalf("expected freed slot 0 reused, got %d err %v", id, err)
	}
}

func TestAddReturnsServerFullAtCapacity(t *testing.T) {
	var table Table
	for i := 0; i < MaxPlayers; i++ {
		if _, err := table.Add(New("127.0.0.1")); err != nil {
			t.Fatalf("unexpected error filling table: %v", err)
		}
	}
	if _, err := table.Add(New("127.0.0.1")); err != ErrServerFull {
		t.Fatalf("expected ErrServerFull, got %v", err)
	}
}

func TestGetByName(t *testing.T) {
	var table Table
	p := New("127.0.0.1")
	p.Name = "jacob"
	if _, err := table.Add(p); err != nil {
		t.Fatal(err)
	}
	if got := table.GetByName("jacob"); got != p {
		t.Fatal("expected to find player by name")
	}
	if got := table.GetByName("nobody"); got != nil {
		t.Fatal("expected nil for unknown name")
	}
}

func TestDropLatchFiresOnce(t *testing.T) {
	d := NewDropLatch()
	d.Fire("first")
	d.Fire("second")
	if d.Reason() != "first" {
		t.Fatalf("expected first reason to win, got %q", d.Reason())
	}
}
