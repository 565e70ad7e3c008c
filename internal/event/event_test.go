package event

import "testing"

func TestFireRunsInOrder(t *testing.T) {
	var e Event[int]
	var order []int
	e.Connect(func(v int) { order = append(order, v*10+1) })
	e.Connect(func(v int) { order = append(order, v*10+2) })
	e.Fire(5)
	if len(order) != 2 || order[0] != 51 || order[1] != 52 {
		t.Fatalf("got %v", order)
	}
}

func TestDisconnectIsPrunedLazily(t *testing.T) {
	var e Event[int]
	calls := 0
	h := e.Connect(func(int) { calls++ })
	e.Connect(func(int) { calls++ })
	h.Disconnect()
	e.Fire(1)
	if calls != 1 {
		t.Fatalf("expected 1 call after disconnect, got %d", calls)
	}
	if len(e.subs) != 1 {
		t.Fatalf("expected disconnected subscriber pruned, subs=%d", len(e.subs))
	}
}
