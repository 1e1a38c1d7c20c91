package sound

import "testing"

func TestQueueDrainReturnsNilWhenEmpty(t *testing.T) {
	q := NewQueue()
	if got := q.Drain(); got != nil {
		t.Fatalf("Drain on empty queue = %+v, want nil", got)
	}
}

func TestQueuePushDrainFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(Action{Kind: ActionStartMusic, MusicID: 1})
	q.Push(Action{Kind: ActionStartMusic, MusicID: 2})

	got := q.Drain()
	if len(got) != 2 || got[0].MusicID != 1 || got[1].MusicID != 2 {
		t.Fatalf("Drain = %+v, want FIFO [1, 2]", got)
	}
	if second := q.Drain(); second != nil {
		t.Fatalf("second Drain = %+v, want nil (already drained)", second)
	}
}
