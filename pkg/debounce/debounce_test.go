package debounce

import (
	"sync"
	"testing"
	"time"
)

// collector records every invocation the debouncer lets through.
type collector struct {
	mu   sync.Mutex
	got  []string
	done chan struct{}
}

func newCollector() *collector {
	return &collector{done: make(chan struct{}, 16)}
}

func (c *collector) record(v string) {
	c.mu.Lock()
	c.got = append(c.got, v)
	c.mu.Unlock()
	c.done <- struct{}{}
}

func (c *collector) values() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.got...)
}

func TestDebouncer_BurstCollapsesToLastValue(t *testing.T) {
	c := newCollector()
	d := New(c.record, 30*time.Millisecond)

	d.Call("g")
	d.Call("go")
	d.Call("gol")
	d.Call("gola")
	d.Call("golang")

	select {
	case <-c.done:
	case <-time.After(time.Second):
		t.Fatal("debounced function never fired")
	}

	got := c.values()
	if len(got) != 1 {
		t.Fatalf("expected exactly one invocation, got %d: %v", len(got), got)
	}
	if got[0] != "golang" {
		t.Errorf("expected last argument %q, got %q", "golang", got[0])
	}
}

func TestDebouncer_TimerResetsOnEveryCall(t *testing.T) {
	c := newCollector()
	d := New(c.record, 50*time.Millisecond)

	// Keep calling inside the quiet period; nothing may fire meanwhile.
	for i := 0; i < 4; i++ {
		d.Call("tick")
		time.Sleep(20 * time.Millisecond)
		if n := len(c.values()); n != 0 {
			t.Fatalf("fired during active burst after %d calls", i+1)
		}
	}

	select {
	case <-c.done:
	case <-time.After(time.Second):
		t.Fatal("debounced function never fired after burst ended")
	}
	if n := len(c.values()); n != 1 {
		t.Errorf("expected one invocation after quiet period, got %d", n)
	}
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	c := newCollector()
	d := New(c.record, 20*time.Millisecond)

	d.Call("first")
	<-c.done
	d.Call("second")
	<-c.done

	got := c.values()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("expected [first second], got %v", got)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	c := newCollector()
	d := New(c.record, 20*time.Millisecond)

	d.Call("doomed")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if n := len(c.values()); n != 0 {
		t.Errorf("expected no invocation after Stop, got %d", n)
	}

	// Stop does not kill the debouncer for good.
	d.Call("after-stop")
	select {
	case <-c.done:
	case <-time.After(time.Second):
		t.Fatal("debouncer dead after Stop")
	}
	got := c.values()
	if len(got) != 1 || got[0] != "after-stop" {
		t.Errorf("expected [after-stop], got %v", got)
	}
}
