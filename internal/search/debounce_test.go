package search

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func newTestDebouncer() (*Debouncer, *clockwork.FakeClock, chan func()) {
	clock := clockwork.NewFakeClock()
	calls := make(chan func(), 8)
	d := NewDebouncer(clock, DefaultDelay, func(fn func()) { calls <- fn })
	return d, clock, calls
}

func receive(t *testing.T, calls chan func()) func() {
	t.Helper()
	select {
	case fn := <-calls:
		return fn
	case <-time.After(time.Second):
		t.Fatal("debounced call was not dispatched")
		return nil
	}
}

func TestDebouncerFiresAfterQuietPeriod(t *testing.T) {
	d, clock, calls := newTestDebouncer()
	ran := 0
	d.Trigger(func() { ran++ })
	require.True(t, d.Pending())

	clock.Advance(299 * time.Millisecond)
	require.Never(t, func() bool { return len(calls) > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	clock.Advance(time.Millisecond)
	receive(t, calls)()
	require.Equal(t, 1, ran)
	require.False(t, d.Pending())
}

func TestDebouncerRestartsOnTrigger(t *testing.T) {
	d, clock, calls := newTestDebouncer()
	var got []string
	d.Trigger(func() { got = append(got, "a") })
	clock.Advance(200 * time.Millisecond)
	d.Trigger(func() { got = append(got, "ab") })
	clock.Advance(200 * time.Millisecond)
	require.Never(t, func() bool { return len(calls) > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	clock.Advance(100 * time.Millisecond)
	receive(t, calls)()
	require.Equal(t, []string{"ab"}, got)
}

func TestDebouncerCancel(t *testing.T) {
	t.Run("before the delay elapses", func(t *testing.T) {
		d, clock, calls := newTestDebouncer()
		d.Trigger(func() { t.Fatal("cancelled call ran") })
		d.Cancel()
		require.False(t, d.Pending())
		clock.Advance(time.Second)
		require.Never(t, func() bool { return len(calls) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
	})

	t.Run("after firing but before the dispatched call runs", func(t *testing.T) {
		d, clock, calls := newTestDebouncer()
		d.Trigger(func() { t.Fatal("cancelled call ran") })
		clock.Advance(DefaultDelay)
		fn := receive(t, calls)
		d.Cancel()
		fn()
	})

	t.Run("superseded after firing", func(t *testing.T) {
		d, clock, calls := newTestDebouncer()
		ran := ""
		d.Trigger(func() { ran = "first" })
		clock.Advance(DefaultDelay)
		stale := receive(t, calls)
		d.Trigger(func() { ran = "second" })
		stale()
		require.Empty(t, ran)

		clock.Advance(DefaultDelay)
		receive(t, calls)()
		require.Equal(t, "second", ran)
	})
}

func TestNewDebouncerDefaults(t *testing.T) {
	d := NewDebouncer(nil, 0, nil)
	require.Equal(t, DefaultDelay, d.delay)
	require.NotNil(t, d.clock)
	require.NotNil(t, d.dispatch)
}
