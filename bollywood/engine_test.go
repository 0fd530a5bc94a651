// File: bollywood/engine_test.go
package bollywood

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct{ n int }

type question struct{}

type recorder struct {
	mu       sync.Mutex
	received []interface{}
	done     chan struct{}
}

func newRecorder() *recorder { return &recorder{done: make(chan struct{})} }

func (r *recorder) Receive(ctx Context) {
	r.mu.Lock()
	r.received = append(r.received, ctx.Message())
	r.mu.Unlock()

	switch msg := ctx.Message().(type) {
	case question:
		ctx.Reply("answer")
	case ping:
		if msg.n < 0 {
			panic("negative ping")
		}
	case Stopped:
		close(r.done)
	}
}

func (r *recorder) messages() []interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]interface{}(nil), r.received...)
}

func TestEngineLifecycle(t *testing.T) {
	engine := NewEngine()
	rec := newRecorder()
	pid := engine.Spawn(NewProps(func() Actor { return rec }))
	require.NotNil(t, pid)

	engine.Send(pid, ping{1}, nil)
	engine.Send(pid, ping{2}, nil)
	_, err := engine.Ask(pid, question{}, time.Second)
	require.NoError(t, err)

	engine.Stop(pid)
	select {
	case <-rec.done:
	case <-time.After(time.Second):
		t.Fatal("actor did not stop")
	}

	msgs := rec.messages()
	require.GreaterOrEqual(t, len(msgs), 5)
	assert.Equal(t, Started{}, msgs[0])
	assert.Equal(t, ping{1}, msgs[1])
	assert.Equal(t, ping{2}, msgs[2])
	assert.Equal(t, question{}, msgs[3])
	assert.Equal(t, Stopped{}, msgs[len(msgs)-1])
	assert.Contains(t, msgs, Stopping{})

	assert.Eventually(t, func() bool { return engine.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestEngineAsk(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)
	pid := engine.Spawn(NewProps(func() Actor { return newRecorder() }))

	reply, err := engine.Ask(pid, question{}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "answer", reply)

	_, err = engine.Ask(pid, ping{1}, 20*time.Millisecond)
	assert.True(t, errors.Is(err, ErrTimeout))

	_, err = engine.Ask(&PID{ID: "actor-missing"}, question{}, time.Second)
	assert.True(t, errors.Is(err, ErrActorNotFound))
}

func TestEngineRecoversPanics(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)
	pid := engine.Spawn(NewProps(func() Actor { return newRecorder() }))

	engine.Send(pid, ping{-1}, nil)
	reply, err := engine.Ask(pid, question{}, time.Second)
	require.NoError(t, err, "actor keeps running after a panic")
	assert.Equal(t, "answer", reply)
}

func TestEngineShutdown(t *testing.T) {
	engine := NewEngine()
	recorders := []*recorder{newRecorder(), newRecorder(), newRecorder()}
	for _, rec := range recorders {
		rec := rec
		engine.Spawn(NewProps(func() Actor { return rec }))
	}

	engine.Shutdown(time.Second)

	assert.Equal(t, 0, engine.Len())
	assert.Nil(t, engine.Spawn(NewProps(func() Actor { return newRecorder() })))
	_, err := engine.Ask(&PID{ID: "actor-1"}, question{}, time.Second)
	assert.True(t, errors.Is(err, ErrEngineStopping))
	for _, rec := range recorders {
		select {
		case <-rec.done:
		case <-time.After(time.Second):
			t.Fatal("actor did not receive Stopped")
		}
	}
}

func TestNewPropsPanicsOnNilProducer(t *testing.T) {
	assert.Panics(t, func() { NewProps(nil) })
	props := NewProps(func() Actor { return newRecorder() }).WithMailboxSize(4)
	assert.Equal(t, 4, props.mailboxSize)
	assert.Equal(t, "<nil>", (*PID)(nil).String())
}
