package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (s *captureSink) Record(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink indisponível")
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *captureSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &captureSink{}
	d := NewDispatcher(sink)
	defer d.Close()

	d.Dispatch(Event{Action: ActionCreateVisitor, Details: "primeiro"})
	d.Dispatch(Event{Action: ActionCheckOutVisitor, Details: "segundo"})
	d.Flush()

	require.Equal(t, 2, sink.count())
	assert.Equal(t, "primeiro", sink.events[0].Details)
	assert.Equal(t, "segundo", sink.events[1].Details)
}

// Falha de persistência da auditoria não pode vazar para quem despacha.
func TestDispatcherSwallowsSinkFailure(t *testing.T) {
	sink := &captureSink{fail: true}
	d := NewDispatcher(sink)
	defer d.Close()

	d.Dispatch(Event{Action: ActionLogin})
	d.Flush()

	assert.Equal(t, 0, sink.count())

	// o dispatcher continua vivo depois do erro
	sink.mu.Lock()
	sink.fail = false
	sink.mu.Unlock()

	d.Dispatch(Event{Action: ActionLogout})
	d.Flush()

	assert.Equal(t, 1, sink.count())
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&captureSink{})
	d.Dispatch(Event{Action: ActionRegister})
	d.Close()
	d.Close()
}
