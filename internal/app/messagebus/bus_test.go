package messagebus

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ndudarev/go_fitness_backend/internal/domain"
)

type stubEvent struct {
	kind string
	at   time.Time
}

func (e stubEvent) Type() string           { return e.kind }
func (e stubEvent) PublishedAt() time.Time { return e.at }

func TestMessageBus_DispatchesToRegisteredHandlers(t *testing.T) {
	bus := New(slog.Default())

	var mu sync.Mutex
	var handled []string

	bus.Register("workout.recorded", func(event domain.Event) error {
		mu.Lock()
		handled = append(handled, event.Type())
		mu.Unlock()
		return nil
	})

	err := bus.PublishEvents(
		stubEvent{kind: "workout.recorded", at: time.Now()},
		stubEvent{kind: "athlete.created", at: time.Now()},
	)
	require.NoError(t, err)

	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"workout.recorded"}, handled)
}

func TestMessageBus_AllHandlersOfTypeRun(t *testing.T) {
	bus := New(slog.Default())

	var mu sync.Mutex
	count := 0
	handler := func(event domain.Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	}

	bus.Register("athlete.login", handler)
	bus.Register("athlete.login", handler)

	require.NoError(t, bus.PublishEvents(stubEvent{kind: "athlete.login", at: time.Now()}))
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 2, count)
}
