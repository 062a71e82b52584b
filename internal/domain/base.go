package domain

import "time"

type Event interface {
	Type() string
	PublishedAt() time.Time
}

// Aggregate accumulates domain events until the unit of work collects
// them after commit.
type Aggregate struct {
	events []Event
}

func (a *Aggregate) PushEvent(e Event) {
	a.events = append(a.events, e)
}

func (a *Aggregate) PopEvents() []Event {
	events := a.events
	a.events = nil
	return events
}
