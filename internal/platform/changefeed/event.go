// Package changefeed delivers asynchronous "something changed" events for
// the account and course tables to in-process subscribers.
package changefeed

import (
	"context"
	"time"
)

type Collection string

const (
	CollectionAccount Collection = "account"
	CollectionCourse  Collection = "course"
)

type Operation string

const (
	OperationInsert Operation = "insert"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Event reports a committed write. It carries no row data: subscribers are
// expected to recompute from the store.
type Event struct {
	Collection Collection `json:"collection"`
	Operation  Operation  `json:"operation"`
	Timestamp  int64      `json:"timestamp"`
}

func NewEvent(c Collection, op Operation) Event {
	return Event{Collection: c, Operation: op, Timestamp: time.Now().UnixMilli()}
}

// Handler is invoked once per event, never concurrently with itself.
type Handler func(ctx context.Context, event Event)

// Publisher is the write side used by the store callbacks.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus fans events out to subscribed handlers.
type Bus interface {
	Publisher
	Subscribe(handler Handler)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
