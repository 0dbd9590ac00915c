package events

import "context"

// Subscriber is the read side of the change feed.
// Presentation code depends on this rather than on *Feed.
type Subscriber interface {
	// Subscribe registers a new subscriber. The returned subscription already
	// holds the current snapshot.
	Subscribe(ctx context.Context) (*Subscription, error)
}

// Publisher is the write side of the change feed, called by the store after
// every committed mutation.
type Publisher interface {
	Publish(ctx context.Context)
}

// Compile-time verification that *Feed implements both sides
var (
	_ Subscriber = (*Feed)(nil)
	_ Publisher  = (*Feed)(nil)
)
