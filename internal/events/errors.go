package events

import "errors"

var (
	// ErrFeedClosed is returned by Subscribe after the feed has been closed
	ErrFeedClosed = errors.New("change feed is closed")
	// ErrSubscriptionClosed is returned by Next once the subscription stops delivering
	ErrSubscriptionClosed = errors.New("subscription is closed")
)
