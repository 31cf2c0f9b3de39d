package events

import "errors"

var (
	ErrProducerUnavailable = errors.New("kafka producer is unavailable")
	ErrEncodingEvent       = errors.New("error encoding post event")
	ErrPublishingEvent     = errors.New("error publishing post event")
)
