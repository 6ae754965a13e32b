package steppedtime

import (
	"time"
)

// See [time.Time].
type Time = time.Time

// See [time.Duration].
type Duration = time.Duration

// Duration constants.
const (
	Millisecond = time.Millisecond
	Second      = time.Second
	Minute      = time.Minute
	Hour        = time.Hour
)
