package utils

import "time"

// TimeRange bounds a timeline fetch. A zero Begin or End leaves that side
// unbounded.
type TimeRange struct {
	Begin time.Time
	End   time.Time
}
