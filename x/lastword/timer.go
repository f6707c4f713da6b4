package lastword

import (
	"time"

	"github.com/iov-one/weave"
)

const (
	// timerStartAfter is the number of accepted submissions, counted
	// after the current one, that arms the inactivity countdown.
	timerStartAfter = 10

	// timerExtension is how far from now the deadline moves whenever the
	// countdown is armed or extended.
	timerExtension = 3600 * time.Second
)

type timerAction int

const (
	timerNone timerAction = iota
	timerStarted
	timerExtended
)

// evaluateTimer decides what happens to the inactivity countdown once a
// submission was accepted and counted. An inactive timer is armed when the
// submission count reaches the threshold. An active timer is extended as
// long as the submission arrived no later than the deadline, the deadline
// second included. An active timer that already lapsed is left untouched.
// The returned deadline is meaningful only when the action is timerStarted
// or timerExtended.
func evaluateTimer(messagesCount int64, timerActive bool, deadline, now weave.UnixTime) (timerAction, weave.UnixTime) {
	switch {
	case !timerActive && messagesCount >= timerStartAfter:
		return timerStarted, now.Add(timerExtension)
	case timerActive && now <= deadline:
		return timerExtended, now.Add(timerExtension)
	default:
		return timerNone, deadline
	}
}
