package lastword

import (
	"testing"
	"time"

	weave "github.com/iov-one/weave"
)

func TestEvaluateTimer(t *testing.T) {
	now := weave.AsUnixTime(time.Now())

	cases := map[string]struct {
		Count        int64
		Active       bool
		Deadline     weave.UnixTime
		WantAction   timerAction
		WantDeadline weave.UnixTime
	}{
		"too few messages": {
			Count:        9,
			Active:       false,
			Deadline:     0,
			WantAction:   timerNone,
			WantDeadline: 0,
		},
		"tenth message arms the countdown": {
			Count:        10,
			Active:       false,
			Deadline:     0,
			WantAction:   timerStarted,
			WantDeadline: now.Add(timerExtension),
		},
		"arming is not bound to the tenth message": {
			Count:        900,
			Active:       false,
			Deadline:     0,
			WantAction:   timerStarted,
			WantDeadline: now.Add(timerExtension),
		},
		"running countdown is pushed back": {
			Count:        42,
			Active:       true,
			Deadline:     now + 100,
			WantAction:   timerExtended,
			WantDeadline: now.Add(timerExtension),
		},
		"countdown extends at the deadline": {
			Count:        42,
			Active:       true,
			Deadline:     now,
			WantAction:   timerExtended,
			WantDeadline: now.Add(timerExtension),
		},
		"lapsed countdown is left alone": {
			Count:        42,
			Active:       true,
			Deadline:     now - 1,
			WantAction:   timerNone,
			WantDeadline: now - 1,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			action, deadline := evaluateTimer(tc.Count, tc.Active, tc.Deadline, now)
			if action != tc.WantAction {
				t.Fatalf("want action %d, got %d", tc.WantAction, action)
			}
			if deadline != tc.WantDeadline {
				t.Fatalf("want deadline %v, got %v", tc.WantDeadline, deadline)
			}
		})
	}
}
