package lastword

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrGameEnded is returned on any submission after the game reached
	// its terminal state.
	ErrGameEnded = errors.Register(1700, "game ended")

	// ErrTimerExpired is returned when a submission arrives after the
	// armed countdown has lapsed.
	ErrTimerExpired = errors.Register(1701, "timer expired")

	// ErrInsufficientFee is returned when the payer wallet does not hold
	// the current submission fee.
	ErrInsufficientFee = errors.Register(1702, "insufficient fee")

	// ErrGameNotEnded is returned when claiming before the countdown was
	// armed or before it lapsed.
	ErrGameNotEnded = errors.Register(1703, "game not ended")

	// ErrAlreadyClaimed is returned when settling a game that was
	// settled before.
	ErrAlreadyClaimed = errors.Register(1704, "already claimed")

	// ErrNotTheWinner is returned when the settlement destination is not
	// the last sender.
	ErrNotTheWinner = errors.Register(1705, "not the winner")

	// ErrNoWinner is returned when settling a game that never saw a
	// submission.
	ErrNoWinner = errors.Register(1706, "no winner")

	// ErrBadParams is returned for a fee bounds update that does not
	// satisfy 0 < base fee <= fee cap.
	ErrBadParams = errors.Register(1707, "bad params")

	// ErrBpsTooHigh is returned for a marketing share above 2500 basis
	// points.
	ErrBpsTooHigh = errors.Register(1708, "bps too high")
)
