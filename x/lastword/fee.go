package lastword

import (
	"math/big"

	"github.com/iov-one/weave/errors"
)

const (
	// Each accepted submission raises the fee by growthNumerator over
	// growthDenominator, about 0.78 percent, until the cap is reached.
	growthNumerator   = 10078
	growthDenominator = 10000

	// basisPoints is the denominator of the marketing share.
	basisPoints = 10000
)

// splitFee divides a submission fee into the marketing cut and the prize
// pool contribution. The marketing cut is floor(fee*bps/10000), computed
// with an arbitrary precision intermediate, and the prize part is the
// remainder so that both always sum up to the full fee.
func splitFee(fee int64, bps uint32) (marketing int64, prize int64, err error) {
	if fee < 0 {
		return 0, 0, errors.Wrap(errors.ErrAmount, "negative fee")
	}
	cut := big.NewInt(fee)
	cut.Mul(cut, big.NewInt(int64(bps)))
	cut.Quo(cut, big.NewInt(basisPoints))
	if !cut.IsInt64() {
		return 0, 0, errors.Wrap(errors.ErrOverflow, "marketing cut")
	}
	marketing = cut.Int64()
	if marketing > fee {
		// Only possible with a marketing share above 100 percent,
		// which an unvalidated initialization can construct.
		return 0, 0, errors.Wrap(errors.ErrOverflow, "marketing cut exceeds fee")
	}
	return marketing, fee - marketing, nil
}

// escalateFee returns the fee required after one more accepted submission,
// floor(fee*10078/10000) clamped to the cap. The comparison with the cap is
// done before narrowing so the clamp itself cannot overflow.
func escalateFee(fee int64, cap int64) (int64, error) {
	if fee < 0 || cap < 0 {
		return 0, errors.Wrap(errors.ErrAmount, "negative fee")
	}
	next := big.NewInt(fee)
	next.Mul(next, big.NewInt(growthNumerator))
	next.Quo(next, big.NewInt(growthDenominator))
	if next.Cmp(big.NewInt(cap)) > 0 {
		return cap, nil
	}
	if !next.IsInt64() {
		return 0, errors.Wrap(errors.ErrOverflow, "fee escalation")
	}
	return next.Int64(), nil
}
