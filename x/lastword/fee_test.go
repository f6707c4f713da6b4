package lastword

import (
	"math"
	"testing"

	"github.com/iov-one/weave/errors"
)

func TestSplitFee(t *testing.T) {
	cases := map[string]struct {
		Fee           int64
		Bps           uint32
		WantMarketing int64
		WantPrize     int64
		WantErr       *errors.Error
	}{
		"zero fee splits into nothing": {
			Fee:           0,
			Bps:           1000,
			WantMarketing: 0,
			WantPrize:     0,
		},
		"zero bps routes everything to the prize": {
			Fee:           1000,
			Bps:           0,
			WantMarketing: 0,
			WantPrize:     1000,
		},
		"ten percent": {
			Fee:           1000,
			Bps:           1000,
			WantMarketing: 100,
			WantPrize:     900,
		},
		"marketing cut rounds down": {
			Fee:           999,
			Bps:           1000,
			WantMarketing: 99,
			WantPrize:     900,
		},
		"quarter share": {
			Fee:           1000,
			Bps:           2500,
			WantMarketing: 250,
			WantPrize:     750,
		},
		"whole fee to marketing": {
			Fee:           1000,
			Bps:           10000,
			WantMarketing: 1000,
			WantPrize:     0,
		},
		"share of 10001 bps rounds down to the whole fee": {
			Fee:           1000,
			Bps:           10001,
			WantMarketing: 1000,
			WantPrize:     0,
		},
		"share beyond the whole fee": {
			Fee:     100000,
			Bps:     10001,
			WantErr: errors.ErrOverflow,
		},
		"huge fee does not overflow": {
			Fee:           math.MaxInt64,
			Bps:           2500,
			WantMarketing: math.MaxInt64 / 4,
			WantPrize:     math.MaxInt64 - math.MaxInt64/4,
		},
		"negative fee": {
			Fee:     -1,
			Bps:     1000,
			WantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			marketing, prize, err := splitFee(tc.Fee, tc.Bps)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}
			if marketing != tc.WantMarketing {
				t.Errorf("want marketing cut %d, got %d", tc.WantMarketing, marketing)
			}
			if prize != tc.WantPrize {
				t.Errorf("want prize contribution %d, got %d", tc.WantPrize, prize)
			}
			if marketing+prize != tc.Fee {
				t.Errorf("split must preserve the fee: %d + %d != %d", marketing, prize, tc.Fee)
			}
		})
	}
}

func TestEscalateFee(t *testing.T) {
	cases := map[string]struct {
		Fee     int64
		Cap     int64
		Want    int64
		WantErr *errors.Error
	}{
		"grows by 78 basis points": {
			Fee:  1000,
			Cap:  5000,
			Want: 1007,
		},
		"growth rounds down": {
			Fee:  10000,
			Cap:  100000,
			Want: 10078,
		},
		"tiny fee can be stuck": {
			Fee:  50,
			Cap:  1000,
			Want: 50,
		},
		"zero fee never grows": {
			Fee:  0,
			Cap:  1000,
			Want: 0,
		},
		"clamped to the cap": {
			Fee:  5000,
			Cap:  5000,
			Want: 5000,
		},
		"close to the cap": {
			Fee:  4990,
			Cap:  5000,
			Want: 5000,
		},
		"huge fee is clamped before it can overflow": {
			Fee:  math.MaxInt64,
			Cap:  math.MaxInt64,
			Want: math.MaxInt64,
		},
		"negative fee": {
			Fee:     -1,
			Cap:     1000,
			WantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := escalateFee(tc.Fee, tc.Cap)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}
			if got != tc.Want {
				t.Fatalf("want fee %d, got %d", tc.Want, got)
			}
		})
	}
}

// Nine free submissions and a tenth one must keep a zero base fee at zero.
// This is the degenerate setup that the game creation permits.
func TestEscalateFeeZeroSequence(t *testing.T) {
	fee := int64(0)
	for i := 0; i < 10; i++ {
		next, err := escalateFee(fee, 1000)
		if err != nil {
			t.Fatalf("step %d: %+v", i, err)
		}
		fee = next
	}
	if fee != 0 {
		t.Fatalf("zero fee must stay frozen, got %d", fee)
	}
}
