package lastword

import (
	"bytes"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestZeroFeeDecorator(t *testing.T) {
	cases := map[string]struct {
		Tx             weave.Tx
		Handler        *weavetest.Handler
		WantCheckFee   coin.Coin
		WantDeliverFee coin.Coin
	}{
		"claiming the prize is free": {
			Tx: &weavetest.Tx{Msg: &ClaimPrizeMsg{
				Metadata: &weave.Metadata{Schema: 1},
			}},
			Handler: &weavetest.Handler{
				CheckResult:   weave.CheckResult{RequiredFee: coin.NewCoin(0, 5, "JIG")},
				DeliverResult: weave.DeliverResult{RequiredFee: coin.NewCoin(0, 5, "JIG")},
			},
			WantCheckFee:   coin.Coin{},
			WantDeliverFee: coin.Coin{},
		},
		"a free claim stays free": {
			Tx: &weavetest.Tx{Msg: &ClaimPrizeMsg{
				Metadata: &weave.Metadata{Schema: 1},
			}},
			Handler:        &weavetest.Handler{},
			WantCheckFee:   coin.Coin{},
			WantDeliverFee: coin.Coin{},
		},
		"any other message pays the required fee": {
			Tx: &weavetest.Tx{Msg: &SubmitMsg{
				Metadata: &weave.Metadata{Schema: 1},
				MsgHash:  bytes.Repeat([]byte{1}, 32),
			}},
			Handler: &weavetest.Handler{
				CheckResult:   weave.CheckResult{RequiredFee: coin.NewCoin(0, 5, "JIG")},
				DeliverResult: weave.DeliverResult{RequiredFee: coin.NewCoin(0, 5, "JIG")},
			},
			WantCheckFee:   coin.NewCoin(0, 5, "JIG"),
			WantDeliverFee: coin.NewCoin(0, 5, "JIG"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			d := NewZeroFeeDecorator()

			cres, err := d.Check(nil, nil, tc.Tx, tc.Handler)
			assert.Nil(t, err)
			if !tc.WantCheckFee.Equals(cres.RequiredFee) {
				t.Fatalf("unexpected check fee: %v", cres.RequiredFee)
			}

			dres, err := d.Deliver(nil, nil, tc.Tx, tc.Handler)
			assert.Nil(t, err)
			if !tc.WantDeliverFee.Equals(dres.RequiredFee) {
				t.Fatalf("unexpected deliver fee: %v", dres.RequiredFee)
			}
		})
	}
}
