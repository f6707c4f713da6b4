package lastword

import (
	"bytes"
	"math"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestInitMsgValidate(t *testing.T) {
	msg := &InitMsg{
		BaseFee:      -1,
		FeeCap:       -2,
		MarketingBps: math.MaxUint16 + 1,
	}
	err := msg.Validate()

	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "BaseFee", errors.ErrInput)
	assert.FieldError(t, err, "FeeCap", errors.ErrInput)
	assert.FieldError(t, err, "MarketingBps", errors.ErrInput)

	// Authority and the marketing wallet are optional.
	assert.FieldError(t, err, "Authority", nil)
	assert.FieldError(t, err, "MarketingWallet", nil)
}

// A game can be created with any fee bounds. Only an update is strict about
// them.
func TestInitMsgValidateDegenerateBounds(t *testing.T) {
	msg := &InitMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		BaseFee:      100,
		FeeCap:       1,
		MarketingBps: 60000,
	}
	assert.Nil(t, msg.Validate())
}

func TestSubmitMsgValidate(t *testing.T) {
	msg := &SubmitMsg{
		Metadata:        &weave.Metadata{Schema: 1},
		MsgHash:         bytes.Repeat([]byte{7}, 32),
		MarketingWallet: weavetest.NewCondition().Address(),
	}
	assert.Nil(t, msg.Validate())

	msg.MsgHash = []byte("too short")
	assert.FieldError(t, msg.Validate(), "MsgHash", errors.ErrInput)
}

func TestClaimPrizeMsgValidate(t *testing.T) {
	msg := &ClaimPrizeMsg{}
	assert.FieldError(t, msg.Validate(), "Metadata", errors.ErrMetadata)

	msg.Metadata = &weave.Metadata{Schema: 1}
	assert.Nil(t, msg.Validate())
}

func TestApprovePayoutMsgValidate(t *testing.T) {
	msg := &ApprovePayoutMsg{
		Metadata: &weave.Metadata{Schema: 1},
	}
	// An empty winner is valid and means that no winner is expected.
	assert.Nil(t, msg.Validate())

	msg.Winner = []byte("not an address")
	if err := msg.Validate(); err == nil {
		t.Fatal("malformed winner address must not validate")
	}
}

func TestUpdateFeeParamsMsgValidate(t *testing.T) {
	msg := &UpdateFeeParamsMsg{
		Metadata: &weave.Metadata{Schema: 1},
		BaseFee:  25,
		FeeCap:   100,
	}
	assert.Nil(t, msg.Validate())

	msg.BaseFee = 0
	assert.FieldError(t, msg.Validate(), "BaseFee", ErrBadParams)

	msg.BaseFee = 200
	assert.FieldError(t, msg.Validate(), "FeeCap", ErrBadParams)

	// Base fee equal to the cap is allowed and freezes the escalation.
	msg.BaseFee = 100
	assert.Nil(t, msg.Validate())
}

func TestUpdateMarketingParamsMsgValidate(t *testing.T) {
	msg := &UpdateMarketingParamsMsg{
		Metadata:        &weave.Metadata{Schema: 1},
		MarketingWallet: weavetest.NewCondition().Address(),
		MarketingBps:    maxMarketingBps,
	}
	assert.Nil(t, msg.Validate())

	msg.MarketingBps = maxMarketingBps + 1
	assert.FieldError(t, msg.Validate(), "MarketingBps", ErrBpsTooHigh)

	// Clearing the wallet disables the marketing cut and is allowed.
	msg.MarketingBps = 100
	msg.MarketingWallet = nil
	assert.Nil(t, msg.Validate())
}
