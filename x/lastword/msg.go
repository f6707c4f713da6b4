package lastword

import (
	"crypto/sha256"
	"math"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &InitMsg{}, migration.NoModification)
	migration.MustRegister(1, &SubmitMsg{}, migration.NoModification)
	migration.MustRegister(1, &ClaimPrizeMsg{}, migration.NoModification)
	migration.MustRegister(1, &ApprovePayoutMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateFeeParamsMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateMarketingParamsMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

// maxMarketingBps limits the marketing share to a quarter of every fee. The
// limit is enforced only when updating the parameters, not when the game is
// created.
const maxMarketingBps = 2500

var _ weave.Msg = (*InitMsg)(nil)

func (InitMsg) Path() string {
	return "lastword/init"
}

// Validate ensures the message fields are representable. Business rules like
// the base fee and cap relation are deliberately not enforced here so the
// game creation accepts any bounds, the same as parameter updates do not.
func (msg *InitMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.Authority) != 0 {
		errs = errors.AppendField(errs, "Authority", msg.Authority.Validate())
	}
	if msg.BaseFee < 0 {
		errs = errors.AppendField(errs, "BaseFee", errors.Wrap(errors.ErrInput, "must be non negative"))
	}
	if msg.FeeCap < 0 {
		errs = errors.AppendField(errs, "FeeCap", errors.Wrap(errors.ErrInput, "must be non negative"))
	}
	if msg.MarketingBps > math.MaxUint16 {
		errs = errors.AppendField(errs, "MarketingBps", errors.Wrap(errors.ErrInput, "does not fit into 16 bits"))
	}
	if len(msg.MarketingWallet) != 0 {
		errs = errors.AppendField(errs, "MarketingWallet", msg.MarketingWallet.Validate())
	}
	return errs
}

var _ weave.Msg = (*SubmitMsg)(nil)

func (SubmitMsg) Path() string {
	return "lastword/submit"
}

func (msg *SubmitMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.MsgHash) != sha256.Size {
		errs = errors.AppendField(errs, "MsgHash", errors.Wrap(errors.ErrInput, "must be a sha256 digest"))
	}
	if len(msg.MarketingWallet) != 0 {
		errs = errors.AppendField(errs, "MarketingWallet", msg.MarketingWallet.Validate())
	}
	return errs
}

var _ weave.Msg = (*ClaimPrizeMsg)(nil)

func (ClaimPrizeMsg) Path() string {
	return "lastword/claim_prize"
}

func (msg *ClaimPrizeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	return errs
}

var _ weave.Msg = (*ApprovePayoutMsg)(nil)

func (ApprovePayoutMsg) Path() string {
	return "lastword/approve_payout"
}

// Validate allows an empty winner. The handler compares the winner against
// the registered last sender, so leaving both unset is reported as a missing
// winner and not as a malformed message.
func (msg *ApprovePayoutMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.Winner) != 0 {
		errs = errors.AppendField(errs, "Winner", msg.Winner.Validate())
	}
	return errs
}

var _ weave.Msg = (*UpdateFeeParamsMsg)(nil)

func (UpdateFeeParamsMsg) Path() string {
	return "lastword/update_fee_params"
}

func (msg *UpdateFeeParamsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.BaseFee <= 0 {
		errs = errors.AppendField(errs, "BaseFee", errors.Wrap(ErrBadParams, "base fee must be positive"))
	} else if msg.FeeCap < msg.BaseFee {
		errs = errors.AppendField(errs, "FeeCap", errors.Wrap(ErrBadParams, "fee cap must not be lower than base fee"))
	}
	return errs
}

var _ weave.Msg = (*UpdateMarketingParamsMsg)(nil)

func (UpdateMarketingParamsMsg) Path() string {
	return "lastword/update_marketing_params"
}

func (msg *UpdateMarketingParamsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.MarketingWallet) != 0 {
		errs = errors.AppendField(errs, "MarketingWallet", msg.MarketingWallet.Validate())
	}
	if msg.MarketingBps > maxMarketingBps {
		errs = errors.AppendField(errs, "MarketingBps", errors.Wrapf(ErrBpsTooHigh, "at most %d", maxMarketingBps))
	}
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "lastword/update_configuration"
}

func (msg *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Patch", msg.Patch.Validate())
	return errs
}
