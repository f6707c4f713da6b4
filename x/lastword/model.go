package lastword

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Game{}, migration.NoModification)
}

// gameKey is the identifier of the only game instance that can exist. The
// game is a singleton and all operations address it through this key.
var gameKey = []byte("game")

var _ orm.Model = (*Game)(nil)

func (m *Game) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Authority", m.Authority.Validate())
	if m.BaseFee < 0 {
		errs = errors.AppendField(errs, "BaseFee", errors.Wrap(errors.ErrState, "must be non negative"))
	}
	if m.FeeCap < 0 {
		errs = errors.AppendField(errs, "FeeCap", errors.Wrap(errors.ErrState, "must be non negative"))
	}
	if m.CurrentFee < 0 {
		errs = errors.AppendField(errs, "CurrentFee", errors.Wrap(errors.ErrState, "must be non negative"))
	}
	if len(m.MarketingWallet) != 0 {
		errs = errors.AppendField(errs, "MarketingWallet", m.MarketingWallet.Validate())
	}
	if m.MessagesCount < 0 {
		errs = errors.AppendField(errs, "MessagesCount", errors.Wrap(errors.ErrState, "must be non negative"))
	}
	if len(m.LastSender) != 0 {
		errs = errors.AppendField(errs, "LastSender", m.LastSender.Validate())
	}
	errs = errors.AppendField(errs, "Deadline", m.Deadline.Validate())
	errs = errors.AppendField(errs, "Vault", m.Vault.Validate())
	return errs
}

// HasLastSender returns true if at least one message was submitted and
// therefore a winner candidate exists.
func (m *Game) HasLastSender() bool {
	return len(m.LastSender) != 0
}

func NewGameBucket() orm.ModelBucket {
	b := orm.NewModelBucket("games", &Game{})
	return migration.NewModelBucket("lastword", b)
}

// VaultAddress returns the address of the wallet that pools the prize part
// of every submission fee. The address is derived from a condition that no
// signature can satisfy so the funds can only be moved by this extension.
func VaultAddress() weave.Address {
	return weave.NewCondition("lastword", "vault", gameKey).Address()
}
