package lastword

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial game setup from genesis and save it to the
// database
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(db, opts, "lastword", &conf); {
	default:
		// All good.
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	// Declaring a game in the genesis is optional. It can as well be
	// created later by submitting an InitMsg.
	var seed *struct {
		Authority       weave.Address `json:"authority"`
		BaseFee         int64         `json:"base_fee"`
		FeeCap          int64         `json:"fee_cap"`
		MarketingBps    uint32        `json:"marketing_bps"`
		MarketingWallet weave.Address `json:"marketing_wallet"`
	}
	if err := opts.ReadOptions("lastword", &seed); err != nil {
		return errors.Wrap(err, "read game options")
	}
	if seed == nil {
		return nil
	}
	game := Game{
		Metadata:        &weave.Metadata{Schema: 1},
		Authority:       seed.Authority,
		BaseFee:         seed.BaseFee,
		FeeCap:          seed.FeeCap,
		CurrentFee:      seed.BaseFee,
		MarketingWallet: seed.MarketingWallet,
		MarketingBps:    seed.MarketingBps,
		Vault:           VaultAddress(),
	}
	if _, err := NewGameBucket().Put(db, gameKey, &game); err != nil {
		return errors.Wrap(err, "store game")
	}
	return nil
}
