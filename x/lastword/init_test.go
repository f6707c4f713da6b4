package lastword

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
)

func TestGenesisKey(t *testing.T) {
	const genesis = `
		{
			"conf": {
				"lastword": {
					"owner": "E94323317C46BDA2268FA3698BAF4F95B893E8C7",
					"ticker": "JIG"
				}
			},
			"lastword": {
				"authority": "E94323317C46BDA2268FA3698BAF4F95B893E8C7",
				"base_fee": 1000,
				"fee_cap": 5000,
				"marketing_bps": 1000,
				"marketing_wallet": "FE5526DE08337DFEF5CF45EF3ED8C577B854DE34"
			}
		}
	`
	authority, _ := hex.DecodeString("E94323317C46BDA2268FA3698BAF4F95B893E8C7")
	marketing, _ := hex.DecodeString("FE5526DE08337DFEF5CF45EF3ED8C577B854DE34")

	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "lastword")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	conf, err := loadConf(db)
	if err != nil {
		t.Fatalf("cannot load configuration: %s", err)
	}
	if !conf.Owner.Equals(weave.Address(authority)) {
		t.Fatalf("unexpected configuration owner: %q", conf.Owner)
	}
	if conf.Ticker != "JIG" {
		t.Fatalf("unexpected ticker: %q", conf.Ticker)
	}

	var game Game
	if err := NewGameBucket().One(db, gameKey, &game); err != nil {
		t.Fatalf("cannot fetch game: %s", err)
	}
	if !game.Authority.Equals(weave.Address(authority)) {
		t.Fatalf("unexpected authority address: %q", game.Authority)
	}
	if game.BaseFee != 1000 {
		t.Fatalf("want base fee 1000, got %d", game.BaseFee)
	}
	if game.FeeCap != 5000 {
		t.Fatalf("want fee cap 5000, got %d", game.FeeCap)
	}
	if game.CurrentFee != 1000 {
		t.Fatalf("the current fee must start at the base fee, got %d", game.CurrentFee)
	}
	if game.MarketingBps != 1000 {
		t.Fatalf("want 1000 basis points, got %d", game.MarketingBps)
	}
	if !game.MarketingWallet.Equals(weave.Address(marketing)) {
		t.Fatalf("unexpected marketing wallet: %q", game.MarketingWallet)
	}
	if game.MessagesCount != 0 {
		t.Fatalf("a fresh game must have no messages, got %d", game.MessagesCount)
	}
	if game.TimerActive {
		t.Fatal("a fresh game must not have a running countdown")
	}
	if game.Ended {
		t.Fatal("a fresh game must not be ended")
	}
	if !game.Vault.Equals(VaultAddress()) {
		t.Fatalf("unexpected vault address: %q", game.Vault)
	}
}

func TestGenesisWithoutGameDeclaration(t *testing.T) {
	const genesis = `
		{
			"conf": {
				"lastword": {
					"owner": "E94323317C46BDA2268FA3698BAF4F95B893E8C7",
					"ticker": "JIG"
				}
			}
		}
	`
	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "lastword")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	switch err := NewGameBucket().Has(db, gameKey); {
	case err == nil:
		t.Fatal("no game was declared in the genesis, none must exist")
	case errors.ErrNotFound.Is(err):
		// All good.
	default:
		t.Fatalf("cannot check the game existence: %s", err)
	}
}

func TestGenesisWithoutConfiguration(t *testing.T) {
	// Without a configuration the whole extension is considered unused and
	// even a declared game is ignored.
	const genesis = `
		{
			"lastword": {
				"authority": "E94323317C46BDA2268FA3698BAF4F95B893E8C7",
				"base_fee": 1000,
				"fee_cap": 5000
			}
		}
	`
	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "lastword")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	switch err := NewGameBucket().Has(db, gameKey); {
	case err == nil:
		t.Fatal("the game declaration must be ignored without a configuration")
	case errors.ErrNotFound.Is(err):
		// All good.
	default:
		t.Fatalf("cannot check the game existence: %s", err)
	}
}
