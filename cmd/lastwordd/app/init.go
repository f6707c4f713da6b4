package lastwordd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/msgfee"
	"github.com/iov-one/weave/x/validators"
	"github.com/jigsaw-chat/lastword/x/lastword"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Default game setup for a dev mode chain, in base units. One whole token
// is 10^9 base units.
const (
	genesisBaseFee      int64  = 1000000
	genesisFeeCap       int64  = 1000000000
	genesisMarketingBps uint32 = 1000
)

// GenInitOptions will produce some basic options for one rich
// account and a freshly created game, to use for dev mode
//
// You can set the ticker and the account address with args
func GenInitOptions(args []string) (json.RawMessage, error) {
	code := "JIG"
	if len(args) > 0 {
		code = args[0]
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		bz, phrase, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(phrase)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	const marketingHex = "3b11c732b8fc1f09beb34031302fe2ab347c5c14"
	marketingAddr, err := hex.DecodeString(marketingHex)
	if err != nil {
		return nil, errors.Wrap(err, "cannot hex decode marketing address")
	}
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  123456789,
						"ticker": code,
					},
				},
			},
		},
		"lastword": dict{
			"authority":        addr,
			"base_fee":         genesisBaseFee,
			"fee_cap":          genesisFeeCap,
			"marketing_bps":    genesisMarketingBps,
			"marketing_wallet": marketingHex,
		},
		"conf": dict{
			"cash": cash.Configuration{
				CollectorAddress: marketingAddr,
				MinimalFee:       coin.Coin{Whole: 0}, // no fee
			},
			"lastword": dict{
				"owner":  addr,
				"ticker": code,
			},
			"msgfee": dict{
				"fee_admin": addr,
			},
			"migration": dict{
				"admin": addr,
			},
		},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "validators", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "msgfee", "ver": 1},
			{"pkg": "lastword", "ver": 1},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	stack := Stack(options.MinFee)
	application, err := Application("lastword", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&validators.Initializer{},
		&msgfee.Initializer{},
		&lastword.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

// GenerateCoinKey returns the address of a public key,
// along with the secret phrase to recover the private key.
// You can give coins to this address and return the recovery
// phrase to the user to access them.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	addr := privKey.PublicKey().Address()
	return addr, "TODO: add a recovery phrase", nil
}
