package lastwordd

import (
	"crypto/sha256"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/jigsaw-chat/lastword/x/lastword"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	wallet := &cash.Set{
		Metadata: &weave.Metadata{Schema: 1},
		Coins: []*coin.Coin{
			{Whole: 150, Fractional: 567000, Ticker: "JIG"},
		},
	}

	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	user := &sigs.UserData{
		Metadata: &weave.Metadata{Schema: 1},
		Pubkey:   pub,
		Sequence: 17,
	}

	digest := sha256.Sum256([]byte("the last word"))
	msg := &lastword.SubmitMsg{
		Metadata: &weave.Metadata{Schema: 1},
		MsgHash:  digest[:],
	}

	game := &lastword.Game{
		Metadata:      &weave.Metadata{Schema: 1},
		Authority:     pub.Address(),
		BaseFee:       genesisBaseFee,
		FeeCap:        genesisFeeCap,
		CurrentFee:    genesisBaseFee,
		MarketingBps:  genesisMarketingBps,
		MessagesCount: 0,
		Vault:         lastword.VaultAddress(),
	}

	unsigned := Tx{
		Sum: &Tx_LastwordSubmitMsg{msg},
	}
	tx := unsigned
	sig, err := sigs.SignTx(priv, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "wallet", Obj: wallet},
		{Filename: "priv_key", Obj: priv},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "game", Obj: game},
		{Filename: "submit_msg", Obj: msg},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
