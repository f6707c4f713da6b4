package lastwordd

import (
	"crypto/sha256"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/jigsaw-chat/lastword/x/lastword"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// feeLadder is the fee paid by each consecutive submission when starting
// from a base fee of 1000: every step is the 10078/10000 escalation of the
// previous one.
var feeLadder = []int64{1000, 1007, 1014, 1021, 1028, 1036, 1044, 1052, 1060, 1068}

func testApp(t *testing.T) app.BaseApp {
	t.Helper()
	abciApp, err := GenerateApp(&server.Options{
		Home:   "",
		Logger: log.NewNopLogger(),
		Debug:  false,
	})
	require.NoError(t, err)
	return abciApp.(app.BaseApp)
}

func testInitChain(t *testing.T, myApp app.BaseApp, chainID string, alice, marketing, admin weave.Address) {
	t.Helper()
	appState := fmt.Sprintf(`{
		"cash": [
			{"address": "%s", "coins": [{"whole": 1, "ticker": "JIG"}]}
		],
		"conf": {
			"cash": {"collector_address": "%s"},
			"migration": {"admin": "%s"},
			"lastword": {"owner": "%s", "ticker": "JIG"},
			"msgfee": {"fee_admin": "%s"}
		},
		"lastword": {
			"authority": "%s",
			"base_fee": 1000,
			"fee_cap": 5000,
			"marketing_bps": 1000,
			"marketing_wallet": "%s"
		},
		"initialize_schema": [
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "validators", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "msgfee", "ver": 1},
			{"pkg": "lastword", "ver": 1}
		]
	}`, alice, admin, admin, admin, admin, admin, marketing)

	require.Equal(t, "", myApp.GetChainID())
	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(appState),
		ChainId:       chainID,
	})
	require.Equal(t, chainID, myApp.GetChainID())
}

func signedTx(t *testing.T, chainID string, sum isTx_Sum, signer *crypto.PrivateKey, seq int64) []byte {
	t.Helper()
	tx := &Tx{Sum: sum}
	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(t, err)
	return raw
}

func submitSum(msgHash []byte, marketing weave.Address) isTx_Sum {
	return &Tx_LastwordSubmitMsg{
		LastwordSubmitMsg: &lastword.SubmitMsg{
			Metadata:        &weave.Metadata{Schema: 1},
			MsgHash:         msgHash,
			MarketingWallet: marketing,
		},
	}
}

func queryOne(t *testing.T, myApp app.BaseApp, path string, key []byte, obj weave.Persistent) bool {
	t.Helper()
	qres := myApp.Query(abci.RequestQuery{Path: path, Data: key})
	require.Equal(t, uint32(0), qres.Code, "%#v", qres)
	if len(qres.Value) == 0 {
		return false
	}
	require.NoError(t, app.UnmarshalOneResult(qres.Value, obj))
	return true
}

func queryGame(t *testing.T, myApp app.BaseApp) lastword.Game {
	t.Helper()
	var game lastword.Game
	require.True(t, queryOne(t, myApp, "/games", []byte("game"), &game))
	return game
}

func runBlock(t *testing.T, myApp app.BaseApp, height int64, blockTime time.Time, deliver [][]byte, check [][]byte) []abci.ResponseDeliverTx {
	t.Helper()
	header := abci.Header{
		Height:  height,
		Time:    blockTime,
		ChainID: myApp.GetChainID(),
	}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})

	var responses []abci.ResponseDeliverTx
	for _, raw := range check {
		chres := myApp.CheckTx(raw)
		require.NotEqual(t, uint32(0), chres.Code, "check expected to fail: %s", chres.Log)
	}
	for _, raw := range deliver {
		chres := myApp.CheckTx(raw)
		require.Equal(t, uint32(0), chres.Code, chres.Log)
		dres := myApp.DeliverTx(raw)
		require.Equal(t, uint32(0), dres.Code, dres.Log)
		responses = append(responses, dres)
	}

	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	assert.NotEmpty(t, cres.Data)
	return responses
}

func TestGameLifecycle(t *testing.T) {
	const chainID = "test-jig-1"

	alicePriv := crypto.GenPrivKeyEd25519()
	alice := alicePriv.PublicKey().Address()
	bobPriv := crypto.GenPrivKeyEd25519()
	marketing := crypto.GenPrivKeyEd25519().PublicKey().Address()
	admin := crypto.GenPrivKeyEd25519().PublicKey().Address()

	myApp := testApp(t)
	testInitChain(t, myApp, chainID, alice, marketing, admin)

	genesisTime := time.Unix(1600000000, 0).UTC()
	blockTime := func(height int64) time.Time {
		return genesisTime.Add(time.Duration(height-1) * time.Minute)
	}

	// The genesis state becomes visible to CheckTx only after the first
	// commit, so start with an empty block.
	runBlock(t, myApp, 1, blockTime(1), nil, nil)

	// Ten submissions, one block each. The tenth one arms the countdown.
	var total, rake int64
	for i := 0; i < 10; i++ {
		digest := sha256.Sum256([]byte(fmt.Sprintf("message %d", i)))
		raw := signedTx(t, chainID, submitSum(digest[:], marketing), alicePriv, int64(i))
		responses := runBlock(t, myApp, int64(i+2), blockTime(int64(i+2)), [][]byte{raw}, nil)
		assert.Equal(t, []byte(fmt.Sprint(feeLadder[i])), responses[0].Data)

		total += feeLadder[i]
		rake += feeLadder[i] / 10

		game := queryGame(t, myApp)
		assert.Equal(t, int64(i+1), game.MessagesCount)
		assert.Equal(t, weave.Address(alice), game.LastSender)
		if i < 9 {
			assert.False(t, game.TimerActive, "countdown must not run before the tenth message")
		}
	}

	game := queryGame(t, myApp)
	assert.True(t, game.TimerActive)
	wantDeadline := weave.AsUnixTime(blockTime(11).Add(time.Hour))
	assert.Equal(t, wantDeadline, game.Deadline)
	assert.Equal(t, int64(1076), game.CurrentFee)

	// The prize pool contains everything but the marketing cut.
	var vault cash.Set
	require.True(t, queryOne(t, myApp, "/wallets", lastword.VaultAddress(), &vault))
	require.Equal(t, 1, len(vault.Coins))
	assert.True(t, coin.NewCoin(0, total-rake, "JIG").Equals(*vault.Coins[0]))

	var rakeWallet cash.Set
	require.True(t, queryOne(t, myApp, "/wallets", marketing, &rakeWallet))
	require.Equal(t, 1, len(rakeWallet.Coins))
	assert.True(t, coin.NewCoin(0, rake, "JIG").Equals(*rakeWallet.Coins[0]))

	// Once the deadline passed, submissions bounce but the last sender can
	// cash out. Both happen within the same block, past the deadline.
	expired := blockTime(11).Add(time.Hour + time.Minute)
	digest := sha256.Sum256([]byte("too late"))
	lateSubmit := signedTx(t, chainID, submitSum(digest[:], marketing), bobPriv, 0)
	claim := signedTx(t, chainID, &Tx_LastwordClaimPrizeMsg{
		LastwordClaimPrizeMsg: &lastword.ClaimPrizeMsg{
			Metadata: &weave.Metadata{Schema: 1},
		},
	}, alicePriv, 10)
	responses := runBlock(t, myApp, 12, expired, [][]byte{claim}, [][]byte{lateSubmit})

	var claimed bool
	for _, tag := range responses[0].Tags {
		if string(tag.Key) == "winner" {
			claimed = true
			assert.Equal(t, []byte(alice), tag.Value)
		}
		if string(tag.Key) == "action" {
			assert.Equal(t, []byte("lastword/claim_prize"), tag.Value)
		}
	}
	assert.True(t, claimed, "missing winner tag: %#v", responses[0].Tags)

	game = queryGame(t, myApp)
	assert.True(t, game.Ended)

	// The vault was swept and the winner holds the pool now.
	var sweptVault cash.Set
	if queryOne(t, myApp, "/wallets", lastword.VaultAddress(), &sweptVault) {
		assert.Equal(t, 0, len(sweptVault.Coins))
	}
	var winner cash.Set
	require.True(t, queryOne(t, myApp, "/wallets", alice, &winner))
	require.Equal(t, 1, len(winner.Coins))
	wantBalance := coin.NewCoin(0, 1000000000-rake, "JIG")
	assert.True(t, wantBalance.Equals(*winner.Coins[0]), "winner balance: %v", winner.Coins[0])

	// Settling twice is not possible.
	claimAgain := signedTx(t, chainID, &Tx_LastwordClaimPrizeMsg{
		LastwordClaimPrizeMsg: &lastword.ClaimPrizeMsg{
			Metadata: &weave.Metadata{Schema: 1},
		},
	}, alicePriv, 11)
	runBlock(t, myApp, 13, expired.Add(time.Minute), nil, [][]byte{claimAgain})
}

func TestTxCodecRoundTrip(t *testing.T) {
	digest := sha256.Sum256([]byte("round trip"))
	sums := []isTx_Sum{
		&Tx_CashSendMsg{&cash.SendMsg{Metadata: &weave.Metadata{Schema: 1}}},
		&Tx_LastwordInitMsg{&lastword.InitMsg{Metadata: &weave.Metadata{Schema: 1}, BaseFee: 4}},
		&Tx_LastwordSubmitMsg{&lastword.SubmitMsg{Metadata: &weave.Metadata{Schema: 1}, MsgHash: digest[:]}},
		&Tx_LastwordClaimPrizeMsg{&lastword.ClaimPrizeMsg{Metadata: &weave.Metadata{Schema: 1}}},
		&Tx_LastwordApprovePayoutMsg{&lastword.ApprovePayoutMsg{Metadata: &weave.Metadata{Schema: 1}}},
		&Tx_LastwordUpdateFeeParamsMsg{&lastword.UpdateFeeParamsMsg{Metadata: &weave.Metadata{Schema: 1}, BaseFee: 1, FeeCap: 2}},
		&Tx_LastwordUpdateMarketingParamsMsg{&lastword.UpdateMarketingParamsMsg{Metadata: &weave.Metadata{Schema: 1}, MarketingBps: 7}},
		&Tx_LastwordUpdateConfigurationMsg{&lastword.UpdateConfigurationMsg{Metadata: &weave.Metadata{Schema: 1}}},
	}

	for _, sum := range sums {
		tx := &Tx{Sum: sum}
		msg, err := tx.GetMsg()
		require.NoError(t, err)
		require.NotNil(t, msg)

		raw, err := tx.Marshal()
		require.NoError(t, err)

		decoded, err := TxDecoder(raw)
		require.NoError(t, err)
		got, err := decoded.GetMsg()
		require.NoError(t, err)
		assert.Equal(t, msg.Path(), got.Path())
		assert.Equal(t, msg, got)
	}
}
