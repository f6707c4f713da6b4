package lastword

import (
	"math"
	"strconv"
	"strings"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// pay the game creation cost up-front
	initGameCost      int64 = 300
	submitMessageCost int64 = 100
	claimPrizeCost    int64 = 0
	approvePayoutCost int64 = 0
	updateParamsCost  int64 = 0
)

const (
	tagSender          = "sender"
	tagMsgHash         = "msg-hash"
	tagFeePaid         = "fee-paid"
	tagNewFee          = "new-fee"
	tagTimestamp       = "timestamp"
	tagMarketingWallet = "marketing-wallet"
	tagMarketingFee    = "marketing-fee"
	tagMarketingBps    = "marketing-bps"
	tagTimer           = "timer"
	tagTimerDeadline   = "timer-deadline"
	tagWinner          = "winner"
	tagPrize           = "prize"
)

// RegisterQuery registers the game bucket for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewGameBucket().Register("games", qr)
}

// RegisterRoutes registers handlers for the last word game message
// processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl cash.Controller) {
	r = migration.SchemaMigratingRegistry("lastword", r)

	games := NewGameBucket()
	r.Handle(&InitMsg{}, &initHandler{
		auth:  auth,
		games: games,
	})
	r.Handle(&SubmitMsg{}, &submitHandler{
		auth:  auth,
		games: games,
		ctrl:  ctrl,
	})
	r.Handle(&ClaimPrizeMsg{}, &claimPrizeHandler{
		auth:  auth,
		games: games,
		ctrl:  ctrl,
	})
	r.Handle(&ApprovePayoutMsg{}, &approvePayoutHandler{
		auth:  auth,
		games: games,
		ctrl:  ctrl,
	})
	r.Handle(&UpdateFeeParamsMsg{}, &updateFeeParamsHandler{
		auth:  auth,
		games: games,
	})
	r.Handle(&UpdateMarketingParamsMsg{}, &updateMarketingParamsHandler{
		auth:  auth,
		games: games,
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"lastword", &Configuration{}, auth, migration.CurrentAdmin))
}

// asCoin converts an amount expressed in base units into a coin of the
// given currency.
func asCoin(amount int64, ticker string) coin.Coin {
	return coin.NewCoin(amount/coin.FracUnit, amount%coin.FracUnit, ticker)
}

type initHandler struct {
	auth  x.Authenticator
	games orm.ModelBucket
}

func (h *initHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: initGameCost}, nil
}

// Deliver creates the game in its initial state. Fee bounds are accepted as
// given, without relating them to each other. Use UpdateFeeParamsMsg to
// ensure a sane setup.
func (h *initHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	authority := msg.Authority
	if len(authority) == 0 {
		authority = x.AnySigner(ctx, h.auth).Address()
	}

	game := &Game{
		Metadata:        &weave.Metadata{Schema: 1},
		Authority:       authority,
		BaseFee:         msg.BaseFee,
		FeeCap:          msg.FeeCap,
		CurrentFee:      msg.BaseFee,
		MarketingWallet: msg.MarketingWallet,
		MarketingBps:    msg.MarketingBps,
		Vault:           VaultAddress(),
	}
	if _, err := h.games.Put(db, gameKey, game); err != nil {
		return nil, errors.Wrap(err, "save game")
	}
	return &weave.DeliverResult{Data: gameKey}, nil
}

func (h *initHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*InitMsg, error) {
	var msg InitMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if len(msg.Authority) == 0 && x.AnySigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	switch err := h.games.Has(db, gameKey); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "game already created")
	case errors.ErrNotFound.Is(err):
		return &msg, nil
	default:
		return nil, errors.Wrap(err, "has game")
	}
}

type submitHandler struct {
	auth  x.Authenticator
	games orm.ModelBucket
	ctrl  cash.Controller
}

func (h *submitHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: submitMessageCost}, nil
}

// Deliver collects the current fee from the main signer and registers that
// signer as the last sender. The prize part of the fee is moved to the
// vault, the marketing part to the marketing wallet. Submitting can start
// or push back the countdown and escalates the fee for the next submission.
func (h *submitHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, game, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	blockNow, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	payer := x.AnySigner(ctx, h.auth).Address()

	feePaid := game.CurrentFee
	marketingCut, prizeCut, err := splitFee(feePaid, game.MarketingBps)
	if err != nil {
		return nil, err
	}
	if prizeCut > 0 {
		if err := h.ctrl.MoveCoins(db, payer, game.Vault, asCoin(prizeCut, conf.Ticker)); err != nil {
			return nil, errors.Wrap(err, "fund vault")
		}
	}
	sentMarketing := false
	if marketingCut > 0 && len(game.MarketingWallet) != 0 {
		if err := h.ctrl.MoveCoins(db, payer, game.MarketingWallet, asCoin(marketingCut, conf.Ticker)); err != nil {
			return nil, errors.Wrap(err, "pay marketing cut")
		}
		sentMarketing = true
	}

	if game.MessagesCount == math.MaxInt64 {
		return nil, errors.Wrap(errors.ErrOverflow, "messages count")
	}
	game.MessagesCount++
	game.LastSender = payer

	action, deadline := evaluateTimer(game.MessagesCount, game.TimerActive, game.Deadline, weave.AsUnixTime(blockNow))
	switch action {
	case timerStarted:
		game.TimerActive = true
		game.Deadline = deadline
	case timerExtended:
		game.Deadline = deadline
	}

	nextFee, err := escalateFee(feePaid, game.FeeCap)
	if err != nil {
		return nil, err
	}
	game.CurrentFee = nextFee

	if _, err := h.games.Put(db, gameKey, game); err != nil {
		return nil, errors.Wrap(err, "save game")
	}

	res := &weave.DeliverResult{
		Data: []byte(strconv.FormatInt(feePaid, 10)),
	}
	if sentMarketing {
		res.Tags = append(res.Tags, []common.KVPair{
			{Key: []byte(tagMarketingWallet), Value: game.MarketingWallet},
			{Key: []byte(tagMarketingFee), Value: []byte(strconv.FormatInt(marketingCut, 10))},
		}...)
	}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagSender), Value: payer},
		{Key: []byte(tagMsgHash), Value: msg.MsgHash},
		{Key: []byte(tagFeePaid), Value: []byte(strconv.FormatInt(feePaid, 10))},
		{Key: []byte(tagNewFee), Value: []byte(strconv.FormatInt(nextFee, 10))},
		{Key: []byte(tagTimestamp), Value: []byte(strconv.FormatInt(blockNow.Unix(), 10))},
	}...)
	switch action {
	case timerStarted:
		res.Tags = append(res.Tags, []common.KVPair{
			{Key: []byte(tagTimer), Value: []byte("started")},
			{Key: []byte(tagTimerDeadline), Value: []byte(strconv.FormatInt(int64(game.Deadline), 10))},
		}...)
	case timerExtended:
		res.Tags = append(res.Tags, []common.KVPair{
			{Key: []byte(tagTimer), Value: []byte("extended")},
			{Key: []byte(tagTimerDeadline), Value: []byte(strconv.FormatInt(int64(game.Deadline), 10))},
		}...)
	}
	return res, nil
}

func (h *submitHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SubmitMsg, *Game, error) {
	var msg SubmitMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var game Game
	if err := h.games.One(db, gameKey, &game); err != nil {
		return nil, nil, errors.Wrap(err, "load game")
	}

	if game.Ended {
		return nil, nil, errors.Wrap(ErrGameEnded, "no more submissions")
	}
	if !msg.MarketingWallet.Equals(game.MarketingWallet) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "marketing wallet mismatch")
	}

	blockNow, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "block time")
	}
	// Submissions are accepted up to and including the deadline. An
	// expired countdown freezes the game until the prize is claimed.
	if game.TimerActive && weave.AsUnixTime(blockNow) > game.Deadline {
		return nil, nil, errors.Wrap(ErrTimerExpired, "deadline passed")
	}

	payer := x.AnySigner(ctx, h.auth)
	if payer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "payer signature required")
	}
	if game.CurrentFee > 0 {
		conf, err := loadConf(db)
		if err != nil {
			return nil, nil, err
		}
		fee := asCoin(game.CurrentFee, conf.Ticker)
		switch balance, err := h.ctrl.Balance(db, payer.Address()); {
		case err == nil:
			if !balance.Contains(fee) {
				return nil, nil, errors.Wrapf(ErrInsufficientFee, "%s required", fee)
			}
		case errors.ErrNotFound.Is(err):
			// no account at all
			return nil, nil, errors.Wrapf(ErrInsufficientFee, "%s required", fee)
		default:
			return nil, nil, errors.Wrap(err, "payer balance")
		}
	}
	return &msg, &game, nil
}

type claimPrizeHandler struct {
	auth  x.Authenticator
	games orm.ModelBucket
	ctrl  cash.Controller
}

func (h *claimPrizeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: claimPrizeCost}, nil
}

// Deliver marks the game as ended and moves the whole vault balance to the
// winner.
func (h *claimPrizeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	game, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	game.Ended = true
	if _, err := h.games.Put(db, gameKey, game); err != nil {
		return nil, errors.Wrap(err, "save game")
	}

	prize, err := sweepVault(db, h.ctrl, game.Vault, game.LastSender)
	if err != nil {
		return nil, err
	}

	res := &weave.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagWinner), Value: game.LastSender},
		{Key: []byte(tagPrize), Value: coinsValue(prize)},
	}...)
	return res, nil
}

func (h *claimPrizeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Game, error) {
	var msg ClaimPrizeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	var game Game
	if err := h.games.One(db, gameKey, &game); err != nil {
		return nil, errors.Wrap(err, "load game")
	}

	if !game.TimerActive {
		return nil, errors.Wrap(ErrGameNotEnded, "countdown not started")
	}
	if !weave.IsExpired(ctx, game.Deadline) {
		return nil, errors.Wrap(ErrGameNotEnded, "countdown still running")
	}
	if !game.HasLastSender() {
		return nil, errors.Wrap(ErrNoWinner, "no message was submitted")
	}
	if game.Ended {
		return nil, errors.Wrap(ErrAlreadyClaimed, "prize already paid out")
	}
	if !h.auth.HasAddress(ctx, game.LastSender) {
		return nil, errors.Wrap(ErrNotTheWinner, "last sender signature required")
	}
	return &game, nil
}

type approvePayoutHandler struct {
	auth  x.Authenticator
	games orm.ModelBucket
	ctrl  cash.Controller
}

func (h *approvePayoutHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: approvePayoutCost}, nil
}

// Deliver settles the game for the last sender on behalf of the authority.
// Unlike claiming, this path does not wait for the countdown.
func (h *approvePayoutHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	game, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	game.Ended = true
	if _, err := h.games.Put(db, gameKey, game); err != nil {
		return nil, errors.Wrap(err, "save game")
	}

	prize, err := sweepVault(db, h.ctrl, game.Vault, game.LastSender)
	if err != nil {
		return nil, err
	}

	res := &weave.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagWinner), Value: game.LastSender},
		{Key: []byte(tagPrize), Value: coinsValue(prize)},
	}...)
	return res, nil
}

func (h *approvePayoutHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Game, error) {
	var msg ApprovePayoutMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	var game Game
	if err := h.games.One(db, gameKey, &game); err != nil {
		return nil, errors.Wrap(err, "load game")
	}

	if game.Ended {
		return nil, errors.Wrap(ErrAlreadyClaimed, "prize already paid out")
	}
	if !h.auth.HasAddress(ctx, game.Authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "authority signature required")
	}
	if !msg.Winner.Equals(game.LastSender) {
		return nil, errors.Wrap(ErrNotTheWinner, "winner must be the last sender")
	}
	if !game.HasLastSender() {
		return nil, errors.Wrap(ErrNoWinner, "no message was submitted")
	}
	return &game, nil
}

// coinsValue renders coins for use as a tag value.
func coinsValue(cs coin.Coins) []byte {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, c.String())
	}
	return []byte(strings.Join(parts, ","))
}

// sweepVault withdraws all coins pooled in the vault to the winner. A vault
// that was never funded counts as empty.
func sweepVault(db weave.KVStore, ctrl cash.Controller, vault, winner weave.Address) (coin.Coins, error) {
	switch available, err := ctrl.Balance(db, vault); {
	case err == nil:
		if err := cash.MoveCoins(db, ctrl, vault, winner, available); err != nil {
			return nil, errors.Wrap(err, "pay out prize")
		}
		return available, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "vault balance")
	}
}

type updateFeeParamsHandler struct {
	auth  x.Authenticator
	games orm.ModelBucket
}

func (h *updateFeeParamsHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateParamsCost}, nil
}

// Deliver replaces the fee bounds and clamps the current fee into them.
func (h *updateFeeParamsHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, game, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	game.BaseFee = msg.BaseFee
	game.FeeCap = msg.FeeCap
	if game.CurrentFee < game.BaseFee {
		game.CurrentFee = game.BaseFee
	}
	if game.CurrentFee > game.FeeCap {
		game.CurrentFee = game.FeeCap
	}
	if _, err := h.games.Put(db, gameKey, game); err != nil {
		return nil, errors.Wrap(err, "save game")
	}
	return &weave.DeliverResult{}, nil
}

func (h *updateFeeParamsHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateFeeParamsMsg, *Game, error) {
	var msg UpdateFeeParamsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var game Game
	if err := h.games.One(db, gameKey, &game); err != nil {
		return nil, nil, errors.Wrap(err, "load game")
	}
	if !h.auth.HasAddress(ctx, game.Authority) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "authority signature required")
	}
	return &msg, &game, nil
}

type updateMarketingParamsHandler struct {
	auth  x.Authenticator
	games orm.ModelBucket
}

func (h *updateMarketingParamsHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateParamsCost}, nil
}

func (h *updateMarketingParamsHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, game, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	game.MarketingWallet = msg.MarketingWallet
	game.MarketingBps = msg.MarketingBps
	if _, err := h.games.Put(db, gameKey, game); err != nil {
		return nil, errors.Wrap(err, "save game")
	}

	res := &weave.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagMarketingWallet), Value: game.MarketingWallet},
		{Key: []byte(tagMarketingBps), Value: []byte(strconv.FormatUint(uint64(game.MarketingBps), 10))},
	}...)
	return res, nil
}

func (h *updateMarketingParamsHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateMarketingParamsMsg, *Game, error) {
	var msg UpdateMarketingParamsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var game Game
	if err := h.games.One(db, gameKey, &game); err != nil {
		return nil, nil, errors.Wrap(err, "load game")
	}
	if !h.auth.HasAddress(ctx, game.Authority) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "authority signature required")
	}
	return &msg, &game, nil
}
