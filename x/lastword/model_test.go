package lastword

import (
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestGameValidate(t *testing.T) {
	game := Game{
		Metadata:  &weave.Metadata{Schema: 1},
		Authority: weavetest.NewCondition().Address(),
		BaseFee:   100,
		FeeCap:    1000,

		CurrentFee: 100,
		Vault:      VaultAddress(),
	}
	assert.Nil(t, game.Validate())

	game.BaseFee = -1
	game.CurrentFee = -5
	game.MessagesCount = -1
	err := game.Validate()
	assert.FieldError(t, err, "BaseFee", errors.ErrState)
	assert.FieldError(t, err, "CurrentFee", errors.ErrState)
	assert.FieldError(t, err, "MessagesCount", errors.ErrState)

	game.Metadata = nil
	assert.FieldError(t, game.Validate(), "Metadata", errors.ErrMetadata)
}

func TestGameBucketRoundTrip(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "lastword")
	b := NewGameBucket()

	game := Game{
		Metadata:   &weave.Metadata{Schema: 1},
		Authority:  weavetest.NewCondition().Address(),
		BaseFee:    100,
		FeeCap:     1000,
		CurrentFee: 178,
		LastSender: weavetest.NewCondition().Address(),

		MessagesCount: 4,
		Vault:         VaultAddress(),
	}
	_, err := b.Put(db, gameKey, &game)
	assert.Nil(t, err)

	var loaded Game
	assert.Nil(t, b.One(db, gameKey, &loaded))
	assert.Equal(t, game.CurrentFee, loaded.CurrentFee)
	assert.Equal(t, game.MessagesCount, loaded.MessagesCount)
	assert.Equal(t, game.LastSender, loaded.LastSender)
}

func TestVaultAddress(t *testing.T) {
	addr := VaultAddress()
	assert.Nil(t, addr.Validate())
	if len(addr) != weave.AddressLength {
		t.Fatalf("unexpected address length: %d", len(addr))
	}
	// Derivation must be deterministic as the address is persisted in the
	// game record and recomputed on every payout.
	assert.Equal(t, addr, VaultAddress())
}
