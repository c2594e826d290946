package transaction_test

import (
	"testing"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/transaction"
	"cargospace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	t.Run("creates pending transaction without hash", func(t *testing.T) {
		id := kernel.NewUUID()
		shipmentID := kernel.NewUUID()

		tx, err := transaction.NewTransaction(id, shipmentID, 500)
		require.NoError(t, err)

		assert.True(t, tx.ID().IsEqual(id))
		assert.True(t, tx.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, 500, tx.Amount())
		assert.Equal(t, transaction.Pending, tx.Status())
		assert.Empty(t, tx.BlockchainTxHash())
		require.NoError(t, tx.Validate())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := transaction.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = transaction.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), -5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero identifiers", func(t *testing.T) {
		_, err := transaction.NewTransaction(kernel.UUID{}, kernel.NewUUID(), 500)
		require.Error(t, err)

		_, err = transaction.NewTransaction(kernel.NewUUID(), kernel.UUID{}, 500)
		require.Error(t, err)
	})
}

func TestRestoreTransaction(t *testing.T) {
	t.Run("restores completed transaction with hash", func(t *testing.T) {
		tx, err := transaction.RestoreTransaction(
			kernel.NewUUID(), kernel.NewUUID(), 500, transaction.Completed, "0xabc")
		require.NoError(t, err)
		assert.Equal(t, transaction.Completed, tx.Status())
		assert.Equal(t, "0xabc", tx.BlockchainTxHash())
	})

	t.Run("completed without hash is rejected", func(t *testing.T) {
		_, err := transaction.RestoreTransaction(
			kernel.NewUUID(), kernel.NewUUID(), 500, transaction.Completed, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("pending with hash is rejected", func(t *testing.T) {
		_, err := transaction.RestoreTransaction(
			kernel.NewUUID(), kernel.NewUUID(), 500, transaction.Pending, "0xabc")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := transaction.RestoreTransaction(
			kernel.NewUUID(), kernel.NewUUID(), 500, transaction.Unknown, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTransaction_Complete(t *testing.T) {
	newPending := func(t *testing.T) *transaction.Transaction {
		t.Helper()
		tx, err := transaction.NewTransaction(kernel.NewUUID(), kernel.NewUUID(), 500)
		require.NoError(t, err)
		return tx
	}

	t.Run("stores hash and moves to completed", func(t *testing.T) {
		tx := newPending(t)
		require.NoError(t, tx.Complete("0xabc"))

		assert.Equal(t, transaction.Completed, tx.Status())
		assert.Equal(t, "0xabc", tx.BlockchainTxHash())
	})

	t.Run("empty hash is rejected", func(t *testing.T) {
		tx := newPending(t)
		err := tx.Complete("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, transaction.Pending, tx.Status())
	})

	t.Run("double completion is a conflict", func(t *testing.T) {
		tx := newPending(t)
		require.NoError(t, tx.Complete("0xabc"))

		err := tx.Complete("0xdef")
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, "0xabc", tx.BlockchainTxHash())
	})
}

func TestTransaction_Validate(t *testing.T) {
	var zero transaction.Transaction
	require.ErrorIs(t, zero.Validate(), transaction.ErrTransactionIsNotConstructed)
}

func TestStatus(t *testing.T) {
	require.NoError(t, transaction.Pending.Validate())
	require.NoError(t, transaction.Completed.Validate())
	require.ErrorIs(t, transaction.Unknown.Validate(), errs.ErrValueIsInvalid)

	assert.Equal(t, "pending", transaction.Pending.String())
	assert.Equal(t, "completed", transaction.Completed.String())
	assert.Equal(t, "unknown", transaction.Unknown.String())
}
