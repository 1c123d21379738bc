package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
)

func TestWalletRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	w := &entities.Wallet{
		Address:   "0xaaa111",
		UserID:    userID,
		Balance:   100,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, w))

	byAddr, err := repo.GetByAddress(ctx, "0xaaa111")
	require.NoError(t, err)
	require.Equal(t, userID, byAddr.UserID)

	byUser, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "0xaaa111", byUser.Address)

	_, err = repo.GetByAddress(ctx, "0xmissing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestWalletRepository_UpdateBalance(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	w := &entities.Wallet{Address: "0xbbb222", UserID: uuid.New(), Balance: 50, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, w))

	require.NoError(t, repo.UpdateBalance(ctx, "0xbbb222", 75))
	got, err := repo.GetByAddress(ctx, "0xbbb222")
	require.NoError(t, err)
	require.InDelta(t, 75, got.Balance, 1e-9)

	require.ErrorIs(t, repo.UpdateBalance(ctx, "0xbbb222", -1), domainerrors.ErrInsufficientFunds)
	require.ErrorIs(t, repo.UpdateBalance(ctx, "0xmissing", 10), domainerrors.ErrNotFound)
}

func TestWalletRepository_TransactionLedger(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	tx, err := entities.NewTransaction("0xaaa111", "0xbbb222", 10, entities.TransactionTypeTip)
	require.NoError(t, err)
	require.NoError(t, repo.AppendTransaction(ctx, tx))

	got, err := repo.GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	require.Equal(t, entities.TransactionPending, got.Status)

	require.NoError(t, got.MarkCompleted())
	got.BlockchainTxHash = "0xhash"
	require.NoError(t, repo.UpdateTransactionStatus(ctx, got))

	settled, err := repo.GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	require.Equal(t, entities.TransactionCompleted, settled.Status)
	require.Equal(t, "0xhash", settled.BlockchainTxHash)

	// completed rows stay immutable
	settled.Status = entities.TransactionFailed
	require.ErrorIs(t, repo.UpdateTransactionStatus(ctx, settled), domainerrors.ErrInvalidTransition)

	sent, total, err := repo.ListTransactions(ctx, "0xaaa111", 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, sent, 1)

	received, total, err := repo.ListTransactions(ctx, "0xbbb222", 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, received, 1)
}
