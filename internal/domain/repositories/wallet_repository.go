package repositories

import (
	"context"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
)

// WalletRepository defines wallet and transaction data operations.
// Transactions are append-only and ordered chronologically.
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	GetByAddress(ctx context.Context, address string) (*entities.Wallet, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
	UpdateBalance(ctx context.Context, address string, balance float64) error

	AppendTransaction(ctx context.Context, tx *entities.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, tx *entities.Transaction) error
	ListTransactions(ctx context.Context, address string, limit, offset int) ([]*entities.Transaction, int64, error)
}
