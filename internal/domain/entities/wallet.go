package entities

import (
	"time"

	"github.com/google/uuid"
	domainerrors "whalebyte.core/internal/domain/errors"
)

// Wallet represents a user's wallet. The address is the primary key and
// matches User.WalletAddress; the wallet lives exactly as long as its user.
type Wallet struct {
	Address      string         `json:"address"`
	UserID       uuid.UUID      `json:"userId"`
	Balance      float64        `json:"balance"`
	Transactions []*Transaction `json:"transactions,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// TransactionType represents the context a transfer was made in
type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "TRANSFER"
	TransactionTypeTip      TransactionType = "TIP"
	TransactionTypeEntryFee TransactionType = "ENTRY_FEE"
	TransactionTypePremium  TransactionType = "PREMIUM_UNLOCK"
)

// TransactionStatus follows the one-way pending -> completed | failed path
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// Transaction is immutable once its status leaves PENDING.
type Transaction struct {
	ID               uuid.UUID         `json:"id"`
	SenderAddress    string            `json:"senderAddress"`
	ReceiverAddress  string            `json:"receiverAddress"`
	Amount           float64           `json:"amount"`
	Type             TransactionType   `json:"type"`
	Status           TransactionStatus `json:"status"`
	BlockchainTxHash string            `json:"blockchainTxHash,omitempty"`
	RelatedPostID    *uuid.UUID        `json:"relatedPostId,omitempty"`
	RelatedSphereID  *uuid.UUID        `json:"relatedSphereId,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// NewTransaction creates a pending transaction between two resolved wallets.
func NewTransaction(sender, receiver string, amount float64, txType TransactionType) (*Transaction, error) {
	if sender == "" || receiver == "" {
		return nil, domainerrors.NewError("sender and receiver addresses are required", domainerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, domainerrors.NewError("transaction amount must be positive", domainerrors.ErrInvalidInput)
	}
	now := time.Now()
	return &Transaction{
		ID:              uuid.New(),
		SenderAddress:   sender,
		ReceiverAddress: receiver,
		Amount:          amount,
		Type:            txType,
		Status:          TransactionPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// MarkCompleted transitions pending -> completed. Completed and failed are
// terminal; any further transition is rejected.
func (t *Transaction) MarkCompleted() error {
	if t.Status != TransactionPending {
		return domainerrors.ErrInvalidTransition
	}
	t.Status = TransactionCompleted
	t.UpdatedAt = time.Now()
	return nil
}

// MarkFailed transitions pending -> failed.
func (t *Transaction) MarkFailed() error {
	if t.Status != TransactionPending {
		return domainerrors.ErrInvalidTransition
	}
	t.Status = TransactionFailed
	t.UpdatedAt = time.Now()
	return nil
}
