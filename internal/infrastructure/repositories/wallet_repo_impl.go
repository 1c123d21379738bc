package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/infrastructure/models"
)

// WalletRepository implements wallet and transaction data operations
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create creates a new wallet
func (r *WalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	m := &models.Wallet{
		Address:   wallet.Address,
		UserID:    wallet.UserID,
		Balance:   wallet.Balance,
		CreatedAt: wallet.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByAddress gets a wallet by address
func (r *WalletRepository) GetByAddress(ctx context.Context, address string) (*entities.Wallet, error) {
	var m models.Wallet
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("address = ?", address).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toWalletEntity(&m), nil
}

// GetByUserID gets the wallet owned by a user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	var m models.Wallet
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toWalletEntity(&m), nil
}

// UpdateBalance sets the wallet balance. Balances never go negative.
func (r *WalletRepository) UpdateBalance(ctx context.Context, address string, balance float64) error {
	if balance < 0 {
		return domainerrors.ErrInsufficientFunds
	}
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Wallet{}).Where("address = ?", address).
		Updates(map[string]interface{}{"balance": balance, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AppendTransaction appends a transaction to the ledger
func (r *WalletRepository) AppendTransaction(ctx context.Context, tx *entities.Transaction) error {
	return GetDB(ctx, r.db).WithContext(ctx).Create(toTransactionModel(tx)).Error
}

// GetTransaction gets a transaction by ID
func (r *WalletRepository) GetTransaction(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	var m models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTransactionEntity(&m), nil
}

// UpdateTransactionStatus persists a settled transaction's terminal status.
// Only pending rows are touched; completed/failed rows stay immutable.
func (r *WalletRepository) UpdateTransactionStatus(ctx context.Context, tx *entities.Transaction) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND status = ?", tx.ID, string(entities.TransactionPending)).
		Updates(map[string]interface{}{
			"status":             string(tx.Status),
			"blockchain_tx_hash": tx.BlockchainTxHash,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

// ListTransactions lists a wallet's transactions in chronological order
func (r *WalletRepository) ListTransactions(ctx context.Context, address string, limit, offset int) ([]*entities.Transaction, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("sender_address = ? OR receiver_address = ?", address, address)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []models.Transaction
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]*entities.Transaction, len(rows))
	for i := range rows {
		txs[i] = toTransactionEntity(&rows[i])
	}
	return txs, total, nil
}

func toWalletEntity(m *models.Wallet) *entities.Wallet {
	return &entities.Wallet{
		Address:   m.Address,
		UserID:    m.UserID,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toTransactionModel(t *entities.Transaction) *models.Transaction {
	return &models.Transaction{
		ID:               t.ID,
		SenderAddress:    t.SenderAddress,
		ReceiverAddress:  t.ReceiverAddress,
		Amount:           t.Amount,
		Type:             string(t.Type),
		Status:           string(t.Status),
		BlockchainTxHash: t.BlockchainTxHash,
		RelatedPostID:    t.RelatedPostID,
		RelatedSphereID:  t.RelatedSphereID,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func toTransactionEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:               m.ID,
		SenderAddress:    m.SenderAddress,
		ReceiverAddress:  m.ReceiverAddress,
		Amount:           m.Amount,
		Type:             entities.TransactionType(m.Type),
		Status:           entities.TransactionStatus(m.Status),
		BlockchainTxHash: m.BlockchainTxHash,
		RelatedPostID:    m.RelatedPostID,
		RelatedSphereID:  m.RelatedSphereID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
