package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/domain/repositories"
	"whalebyte.core/pkg/utils"
)

// WalletUsecase handles transfer and ledger business logic. Transfers are
// two-phase: a pending transaction is appended first, then settled against
// the balances. The balance check happens at settle time, the ledger
// boundary, not when the transfer is requested.
type WalletUsecase struct {
	walletRepo repositories.WalletRepository
	uow        repositories.UnitOfWork
	notifier   Notifier
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(walletRepo repositories.WalletRepository, uow repositories.UnitOfWork, notifier Notifier) *WalletUsecase {
	return &WalletUsecase{
		walletRepo: walletRepo,
		uow:        uow,
		notifier:   notifier,
	}
}

// GetByUserID gets the wallet owned by a user
func (u *WalletUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	return u.walletRepo.GetByUserID(ctx, userID)
}

// History lists a wallet's transactions in chronological order, paginated
func (u *WalletUsecase) History(ctx context.Context, address string, page, limit int) ([]*entities.Transaction, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	txs, total, err := u.walletRepo.ListTransactions(ctx, address, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return txs, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// Transfer appends a pending transaction between two resolved wallets.
// Both endpoints must exist; the amount is not checked against the sender's
// balance until Settle.
func (u *WalletUsecase) Transfer(ctx context.Context, sender, receiver string, amount float64, txType entities.TransactionType, relatedPostID, relatedSphereID *uuid.UUID) (*entities.Transaction, error) {
	if _, err := u.walletRepo.GetByAddress(ctx, sender); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NewError("sender wallet does not exist", domainerrors.ErrInvalidInput)
		}
		return nil, err
	}
	if _, err := u.walletRepo.GetByAddress(ctx, receiver); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NewError("receiver wallet does not exist", domainerrors.ErrInvalidInput)
		}
		return nil, err
	}

	tx, err := entities.NewTransaction(sender, receiver, amount, txType)
	if err != nil {
		return nil, err
	}
	tx.RelatedPostID = relatedPostID
	tx.RelatedSphereID = relatedSphereID

	if err := u.walletRepo.AppendTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Settle moves a pending transaction to its terminal status. An insufficient
// sender balance fails the transaction durably; otherwise both balances move
// and the transaction completes, all within one unit of work.
func (u *WalletUsecase) Settle(ctx context.Context, txID uuid.UUID) (*entities.Transaction, error) {
	var settled *entities.Transaction

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		tx, err := u.walletRepo.GetTransaction(txCtx, txID)
		if err != nil {
			return err
		}
		if tx.Status != entities.TransactionPending {
			return domainerrors.ErrInvalidTransition
		}

		sender, err := u.walletRepo.GetByAddress(txCtx, tx.SenderAddress)
		if err != nil {
			return err
		}
		receiver, err := u.walletRepo.GetByAddress(txCtx, tx.ReceiverAddress)
		if err != nil {
			return err
		}

		if sender.Balance < tx.Amount {
			if err := tx.MarkFailed(); err != nil {
				return err
			}
			if err := u.walletRepo.UpdateTransactionStatus(txCtx, tx); err != nil {
				return err
			}
			settled = tx
			return nil
		}

		if err := u.walletRepo.UpdateBalance(txCtx, sender.Address, sender.Balance-tx.Amount); err != nil {
			return err
		}
		if err := u.walletRepo.UpdateBalance(txCtx, receiver.Address, receiver.Balance+tx.Amount); err != nil {
			return err
		}

		if err := tx.MarkCompleted(); err != nil {
			return err
		}
		if err := u.walletRepo.UpdateTransactionStatus(txCtx, tx); err != nil {
			return err
		}
		settled = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	if settled.Status == entities.TransactionFailed {
		return settled, domainerrors.ErrInsufficientFunds
	}

	if u.notifier != nil {
		if receiver, err := u.walletRepo.GetByAddress(ctx, settled.ReceiverAddress); err == nil {
			u.notifier.Notify(ctx, receiver.UserID, entities.NotificationTypeTransaction,
				fmt.Sprintf("you received %.2f SPH", settled.Amount),
				entities.RelatedEntityTransaction, &settled.ID)
		}
	}
	return settled, nil
}
