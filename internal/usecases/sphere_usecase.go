package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/domain/repositories"
	"whalebyte.core/pkg/utils"
)

// SphereUsecase handles community business logic. Every mutation that moves
// a derived counter runs inside a unit of work so the counter and the set it
// summarizes can never diverge.
type SphereUsecase struct {
	sphereRepo  repositories.SphereRepository
	contentRepo repositories.ContentRepository
	chatRepo    repositories.ChatRepository
	wallets     *WalletUsecase
	uow         repositories.UnitOfWork
}

// NewSphereUsecase creates a new sphere usecase
func NewSphereUsecase(
	sphereRepo repositories.SphereRepository,
	contentRepo repositories.ContentRepository,
	chatRepo repositories.ChatRepository,
	wallets *WalletUsecase,
	uow repositories.UnitOfWork,
) *SphereUsecase {
	return &SphereUsecase{
		sphereRepo:  sphereRepo,
		contentRepo: contentRepo,
		chatRepo:    chatRepo,
		wallets:     wallets,
		uow:         uow,
	}
}

// Create creates a sphere with its creator as the first member and a bound
// chat room, atomically. The creator holds the only CREATOR membership.
func (u *SphereUsecase) Create(ctx context.Context, creatorID uuid.UUID, input *entities.CreateSphereInput) (*entities.Sphere, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, err := u.sphereRepo.GetByName(ctx, input.Name)
	if err == nil {
		return nil, domainerrors.NewError("sphere name already taken", domainerrors.ErrAlreadyExists)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	sphere := &entities.Sphere{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		IsPrivate:   input.IsPrivate,
		EntryFee:    input.EntryFee,
		CreatorID:   creatorID,
		Rules:       input.Rules,
		MemberCount: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	room, err := entities.NewSphereChatRoom(input.Name, sphere.ID)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.sphereRepo.Create(txCtx, sphere); err != nil {
			return err
		}
		if err := u.sphereRepo.AddMember(txCtx, &entities.SphereMember{
			ID:       uuid.New(),
			SphereID: sphere.ID,
			UserID:   creatorID,
			Role:     entities.SphereRoleCreator,
			JoinedAt: now,
		}); err != nil {
			return err
		}
		if err := u.chatRepo.CreateRoom(txCtx, room); err != nil {
			return err
		}
		return u.chatRepo.AddMember(txCtx, &entities.ChatRoomMember{
			ID:         uuid.New(),
			ChatRoomID: room.ID,
			UserID:     creatorID,
			Role:       entities.ChatRoomRoleAdmin,
			JoinedAt:   now,
			LastReadAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return sphere, nil
}

// Get gets a sphere by ID
func (u *SphereUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Sphere, error) {
	return u.sphereRepo.GetByID(ctx, id)
}

// List lists spheres, newest first, paginated
func (u *SphereUsecase) List(ctx context.Context, page, limit int) ([]*entities.Sphere, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	spheres, total, err := u.sphereRepo.List(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return spheres, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// Join adds a user to a sphere. A positive entry fee is charged as an
// ENTRY_FEE transfer to the creator's wallet; an unsettleable fee blocks the
// join. Fee and membership commit in one unit of work, so a failed membership
// write rolls the paid fee back with it. Chat membership mirrors sphere
// membership.
func (u *SphereUsecase) Join(ctx context.Context, sphereID, userID uuid.UUID) error {
	sphere, err := u.sphereRepo.GetByID(ctx, sphereID)
	if err != nil {
		return err
	}

	if _, err := u.sphereRepo.GetMember(ctx, sphereID, userID); err == nil {
		return domainerrors.NewError("already a member", domainerrors.ErrAlreadyExists)
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	now := time.Now()
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if sphere.EntryFee > 0 {
			payer, err := u.wallets.GetByUserID(txCtx, userID)
			if err != nil {
				return err
			}
			creatorWallet, err := u.wallets.GetByUserID(txCtx, sphere.CreatorID)
			if err != nil {
				return err
			}
			fee, err := u.wallets.Transfer(txCtx, payer.Address, creatorWallet.Address,
				sphere.EntryFee, entities.TransactionTypeEntryFee, nil, &sphere.ID)
			if err != nil {
				return err
			}
			if _, err := u.wallets.Settle(txCtx, fee.ID); err != nil {
				return err
			}
		}

		if err := u.sphereRepo.AddMember(txCtx, &entities.SphereMember{
			ID:       uuid.New(),
			SphereID: sphereID,
			UserID:   userID,
			Role:     entities.SphereRoleMember,
			JoinedAt: now,
		}); err != nil {
			return err
		}
		if err := u.sphereRepo.AdjustCounts(txCtx, sphereID, 1, 0); err != nil {
			return err
		}
		room, err := u.chatRepo.GetSphereRoom(txCtx, sphereID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil
			}
			return err
		}
		return u.chatRepo.AddMember(txCtx, &entities.ChatRoomMember{
			ID:         uuid.New(),
			ChatRoomID: room.ID,
			UserID:     userID,
			Role:       entities.ChatRoomRoleMember,
			JoinedAt:   now,
			LastReadAt: now,
		})
	})
}

// Leave removes a user from a sphere; the creator cannot leave their own
// sphere. Chat membership is dropped in the same unit of work.
func (u *SphereUsecase) Leave(ctx context.Context, sphereID, userID uuid.UUID) error {
	member, err := u.sphereRepo.GetMember(ctx, sphereID, userID)
	if err != nil {
		return err
	}
	if member.Role == entities.SphereRoleCreator {
		return domainerrors.NewError("the creator cannot leave their sphere", domainerrors.ErrForbidden)
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.sphereRepo.RemoveMember(txCtx, sphereID, userID); err != nil {
			return err
		}
		if err := u.sphereRepo.AdjustCounts(txCtx, sphereID, -1, 0); err != nil {
			return err
		}
		room, err := u.chatRepo.GetSphereRoom(txCtx, sphereID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil
			}
			return err
		}
		if err := u.chatRepo.RemoveMember(txCtx, room.ID, userID); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		return nil
	})
}

// CreatePost publishes a post into a sphere the author belongs to, moving the
// sphere's content counter in the same unit of work.
func (u *SphereUsecase) CreatePost(ctx context.Context, sphereID, userID uuid.UUID, input *entities.CreatePostInput) (*entities.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := u.sphereRepo.GetMember(ctx, sphereID, userID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrNotAMember
		}
		return nil, err
	}

	now := time.Now()
	post := &entities.Post{
		ID:          uuid.New(),
		SphereID:    sphereID,
		UserID:      userID,
		Content:     input.Content,
		MediaURLs:   input.MediaURLs,
		IsPremium:   input.IsPremium,
		PremiumCost: input.PremiumCost,
		IPFSHash:    input.IPFSHash,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.contentRepo.CreatePost(txCtx, post); err != nil {
			return err
		}
		return u.sphereRepo.AdjustCounts(txCtx, sphereID, 0, 1)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment appends a comment to a post, moving the post's live-comment
// counter in the same unit of work.
func (u *SphereUsecase) AddComment(ctx context.Context, postID, userID uuid.UUID, content string) (*entities.Comment, error) {
	if content == "" {
		return nil, domainerrors.NewError("comment content is required", domainerrors.ErrInvalidInput)
	}

	post, err := u.contentRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if _, err := u.sphereRepo.GetMember(ctx, post.SphereID, userID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrNotAMember
		}
		return nil, err
	}

	now := time.Now()
	comment := &entities.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.contentRepo.CreateComment(txCtx, comment); err != nil {
			return err
		}
		return u.contentRepo.AdjustCommentCount(txCtx, postID, 1)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment soft-deletes a comment and decrements the post's
// live-comment counter atomically.
func (u *SphereUsecase) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	comment, err := u.contentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return domainerrors.ErrForbidden
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.contentRepo.SoftDeleteComment(txCtx, commentID); err != nil {
			return err
		}
		return u.contentRepo.AdjustCommentCount(txCtx, comment.PostID, -1)
	})
}

// ListPosts lists a sphere's posts, newest first, paginated
func (u *SphereUsecase) ListPosts(ctx context.Context, sphereID uuid.UUID, page, limit int) ([]*entities.Post, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	posts, total, err := u.contentRepo.ListPosts(ctx, sphereID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return posts, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
