package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"whalebyte.core/internal/domain/entities"
	domainRepos "whalebyte.core/internal/domain/repositories"
	"whalebyte.core/internal/usecases"
)

// chatRepoWithFailingJoin fails the membership write while every other chat
// query hits the real repository.
type chatRepoWithFailingJoin struct {
	domainRepos.ChatRepository
	err error
}

func (c *chatRepoWithFailingJoin) AddMember(context.Context, *entities.ChatRoomMember) error {
	return c.err
}

func TestSphereJoin_FeeRollsBackWithMembership(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	createSphereTables(t, db)
	createChatTables(t, db)
	createContentTables(t, db)

	sphereID, creatorID, joinerID := uuid.New(), uuid.New(), uuid.New()
	payerAddr := "0x00000000000000000000000000000000000000aa"
	creatorAddr := "0x00000000000000000000000000000000000000bb"

	mustExec(t, db, "INSERT INTO wallets(address,user_id,balance) VALUES (?,?,?)",
		payerAddr, joinerID.String(), 50.0)
	mustExec(t, db, "INSERT INTO wallets(address,user_id,balance) VALUES (?,?,?)",
		creatorAddr, creatorID.String(), 0.0)
	mustExec(t, db, "INSERT INTO spheres(id,name,creator_id,entry_fee,member_count) VALUES (?,?,?,?,1)",
		sphereID.String(), "gated", creatorID.String(), 10.0)
	mustExec(t, db, "INSERT INTO chat_rooms(id,is_sphere_chat,sphere_id) VALUES (?,1,?)",
		uuid.New().String(), sphereID.String())

	uow := NewUnitOfWork(db)
	walletRepo := NewWalletRepository(db)
	chatRepo := &chatRepoWithFailingJoin{
		ChatRepository: NewChatRepository(db),
		err:            errors.New("chat membership insert failed"),
	}
	wallets := usecases.NewWalletUsecase(walletRepo, uow, nil)
	spheres := usecases.NewSphereUsecase(NewSphereRepository(db), NewContentRepository(db), chatRepo, wallets, uow)

	err := spheres.Join(context.Background(), sphereID, joinerID)
	require.Error(t, err)

	// the settled fee rolls back together with the membership writes
	payer, err := walletRepo.GetByAddress(context.Background(), payerAddr)
	require.NoError(t, err)
	require.Equal(t, 50.0, payer.Balance)

	var txCount int64
	require.NoError(t, db.Table("transactions").Count(&txCount).Error)
	require.Equal(t, int64(0), txCount)

	var members int64
	require.NoError(t, db.Table("sphere_members").Count(&members).Error)
	require.Equal(t, int64(0), members)
}
