package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"whalebyte.core/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) AdjustTrustFactor(ctx context.Context, id uuid.UUID, delta float64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockUserRepository) RecordLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByAddress(ctx context.Context, address string) (*entities.Wallet, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) UpdateBalance(ctx context.Context, address string, balance float64) error {
	args := m.Called(ctx, address, balance)
	return args.Error(0)
}

func (m *MockWalletRepository) AppendTransaction(ctx context.Context, tx *entities.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWalletRepository) GetTransaction(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Transaction), args.Error(1)
}

func (m *MockWalletRepository) UpdateTransactionStatus(ctx context.Context, tx *entities.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWalletRepository) ListTransactions(ctx context.Context, address string, limit, offset int) ([]*entities.Transaction, int64, error) {
	args := m.Called(ctx, address, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Transaction), args.Get(1).(int64), args.Error(2)
}

// Mock SphereRepository
type MockSphereRepository struct {
	mock.Mock
}

func (m *MockSphereRepository) Create(ctx context.Context, sphere *entities.Sphere) error {
	args := m.Called(ctx, sphere)
	return args.Error(0)
}

func (m *MockSphereRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sphere, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sphere), args.Error(1)
}

func (m *MockSphereRepository) GetByName(ctx context.Context, name string) (*entities.Sphere, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sphere), args.Error(1)
}

func (m *MockSphereRepository) Update(ctx context.Context, sphere *entities.Sphere) error {
	args := m.Called(ctx, sphere)
	return args.Error(0)
}

func (m *MockSphereRepository) List(ctx context.Context, limit, offset int) ([]*entities.Sphere, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Sphere), args.Get(1).(int64), args.Error(2)
}

func (m *MockSphereRepository) AdjustCounts(ctx context.Context, id uuid.UUID, memberDelta, contentDelta int) error {
	args := m.Called(ctx, id, memberDelta, contentDelta)
	return args.Error(0)
}

func (m *MockSphereRepository) AddMember(ctx context.Context, member *entities.SphereMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockSphereRepository) RemoveMember(ctx context.Context, sphereID, userID uuid.UUID) error {
	args := m.Called(ctx, sphereID, userID)
	return args.Error(0)
}

func (m *MockSphereRepository) GetMember(ctx context.Context, sphereID, userID uuid.UUID) (*entities.SphereMember, error) {
	args := m.Called(ctx, sphereID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SphereMember), args.Error(1)
}

func (m *MockSphereRepository) ListMembers(ctx context.Context, sphereID uuid.UUID) ([]*entities.SphereMember, error) {
	args := m.Called(ctx, sphereID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SphereMember), args.Error(1)
}

// Mock ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) CreatePost(ctx context.Context, post *entities.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockContentRepository) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *MockContentRepository) ListPosts(ctx context.Context, sphereID uuid.UUID, limit, offset int) ([]*entities.Post, int64, error) {
	args := m.Called(ctx, sphereID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentRepository) AdjustPostVotes(ctx context.Context, id uuid.UUID, upDelta, downDelta int) error {
	args := m.Called(ctx, id, upDelta, downDelta)
	return args.Error(0)
}

func (m *MockContentRepository) AdjustCommentCount(ctx context.Context, postID uuid.UUID, delta int) error {
	args := m.Called(ctx, postID, delta)
	return args.Error(0)
}

func (m *MockContentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockContentRepository) GetComment(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *MockContentRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]*entities.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Comment), args.Error(1)
}

func (m *MockContentRepository) AdjustCommentVotes(ctx context.Context, id uuid.UUID, upDelta, downDelta int) error {
	args := m.Called(ctx, id, upDelta, downDelta)
	return args.Error(0)
}

func (m *MockContentRepository) SoftDeleteComment(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock VoteRepository
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Save(ctx context.Context, vote *entities.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteRepository) GetByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*entities.Vote, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Vote), args.Error(1)
}

func (m *MockVoteRepository) GetByUserAndComment(ctx context.Context, userID, commentID uuid.UUID) (*entities.Vote, error) {
	args := m.Called(ctx, userID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Vote), args.Error(1)
}

func (m *MockVoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *entities.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Report), args.Error(1)
}

func (m *MockReportRepository) Update(ctx context.Context, report *entities.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) ListPending(ctx context.Context) ([]*entities.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Report), args.Error(1)
}

// Mock ChatRepository
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateRoom(ctx context.Context, room *entities.ChatRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockChatRepository) GetRoom(ctx context.Context, id uuid.UUID) (*entities.ChatRoom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ChatRoom), args.Error(1)
}

func (m *MockChatRepository) GetSphereRoom(ctx context.Context, sphereID uuid.UUID) (*entities.ChatRoom, error) {
	args := m.Called(ctx, sphereID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ChatRoom), args.Error(1)
}

func (m *MockChatRepository) AddMember(ctx context.Context, member *entities.ChatRoomMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockChatRepository) RemoveMember(ctx context.Context, roomID, userID uuid.UUID) error {
	args := m.Called(ctx, roomID, userID)
	return args.Error(0)
}

func (m *MockChatRepository) GetMember(ctx context.Context, roomID, userID uuid.UUID) (*entities.ChatRoomMember, error) {
	args := m.Called(ctx, roomID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ChatRoomMember), args.Error(1)
}

func (m *MockChatRepository) CreateMessage(ctx context.Context, msg *entities.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepository) ListMessages(ctx context.Context, roomID uuid.UUID, limit, offset int) ([]*entities.Message, error) {
	args := m.Called(ctx, roomID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Message), args.Error(1)
}

func (m *MockChatRepository) MarkMessagesDeleted(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockChatRepository) ListExpired(ctx context.Context, now time.Time) ([]*entities.Message, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Message), args.Error(1)
}

// Mock GovernanceRepository
type MockGovernanceRepository struct {
	mock.Mock
}

func (m *MockGovernanceRepository) CreateProposal(ctx context.Context, proposal *entities.GovernanceProposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockGovernanceRepository) GetProposal(ctx context.Context, id uuid.UUID) (*entities.GovernanceProposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GovernanceProposal), args.Error(1)
}

func (m *MockGovernanceRepository) UpdateProposal(ctx context.Context, proposal *entities.GovernanceProposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockGovernanceRepository) ListActive(ctx context.Context, sphereID uuid.UUID) ([]*entities.GovernanceProposal, error) {
	args := m.Called(ctx, sphereID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GovernanceProposal), args.Error(1)
}

func (m *MockGovernanceRepository) SaveVote(ctx context.Context, vote *entities.GovernanceVote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockGovernanceRepository) GetVote(ctx context.Context, proposalID, userID uuid.UUID) (*entities.GovernanceVote, error) {
	args := m.Called(ctx, proposalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GovernanceVote), args.Error(1)
}

func (m *MockGovernanceRepository) CountVotes(ctx context.Context, proposalID uuid.UUID) (int, int, error) {
	args := m.Called(ctx, proposalID)
	return args.Int(0), args.Int(1), args.Error(2)
}

// Mock NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entities.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID uuid.UUID, notifType entities.NotificationType, content string, relatedType entities.RelatedEntityType, relatedID *uuid.UUID) {
	m.Called(ctx, userID, notifType, content, relatedType, relatedID)
}
