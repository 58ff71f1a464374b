package repository

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockVideoRepository struct {
	mock.Mock
}

func NewMockVideoRepository() *MockVideoRepository {
	return &MockVideoRepository{}
}

func (m *MockVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*domain.VideoWithOwner, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) ListPublished(ctx context.Context, query, sort string, limit, offset int) ([]domain.VideoWithOwner, int64, error) {
	args := m.Called(ctx, query, sort, limit, offset)
	return args.Get(0).([]domain.VideoWithOwner), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, includeUnpublished bool, limit, offset int) ([]domain.Video, int64, error) {
	args := m.Called(ctx, ownerID, includeUnpublished, limit, offset)
	return args.Get(0).([]domain.Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) Update(ctx context.Context, video *domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, limit, offset int) ([]domain.CommentWithAuthor, error) {
	args := m.Called(ctx, videoID, limit, offset)
	return args.Get(0).([]domain.CommentWithAuthor), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteByVideoID(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func NewMockLikeRepository() *MockLikeRepository {
	return &MockLikeRepository{}
}

func (m *MockLikeRepository) Create(ctx context.Context, like *domain.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, videoID, userID uuid.UUID) error {
	args := m.Called(ctx, videoID, userID)
	return args.Error(0)
}

func (m *MockLikeRepository) Count(ctx context.Context, videoID uuid.UUID) (int64, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) DeleteByVideoID(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockUnitOfWork struct {
	mock.Mock
	videoRepo   *MockVideoRepository
	commentRepo *MockCommentRepository
	likeRepo    *MockLikeRepository
	userRepo    *MockUserRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		videoRepo:   &MockVideoRepository{},
		commentRepo: &MockCommentRepository{},
		likeRepo:    &MockLikeRepository{},
		userRepo:    &MockUserRepository{},
	}
}

func (m *MockUnitOfWork) VideoRepo() port.VideoRepository {
	return m.videoRepo
}

func (m *MockUnitOfWork) CommentRepo() port.CommentRepository {
	return m.commentRepo
}

func (m *MockUnitOfWork) LikeRepo() port.LikeRepository {
	return m.likeRepo
}

func (m *MockUnitOfWork) UserRepo() port.UserRepository {
	return m.userRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetVideoRepoMock() *MockVideoRepository {
	return m.videoRepo
}

func (m *MockUnitOfWork) GetCommentRepoMock() *MockCommentRepository {
	return m.commentRepo
}

func (m *MockUnitOfWork) GetLikeRepoMock() *MockLikeRepository {
	return m.likeRepo
}

func (m *MockUnitOfWork) GetUserRepoMock() *MockUserRepository {
	return m.userRepo
}
