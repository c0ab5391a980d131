package service

import (
	"context"

	"github.com/google/uuid"

	"community-moderation-api/internal/domain"
	"community-moderation-api/internal/repository"
)

// MockContentRepository is a mock implementation of ContentRepository
type MockContentRepository struct {
	CreateDiscussionCommentFunc func(ctx context.Context, comment *domain.DiscussionComment, autoFlag bool) error
	CreateProductCommentFunc    func(ctx context.Context, comment *domain.ProductComment, autoFlag bool) error
	FindDiscussionCommentFunc   func(ctx context.Context, id uuid.UUID) (*domain.DiscussionComment, error)
	FindProductCommentFunc      func(ctx context.Context, id uuid.UUID) (*domain.ProductComment, error)
	ResetFlagsFunc              func(ctx context.Context, contentType domain.ContentType, id uuid.UUID) (int64, error)
	SetFlagCountFunc            func(ctx context.Context, contentType domain.ContentType, id uuid.UUID, count int) error
}

func (m *MockContentRepository) CreateDiscussionComment(ctx context.Context, comment *domain.DiscussionComment, autoFlag bool) error {
	if m.CreateDiscussionCommentFunc != nil {
		return m.CreateDiscussionCommentFunc(ctx, comment, autoFlag)
	}
	return nil
}

func (m *MockContentRepository) CreateProductComment(ctx context.Context, comment *domain.ProductComment, autoFlag bool) error {
	if m.CreateProductCommentFunc != nil {
		return m.CreateProductCommentFunc(ctx, comment, autoFlag)
	}
	return nil
}

func (m *MockContentRepository) FindDiscussionComment(ctx context.Context, id uuid.UUID) (*domain.DiscussionComment, error) {
	if m.FindDiscussionCommentFunc != nil {
		return m.FindDiscussionCommentFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockContentRepository) FindProductComment(ctx context.Context, id uuid.UUID) (*domain.ProductComment, error) {
	if m.FindProductCommentFunc != nil {
		return m.FindProductCommentFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockContentRepository) ResetFlags(ctx context.Context, contentType domain.ContentType, id uuid.UUID) (int64, error) {
	if m.ResetFlagsFunc != nil {
		return m.ResetFlagsFunc(ctx, contentType, id)
	}
	return 1, nil
}

func (m *MockContentRepository) SetFlagCount(ctx context.Context, contentType domain.ContentType, id uuid.UUID, count int) error {
	if m.SetFlagCountFunc != nil {
		return m.SetFlagCountFunc(ctx, contentType, id, count)
	}
	return nil
}

// MockFlagRepository is a mock implementation of FlagRepository
type MockFlagRepository struct {
	AddFlagFunc                func(ctx context.Context, contentType domain.ContentType, contentID, userID uuid.UUID, threshold int) (*repository.FlagResult, error)
	CountByContentFunc         func(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (int64, error)
	DistinctFlaggedContentFunc func(ctx context.Context) ([]domain.Flag, error)
}

func (m *MockFlagRepository) AddFlag(ctx context.Context, contentType domain.ContentType, contentID, userID uuid.UUID, threshold int) (*repository.FlagResult, error) {
	if m.AddFlagFunc != nil {
		return m.AddFlagFunc(ctx, contentType, contentID, userID, threshold)
	}
	return &repository.FlagResult{FlagCount: 1}, nil
}

func (m *MockFlagRepository) CountByContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (int64, error) {
	if m.CountByContentFunc != nil {
		return m.CountByContentFunc(ctx, contentType, contentID)
	}
	return 0, nil
}

func (m *MockFlagRepository) DistinctFlaggedContent(ctx context.Context) ([]domain.Flag, error) {
	if m.DistinctFlaggedContentFunc != nil {
		return m.DistinctFlaggedContentFunc(ctx)
	}
	return nil, nil
}

// MockQueueRepository is a mock implementation of QueueRepository
type MockQueueRepository struct {
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.ModerationQueueEntry, error)
	FindByContentFunc  func(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (*domain.ModerationQueueEntry, error)
	ListFunc           func(ctx context.Context, limit, offset int) ([]domain.ModerationQueueEntry, int64, error)
	ListByAuthorFunc   func(ctx context.Context, authorID uuid.UUID) ([]domain.ModerationQueueEntry, error)
	UpdateDisputeFunc  func(ctx context.Context, id uuid.UUID, reason string) error
	RestoreContentFunc func(ctx context.Context, entry *domain.ModerationQueueEntry) error
	PurgeContentFunc   func(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (*domain.ModerationQueueEntry, error)
}

func (m *MockQueueRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ModerationQueueEntry, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockQueueRepository) FindByContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (*domain.ModerationQueueEntry, error) {
	if m.FindByContentFunc != nil {
		return m.FindByContentFunc(ctx, contentType, contentID)
	}
	return nil, nil
}

func (m *MockQueueRepository) List(ctx context.Context, limit, offset int) ([]domain.ModerationQueueEntry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockQueueRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.ModerationQueueEntry, error) {
	if m.ListByAuthorFunc != nil {
		return m.ListByAuthorFunc(ctx, authorID)
	}
	return nil, nil
}

func (m *MockQueueRepository) UpdateDispute(ctx context.Context, id uuid.UUID, reason string) error {
	if m.UpdateDisputeFunc != nil {
		return m.UpdateDisputeFunc(ctx, id, reason)
	}
	return nil
}

func (m *MockQueueRepository) RestoreContent(ctx context.Context, entry *domain.ModerationQueueEntry) error {
	if m.RestoreContentFunc != nil {
		return m.RestoreContentFunc(ctx, entry)
	}
	return nil
}

func (m *MockQueueRepository) PurgeContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (*domain.ModerationQueueEntry, error) {
	if m.PurgeContentFunc != nil {
		return m.PurgeContentFunc(ctx, contentType, contentID)
	}
	return nil, nil
}

// MockBlacklistRepository is a mock implementation of BlacklistRepository
type MockBlacklistRepository struct {
	CreateFunc     func(ctx context.Context, keyword *domain.BlacklistKeyword) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.BlacklistKeyword, error)
	ListActiveFunc func(ctx context.Context) ([]domain.BlacklistKeyword, error)
	DeactivateFunc func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockBlacklistRepository) Create(ctx context.Context, keyword *domain.BlacklistKeyword) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, keyword)
	}
	return nil
}

func (m *MockBlacklistRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.BlacklistKeyword, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBlacklistRepository) ListActive(ctx context.Context) ([]domain.BlacklistKeyword, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockBlacklistRepository) Deactivate(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return 1, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateBanStateFunc func(ctx context.Context, id uuid.UUID, ban bool, reason string) (*domain.User, error)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &domain.User{}, nil
}

func (m *MockUserRepository) UpdateBanState(ctx context.Context, id uuid.UUID, ban bool, reason string) (*domain.User, error) {
	if m.UpdateBanStateFunc != nil {
		return m.UpdateBanStateFunc(ctx, id, ban, reason)
	}
	return &domain.User{}, nil
}

// MockAdminActionRepository is a mock implementation of AdminActionRepository
type MockAdminActionRepository struct {
	CreateFunc func(ctx context.Context, action *domain.AdminAction) error
	ListFunc   func(ctx context.Context, limit, offset int) ([]domain.AdminAction, int64, error)
}

func (m *MockAdminActionRepository) Create(ctx context.Context, action *domain.AdminAction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, action)
	}
	return nil
}

func (m *MockAdminActionRepository) List(ctx context.Context, limit, offset int) ([]domain.AdminAction, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

// MockSafetyChecker is a mock implementation of SafetyChecker
type MockSafetyChecker struct {
	CheckFunc func(ctx context.Context, text string) (bool, string, error)
}

func (m *MockSafetyChecker) Check(ctx context.Context, text string) (bool, string, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, text)
	}
	return true, "", nil
}

// MockRevalidator is a mock implementation of Revalidator
type MockRevalidator struct {
	ContentChangedFunc func(ctx context.Context, contentType domain.ContentType, contextID uuid.UUID)
	Calls              int
}

func (m *MockRevalidator) ContentChanged(ctx context.Context, contentType domain.ContentType, contextID uuid.UUID) {
	m.Calls++
	if m.ContentChangedFunc != nil {
		m.ContentChangedFunc(ctx, contentType, contextID)
	}
}
