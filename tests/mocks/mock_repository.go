package mocks

import (
	"github.com/AjayKumbham/ctrl-plus-blog/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockBlogPostRepository
type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) FindPublished(page, perPage int, search, category string) ([]models.BlogPost, int64, error) {
	args := m.Called(page, perPage, search, category)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.BlogPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogPostRepository) FindBySlug(slug string) (*models.BlogPost, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) DistinctCategories() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBlogPostRepository) DistinctTags() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBlogPostRepository) Create(req *models.CreateBlogPostRequest, authorID uint) (*models.BlogPost, error) {
	args := m.Called(req, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) Update(id uint, patch *models.UpdateBlogPostRequest, authorID uint) (*models.BlogPost, error) {
	args := m.Called(id, patch, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) Delete(id uint, authorID uint) error {
	args := m.Called(id, authorID)
	return args.Error(0)
}

func (m *MockBlogPostRepository) FindDrafts(authorID uint, page, perPage int) ([]models.BlogPost, int64, error) {
	args := m.Called(authorID, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.BlogPost), args.Get(1).(int64), args.Error(2)
}
