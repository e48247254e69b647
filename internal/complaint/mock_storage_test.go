package complaint_test

import (
	"time"

	"complainthub/backend/internal/models"
	"complainthub/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) UpdateUserTitle(userID uint, title string) error {
	args := m.Called(userID, title)
	return args.Error(0)
}

func (m *MockStorage) ListAdmins() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStorage) ListUsers(f storage.UserFilter) ([]models.User, int64, error) {
	args := m.Called(f)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) CountComplaintsForUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) CreateComplaint(c *models.Complaint) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) SaveComplaint(c *models.Complaint) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) DeleteComplaint(c *models.Complaint) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) ListComplaints(f storage.ComplaintFilter) ([]models.Complaint, int64, error) {
	args := m.Called(f)
	return args.Get(0).([]models.Complaint), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) RecentComplaints(limit int, userID *uint) ([]models.Complaint, error) {
	args := m.Called(limit, userID)
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) OpenHighPriorityComplaints(limit int) ([]models.Complaint, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) CreateAttachment(a *models.Attachment) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockStorage) DeleteAttachment(a *models.Attachment) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockStorage) ListTitleBands() ([]models.UserTitle, error) {
	args := m.Called()
	return args.Get(0).([]models.UserTitle), args.Error(1)
}

func (m *MockStorage) CountComplaints() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) CountComplaintsByStatus(userID *uint) (map[string]int64, error) {
	args := m.Called(userID)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockStorage) CountComplaintsByCategory(userID *uint) (map[string]int64, error) {
	args := m.Called(userID)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockStorage) CountComplaintsByPriority(userID *uint) (map[string]int64, error) {
	args := m.Called(userID)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockStorage) CountNonAdminUsers() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) CountUsersSince(t time.Time) (int64, error) {
	args := m.Called(t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) MonthlyComplaintCounts(months int) ([]storage.MonthlyCount, error) {
	args := m.Called(months)
	return args.Get(0).([]storage.MonthlyCount), args.Error(1)
}

func (m *MockStorage) MonthlyUserCounts(months int) ([]storage.MonthlyCount, error) {
	args := m.Called(months)
	return args.Get(0).([]storage.MonthlyCount), args.Error(1)
}

func (m *MockStorage) AverageResolutionDays() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStorage) TopCategories(limit int) ([]storage.CategoryCount, error) {
	args := m.Called(limit)
	return args.Get(0).([]storage.CategoryCount), args.Error(1)
}

func (m *MockStorage) TitleDistribution() (map[string]int64, error) {
	args := m.Called()
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockStorage) GetCachedJSON(key string, dest any) (bool, error) {
	args := m.Called(key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) SetCachedJSON(key string, value any, ttl time.Duration) error {
	args := m.Called(key, value, ttl)
	return args.Error(0)
}
