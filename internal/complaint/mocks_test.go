package complaint_test

import (
	"io"

	"complainthub/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Save(originalName string, content io.Reader) (string, int64, error) {
	args := m.Called(originalName, content)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlobStore) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) StatusChanged(c *models.Complaint, oldStatus, newStatus string) {
	m.Called(c, oldStatus, newStatus)
}

func (m *MockNotifier) HighPriorityAlert(c *models.Complaint, admins []models.User) {
	m.Called(c, admins)
}

func (m *MockNotifier) SubmissionReceipt(c *models.Complaint) {
	m.Called(c)
}
