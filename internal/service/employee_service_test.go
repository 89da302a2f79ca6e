package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "workgroup/internal/errors"
	"workgroup/internal/model"
)

// MockEmployeeRepository is a mock implementation of EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Save(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateEmployee(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(mockRepo)

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Employee")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Employee).ID = 1
	}).Return(nil)

	created, err := svc.CreateEmployee(context.Background(), &model.Employee{
		Name:   "Ana",
		Role:   "Engineer",
		Salary: decimal.NewFromInt(4200),
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	mockRepo.AssertExpectations(t)
}

func TestGetEmployeeNotFound(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	employee, err := svc.GetEmployee(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	assert.Nil(t, employee)
}

func TestUpdateEmployeeReplacesAllFields(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(mockRepo)

	stored := &model.Employee{ID: 2, Name: "Ana", Role: "Engineer", Salary: decimal.NewFromInt(4200)}
	var saved model.Employee
	mockRepo.On("FindByID", mock.Anything, uint(2)).Return(stored, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Employee")).Run(func(args mock.Arguments) {
		saved = *args.Get(1).(*model.Employee)
	}).Return(nil)

	updated, err := svc.UpdateEmployee(context.Background(), 2, model.Employee{
		Name:   "Ana Souza",
		Role:   "Lead Engineer",
		Salary: decimal.NewFromInt(5500),
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(2), updated.ID)
	assert.Equal(t, "Ana Souza", saved.Name)
	assert.Equal(t, "Lead Engineer", saved.Role)
	assert.True(t, saved.Salary.Equal(decimal.NewFromInt(5500)))
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	updated, err := svc.UpdateEmployee(context.Background(), 404, model.Employee{Name: "Ana"})
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	assert.Nil(t, updated)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeleteEmployee(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(mockRepo)

	mockRepo.On("DeleteByID", mock.Anything, uint(2)).Return(nil)

	assert.NoError(t, svc.DeleteEmployee(context.Background(), 2))
	mockRepo.AssertExpectations(t)
}

func TestListEmployeesEmptyStore(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(mockRepo)

	mockRepo.On("FindAll", mock.Anything).Return([]model.Employee{}, nil)

	employees, err := svc.ListEmployees(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}
