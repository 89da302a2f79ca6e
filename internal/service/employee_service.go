package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "workgroup/internal/errors"
	"workgroup/internal/model"
	"workgroup/internal/repository"
)

// EmployeeService exposes staff record operations. Unlike users, staff
// records replace name, role and salary wholesale on update.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*model.Employee, error)
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	UpdateEmployee(ctx context.Context, id uint, replacement model.Employee) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id uint) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

// NewEmployeeService builds an EmployeeService over the repository.
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	employee.ID = 0
	if err := s.repo.Save(ctx, employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id uint, replacement model.Employee) (*model.Employee, error) {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.Name = replacement.Name
	employee.Role = replacement.Role
	employee.Salary = replacement.Salary

	if err := s.repo.Save(ctx, employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
