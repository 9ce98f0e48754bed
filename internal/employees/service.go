// Package employees contains the employee CRUD and search business logic.
package employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dlevchenko/staffgraph/internal/common"
	"github.com/dlevchenko/staffgraph/internal/models"
	employeesrepo "github.com/dlevchenko/staffgraph/internal/repositories/employees"
)

// Input carries the fields for creating an employee. Required-ness of the
// arguments themselves is already enforced by the schema layer's non-null
// types; the rules here cover field shape.
type Input struct {
	FirstName     string `validate:"required"`
	LastName      string `validate:"required"`
	Email         string `validate:"required,email"`
	Gender        string `validate:"required"`
	Designation   string `validate:"required"`
	Salary        int    `validate:"gte=0"`
	DateOfJoining string `validate:"required"`
	Department    string `validate:"required"`
	EmployeePhoto string
}

type Service struct {
	repo     employeesrepo.Repository
	validate *validator.Validate
}

func NewService(repo employeesrepo.Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

// List returns all employees.
func (s *Service) List(ctx context.Context) ([]*models.Employee, error) {
	list, err := s.repo.GetAll(ctx, employeesrepo.Filter{})
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	return list, nil
}

// Get returns the employee with the given id or common.ErrorNotFound.
func (s *Service) Get(ctx context.Context, id string) (*models.Employee, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching employee: %w", err)
	}
	return employee, nil
}

// Search returns employees matching the conjunction of the supplied
// exact-match filters. Empty strings mean "no constraint", so a call with
// neither filter returns all employees.
func (s *Service) Search(ctx context.Context, designation, department string) ([]*models.Employee, error) {
	list, err := s.repo.GetAll(ctx, employeesrepo.Filter{
		Designation: designation,
		Department:  department,
	})
	if err != nil {
		return nil, fmt.Errorf("error searching employees: %w", err)
	}
	return list, nil
}

// Add validates the input and stores a new employee record.
func (s *Service) Add(ctx context.Context, input Input) (*models.Employee, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	employee := &models.Employee{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Gender:        input.Gender,
		Designation:   input.Designation,
		Salary:        input.Salary,
		DateOfJoining: input.DateOfJoining,
		Department:    input.Department,
		EmployeePhoto: input.EmployeePhoto,
	}

	employee, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	return employee, nil
}

// Update applies a partial update. Supplied fields are validated with the
// creation-time rules; unsupplied fields keep their prior values.
func (s *Service) Update(ctx context.Context, id string, upd *models.EmployeeUpdate) (*models.Employee, error) {
	if err := s.validateUpdate(upd); err != nil {
		return nil, err
	}

	employee, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating employee: %w", err)
	}

	return employee, nil
}

// Delete removes the employee or reports common.ErrorNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}

func (s *Service) validateUpdate(upd *models.EmployeeUpdate) error {
	check := func(field interface{}, tag string) error {
		if err := s.validate.Var(field, tag); err != nil {
			return fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}
		return nil
	}

	if upd.FirstName != nil {
		if err := check(*upd.FirstName, "required"); err != nil {
			return err
		}
	}
	if upd.LastName != nil {
		if err := check(*upd.LastName, "required"); err != nil {
			return err
		}
	}
	if upd.Email != nil {
		if err := check(*upd.Email, "required,email"); err != nil {
			return err
		}
	}
	if upd.Gender != nil {
		if err := check(*upd.Gender, "required"); err != nil {
			return err
		}
	}
	if upd.Designation != nil {
		if err := check(*upd.Designation, "required"); err != nil {
			return err
		}
	}
	if upd.Salary != nil {
		if err := check(*upd.Salary, "gte=0"); err != nil {
			return err
		}
	}
	if upd.DateOfJoining != nil {
		if err := check(*upd.DateOfJoining, "required"); err != nil {
			return err
		}
	}
	if upd.Department != nil {
		if err := check(*upd.Department, "required"); err != nil {
			return err
		}
	}

	return nil
}
