// Package employees provides durable storage for personnel records.
package employees

import (
	"context"

	"github.com/dlevchenko/staffgraph/internal/models"
)

// Filter restricts GetAll to records matching all non-empty fields
// (conjunction of exact-match equality constraints). The zero value
// matches everything.
type Filter struct {
	Designation string
	Department  string
}

// Repository is the storage boundary for employees. Implementations return
// common.ErrorNotFound when the id matches no record; ids that cannot address
// any stored record (e.g. malformed ObjectIDs) count as not found.
type Repository interface {
	GetAll(ctx context.Context, filter Filter) ([]*models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	Update(ctx context.Context, id string, upd *models.EmployeeUpdate) (*models.Employee, error)
	Delete(ctx context.Context, id string) (*models.Employee, error)
}
