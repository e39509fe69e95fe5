package repository

import (
	"context"

	"github.com/Fuad-Aliyev/employee-api/internal/metrics"
	"github.com/Fuad-Aliyev/employee-api/internal/models"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
//
// The four GetEmployeeByName variants build the same lookup in different
// ways (query builder vs. hand-written SQL, positional vs. named
// parameters) and must return the same row for the same input.
type EmployeeRepoIface interface {
	SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int64) error
	GetEmployeeByName(ctx context.Context, firstName, lastName string) (models.Employee, error)
	GetEmployeeByNameEq(ctx context.Context, firstName, lastName string) (models.Employee, error)
	GetEmployeeByNameSQL(ctx context.Context, firstName, lastName string) (models.Employee, error)
	GetEmployeeByNameSQLNamed(ctx context.Context, firstName, lastName string) (models.Employee, error)
}

func NewEmployeeRepository(db Database, mtr *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mtr}
}
