package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/Fuad-Aliyev/employee-api/internal/models"
	"github.com/Fuad-Aliyev/employee-api/internal/repository"
)

// ErrEmailExists is returned by SaveEmployee when another employee
// already holds the given email address.
var ErrEmailExists = errors.New("employee already exists with given email")

// EmployeeServiceIface is the use-case surface consumed by the HTTP layer.
type EmployeeServiceIface interface {
	SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, bool, error)
	UpdateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int64) error
}

type Staff struct {
	log  *slog.Logger
	repo repository.EmployeeRepoIface
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface) *Staff {
	return &Staff{log: log, repo: repo}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// SaveEmployee creates a new employee after checking that the email is not
// taken yet. The check and the insert are two separate statements, so two
// concurrent saves with the same email can both pass the check; the store
// declares no unique constraint on email.
func (s *Staff) SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.Save"
	log := s.initLogger(opn)

	existing, err := s.repo.GetEmployeeByEmail(ctx, employee.Email)
	if err == nil {
		log.InfoContext(ctx, "Rejected duplicate employee email", "email", existing.Email)
		return models.Employee{}, fmt.Errorf("%w: %s", ErrEmailExists, employee.Email)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.Employee{}, fmt.Errorf("failed to check employee email: %w", err)
	}

	saved, err := s.repo.SaveEmployee(ctx, employee)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to save new employee: %w", err)
	}

	log.DebugContext(ctx, "Employee created", "id", saved.ID)

	return saved, nil
}

// GetAllEmployees returns every stored employee. The result is never nil;
// an empty store yields an empty slice.
func (s *Staff) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	list, err := s.repo.GetAllEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return list, nil
}

// GetEmployeeByID returns the employee and whether it exists. An unknown
// identifier is not an error.
func (s *Staff) GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, bool, error) {
	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, false, nil
		}
		return models.Employee{}, false, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, true, nil
}

// UpdateEmployee writes the employee as-is. No existence check happens
// here; the HTTP layer looks the employee up first and owns the 404 path.
func (s *Staff) UpdateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.Update"
	log := s.initLogger(opn)

	updated, err := s.repo.SaveEmployee(ctx, employee)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	log.DebugContext(ctx, "Employee updated", "id", updated.ID)

	return updated, nil
}

// DeleteEmployee removes the employee. Deleting an unknown identifier
// succeeds silently.
func (s *Staff) DeleteEmployee(ctx context.Context, identifier int64) error {
	if err := s.repo.DeleteEmployee(ctx, identifier); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
