package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Fuad-Aliyev/employee-api/internal/models"
)

// SaveEmployee persists an employee. An employee without an identifier is
// inserted and receives a store-assigned one; an employee with an
// identifier is upserted on it, so an existing row is updated in place.
func (r *Repository) SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("save_employee").Observe(duration)
	}()

	if employee.ID == 0 {
		query := `
		INSERT INTO employees (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

		err := r.db.QueryRow(ctx, query, employee.FirstName, employee.LastName, employee.Email).Scan(&employee.ID)
		if err != nil {
			return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
		}

		return employee, nil
	}

	query := `
		INSERT INTO employees (id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name, email = EXCLUDED.email;
	`

	_, err := r.db.Exec(ctx, query, employee.ID, employee.FirstName, employee.LastName, employee.Email)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee data: %w", err)
	}

	return employee, nil
}

// GetAllEmployees retrieves every employee from the database in store order.
func (r *Repository) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_all_employees").Observe(duration)
	}()
	query := `SELECT id, first_name, last_name, email FROM employees`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var employee models.Employee
		if err = rows.Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_id").Observe(duration)
	}()
	query := `SELECT id, first_name, last_name, email FROM employees WHERE id=$1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return employee, nil
}

// GetEmployeeByEmail retrieves an employee by exact email match.
func (r *Repository) GetEmployeeByEmail(ctx context.Context, email string) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_email").Observe(duration)
	}()
	query := `SELECT id, first_name, last_name, email FROM employees WHERE email=$1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return employee, nil
}

// DeleteEmployee removes an employee by ID. Deleting an unknown ID is not an error.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int64) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_employee").Observe(duration)
	}()
	query := `DELETE FROM employees WHERE id=$1`

	_, err := r.db.Exec(ctx, query, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

// GetEmployeeByName looks up an employee by first and last name with a
// builder-generated query and positional bindings.
func (r *Repository) GetEmployeeByName(ctx context.Context, firstName, lastName string) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_name").Observe(duration)
	}()

	query, args, err := sq.Select("id", "first_name", "last_name", "email").
		From("employees").
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to build employee name query: %w", err)
	}

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return employee, nil
}

// GetEmployeeByNameEq is the builder variant with column-keyed bindings.
func (r *Repository) GetEmployeeByNameEq(ctx context.Context, firstName, lastName string) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_name_eq").Observe(duration)
	}()

	query, args, err := sq.Select("id", "first_name", "last_name", "email").
		From("employees").
		Where(sq.Eq{"first_name": firstName, "last_name": lastName}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to build employee name query: %w", err)
	}

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return employee, nil
}

// GetEmployeeByNameSQL is the hand-written SQL variant with positional bindings.
func (r *Repository) GetEmployeeByNameSQL(ctx context.Context, firstName, lastName string) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_name_sql").Observe(duration)
	}()
	query := `SELECT id, first_name, last_name, email FROM employees WHERE first_name = $1 AND last_name = $2`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, firstName, lastName))
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return employee, nil
}

// GetEmployeeByNameSQLNamed is the hand-written SQL variant with named bindings.
func (r *Repository) GetEmployeeByNameSQLNamed(
	ctx context.Context,
	firstName, lastName string,
) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_name_sql_named").Observe(duration)
	}()
	query := `SELECT id, first_name, last_name, email FROM employees WHERE first_name = @first_name AND last_name = @last_name`

	args := pgx.NamedArgs{
		"first_name": firstName,
		"last_name":  lastName,
	}

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, args))
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return employee, nil
}

// scanEmployee reads a single employee row. pgx.ErrNoRows passes through
// so callers can distinguish an absent row from a store failure.
func scanEmployee(row pgx.Row) (models.Employee, error) {
	var employee models.Employee
	err := row.Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email)
	if err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}
