package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"datosempleado/internal/domain"
)

// ErrNotFound indica que ningún registro coincide con el identificador dado.
var ErrNotFound = errors.New("employee not found")

// EmployeeRepository define el contrato de persistencia para empleados.
type EmployeeRepository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	Create(ctx context.Context, emp domain.Employee) (int, error)
	Update(ctx context.Context, emp domain.Employee) error
	Delete(ctx context.Context, id int) error
}

// PgEmployeeRepository implementa EmployeeRepository usando pgxpool.
type PgEmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewPgEmployeeRepository(pool *pgxpool.Pool) *PgEmployeeRepository {
	return &PgEmployeeRepository{pool: pool}
}

func (r *PgEmployeeRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM employees`
	var total int
	err := r.pool.QueryRow(ctx, query).Scan(&total)
	return total, err
}

func (r *PgEmployeeRepository) List(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	const query = `
		SELECT id, first_name, last_name, address, age, profession, marital_status
		FROM employees
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0, limit)
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(
			&e.ID,
			&e.FirstName,
			&e.LastName,
			&e.Address,
			&e.Age,
			&e.Profession,
			&e.MaritalStatus,
		); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *PgEmployeeRepository) Create(ctx context.Context, emp domain.Employee) (int, error) {
	const query = `
		INSERT INTO employees (first_name, last_name, address, age, profession, marital_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int
	err := r.pool.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Address,
		emp.Age,
		emp.Profession,
		emp.MaritalStatus,
	).Scan(&id)
	return id, err
}

func (r *PgEmployeeRepository) Update(ctx context.Context, emp domain.Employee) error {
	const query = `
		UPDATE employees
		SET first_name = $1, last_name = $2, address = $3, age = $4, profession = $5, marital_status = $6
		WHERE id = $7
	`
	tag, err := r.pool.Exec(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Address,
		emp.Age,
		emp.Profession,
		emp.MaritalStatus,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgEmployeeRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM employees WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
