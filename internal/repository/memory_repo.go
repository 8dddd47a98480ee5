package repository

import (
	"context"
	"sort"
	"sync"

	"datosempleado/internal/domain"
)

// MemoryEmployeeRepository es una implementación en memoria del repositorio,
// pensada para tests y para correr sin base de datos.
type MemoryEmployeeRepository struct {
	mu        sync.Mutex
	employees map[int]domain.Employee
	nextID    int
}

func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{
		employees: make(map[int]domain.Employee),
		nextID:    1,
	}
}

func (r *MemoryEmployeeRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.employees), nil
}

func (r *MemoryEmployeeRepository) List(_ context.Context, limit, offset int) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.employees))
	for id := range r.employees {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]domain.Employee, 0, limit)
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		result = append(result, r.employees[ids[i]])
	}
	return result, nil
}

func (r *MemoryEmployeeRepository) Create(_ context.Context, emp domain.Employee) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emp.ID = r.nextID
	r.nextID++
	r.employees[emp.ID] = emp
	return emp.ID, nil
}

func (r *MemoryEmployeeRepository) Update(_ context.Context, emp domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[emp.ID]; !ok {
		return ErrNotFound
	}
	r.employees[emp.ID] = emp
	return nil
}

func (r *MemoryEmployeeRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return ErrNotFound
	}
	delete(r.employees, id)
	return nil
}
