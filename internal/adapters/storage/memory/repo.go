package memory

import (
	"slices"

	"github.com/evanschultz/demoapp/internal/app"
	"github.com/evanschultz/demoapp/internal/domain"
)

// Repository keeps tasks in insertion order for the lifetime of one task list.
type Repository struct {
	tasks []domain.Task
}

var _ app.TaskRepository = (*Repository)(nil)

// New constructs an empty repository.
func New() *Repository {
	return &Repository{}
}

// List returns a copy of all tasks in insertion order.
func (r *Repository) List() []domain.Task {
	return slices.Clone(r.tasks)
}

// Get returns the task with the given id.
func (r *Repository) Get(id string) (domain.Task, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return domain.Task{}, false
	}
	return r.tasks[idx], true
}

// Append adds a task at the end of the list.
func (r *Repository) Append(task domain.Task) {
	r.tasks = append(r.tasks, task)
}

// Update replaces the stored task with the same id in place.
func (r *Repository) Update(task domain.Task) bool {
	idx := r.indexOf(task.ID)
	if idx < 0 {
		return false
	}
	r.tasks[idx] = task
	return true
}

// Remove deletes the task with the given id and returns it.
func (r *Repository) Remove(id string) (domain.Task, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return domain.Task{}, false
	}
	removed := r.tasks[idx]
	r.tasks = slices.Delete(r.tasks, idx, idx+1)
	return removed, true
}

// indexOf returns the slice position for id, or -1.
func (r *Repository) indexOf(id string) int {
	return slices.IndexFunc(r.tasks, func(task domain.Task) bool {
		return task.ID == id
	})
}
