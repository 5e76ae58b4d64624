package app

import "github.com/evanschultz/demoapp/internal/domain"

// TaskRepository represents the ordered task collection backing a task list.
type TaskRepository interface {
	List() []domain.Task
	Get(string) (domain.Task, bool)
	Append(domain.Task)
	Update(domain.Task) bool
	Remove(string) (domain.Task, bool)
}
