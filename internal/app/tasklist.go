package app

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/evanschultz/demoapp/internal/domain"
)

// IDGenerator returns unique identifiers for new entities.
type IDGenerator func() string

// TaskListConfig holds configuration for task list.
type TaskListConfig struct {
	Seed                []domain.Task
	SimilarityThreshold int
}

// Summary reports completion counts for the current list.
type Summary struct {
	Completed int
	Total     int
}

// String renders the counter line shown above the list.
func (s Summary) String() string {
	return fmt.Sprintf("%d of %d completed", s.Completed, s.Total)
}

// Empty reports whether the list holds no tasks.
func (s Summary) Empty() bool {
	return s.Total == 0
}

// TaskList owns an ordered collection of tasks. Every operation is total: bad input is a no-op.
type TaskList struct {
	repo                TaskRepository
	idGen               IDGenerator
	similarityThreshold int
}

// DefaultSeedTasks returns the sample tasks a fresh list starts with.
func DefaultSeedTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Title: "Write unit tests"},
		{ID: "2", Title: "Setup CI/CD"},
	}
}

// NewTaskList constructs a new value for this package.
func NewTaskList(repo TaskRepository, idGen IDGenerator, cfg TaskListConfig) *TaskList {
	if idGen == nil {
		idGen = func() string { return "" }
	}
	for _, seed := range cfg.Seed {
		task, err := domain.NewTask(seed.ID, seed.Title)
		if err != nil {
			continue
		}
		task.Completed = seed.Completed
		if _, exists := repo.Get(task.ID); exists {
			continue
		}
		repo.Append(task)
	}
	return &TaskList{
		repo:                repo,
		idGen:               idGen,
		similarityThreshold: cfg.SimilarityThreshold,
	}
}

// AddTask appends a new incomplete task titled with the trimmed text.
func (l *TaskList) AddTask(text string) (domain.Task, bool) {
	title := strings.TrimSpace(text)
	if title == "" {
		return domain.Task{}, false
	}
	task, err := domain.NewTask(l.idGen(), title)
	if err != nil {
		return domain.Task{}, false
	}
	if _, exists := l.repo.Get(task.ID); exists {
		return domain.Task{}, false
	}
	l.repo.Append(task)
	return task, true
}

// ToggleTask flips completion on the matching task.
func (l *TaskList) ToggleTask(id string) (domain.Task, bool) {
	task, ok := l.repo.Get(id)
	if !ok {
		return domain.Task{}, false
	}
	task.Toggle()
	if !l.repo.Update(task) {
		return domain.Task{}, false
	}
	return task, true
}

// DeleteTask removes the matching task.
func (l *TaskList) DeleteTask(id string) (domain.Task, bool) {
	return l.repo.Remove(id)
}

// Tasks returns the current tasks in insertion order.
func (l *TaskList) Tasks() []domain.Task {
	return l.repo.List()
}

// Summary returns completed/total counts.
func (l *TaskList) Summary() Summary {
	tasks := l.repo.List()
	out := Summary{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			out.Completed++
		}
	}
	return out
}

// SimilarTask finds the first existing task whose title sits within the configured edit distance of title.
// The match is advisory; callers never block an add on it.
func (l *TaskList) SimilarTask(excludeID, title string) (domain.Task, bool) {
	if l.similarityThreshold <= 0 {
		return domain.Task{}, false
	}
	needle := strings.ToLower(strings.TrimSpace(title))
	if needle == "" {
		return domain.Task{}, false
	}
	for _, task := range l.repo.List() {
		if task.ID == excludeID {
			continue
		}
		if levenshtein.ComputeDistance(needle, strings.ToLower(task.Title)) <= l.similarityThreshold {
			return task, true
		}
	}
	return domain.Task{}, false
}
