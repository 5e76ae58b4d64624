package domain

import "strings"

type Task struct {
	ID        string
	Title     string
	Completed bool
}

func NewTask(id, title string) (Task, error) {
	id = strings.TrimSpace(id)
	title = strings.TrimSpace(title)
	if id == "" {
		return Task{}, ErrInvalidID
	}
	if title == "" {
		return Task{}, ErrInvalidTitle
	}
	return Task{
		ID:    id,
		Title: title,
	}, nil
}

func (t *Task) Toggle() {
	t.Completed = !t.Completed
}
