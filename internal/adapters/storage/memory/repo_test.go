package memory

import (
	"testing"

	"github.com/evanschultz/demoapp/internal/domain"
)

func mustTask(t *testing.T, id, title string) domain.Task {
	t.Helper()
	task, err := domain.NewTask(id, title)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	return task
}

func TestRepositoryPreservesInsertionOrder(t *testing.T) {
	repo := New()
	repo.Append(mustTask(t, "b", "Second"))
	repo.Append(mustTask(t, "a", "First"))
	repo.Append(mustTask(t, "c", "Third"))

	got := repo.List()
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}
	for i, want := range []string{"b", "a", "c"} {
		if got[i].ID != want {
			t.Fatalf("task %d id = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestRepositoryListReturnsCopy(t *testing.T) {
	repo := New()
	repo.Append(mustTask(t, "t1", "Ship"))

	listed := repo.List()
	listed[0].Title = "mutated"
	stored, ok := repo.Get("t1")
	if !ok {
		t.Fatal("expected stored task")
	}
	if stored.Title != "Ship" {
		t.Fatalf("expected stored title unchanged, got %q", stored.Title)
	}
}

func TestRepositoryUpdateAndRemove(t *testing.T) {
	repo := New()
	repo.Append(mustTask(t, "t1", "One"))
	repo.Append(mustTask(t, "t2", "Two"))

	updated := mustTask(t, "t1", "One")
	updated.Completed = true
	if !repo.Update(updated) {
		t.Fatal("expected update to find t1")
	}
	if got, _ := repo.Get("t1"); !got.Completed {
		t.Fatal("expected t1 completed after update")
	}
	if repo.Update(mustTask(t, "missing", "Nope")) {
		t.Fatal("expected update of missing id to report false")
	}

	removed, ok := repo.Remove("t1")
	if !ok || removed.ID != "t1" {
		t.Fatalf("unexpected remove result %#v ok=%t", removed, ok)
	}
	if _, ok := repo.Remove("t1"); ok {
		t.Fatal("expected second remove to report false")
	}
	if got := repo.List(); len(got) != 1 || got[0].ID != "t2" {
		t.Fatalf("unexpected remaining tasks %#v", got)
	}
}
