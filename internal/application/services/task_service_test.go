package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/babicastilho/todo-list-api/internal/domain/entities"
	"github.com/babicastilho/todo-list-api/internal/infrastructure/logger"
	"github.com/babicastilho/todo-list-api/internal/ports"
)

// fakeTaskRepo is an in-memory TaskRepository that mirrors the owner-scoped
// matching of the SQL implementation.
type fakeTaskRepo struct {
	tasks map[uuid.UUID]*entities.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*entities.Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entities.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entities.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, entities.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	out := []*entities.Task{}
	for _, task := range r.tasks {
		if task.OwnerID == ownerID {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Replace(ctx context.Context, task *entities.Task) error {
	existing, ok := r.tasks[task.ID]
	if !ok || existing.OwnerID != task.OwnerID {
		return entities.ErrTaskNotFound
	}
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = time.Now()
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return entities.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func newTestTaskService(repo ports.TaskRepository) *TaskService {
	s := NewTaskService(repo, logger.NewNop())
	s.loc = time.UTC
	return s
}

func validationField(t *testing.T, err error) string {
	t.Helper()
	var verr *entities.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	return verr.Field
}

func TestTaskCreateDefaults(t *testing.T) {
	svc := newTestTaskService(newFakeTaskRepo())
	ownerID := uuid.New()

	task, err := svc.Create(context.Background(), ownerID, ports.TaskInput{
		Title:  "Buy milk",
		Resume: "grocery",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	if task.Priority != entities.PriorityMedium {
		t.Errorf("Priority = %q, want %q", task.Priority, entities.PriorityMedium)
	}
	if task.DueDate != nil || task.DueTime != nil {
		t.Errorf("DueDate/DueTime = %v/%v, want nil/nil", task.DueDate, task.DueTime)
	}
	if task.Overdue {
		t.Error("Overdue = true, want false")
	}
	if task.OwnerID != ownerID {
		t.Errorf("OwnerID = %v, want %v", task.OwnerID, ownerID)
	}
	if task.ID == uuid.Nil {
		t.Error("ID not assigned")
	}
}

func TestTaskCreateValidation(t *testing.T) {
	svc := newTestTaskService(newFakeTaskRepo())
	ownerID := uuid.New()
	badCategory := "not-a-uuid"

	tests := []struct {
		name      string
		input     ports.TaskInput
		wantField string
	}{
		{
			name:      "empty title",
			input:     ports.TaskInput{Title: "", Resume: "r"},
			wantField: "title",
		},
		{
			name:      "whitespace title",
			input:     ports.TaskInput{Title: "   ", Resume: "r"},
			wantField: "title",
		},
		{
			name:      "empty resume",
			input:     ports.TaskInput{Title: "t", Resume: ""},
			wantField: "resume",
		},
		{
			name:      "unknown priority",
			input:     ports.TaskInput{Title: "t", Resume: "r", Priority: "critical"},
			wantField: "priority",
		},
		{
			name:      "time without date",
			input:     ports.TaskInput{Title: "t", Resume: "r", DueTime: "14:30"},
			wantField: "dueDate",
		},
		{
			name:      "malformed date",
			input:     ports.TaskInput{Title: "t", Resume: "r", DueDate: "10/01/2025"},
			wantField: "dueDate",
		},
		{
			name:      "malformed time",
			input:     ports.TaskInput{Title: "t", Resume: "r", DueDate: "2025-01-10", DueTime: "noon"},
			wantField: "dueTime",
		},
		{
			name:      "malformed category id",
			input:     ports.TaskInput{Title: "t", Resume: "r", CategoryID: &badCategory},
			wantField: "categoryId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), ownerID, tt.input)
			if got := validationField(t, err); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestTaskCreateValidationPersistsNothing(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := newTestTaskService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), ports.TaskInput{Resume: "r"})
	if err == nil {
		t.Fatal("Create error = nil, want validation error")
	}
	if len(repo.tasks) != 0 {
		t.Errorf("repo holds %d tasks after rejected create, want 0", len(repo.tasks))
	}
}

func TestTaskCreateComposesDueInstant(t *testing.T) {
	svc := newTestTaskService(newFakeTaskRepo())

	task, err := svc.Create(context.Background(), uuid.New(), ports.TaskInput{
		Title:   "report",
		Resume:  "quarterly report",
		DueDate: "2025-01-10",
		DueTime: "14:30",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	due := task.DueAt(time.UTC)
	if due == nil {
		t.Fatal("DueAt = nil")
	}
	if want := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC); !due.Equal(want) {
		t.Errorf("DueAt = %v, want %v", due, want)
	}
}

func TestTaskCreateNormalizesDueTime(t *testing.T) {
	// time.Parse accepts a single-digit hour; the stored value must still be
	// the canonical HH:MM so the fixed-width column round-trips it intact
	// and the due instant survives.
	repo := newFakeTaskRepo()
	svc := newTestTaskService(repo)

	task, err := svc.Create(context.Background(), uuid.New(), ports.TaskInput{
		Title:   "t",
		Resume:  "r",
		DueDate: "2025-01-10",
		DueTime: "9:30",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	if task.DueTime == nil || *task.DueTime != "09:30" {
		t.Fatalf("DueTime = %v, want 09:30", task.DueTime)
	}
	if stored := repo.tasks[task.ID]; stored.DueTime == nil || *stored.DueTime != "09:30" {
		t.Errorf("stored DueTime = %v, want 09:30", stored.DueTime)
	}

	due := task.DueAt(time.UTC)
	if due == nil {
		t.Fatal("DueAt = nil")
	}
	if want := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC); !due.Equal(want) {
		t.Errorf("DueAt = %v, want %v", due, want)
	}

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !task.IsOverdue(now) {
		t.Error("IsOverdue = false for a past due instant")
	}
}

func TestTaskCreateDateOnlyDefaultsTo2359(t *testing.T) {
	svc := newTestTaskService(newFakeTaskRepo())

	task, err := svc.Create(context.Background(), uuid.New(), ports.TaskInput{
		Title:   "t",
		Resume:  "r",
		DueDate: "2025-01-10",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	if task.DueTime != nil {
		t.Errorf("DueTime = %q, want nil (default applies at composition, not storage)", *task.DueTime)
	}

	due := task.DueAt(time.UTC)
	if due == nil {
		t.Fatal("DueAt = nil")
	}
	if due.Hour() != 23 || due.Minute() != 59 {
		t.Errorf("time-of-day = %02d:%02d, want 23:59", due.Hour(), due.Minute())
	}
}

func TestTaskListComputesOverdue(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := newTestTaskService(repo)
	ownerID := uuid.New()

	_, err := svc.Create(context.Background(), ownerID, ports.TaskInput{
		Title: "past", Resume: "r", DueDate: "2025-03-14",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}
	_, err = svc.Create(context.Background(), ownerID, ports.TaskInput{
		Title: "future", Resume: "r", DueDate: "2025-03-16",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}
	_, err = svc.Create(context.Background(), ownerID, ports.TaskInput{
		Title: "undated", Resume: "r",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	svc.now = func() time.Time {
		return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	}

	tasks, err := svc.List(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("List error = %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("len(tasks) = %d, want 3", len(tasks))
	}

	byTitle := map[string]bool{}
	for _, task := range tasks {
		byTitle[task.Title] = task.Overdue
	}
	if !byTitle["past"] {
		t.Error("task due yesterday not flagged overdue")
	}
	if byTitle["future"] {
		t.Error("task due tomorrow flagged overdue")
	}
	if byTitle["undated"] {
		t.Error("task with no due date flagged overdue")
	}
}

func TestTaskUpdateFullReplaceClearsAbsentFields(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := newTestTaskService(repo)
	ownerID := uuid.New()
	categoryID := uuid.New().String()
	desc := "long form notes"

	created, err := svc.Create(context.Background(), ownerID, ports.TaskInput{
		Title:       "t",
		Resume:      "r",
		Description: &desc,
		CategoryID:  &categoryID,
		Priority:    "high",
		DueDate:     "2025-01-10",
		DueTime:     "14:30",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	updated, err := svc.Update(context.Background(), ownerID, created.ID, ports.TaskInput{
		Title:  "t2",
		Resume: "r2",
	})
	if err != nil {
		t.Fatalf("Update error = %v", err)
	}

	if updated.Description != nil {
		t.Errorf("Description = %q, want cleared", *updated.Description)
	}
	if updated.CategoryID != nil {
		t.Errorf("CategoryID = %v, want cleared", updated.CategoryID)
	}
	if updated.DueDate != nil || updated.DueTime != nil {
		t.Errorf("DueDate/DueTime = %v/%v, want cleared", updated.DueDate, updated.DueTime)
	}
	if updated.Priority != entities.PriorityMedium {
		t.Errorf("Priority = %q, want default %q", updated.Priority, entities.PriorityMedium)
	}
}

func TestTaskOwnershipIsolation(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := newTestTaskService(repo)
	userA := uuid.New()
	userB := uuid.New()

	task, err := svc.Create(context.Background(), userA, ports.TaskInput{Title: "t", Resume: "r"})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	if _, err := svc.Get(context.Background(), userB, task.ID); !errors.Is(err, entities.ErrTaskNotFound) {
		t.Errorf("Get as other user error = %v, want ErrTaskNotFound", err)
	}

	_, err = svc.Update(context.Background(), userB, task.ID, ports.TaskInput{Title: "x", Resume: "y"})
	if !errors.Is(err, entities.ErrTaskNotFound) {
		t.Errorf("Update as other user error = %v, want ErrTaskNotFound", err)
	}

	if err := svc.Delete(context.Background(), userB, task.ID); !errors.Is(err, entities.ErrTaskNotFound) {
		t.Errorf("Delete as other user error = %v, want ErrTaskNotFound", err)
	}

	// Untouched by B's attempts
	tasks, err := svc.List(context.Background(), userA)
	if err != nil {
		t.Fatalf("List error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "t" {
		t.Errorf("owner's task mutated or missing: %+v", tasks)
	}

	tasksB, err := svc.List(context.Background(), userB)
	if err != nil {
		t.Fatalf("List error = %v", err)
	}
	if len(tasksB) != 0 {
		t.Errorf("other user sees %d tasks, want 0", len(tasksB))
	}
}

func TestTaskDeleteIdempotence(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := newTestTaskService(repo)
	ownerID := uuid.New()

	task, err := svc.Create(context.Background(), ownerID, ports.TaskInput{Title: "t", Resume: "r"})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	if err := svc.Delete(context.Background(), ownerID, task.ID); err != nil {
		t.Fatalf("first Delete error = %v", err)
	}
	if err := svc.Delete(context.Background(), ownerID, task.ID); !errors.Is(err, entities.ErrTaskNotFound) {
		t.Errorf("second Delete error = %v, want ErrTaskNotFound", err)
	}
}
