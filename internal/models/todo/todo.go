package todo

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Status string

const StatusPending Status = "pending"
const StatusCompleted Status = "completed"

// Представление для фильтрации списка задач
type View string

const ViewAll View = "all"
const ViewActive View = "active"
const ViewCompleted View = "completed"

func (v View) Valid() bool {
	return v == ViewAll || v == ViewActive || v == ViewCompleted
}

// Clone возвращает независимую копию задачи: хранилище отдаёт наружу
// только копии, коллекцией владеет исключительно оно само
func (t *Todo) Clone() *Todo {
	if t == nil {
		return nil
	}
	clone := *t
	if t.UpdatedAt != nil {
		updatedAt := *t.UpdatedAt
		clone.UpdatedAt = &updatedAt
	}
	if t.CompletedAt != nil {
		completedAt := *t.CompletedAt
		clone.CompletedAt = &completedAt
	}
	return &clone
}
