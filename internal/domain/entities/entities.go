package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a rejected input together with the field that
// caused the rejection, so clients can highlight the offending input.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-tagged validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Priority is the five-level task priority scale.
type Priority string

const (
	PriorityHighest Priority = "highest"
	PriorityHigh    Priority = "high"
	PriorityMedium  Priority = "medium"
	PriorityLow     Priority = "low"
	PriorityLowest  Priority = "lowest"
)

// DefaultPriority is applied when a request omits the priority field.
const DefaultPriority = PriorityMedium

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHighest, PriorityHigh, PriorityMedium, PriorityLow, PriorityLowest:
		return true
	default:
		return false
	}
}

// Wire layouts for the split due date/time fields.
const (
	DueDateLayout = "2006-01-02"
	DueTimeLayout = "15:04"
)

// Default time-of-day when a due date is supplied without a time.
const (
	DefaultDueHour   = 23
	DefaultDueMinute = 59
)

// User represents an account that owns tasks and categories.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Category groups tasks for a single owner. Categories are immutable after
// creation aside from deletion.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"-" db:"owner_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Task is an owner-scoped todo item. DueDate and DueTime are stored exactly
// as supplied on the wire (YYYY-MM-DD and HH:MM); the effective due instant
// is composed on demand, never persisted. Description is an opaque blob,
// stored and returned verbatim. CategoryID may dangle after the referenced
// category is deleted.
type Task struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	OwnerID     uuid.UUID  `json:"-" db:"owner_id"`
	Title       string     `json:"title" db:"title"`
	Resume      string     `json:"resume" db:"resume"`
	Description *string    `json:"description" db:"description"`
	CategoryID  *uuid.UUID `json:"categoryId" db:"category_id"`
	Priority    Priority   `json:"priority" db:"priority"`
	DueDate     *string    `json:"dueDate" db:"due_date"`
	DueTime     *string    `json:"dueTime" db:"due_time"`
	Overdue     bool       `json:"overdue" db:"-"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// ComposeDueAt merges a due date and an optional time-of-day into a single
// instant in loc. An empty dueTime defaults to 23:59. The date is required;
// callers enforce the "time without date" rejection before composing.
func ComposeDueAt(dueDate, dueTime string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DueDateLayout, dueDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse due date %q: %w", dueDate, err)
	}

	hour, minute := DefaultDueHour, DefaultDueMinute
	if dueTime != "" {
		tod, err := time.Parse(DueTimeLayout, dueTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse due time %q: %w", dueTime, err)
		}
		hour, minute = tod.Hour(), tod.Minute()
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

// DueAt returns the composed due instant in loc, or nil when the task has
// no due date. Stored fields were validated on write; a record that fails
// to parse is treated as having no due instant.
func (t *Task) DueAt(loc *time.Location) *time.Time {
	if t.DueDate == nil {
		return nil
	}

	dueTime := ""
	if t.DueTime != nil {
		dueTime = *t.DueTime
	}

	at, err := ComposeDueAt(*t.DueDate, dueTime, loc)
	if err != nil {
		return nil
	}
	return &at
}

// IsOverdue reports whether the task's due instant lies before now. A task
// without a due date is never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	due := t.DueAt(now.Location())
	if due == nil {
		return false
	}
	return due.Before(now)
}
