package expense

import (
	"strings"
	"time"

	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount = errs.New("expense amount must be positive")
	ErrMissingDate       = errs.New("expense date is required")
	ErrCategoryTooLong   = errs.New("expense category is too long (max 64 characters)")
	ErrNoteTooLong       = errs.New("expense note is too long (max 500 characters)")
)

const (
	DefaultCategory   = "general"
	MaxCategoryLength = 64
	MaxNoteLength     = 500
)

type Expense struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	resourceID *uuid.UUID
	date       time.Time
	amount     pricing.Money
	category   string
	note       string
	createdAt  time.Time
}

func NewExpense(ownerID uuid.UUID, resourceID *uuid.UUID, date time.Time, amount pricing.Money, category, note string, now time.Time) (*Expense, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	category = NormalizeCategory(category)
	if len(category) > MaxCategoryLength {
		return nil, ErrCategoryTooLong
	}
	note = strings.TrimSpace(note)
	if len(note) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	return &Expense{
		id:         uuid.New(),
		ownerID:    ownerID,
		resourceID: resourceID,
		date:       date,
		amount:     amount,
		category:   category,
		note:       note,
		createdAt:  now,
	}, nil
}

func NormalizeCategory(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return DefaultCategory
	}
	return c
}

func (e *Expense) ID() uuid.UUID          { return e.id }
func (e *Expense) OwnerID() uuid.UUID     { return e.ownerID }
func (e *Expense) ResourceID() *uuid.UUID { return e.resourceID }
func (e *Expense) Date() time.Time        { return e.date }
func (e *Expense) Amount() pricing.Money  { return e.amount }
func (e *Expense) Category() string       { return e.category }
func (e *Expense) Note() string           { return e.note }
func (e *Expense) CreatedAt() time.Time   { return e.createdAt }
