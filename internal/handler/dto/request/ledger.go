package request

import (
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type LedgerQuery struct {
	Range      string `form:"range" binding:"omitempty,oneof=weekly monthly annual"`
	Anchor     string `form:"anchor"`
	ResourceID string `form:"resourceId" binding:"omitempty,uuid"`
	TimeZone   string `form:"tz"`
}

func (q LedgerQuery) ToParams(ownerID uuid.UUID) (queries.LedgerParams, error) {
	p := queries.LedgerParams{
		OwnerID:  ownerID,
		Range:    q.Range,
		Anchor:   q.Anchor,
		TimeZone: q.TimeZone,
	}
	if q.ResourceID != "" {
		id, err := uuid.Parse(q.ResourceID)
		if err != nil {
			return queries.LedgerParams{}, err
		}
		p.ResourceID = &id
	}
	return p, nil
}

type RecordExpenseRequest struct {
	OwnerID    *uuid.UUID `json:"ownerId"`
	ResourceID *uuid.UUID `json:"resourceId"`
	Date       string     `json:"date" binding:"required"`
	Amount     int64      `json:"amount" binding:"required"`
	Category   string     `json:"category" binding:"max=64"`
	Note       string     `json:"note" binding:"max=500"`
}

func (r RecordExpenseRequest) ToCommand() commands.RecordExpenseCommand {
	return commands.RecordExpenseCommand{
		OwnerID:    r.OwnerID,
		ResourceID: r.ResourceID,
		Date:       r.Date,
		Amount:     r.Amount,
		Category:   r.Category,
		Note:       r.Note,
	}
}
