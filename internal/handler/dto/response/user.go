package response

import (
	"time"

	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	out := &UserResponse{}
	copyFields(out, v)
	return out
}
