//go:build unit

package api_test

import (
	"net/http"
	"time"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearer = "bearer-token"

var fixedTime = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

// mockAuth stands in for the JWT middleware and authenticates every request
// carrying an Authorization header as the given user.
func mockAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func reservationView(id uuid.UUID) *queries.ReservationView {
	week := int64(60000)
	return &queries.ReservationView{
		ID:           id,
		ResourceID:   uuid.New(),
		ResourceName: "Compact hatchback",
		OwnerID:      uuid.New(),
		UserID:       uuid.New(),
		Kind:         "vehicle",
		Start:        fixedTime,
		End:          fixedTime.AddDate(0, 0, 3),
		Units:        1,
		Status:       "pending",
		TotalAmount:  30000,
		RateCard:     queries.RateCardView{PerDay: 10000, PerWeek: &week},
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}
}

func resourceView(id, ownerID uuid.UUID) *queries.ResourceView {
	return &queries.ResourceView{
		ID:       id,
		OwnerID:  ownerID,
		Name:     "Harbour cruise",
		Kind:     "attraction",
		Capacity: 12,
		RateCard: queries.RateCardView{PerTicket: 2500},
		TimeSlots: []string{
			"10:00", "14:00",
		},
		TimeZone:  "UTC",
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}
