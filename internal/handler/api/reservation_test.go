//go:build unit

package api_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"booking-engine/internal/domain/calendar"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/user"
	"booking-engine/internal/handler/api"
	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	commandsmock "booking-engine/internal/mock/commands"
	queriesmock "booking-engine/internal/mock/queries"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/testutil"
	"booking-engine/internal/testutil/httptest"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actorID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	auth := mockAuth(s.actorID, user.RoleOwner)
	s.router.POST("/reservations", auth, s.handler.Create)
	s.router.GET("/reservations", auth, s.handler.List)
	s.router.GET("/reservations/:id", auth, s.handler.Get)
	s.router.POST("/reservations/:id/cancel", auth, s.handler.Cancel)
	s.router.POST("/reservations/:id/confirm", auth, s.handler.Confirm)
	s.router.POST("/reservations/:id/pickup", auth, s.handler.Pickup)
	s.router.POST("/reservations/:id/return", auth, s.handler.Return)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReservationHandlerTestSuite) perform(method, url string, body any, key string) *nethttptest.ResponseRecorder {
	headers := map[string]string{}
	if key != "" {
		headers["Idempotency-Key"] = key
	}
	return httptest.PerformRequestWithHeaders(s.T(), s.router, method, url, body, bearer, headers)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	key := uuid.New()
	reqBody := reqdto.CreateReservationRequest{
		ResourceID: uuid.New(),
		Start:      "2025-03-03",
		End:        "2025-03-06",
	}
	view := reservationView(uuid.New())

	s.Run("success: returns 201 Created with a Location header", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), commands.CreateReservationCommand{
			ResourceID: reqBody.ResourceID,
			Start:      "2025-03-03",
			End:        "2025-03-06",
			Units:      1,
		}, s.actorID, key).Return(&commands.CreateReservationResult{Reservation: view}, nil)

		rec := s.perform(http.MethodPost, url, reqBody, key.String())

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(int64(30000), body.TotalAmount)
		s.Equal(int64(10000), body.RateCard.PerDay)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location":            "/api/reservations/" + view.ID.String(),
			"Idempotent-Replayed": "",
		})
	})

	s.Run("success: replayed request returns 200 with the first result", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.actorID, key).
			Return(&commands.CreateReservationResult{Reservation: view, IsReplayed: true}, nil)

		rec := s.perform(http.MethodPost, url, reqBody, key.String())

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 when the Idempotency-Key header is missing", func() {
		rec := s.perform(http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 when the Idempotency-Key is not a UUID", func() {
		rec := s.perform(http.MethodPost, url, reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key")
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "",
			map[string]string{"Idempotency-Key": key.String()})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	validation := []testCaseReservation{
		{name: "missing field: resourceId", mutate: testutil.Field("resourceId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
		{name: "units boundary invalid (10001)", mutate: testutil.Field("units", 10001), expectCode: http.StatusBadRequest},
		{name: "units boundary invalid (-1)", mutate: testutil.Field("units", -1), expectCode: http.StatusBadRequest},
		{name: "units boundary OK (10000)", mutate: testutil.Field("units", 10000), expectCode: http.StatusCreated},
		{name: "end omitted for a single day", mutate: testutil.Field("end", nil), expectCode: http.StatusCreated},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.actorID, key).
						Return(&commands.CreateReservationResult{Reservation: view}, nil)
				}

				rec := s.perform(http.MethodPost, url, requestMap, key.String())

				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	rejections := []struct {
		name       string
		decision   calendar.Decision
		expectCode int
		expectMsg  string
	}{
		{
			name:       "conflict",
			decision:   calendar.Decision{Reason: calendar.ReasonConflict},
			expectCode: http.StatusConflict,
			expectMsg:  "overlaps",
		},
		{
			name:       "capacity exceeded",
			decision:   calendar.Decision{Reason: calendar.ReasonCapacityExceeded, Remaining: intPtr(1), Capacity: intPtr(12)},
			expectCode: http.StatusConflict,
			expectMsg:  "Capacity exceeded",
		},
		{
			name:       "slot required",
			decision:   calendar.Decision{Reason: calendar.ReasonSlotRequired},
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "Time slot required",
		},
		{
			name:       "closed on the requested day",
			decision:   calendar.Decision{Reason: calendar.ReasonClosed},
			expectCode: http.StatusConflict,
			expectMsg:  "closed",
		},
	}

	for _, tc := range rejections {
		s.Run("error: rejected booking echoes the decision ("+tc.name+")", func() {
			s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.actorID, key).
				Return(nil, commands.NewRejectedError(tc.decision))

			rec := s.perform(http.MethodPost, url, reqBody, key.String())

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			var detail resdto.DecisionResponse
			httptest.DecodeErrorDetail(s.T(), rec, &detail)
			s.False(detail.Available)
			s.Equal(string(tc.decision.Reason), detail.Reason)
			s.Equal(tc.decision.Remaining, detail.Remaining)
		})
	}

	useCaseErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "resource not found", err: errs.ErrResourceNotFound, expectCode: http.StatusNotFound, expectMsg: "Resource not found"},
		{name: "key reused with another body", err: errs.ErrIdempotencyMismatch, expectCode: http.StatusConflict, expectMsg: "different request"},
		{name: "key still processing", err: errs.ErrIdempotencyInProgress, expectCode: http.StatusConflict, expectMsg: "being processed"},
		{name: "inactive account", err: errs.ErrUserInactive, expectCode: http.StatusForbidden, expectMsg: "inactive"},
		{name: "invalid units", err: reservation.ErrInvalidUnits, expectCode: http.StatusBadRequest, expectMsg: "Invalid units"},
		{name: "unexpected failure", err: errors.New("pool exhausted"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		{
			name:       "rejection without a known reason",
			err:        commands.NewRejectedError(calendar.Decision{Reason: calendar.Reason("overbooked")}),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Internal server error",
		},
	}

	for _, tc := range useCaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.actorID, key).Return(nil, tc.err)

			rec := s.perform(http.MethodPost, url, reqBody, key.String())

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleOwner, id).Return(reservationView(id), nil)

		rec := s.perform(http.MethodGet, "/reservations/"+id.String(), nil, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := s.perform(http.MethodGet, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 403 for a stranger", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleOwner, id).Return(nil, errs.ErrForbidden)

		rec := s.perform(http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleOwner, id).Return(nil, errs.ErrReservationNotFound)

		rec := s.perform(http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	item := &queries.ReservationListItem{ID: uuid.New(), Kind: "vehicle", Status: "confirmed", Units: 1, CreatedAt: fixedTime}

	s.Run("success: first page with a next cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID, (*queries.Cursor)(nil), 0).
			Return([]*queries.ReservationListItem{item}, &queries.Cursor{After: "opaque"}, nil)

		rec := s.perform(http.MethodGet, "/reservations", nil, "")

		var body resdto.ReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(item.ID, body.Items[0].ID)
		s.Require().NotNil(body.NextCursor)
		s.Equal("opaque", *body.NextCursor)
	})

	s.Run("success: cursor and limit are forwarded", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID, &queries.Cursor{After: "abc"}, 50).
			Return([]*queries.ReservationListItem{}, nil, nil)

		rec := s.perform(http.MethodGet, "/reservations?cursor=abc&limit=50", nil, "")

		var body resdto.ReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 for a limit above 200", func() {
		rec := s.perform(http.MethodGet, "/reservations?limit=201", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 for a tampered cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID, gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := s.perform(http.MethodGet, "/reservations?cursor=zzz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestTransitions() {
	id := uuid.New()
	url := func(action string) string { return "/reservations/" + id.String() + "/" + action }

	s.Run("success: cancel", func() {
		view := reservationView(id)
		view.Status = "cancelled"
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.actorID, user.RoleOwner).Return(view, nil)

		rec := s.perform(http.MethodPost, url("cancel"), nil, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("success: confirm", func() {
		view := reservationView(id)
		view.Status = "confirmed"
		s.mockCommands.EXPECT().Confirm(gomock.Any(), id, s.actorID, user.RoleOwner).Return(view, nil)

		rec := s.perform(http.MethodPost, url("confirm"), nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: pickup records mileage", func() {
		mileage := int64(12000)
		view := reservationView(id)
		view.Status = "active"
		view.MileageAtPickup = &mileage
		s.mockCommands.EXPECT().StartRental(gomock.Any(), id, &mileage, s.actorID, user.RoleOwner).Return(view, nil)

		rec := s.perform(http.MethodPost, url("pickup"), reqdto.TransitionRequest{Mileage: &mileage}, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.MileageAtPickup)
		s.Equal(mileage, *body.MileageAtPickup)
	})

	s.Run("success: return without a body", func() {
		view := reservationView(id)
		view.Status = "completed"
		s.mockCommands.EXPECT().Complete(gomock.Any(), id, (*int64)(nil), s.actorID, user.RoleOwner).Return(view, nil)

		rec := s.perform(http.MethodPost, url("return"), nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for negative mileage", func() {
		rec := s.perform(http.MethodPost, url("return"), map[string]any{"mileage": -5}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 when mileage goes backwards", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), id, gomock.Any(), s.actorID, user.RoleOwner).
			Return(nil, reservation.ErrMileageDecreased)

		rec := s.perform(http.MethodPost, url("return"), map[string]any{"mileage": 1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid mileage")
	})

	s.Run("error: 409 for an illegal transition", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), id, s.actorID, user.RoleOwner).
			Return(nil, reservation.ErrInvalidTransition)

		rec := s.perform(http.MethodPost, url("confirm"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid status transition")
	})

	s.Run("error: 403 when the actor does not own the resource", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.actorID, user.RoleOwner).Return(nil, errs.ErrForbidden)

		rec := s.perform(http.MethodPost, url("cancel"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func intPtr(v int) *int { return &v }
