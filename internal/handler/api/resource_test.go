//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"booking-engine/internal/domain/span"
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

type ResourceHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockResourceCommands
	mockQueries      *queriesmock.MockResourceQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.ResourceHandler
	actorID          uuid.UUID
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockResourceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockResourceQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewResourceHandler(s.mockCommands, s.mockQueries, s.mockAvailability)
	s.actorID = uuid.New()

	auth := mockAuth(s.actorID, user.RoleOwner)
	s.router.GET("/resources/:id", s.handler.Get)
	s.router.GET("/resources/:id/availability", s.handler.Availability)
	s.router.GET("/resources/:id/quote", s.handler.Quote)
	s.router.POST("/resources", auth, s.handler.Register)
	s.router.GET("/owners/:id/resources", auth, s.handler.ListByOwner)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ResourceHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: public lookup without credentials", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(resourceView(id, s.actorID), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+id.String(), nil, "")

		var body resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal(int64(2500), body.RateCard.PerTicket)
		s.Equal([]string{"10:00", "14:00"}, body.TimeSlots)
		s.NotNil(body.AllowedWeekdays)
	})

	s.Run("error: 404 for an unknown resource", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrResourceNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})
}

// ================================================================================
// TestAvailability / TestQuote
// ================================================================================

func (s *ResourceHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	base := "/resources/" + id.String() + "/availability"

	s.Run("success: units default to one", func() {
		remaining, capacity := 11, 12
		s.mockAvailability.EXPECT().Check(gomock.Any(), queries.AvailabilityParams{
			ResourceID: id,
			Start:      "2025-03-03",
			Units:      1,
			Slot:       "10:00",
		}).Return(&queries.AvailabilityView{
			ResourceID: id,
			Start:      fixedTime,
			End:        fixedTime.AddDate(0, 0, 1),
			Slot:       "10:00",
			Units:      1,
			Available:  true,
			Remaining:  &remaining,
			Capacity:   &capacity,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2025-03-03&slot=10:00", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Require().NotNil(body.Remaining)
		s.Equal(11, *body.Remaining)
		s.Empty(body.Reason)
	})

	s.Run("success: an unavailable answer is still 200", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), gomock.Any()).
			Return(&queries.AvailabilityView{ResourceID: id, Available: false, Reason: "conflict"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2025-03-03&end=2025-03-05", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Equal("conflict", body.Reason)
	})

	s.Run("error: 400 without start", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 for zero units", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2025-03-03&units=0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 for an inverted span", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil, span.ErrInvalidSpan)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2025-03-05&end=2025-03-03", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid span")
	})
}

func (s *ResourceHandlerTestSuite) TestQuote() {
	id := uuid.New()

	s.Run("success: returns the tier breakdown", func() {
		s.mockAvailability.EXPECT().Quote(gomock.Any(), queries.AvailabilityParams{
			ResourceID: id,
			Start:      "2025-03-01",
			End:        "2025-03-11",
			Units:      2,
		}).Return(&queries.QuoteView{
			ResourceID:    id,
			Kind:          "vehicle",
			Units:         2,
			Tier:          "weekly",
			Days:          10,
			Periods:       1,
			RemainderDays: 3,
			Amount:        180000,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/resources/"+id.String()+"/quote?start=2025-03-01&end=2025-03-11&units=2", nil, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("weekly", body.Tier)
		s.Equal(3, body.RemainderDays)
		s.Equal(int64(180000), body.Amount)
	})
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *ResourceHandlerTestSuite) TestRegister() {
	week := int64(60000)
	reqBody := reqdto.RegisterResourceRequest{
		Name:     "Compact hatchback",
		Kind:     "vehicle",
		RateCard: reqdto.RateCardRequest{PerDay: 10000, PerWeek: &week},
		TimeZone: "Europe/Berlin",
	}

	s.Run("success: returns 201 with a Location header", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().RegisterResource(gomock.Any(), gomock.Any(), s.actorID, user.RoleOwner).
			DoAndReturn(func(_ context.Context, cmd commands.RegisterResourceCommand, _ uuid.UUID, _ user.Role) (*queries.ResourceView, error) {
				s.Equal("Compact hatchback", cmd.Name)
				s.Equal("vehicle", cmd.Kind)
				s.Equal(int64(10000), cmd.PerDay)
				s.Equal(&week, cmd.PerWeek)
				s.Nil(cmd.OwnerID)
				s.Equal("Europe/Berlin", cmd.TimeZone)
				return resourceView(id, s.actorID), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources", reqBody, bearer)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/resources/" + id.String()})
	})

	cases := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing field: name", mutate: testutil.Field("name", nil)},
		{name: "unknown kind", mutate: testutil.Field("kind", "boat")},
		{name: "weekday out of range", mutate: testutil.Field("allowedWeekdays", []int{7})},
		{name: "negative capacity", mutate: testutil.Field("capacity", -1)},
	}
	for _, tc := range cases {
		s.Run("error: 400 for "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources",
				testutil.DtoMap(s.T(), reqBody, tc.mutate), bearer)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 403 registering for another owner", func() {
		s.mockCommands.EXPECT().RegisterResource(gomock.Any(), gomock.Any(), s.actorID, user.RoleOwner).
			Return(nil, errs.ErrForbidden)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("ownerId", uuid.New().String()))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources", body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 400 when the domain rejects the rate card", func() {
		s.mockCommands.EXPECT().RegisterResource(gomock.Any(), gomock.Any(), s.actorID, user.RoleOwner).
			Return(nil, errs.Mark(errs.New("per day rate required"), errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources", reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

// ================================================================================
// TestListByOwner
// ================================================================================

func (s *ResourceHandlerTestSuite) TestListByOwner() {
	ownerID := uuid.New()
	url := "/owners/" + ownerID.String() + "/resources"

	s.Run("success: lists the owner's resources", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.actorID, user.RoleOwner, ownerID).
			Return([]*queries.ResourceView{resourceView(uuid.New(), ownerID), resourceView(uuid.New(), ownerID)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)

		var body []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("error: 403 for another owner", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.actorID, user.RoleOwner, ownerID).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
