//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/handler/api"
	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	commandsmock "booking-engine/internal/mock/commands"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/testutil"
	"booking-engine/internal/testutil/httptest"
	"booking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExpenseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockExpenseCommands
	actorID      uuid.UUID
}

func (s *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockExpenseCommands(s.mockCtrl)
	s.actorID = uuid.New()

	handler := api.NewExpenseHandler(s.mockCommands)
	s.router.POST("/expenses", mockAuth(s.actorID, user.RoleOwner), handler.Record)
}

func (s *ExpenseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExpenseHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}

func (s *ExpenseHandlerTestSuite) TestRecord() {
	resourceID := uuid.New()
	reqBody := reqdto.RecordExpenseRequest{
		ResourceID: &resourceID,
		Date:       "2025-03-14",
		Amount:     4200,
		Category:   "fuel",
	}

	s.Run("success: returns 201 with the stored expense", func() {
		view := &commands.ExpenseView{
			ID:         uuid.New(),
			OwnerID:    s.actorID,
			ResourceID: &resourceID,
			Date:       "2025-03-14",
			Amount:     4200,
			Category:   "fuel",
			CreatedAt:  fixedTime,
		}
		s.mockCommands.EXPECT().RecordExpense(gomock.Any(), commands.RecordExpenseCommand{
			ResourceID: &resourceID,
			Date:       "2025-03-14",
			Amount:     4200,
			Category:   "fuel",
		}, s.actorID, user.RoleOwner).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/expenses", reqBody, bearer)

		var body resdto.ExpenseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(s.actorID, body.OwnerID)
		s.Equal(int64(4200), body.Amount)
		s.Equal("2025-03-14", body.Date)
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing field: date", mutate: testutil.Field("date", nil)},
		{name: "missing field: amount", mutate: testutil.Field("amount", nil)},
		{name: "category too long", mutate: testutil.Field("category", strings.Repeat("c", 65))},
		{name: "note too long", mutate: testutil.Field("note", strings.Repeat("n", 501))},
	}
	for _, tc := range validation {
		s.Run("error: 400 for "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/expenses",
				testutil.DtoMap(s.T(), reqBody, tc.mutate), bearer)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 400 for a malformed date", func() {
		s.mockCommands.EXPECT().RecordExpense(gomock.Any(), gomock.Any(), s.actorID, user.RoleOwner).
			Return(nil, commands.ErrInvalidExpenseDate)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", "14/03/2025"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/expenses", body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid expense date")
	})

	s.Run("error: 403 for a resource of another owner", func() {
		s.mockCommands.EXPECT().RecordExpense(gomock.Any(), gomock.Any(), s.actorID, user.RoleOwner).
			Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/expenses", reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}
