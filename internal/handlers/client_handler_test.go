package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"client-directory/internal/models"
	"client-directory/internal/services"
	"client-directory/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ClientHandlerTestSuite is the test suite for ClientHandler
type ClientHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockDirectory *service_mocks.MockDirectoryServiceInterface
	mockDetails   *service_mocks.MockClientDetailServiceInterface
	mockSheets    *service_mocks.MockSheetServiceInterface
	mockLogger    *service_mocks.MockSheetLoggerInterface
	mockMetrics   *service_mocks.MockMetricsRecorderInterface
	views         *services.ViewTracker
	echo          *echo.Echo
}

func (s *ClientHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDirectory = service_mocks.NewMockDirectoryServiceInterface(s.ctrl)
	s.mockDetails = service_mocks.NewMockClientDetailServiceInterface(s.ctrl)
	s.mockSheets = service_mocks.NewMockSheetServiceInterface(s.ctrl)
	s.mockLogger = service_mocks.NewMockSheetLoggerInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.views = services.NewViewTracker()

	handler := NewClientHandler(s.mockDirectory, s.mockDetails, s.mockSheets, s.views, s.mockLogger, s.mockMetrics)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	RegisterRoutes(s.echo, Handlers{
		Clients: handler,
		Health:  NewHealthCheckHandler(s.mockSheets),
	})
}

func (s *ClientHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestClientHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}

func (s *ClientHandlerTestSuite) serve(path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *ClientHandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ClientHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	body := s.decode(rec)
	errBody, ok := body["error"].(map[string]any)
	s.Require().True(ok, "missing error envelope: %s", rec.Body.String())
	return errBody["code"].(string)
}

func janeDetail() *models.ClientDetail {
	return &models.ClientDetail{
		Client: models.Client{
			ID:            "id1",
			TaxID:         "12345678909",
			Name:          "Jane Doe",
			BirthDate:     models.NewDate(1990, 5, 15),
			MaritalStatus: models.MaritalStatusSingle,
			BranchCode:    3,
		},
		Accounts: []models.Account{
			{ID: "a1", OwnerTaxID: "12345678909", Type: models.AccountTypeChecking, Balance: decimal.NewFromInt(1000)},
		},
		Branch:        &models.Branch{ID: "b1", Code: 3, Name: "Main Branch"},
		AccountsSheet: models.SheetInfo{State: models.LoadStateLoaded, Records: 1},
		BranchSheet:   models.SheetInfo{State: models.LoadStateLoaded, Records: 1},
	}
}

// Test ListClients - query parameters reach the service
func (s *ClientHandlerTestSuite) TestListClients_Success() {
	s.mockDirectory.EXPECT().
		ListClients(gomock.Any(), models.ClientListQuery{Query: "jane", Page: 2, Limit: 5}).
		Return(&models.ClientPage{
			Clients:    []models.ClientSummary{{ID: "id1", Name: "Jane Doe", Balance: decimal.NewFromInt(1000), BranchName: "Main Branch"}},
			Total:      6,
			Page:       2,
			Limit:      5,
			TotalPages: 2,
			Sheets: map[models.SheetName]models.SheetInfo{
				models.SheetClients:  {State: models.LoadStateLoaded, Records: 6},
				models.SheetAccounts: {State: models.LoadStateFailed, Error: "timeout"},
			},
		}, nil)

	rec := s.serve("/api/v1/clients?q=jane&page=2&limit=5", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(float64(6), body["total"])
	s.Equal(float64(2), body["total_pages"])
	clients := body["clients"].([]any)
	s.Len(clients, 1)
	s.Equal("Main Branch", clients[0].(map[string]any)["branch_name"])
	sheets := body["sheets"].(map[string]any)
	s.Equal("failed", sheets["accounts"].(map[string]any)["state"])
}

// Test ListClients - a non-numeric page fails binding
func (s *ClientHandlerTestSuite) TestListClients_InvalidPage() {
	rec := s.serve("/api/v1/clients?page=abc", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(rec))
}

// Test ListClients - clients sheet down maps to SHEET_001
func (s *ClientHandlerTestSuite) TestListClients_ClientsUnavailable() {
	s.mockDirectory.EXPECT().ListClients(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: timeout", services.ErrClientsUnavailable))

	rec := s.serve("/api/v1/clients", nil)

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("SHEET_001", s.errorCode(rec))
}

// Test ListClients - unexpected errors are hidden
func (s *ClientHandlerTestSuite) TestListClients_SystemError() {
	s.mockDirectory.EXPECT().ListClients(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("boom"))

	rec := s.serve("/api/v1/clients", nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.errorCode(rec))
	s.NotContains(rec.Body.String(), "boom")
}

// Test GetClient - joined detail rendering
func (s *ClientHandlerTestSuite) TestGetClient_Success() {
	s.mockDetails.EXPECT().GetClientDetail(gomock.Any(), "id1").Return(janeDetail(), nil)

	rec := s.serve("/api/v1/clients/id1", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	client := body["client"].(map[string]any)
	s.Equal("Jane Doe", client["name"])
	s.Equal("1990-05-15", client["birth_date"])
	s.Equal(true, client["birth_date_valid"])
	s.Equal("single", client["marital_status_label"])
	s.Equal("Main Branch", body["branch_name"])
	s.Equal("1000", body["total_balance"])
	s.Len(body["accounts"].([]any), 1)
}

// Test GetClient - invalid birth date renders as null
func (s *ClientHandlerTestSuite) TestGetClient_InvalidBirthDate() {
	detail := janeDetail()
	detail.Client.BirthDate = models.InvalidDate("not a date")
	detail.Branch = nil
	s.mockDetails.EXPECT().GetClientDetail(gomock.Any(), "id1").Return(detail, nil)

	rec := s.serve("/api/v1/clients/id1", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	client := body["client"].(map[string]any)
	s.Nil(client["birth_date"])
	s.Equal(false, client["birth_date_valid"])
	s.Nil(body["branch"])
	s.Equal(models.BranchNotFoundName, body["branch_name"])
}

// Test GetClient - a failed relation reports its load error
func (s *ClientHandlerTestSuite) TestGetClient_FailedRelationCarriesError() {
	detail := janeDetail()
	detail.Branch = nil
	detail.BranchSheet = models.SheetInfo{State: models.LoadStateFailed, Error: "branches: status 500"}
	s.mockDetails.EXPECT().GetClientDetail(gomock.Any(), "id1").Return(detail, nil)

	rec := s.serve("/api/v1/clients/id1", nil)

	s.Equal(http.StatusOK, rec.Code)
	sheets := s.decode(rec)["sheets"].(map[string]any)
	branches := sheets["branches"].(map[string]any)
	s.Equal("failed", branches["state"])
	s.Equal("branches: status 500", branches["error"])
	accounts := sheets["accounts"].(map[string]any)
	s.Equal("loaded", accounts["state"])
	s.NotContains(accounts, "error")
}

// Test GetClient - not found
func (s *ClientHandlerTestSuite) TestGetClient_NotFound() {
	s.mockDetails.EXPECT().GetClientDetail(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("%w: missing", services.ErrClientNotFound))

	rec := s.serve("/api/v1/clients/missing", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CLIENT_001", s.errorCode(rec))
}

// Test GetClient - clients sheet failure
func (s *ClientHandlerTestSuite) TestGetClient_ClientsUnavailable() {
	s.mockDetails.EXPECT().GetClientDetail(gomock.Any(), "id1").
		Return(nil, fmt.Errorf("%w: down", services.ErrClientsUnavailable))

	rec := s.serve("/api/v1/clients/id1", nil)

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("SHEET_001", s.errorCode(rec))
}

// Test GetClient - ids outside the allowed alphabet never reach the service
func (s *ClientHandlerTestSuite) TestGetClient_InvalidID() {
	s.mockDetails.EXPECT().GetClientDetail(gomock.Any(), gomock.Any()).Times(0)

	rec := s.serve("/api/v1/clients/id%201", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CLIENT_002", s.errorCode(rec))
}

// Test GetClient - the latest request of a view answers normally
func (s *ClientHandlerTestSuite) TestGetClient_ViewCommits() {
	s.mockDetails.EXPECT().GetClientDetail(gomock.Any(), "id1").Return(janeDetail(), nil)

	rec := s.serve("/api/v1/clients/id1", map[string]string{ViewIDHeader: "tab-1"})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(0, s.views.Len())
}

// Test GetClient - a navigation that started later supersedes this one
func (s *ClientHandlerTestSuite) TestGetClient_ViewSuperseded() {
	s.mockDetails.EXPECT().GetClientDetail(gomock.Any(), "id1").
		DoAndReturn(func(ctx context.Context, clientID string) (*models.ClientDetail, error) {
			// the user navigates to another client while this lookup is in flight
			s.views.Begin("tab-1", "id2")
			return janeDetail(), nil
		})
	s.mockLogger.EXPECT().LogViewSuperseded(gomock.Any(), "tab-1", "id1").Times(1)
	s.mockMetrics.EXPECT().IncrementCounter(services.MetricViewSuperseded, gomock.Any()).Times(1)

	rec := s.serve("/api/v1/clients/id1", map[string]string{ViewIDHeader: "tab-1"})

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("VIEW_001", s.errorCode(rec))
	s.NotContains(rec.Body.String(), "Jane Doe")

	// the newer navigation is still pending
	s.Equal(1, s.views.Len())
}

// Test GetClient - without a view id nothing is tracked
func (s *ClientHandlerTestSuite) TestGetClient_NoViewID() {
	s.mockDetails.EXPECT().GetClientDetail(gomock.Any(), "id1").Return(janeDetail(), nil)

	rec := s.serve("/api/v1/clients/id1", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(0, s.views.Len())
}

// Test GetSheet - each sheet name dispatches to its fetcher
func (s *ClientHandlerTestSuite) TestGetSheet_Loaded() {
	result := models.NewSheetResult[models.Branch](models.SheetBranches)
	result.Records = append(result.Records, models.Branch{ID: "b1", Code: 3, Name: "Main Branch"})
	result.Warnings = append(result.Warnings, models.RowError{Sheet: models.SheetBranches, Line: 2, Reason: "empty address"})
	s.mockSheets.EXPECT().FetchBranches(gomock.Any()).Return(models.LoadedState(result))

	rec := s.serve("/api/v1/sheets/branches", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal("branches", body["sheet"])
	s.Equal("loaded", body["state"])
	s.Len(body["records"].([]any), 1)
	s.Len(body["warnings"].([]any), 1)
	s.Empty(body["rejected"].([]any))
}

// Test GetSheet - zero rows is still a loaded sheet
func (s *ClientHandlerTestSuite) TestGetSheet_LoadedEmpty() {
	s.mockSheets.EXPECT().FetchAccounts(gomock.Any()).
		Return(models.LoadedState(models.NewSheetResult[models.Account](models.SheetAccounts)))

	rec := s.serve("/api/v1/sheets/accounts", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.NotNil(body["records"])
	s.Empty(body["records"].([]any))
}

// Test GetSheet - failed fetch
func (s *ClientHandlerTestSuite) TestGetSheet_Failed() {
	s.mockSheets.EXPECT().FetchClients(gomock.Any()).
		Return(models.FailedState[models.Client](models.SheetClients, fmt.Errorf("status 500")))

	rec := s.serve("/api/v1/sheets/clients", nil)

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("SHEET_001", s.errorCode(rec))
}

// Test GetSheet - unknown sheet
func (s *ClientHandlerTestSuite) TestGetSheet_Unknown() {
	rec := s.serve("/api/v1/sheets/clientes", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SHEET_002", s.errorCode(rec))
}

// Test HealthCheck - healthy while the breaker is closed
func (s *ClientHandlerTestSuite) TestHealthCheck_Healthy() {
	s.mockSheets.EXPECT().SourceHealth().Return(models.SourceHealth{State: services.StateClosed, ConsecutiveFailures: 2})

	rec := s.serve("/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal("healthy", body["status"])
	s.Equal("closed", body["source"])
	s.Equal(float64(2), body["consecutive_failures"])
}

// Test HealthCheck - unavailable while the breaker is open
func (s *ClientHandlerTestSuite) TestHealthCheck_BreakerOpen() {
	s.mockSheets.EXPECT().SourceHealth().Return(models.SourceHealth{State: services.StateOpen, ConsecutiveFailures: 5})

	rec := s.serve("/health", nil)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("SYSTEM_003", s.errorCode(rec))
}
