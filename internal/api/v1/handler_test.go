package v1_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/riskops/riskboard/internal/api"
	"github.com/riskops/riskboard/internal/api/validator"
	v1 "github.com/riskops/riskboard/internal/api/v1"
	"github.com/riskops/riskboard/internal/constants"
	"github.com/riskops/riskboard/internal/dataset"
	apperrors "github.com/riskops/riskboard/internal/errors"
	"github.com/riskops/riskboard/internal/mocks"
	"github.com/riskops/riskboard/internal/service"
)

func newTestApp(svc service.DashboardService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apperrors.ErrorHandler()})
	handler := v1.NewHandler(zap.NewNop(), svc, validator.NewXValidator(govalidator.New(), nil))
	api.SetupRoutes(app, handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func TestHandler_Pong(t *testing.T) {
	app := newTestApp(&mocks.DashboardService{})

	resp, body := doRequest(t, app, "/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestHandler_Overview(t *testing.T) {
	svc := &mocks.DashboardService{}
	svc.On("Overview", mock.Anything).Return(service.OverviewResult{
		TotalUsers:     3,
		Buckets:        []string{"High", "Low"},
		Distribution:   []dataset.BucketCount{{Bucket: "High", Count: 2}, {Bucket: "Low", Count: 1}},
		SpendThreshold: 100,
	}, nil)

	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/dashboard/overview")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Successful bool                `json:"successful"`
		Result     v1.OverviewResponse `json:"result"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Successful)
	assert.Equal(t, 3, envelope.Result.TotalUsers)
	assert.Equal(t, []string{"High", "Low"}, envelope.Result.Buckets)
	require.Len(t, envelope.Result.Distribution, 2)
	assert.Equal(t, "High", envelope.Result.Distribution[0].Bucket)

	svc.AssertExpectations(t)
}

func TestHandler_Summary(t *testing.T) {
	avg := 150.0
	svc := &mocks.DashboardService{}
	svc.On("Summary", mock.Anything, service.FilterQuery{Bucket: "High", MinSpend: true}).
		Return(service.SummaryResult{
			Bucket:           "High",
			MinSpend:         true,
			Count:            1,
			AvgGamblingSpend: service.Metric{Value: &avg, Display: "£150.00"},
			AvgGamblingTxns:  service.Metric{Value: &avg, Display: "150.0"},
			AvgRiskScore:     service.Metric{Value: &avg, Display: "150.00"},
		}, nil)

	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/dashboard/summary?bucket=High&min_spend=true")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Successful bool               `json:"successful"`
		Message    string             `json:"message"`
		Result     v1.SummaryResponse `json:"result"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Successful)
	assert.Equal(t, "Displaying 1 users in High category", envelope.Message)
	assert.Equal(t, 1, envelope.Result.Count)
	assert.Equal(t, "£150.00", envelope.Result.AvgGamblingSpend.Display)

	svc.AssertExpectations(t)
}

func TestHandler_Summary_MissingBucketFailsValidation(t *testing.T) {
	svc := &mocks.DashboardService{}
	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/dashboard/summary")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, constants.ErrCodeValidationFailed, envelope.Code)
	assert.Contains(t, envelope.Message, "Bucket")

	svc.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything)
}

func TestHandler_Users(t *testing.T) {
	svc := &mocks.DashboardService{}
	svc.On("UserDetails", mock.Anything, service.FilterQuery{Bucket: "Low", MinSpend: false}).
		Return([]service.UserDetail{
			{
				User:               2,
				Headline:           "User 2 — Score: 12 | Spend: £200.00",
				RiskScore:          12,
				RiskBucket:         "Low",
				RiskReason:         "single large sportsbook purchase",
				GamblingTxnPct:     "2.00%",
				GamblingPctOfSpend: "1.00%",
			},
		}, nil)

	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/dashboard/users?bucket=Low")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Result v1.UserDetailsResponse `json:"result"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, 1, envelope.Result.Count)
	require.Len(t, envelope.Result.Users, 1)
	assert.Equal(t, 2, envelope.Result.Users[0].User)
	assert.Equal(t, "2.00%", envelope.Result.Users[0].GamblingTxnPct)

	svc.AssertExpectations(t)
}

func TestHandler_Users_EmptySubset(t *testing.T) {
	svc := &mocks.DashboardService{}
	svc.On("UserDetails", mock.Anything, service.FilterQuery{Bucket: "Critical", MinSpend: false}).
		Return([]service.UserDetail{}, nil)

	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/dashboard/users?bucket=Critical")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Result v1.UserDetailsResponse `json:"result"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, 0, envelope.Result.Count)
	assert.Empty(t, envelope.Result.Users)
}

func TestHandler_BucketChart(t *testing.T) {
	svc := &mocks.DashboardService{}
	svc.On("BucketChartPNG", mock.Anything).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/charts/buckets.png")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body)
}

func TestHandler_CorrelationChart_RenderErrorMapsTo500(t *testing.T) {
	svc := &mocks.DashboardService{}
	svc.On("CorrelationChartPNG", mock.Anything).
		Return([]byte(nil), service.NewServiceError(constants.ErrCodeChartRender, errors.New("boom")))

	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/charts/correlation.png")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, constants.ErrCodeChartRender, envelope.Code)
	assert.Equal(t, constants.ErrMsgChartRender, envelope.Message)
}

func TestHandler_CorrelationPDF(t *testing.T) {
	svc := &mocks.DashboardService{}
	svc.On("CorrelationPDF", mock.Anything).Return(service.PDFExport{
		FileName:    "gambling_txn_vs_spend_correlation.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 fake"),
	}, nil)

	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/charts/correlation.pdf")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="gambling_txn_vs_spend_correlation.pdf"`,
		resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Equal(t, "%PDF-1.4 fake", string(body))
}

func TestHandler_DashboardPage(t *testing.T) {
	app := newTestApp(&mocks.DashboardService{})

	resp, body := doRequest(t, app, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, string(body), "Open Banking Risk Scoring Dashboard")
}
