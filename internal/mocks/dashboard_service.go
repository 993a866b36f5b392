package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/riskops/riskboard/internal/service"
)

type DashboardService struct {
	mock.Mock
}

func (m *DashboardService) Overview(ctx context.Context) (service.OverviewResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.OverviewResult), args.Error(1)
}

func (m *DashboardService) Summary(ctx context.Context, query service.FilterQuery) (service.SummaryResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(service.SummaryResult), args.Error(1)
}

func (m *DashboardService) UserDetails(ctx context.Context, query service.FilterQuery) ([]service.UserDetail, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]service.UserDetail), args.Error(1)
}

func (m *DashboardService) BucketChartPNG(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *DashboardService) CorrelationChartPNG(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *DashboardService) CorrelationPDF(ctx context.Context) (service.PDFExport, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.PDFExport), args.Error(1)
}
