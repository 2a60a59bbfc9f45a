package mocks

import (
	"context"

	"github.com/lorrc/usage-dashboard/internal/core/domain"
	"github.com/lorrc/usage-dashboard/internal/core/ports"
	"github.com/stretchr/testify/mock"
)

// MockDashboardQueryClient is a mock implementation of ports.DashboardQueryClient
type MockDashboardQueryClient struct {
	mock.Mock
}

var _ ports.DashboardQueryClient = (*MockDashboardQueryClient)(nil)

func NewMockDashboardQueryClient() *MockDashboardQueryClient {
	return &MockDashboardQueryClient{}
}

func (m *MockDashboardQueryClient) FetchMostUsedDomains(ctx context.Context, query domain.DashboardQuery) ([]domain.DomainUsage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DomainUsage), args.Error(1)
}

func (m *MockDashboardQueryClient) FetchServerUsageByRange(ctx context.Context, query domain.DashboardQuery) ([]domain.ServerUsage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServerUsage), args.Error(1)
}

// MockDashboardService is a mock implementation of ports.DashboardService
type MockDashboardService struct {
	mock.Mock
}

var _ ports.DashboardService = (*MockDashboardService)(nil)

func NewMockDashboardService() *MockDashboardService {
	return &MockDashboardService{}
}

func (m *MockDashboardService) MostUsedDomains(ctx context.Context, label domain.RangeLabel, categories domain.CategoryFilter) (*domain.DomainUsageReport, error) {
	args := m.Called(ctx, label, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DomainUsageReport), args.Error(1)
}

func (m *MockDashboardService) ServerUsage(ctx context.Context, label domain.RangeLabel, categories domain.CategoryFilter) (*domain.ServerUsageReport, error) {
	args := m.Called(ctx, label, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServerUsageReport), args.Error(1)
}

func (m *MockDashboardService) Overview(ctx context.Context, label domain.RangeLabel, categories domain.CategoryFilter) (*domain.DashboardOverview, error) {
	args := m.Called(ctx, label, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardOverview), args.Error(1)
}
