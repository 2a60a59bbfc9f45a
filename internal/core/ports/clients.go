package ports

import (
	"context"

	"github.com/lorrc/usage-dashboard/internal/core/domain"
)

// DashboardQueryClient defines the port to the analytics backend. Every call
// issues exactly one request and returns either all rows or an error.
type DashboardQueryClient interface {
	FetchMostUsedDomains(ctx context.Context, query domain.DashboardQuery) ([]domain.DomainUsage, error)
	FetchServerUsageByRange(ctx context.Context, query domain.DashboardQuery) ([]domain.ServerUsage, error)
}
