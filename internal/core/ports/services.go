package ports

import (
	"context"

	"github.com/lorrc/usage-dashboard/internal/core/domain"
)

// DashboardService defines the operations the dashboard UI calls. Each one
// resolves the label against the service clock before querying.
type DashboardService interface {
	MostUsedDomains(ctx context.Context, label domain.RangeLabel, categories domain.CategoryFilter) (*domain.DomainUsageReport, error)
	ServerUsage(ctx context.Context, label domain.RangeLabel, categories domain.CategoryFilter) (*domain.ServerUsageReport, error)
	Overview(ctx context.Context, label domain.RangeLabel, categories domain.CategoryFilter) (*domain.DashboardOverview, error)
}
