package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lorrc/usage-dashboard/internal/core/domain"
	"github.com/lorrc/usage-dashboard/internal/core/ports"
	"github.com/lorrc/usage-dashboard/internal/core/timerange"
)

// DashboardService resolves dashboard range labels and queries the backend
type DashboardService struct {
	client   ports.DashboardQueryClient
	resolver *timerange.Resolver
}

var _ ports.DashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(client ports.DashboardQueryClient, clock timerange.Clock) ports.DashboardService {
	return &DashboardService{
		client:   client,
		resolver: timerange.NewResolver(clock),
	}
}

// MostUsedDomains returns the most used domains for the window named by label
func (s *DashboardService) MostUsedDomains(ctx context.Context, label domain.RangeLabel, categories domain.CategoryFilter) (*domain.DomainUsageReport, error) {
	query, err := s.query(label, categories)
	if err != nil {
		return nil, err
	}
	rows, err := s.client.FetchMostUsedDomains(ctx, query)
	if err != nil {
		return nil, err
	}
	return &domain.DomainUsageReport{Label: label, Interval: query.Interval, Rows: rows}, nil
}

// ServerUsage returns the bucketed server usage for the window named by label
func (s *DashboardService) ServerUsage(ctx context.Context, label domain.RangeLabel, categories domain.CategoryFilter) (*domain.ServerUsageReport, error) {
	query, err := s.query(label, categories)
	if err != nil {
		return nil, err
	}
	rows, err := s.client.FetchServerUsageByRange(ctx, query)
	if err != nil {
		return nil, err
	}
	return &domain.ServerUsageReport{Label: label, Interval: query.Interval, Rows: rows}, nil
}

// Overview resolves label once and fetches both reports in parallel. If either
// call fails no overview is returned.
func (s *DashboardService) Overview(ctx context.Context, label domain.RangeLabel, categories domain.CategoryFilter) (*domain.DashboardOverview, error) {
	query, err := s.query(label, categories)
	if err != nil {
		return nil, err
	}

	var (
		domains []domain.DomainUsage
		usage   []domain.ServerUsage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.client.FetchMostUsedDomains(gctx, query)
		if err != nil {
			return err
		}
		domains = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.client.FetchServerUsageByRange(gctx, query)
		if err != nil {
			return err
		}
		usage = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DashboardOverview{
		Label:       label,
		Interval:    query.Interval,
		TopDomains:  domains,
		ServerUsage: usage,
	}, nil
}

func (s *DashboardService) query(label domain.RangeLabel, categories domain.CategoryFilter) (domain.DashboardQuery, error) {
	interval, err := s.resolver.Resolve(label)
	if err != nil {
		return domain.DashboardQuery{}, fmt.Errorf("resolve range: %w", err)
	}
	return domain.DashboardQuery{
		Interval:   interval,
		Label:      label,
		Categories: categories,
	}, nil
}
