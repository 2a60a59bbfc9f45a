package cli

import (
	"time"

	"github.com/lorrc/usage-dashboard/internal/core/domain"
)

// IntervalDTO is the printed form of a resolved interval
type IntervalDTO struct {
	Range string    `json:"range"`
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
}

// DomainUsageDTO is one printed most-used-domains row
type DomainUsageDTO struct {
	Domain string `json:"domain"`
	Count  int64  `json:"count"`
}

// ServerUsageDTO is one printed server usage bucket
type ServerUsageDTO struct {
	BucketStart time.Time `json:"bucketStart"`
	BucketEnd   time.Time `json:"bucketEnd"`
	Value       float64   `json:"value"`
}

// ListResponse wraps a list of items with the interval they cover
type ListResponse[T any] struct {
	Interval IntervalDTO `json:"interval"`
	Data     []T         `json:"data"`
	Count    int         `json:"count"`
}

// OverviewDTO is the printed form of a dashboard overview
type OverviewDTO struct {
	Interval    IntervalDTO      `json:"interval"`
	TopDomains  []DomainUsageDTO `json:"topDomains"`
	ServerUsage []ServerUsageDTO `json:"serverUsage"`
}

func toIntervalDTO(label domain.RangeLabel, iv domain.Interval) IntervalDTO {
	return IntervalDTO{Range: label.String(), From: iv.From, To: iv.To}
}

func toDomainUsageDTOs(rows []domain.DomainUsage) []DomainUsageDTO {
	out := make([]DomainUsageDTO, len(rows))
	for i, r := range rows {
		out[i] = DomainUsageDTO{Domain: r.Domain, Count: r.Count}
	}
	return out
}

func toServerUsageDTOs(rows []domain.ServerUsage) []ServerUsageDTO {
	out := make([]ServerUsageDTO, len(rows))
	for i, r := range rows {
		out[i] = ServerUsageDTO{BucketStart: r.BucketStart, BucketEnd: r.BucketEnd, Value: r.Value}
	}
	return out
}
