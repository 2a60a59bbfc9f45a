package domain

import "time"

// DashboardQuery is what the dashboard asks the analytics backend for.
type DashboardQuery struct {
	Interval   Interval
	Label      RangeLabel // Optional range descriptor, sent alongside the interval
	Categories CategoryFilter
}

// DomainUsage is one row of the most-used-domains report.
type DomainUsage struct {
	Domain string
	Count  int64
}

// ServerUsage is one time-bucketed usage sample.
type ServerUsage struct {
	BucketStart time.Time
	BucketEnd   time.Time
	Value       float64
}

// DomainUsageReport is the most-used-domains result together with the
// interval it was queried for.
type DomainUsageReport struct {
	Label    RangeLabel
	Interval Interval
	Rows     []DomainUsage
}

// ServerUsageReport is the server usage result together with the interval it
// was queried for.
type ServerUsageReport struct {
	Label    RangeLabel
	Interval Interval
	Rows     []ServerUsage
}

// DashboardOverview bundles both reports for a single resolved interval.
type DashboardOverview struct {
	Label       RangeLabel
	Interval    Interval
	TopDomains  []DomainUsage
	ServerUsage []ServerUsage
}
