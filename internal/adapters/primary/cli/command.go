// Package cli is the command line front end of the usage dashboard.
package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lorrc/usage-dashboard/internal/adapters/validation"
	"github.com/lorrc/usage-dashboard/internal/core/domain"
	apperrors "github.com/lorrc/usage-dashboard/internal/core/errors"
	"github.com/lorrc/usage-dashboard/internal/core/ports"
	"github.com/lorrc/usage-dashboard/internal/core/timerange"
	"github.com/lorrc/usage-dashboard/internal/infrastructure/logging"
)

// Report names what the command prints.
type Report string

const (
	ReportResolve  Report = "resolve"
	ReportDomains  Report = "domains"
	ReportUsage    Report = "usage"
	ReportOverview Report = "overview"
)

const maxCategoryIDLength = 64

var reportNames = []string{
	string(ReportResolve),
	string(ReportDomains),
	string(ReportUsage),
	string(ReportOverview),
}

// Options are the parsed command line arguments
type Options struct {
	Range      domain.RangeLabel
	Categories domain.CategoryFilter
	Report     Report
}

// ParseArgs parses args (without the program name). defaultCategories apply
// when -categories is not given.
func ParseArgs(args []string, defaultCategories []string, stderr io.Writer) (Options, error) {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	rng := fs.String("range", string(domain.RangeToday), "time window: "+labelList())
	categories := fs.String("categories", "", "comma separated category ids")
	report := fs.String("report", string(ReportOverview), "resolve, domains, usage or overview")

	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err)
	}

	label, err := domain.ParseRangeLabel(*rng)
	if err != nil {
		return Options{}, err
	}

	rawCategories := defaultCategories
	if *categories != "" {
		rawCategories = strings.Split(*categories, ",")
	}
	reportName := strings.ToLower(strings.TrimSpace(*report))

	v := validation.NewValidator()
	v.Custom("args", fs.NArg() == 0, fmt.Sprintf("Unexpected arguments %v", fs.Args()))
	v.Required("report", reportName).OneOf("report", reportName, reportNames)
	for i, id := range rawCategories {
		id = strings.TrimSpace(id)
		field := fmt.Sprintf("categories[%d]", i)
		v.MaxLength(field, id, maxCategoryIDLength)
		v.Custom(field, !strings.ContainsAny(id, " \t\n/"), "Must not contain whitespace or slashes")
	}
	if err := v.Err(); err != nil {
		return Options{}, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err)
	}

	return Options{
		Range:      label,
		Categories: domain.NewCategoryFilter(rawCategories...),
		Report:     Report(reportName),
	}, nil
}

// Runner executes parsed commands against the dashboard service
type Runner struct {
	service  ports.DashboardService
	resolver *timerange.Resolver
	out      io.Writer
	logger   *slog.Logger
}

// NewRunner creates a new runner printing JSON to out
func NewRunner(service ports.DashboardService, clock timerange.Clock, out io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		service:  service,
		resolver: timerange.NewResolver(clock),
		out:      out,
		logger:   logger,
	}
}

// Run executes opts and prints the result. Nothing is printed on error.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	ctx = logging.WithRange(ctx, opts.Range.String())
	log := logging.LoggerFromContext(ctx, r.logger)

	var result any
	switch opts.Report {
	case ReportResolve:
		iv, err := r.resolver.Resolve(opts.Range)
		if err != nil {
			return err
		}
		result = toIntervalDTO(opts.Range, iv)

	case ReportDomains:
		report, err := r.service.MostUsedDomains(ctx, opts.Range, opts.Categories)
		if err != nil {
			return err
		}
		result = ListResponse[DomainUsageDTO]{
			Interval: toIntervalDTO(report.Label, report.Interval),
			Data:     toDomainUsageDTOs(report.Rows),
			Count:    len(report.Rows),
		}

	case ReportUsage:
		report, err := r.service.ServerUsage(ctx, opts.Range, opts.Categories)
		if err != nil {
			return err
		}
		result = ListResponse[ServerUsageDTO]{
			Interval: toIntervalDTO(report.Label, report.Interval),
			Data:     toServerUsageDTOs(report.Rows),
			Count:    len(report.Rows),
		}

	case ReportOverview:
		overview, err := r.service.Overview(ctx, opts.Range, opts.Categories)
		if err != nil {
			return err
		}
		result = OverviewDTO{
			Interval:    toIntervalDTO(overview.Label, overview.Interval),
			TopDomains:  toDomainUsageDTOs(overview.TopDomains),
			ServerUsage: toServerUsageDTOs(overview.ServerUsage),
		}

	default:
		return fmt.Errorf("%w: unknown report %q", apperrors.ErrBadRequest, opts.Report)
	}

	log.DebugContext(ctx, "report ready", "report", string(opts.Report), "categories", opts.Categories.Values())

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func labelList() string {
	labels := domain.AllRangeLabels()
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = fmt.Sprintf("%q", l.String())
	}
	return strings.Join(names, ", ")
}
