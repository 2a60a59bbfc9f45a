package dashboardapi

import (
	"encoding/json"
	"fmt"

	"github.com/lorrc/usage-dashboard/internal/adapters/validation"
	"github.com/lorrc/usage-dashboard/internal/core/domain"
)

// QueryBody is the JSON request body both reports accept. From and To are
// unix milliseconds; Range repeats the label the interval was resolved from.
type QueryBody struct {
	From       int64    `json:"from"`
	To         int64    `json:"to"`
	Range      string   `json:"range,omitempty"`
	Categories []string `json:"categories"`
}

func encodeQuery(q domain.DashboardQuery) ([]byte, error) {
	if err := q.Interval.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(QueryBody{
		From:       q.Interval.From.UnixMilli(),
		To:         q.Interval.To.UnixMilli(),
		Range:      string(q.Label),
		Categories: q.Categories.Values(),
	})
}

func decodeArray(body []byte) ([]json.RawMessage, error) {
	return validation.DecodeArray(body)
}

// decodeDomainUsage validates each element as {"domain": string, "count": integer}.
func decodeDomainUsage(items []json.RawMessage) ([]domain.DomainUsage, error) {
	v := validation.NewValidator()
	rows := make([]domain.DomainUsage, 0, len(items))

	for i, raw := range items {
		row := v.Field(fmt.Sprintf("[%d]", i))
		obj := row.Object(raw)
		if obj == nil {
			continue
		}

		usage := domain.DomainUsage{
			Domain: row.String(obj, "domain"),
			Count:  row.Int(obj, "count"),
		}
		if _, ok := obj["domain"]; ok {
			row.Required("domain", usage.Domain)
		}
		row.NonNegative("count", usage.Count)
		rows = append(rows, usage)
	}

	if err := v.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// decodeServerUsage validates each element as
// {"bucketStart": RFC 3339, "bucketEnd": RFC 3339, "value": number}.
func decodeServerUsage(items []json.RawMessage) ([]domain.ServerUsage, error) {
	v := validation.NewValidator()
	rows := make([]domain.ServerUsage, 0, len(items))

	for i, raw := range items {
		row := v.Field(fmt.Sprintf("[%d]", i))
		obj := row.Object(raw)
		if obj == nil {
			continue
		}

		usage := domain.ServerUsage{
			BucketStart: row.Time(obj, "bucketStart"),
			BucketEnd:   row.Time(obj, "bucketEnd"),
			Value:       row.Float(obj, "value"),
		}
		row.NotAfter("bucketEnd", usage.BucketStart, usage.BucketEnd)
		rows = append(rows, usage)
	}

	if err := v.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
