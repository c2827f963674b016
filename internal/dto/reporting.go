package dto

import "time"

// ReportRangeParams defines the date range query parameters shared by the
// report endpoints. Defaults (last 6 months) are applied by the handler when
// the range is absent.
type ReportRangeParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}
