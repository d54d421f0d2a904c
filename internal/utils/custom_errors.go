package utils

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrChartNotFound    = errors.New("chart not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUpstream         = errors.New("upstream request failed")
	ErrNoData           = errors.New("no pull request data available for report generation")
	ErrReportGeneration = errors.New("report generation failed")
	ErrInternal         = errors.New("internal error")
)
