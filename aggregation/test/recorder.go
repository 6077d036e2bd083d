package test

import (
	"context"

	"github.com/meditrack/aggregator-worker/aggregation"
)

type Recorder struct {
	Reports []aggregation.Report
	Err     error
}

func (r *Recorder) Record(ctx context.Context, report aggregation.Report) error {
	r.Reports = append(r.Reports, report)
	return r.Err
}

var _ aggregation.Recorder = &Recorder{}
