package aggregation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/meditrack/aggregator-worker/pipelines"
	"github.com/meditrack/aggregator-worker/warehouse"
)

const dateLayout = "2006-01-02"

type Clock func() time.Time

// Recorder receives the report of every finished run
type Recorder interface {
	Record(ctx context.Context, report Report) error
}

type Params struct {
	fx.In

	Aggregator pipelines.Aggregator
	Warehouse  warehouse.Warehouse
	Recorder   Recorder `optional:"true"`
	Clock      Clock    `optional:"true"`
	Logger     *zap.SugaredLogger
}

// Runner sequences a full aggregation run: schema initialization followed by
// each pipeline's read and write. The first failure aborts the run. Tables
// written by earlier pipelines are not rolled back.
type Runner struct {
	aggregator pipelines.Aggregator
	warehouse  warehouse.Warehouse
	recorder   Recorder
	clock      Clock
	logger     *zap.SugaredLogger
}

func NewRunner(p Params) *Runner {
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Runner{
		aggregator: p.Aggregator,
		warehouse:  p.Warehouse,
		recorder:   p.Recorder,
		clock:      clock,
		logger:     p.Logger,
	}
}

type step struct {
	state State
	table warehouse.Table
	read  func(ctx context.Context) ([]warehouse.Row, error)
}

func (r *Runner) steps() []step {
	return []step{
		{
			state: StateDoctorAppointments,
			table: warehouse.DoctorAppointmentsTable,
			read: func(ctx context.Context) ([]warehouse.Row, error) {
				rows, err := r.aggregator.DoctorAppointments(ctx)
				return warehouse.Rows(rows), err
			},
		},
		{
			state: StateAppointmentFrequency,
			table: warehouse.AppointmentFrequencyTable,
			read: func(ctx context.Context) ([]warehouse.Row, error) {
				rows, err := r.aggregator.AppointmentFrequency(ctx)
				return warehouse.Rows(rows), err
			},
		},
		{
			state: StateSymptomsBySpecialty,
			table: warehouse.SymptomsBySpecialtyTable,
			read: func(ctx context.Context) ([]warehouse.Row, error) {
				rows, err := r.aggregator.SymptomsBySpecialty(ctx)
				return warehouse.Rows(rows), err
			},
		},
	}
}

// Run performs one aggregation run to completion. The report is returned
// whether or not the run succeeded.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	startedAt := r.clock()
	report := Report{
		RunId:           uuid.NewString(),
		AggregationDate: toDate(startedAt),
		State:           StateIdle,
		RowsWritten:     make(map[string]int),
		StartedAt:       startedAt,
	}
	logger := r.logger.With("runId", report.RunId, "aggregationDate", report.AggregationDate.Format(dateLayout))
	logger.Infow("starting data aggregation")

	err := r.run(ctx, &report, logger)
	report.FinishedAt = r.clock()
	if err != nil {
		report.FailedState = report.State
		report.State = StateFailed
		report.Err = err
		logger.Errorw("error during aggregation run", "state", report.FailedState, "rowsWritten", report.RowsWritten, zap.Error(err))
	} else {
		report.State = StateDone
		logger.Infow("data aggregation completed successfully", "rowsWritten", report.RowsWritten, "duration", report.Duration())
	}

	r.record(ctx, report, logger)
	return report, err
}

func (r *Runner) run(ctx context.Context, report *Report, logger *zap.SugaredLogger) error {
	report.State = StateSchemaInit
	logger.Debugw("initializing warehouse schema", "state", report.State)
	if err := r.warehouse.Initialize(ctx); err != nil {
		return fmt.Errorf("%s: %w", report.State, err)
	}

	for _, s := range r.steps() {
		report.State = s.state
		logger.Debugw("running pipeline", "state", s.state, "table", s.table.Name)

		rows, err := s.read(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", s.state, err)
		}

		written, err := r.warehouse.Write(ctx, s.table, rows, report.AggregationDate)
		if err != nil {
			return fmt.Errorf("%s: %w", s.state, err)
		}
		report.RowsWritten[s.table.Name] = written
	}

	return nil
}

func (r *Runner) record(ctx context.Context, report Report, logger *zap.SugaredLogger) {
	if r.recorder == nil {
		return
	}
	if err := r.recorder.Record(ctx, report); err != nil {
		logger.Warnw("unable to record aggregation run", zap.Error(err))
	}
}

func toDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
