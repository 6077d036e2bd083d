package pipelines

import (
	"context"
	"sort"

	"go.uber.org/fx"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/meditrack/aggregator-worker/store"
)

const (
	DoctorAppointmentsName   = "doctor appointments"
	AppointmentFrequencyName = "appointment frequency"
	SymptomsBySpecialtyName  = "symptoms by specialty"
)

//go:generate mockgen --build_flags=--mod=mod -source=./aggregator.go -destination=./test/mock_aggregator.go -package test MockAggregator

// Aggregator runs the aggregation pipelines against the operational store.
// Each pipeline returns either its complete result or a *ReadError.
type Aggregator interface {
	DoctorAppointments(ctx context.Context) ([]DoctorAppointmentRow, error)
	AppointmentFrequency(ctx context.Context) ([]FrequencyRow, error)
	SymptomsBySpecialty(ctx context.Context) ([]SymptomSpecialtyRow, error)
}

type Params struct {
	fx.In

	Reader  store.Reader
	Limiter ratelimit.Limiter
	Logger  *zap.SugaredLogger
}

type aggregator struct {
	reader  store.Reader
	limiter ratelimit.Limiter
	logger  *zap.SugaredLogger
}

var _ Aggregator = &aggregator{}

func NewAggregator(p Params) Aggregator {
	limiter := p.Limiter
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &aggregator{
		reader:  p.Reader,
		limiter: limiter,
		logger:  p.Logger,
	}
}

func (a *aggregator) DoctorAppointments(ctx context.Context) ([]DoctorAppointmentRow, error) {
	var groups []doctorAppointmentsGroup
	if err := a.reader.Aggregate(ctx, store.AppointmentsCollection, DoctorAppointmentsPipeline(), &groups); err != nil {
		return nil, a.readError(DoctorAppointmentsName, err)
	}

	rows := make([]DoctorAppointmentRow, 0, len(groups))
	for _, group := range groups {
		doctorId := referenceToString(group.DoctorId)
		doctor, err := a.findDoctor(ctx, doctorId)
		if err != nil {
			return nil, a.readError(DoctorAppointmentsName, err)
		}

		row := DoctorAppointmentRow{
			DoctorId:         doctorId,
			DoctorName:       Unknown,
			Specialty:        Unknown,
			AppointmentCount: group.AppointmentCount,
		}
		// The doctor may have been deleted after the appointments were booked
		if doctor == nil {
			a.logger.Infow("doctor not found, reporting as unknown", "doctorId", doctorId)
		} else {
			row.DoctorName = doctor.NameOrUnknown()
			row.Specialty = doctor.SpecialtyOrUnknown()
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (a *aggregator) AppointmentFrequency(ctx context.Context) ([]FrequencyRow, error) {
	var groups []frequencyGroup
	if err := a.reader.Aggregate(ctx, store.AppointmentsCollection, AppointmentFrequencyPipeline(), &groups); err != nil {
		return nil, a.readError(AppointmentFrequencyName, err)
	}

	rows := make([]FrequencyRow, 0, len(groups))
	for _, group := range groups {
		rows = append(rows, FrequencyRow{
			Date:             group.Date,
			AppointmentCount: group.Count,
		})
	}

	// Date keys are opaque strings, the order is lexicographic
	sort.SliceStable(rows, func(i, j int) bool {
		return lessNullsFirst(rows[i].Date, rows[j].Date)
	})

	return rows, nil
}

func (a *aggregator) SymptomsBySpecialty(ctx context.Context) ([]SymptomSpecialtyRow, error) {
	var groups []symptomSpecialtyGroup
	if err := a.reader.Aggregate(ctx, store.AppointmentsCollection, SymptomsBySpecialtyPipeline(), &groups); err != nil {
		return nil, a.readError(SymptomsBySpecialtyName, err)
	}

	rows := make([]SymptomSpecialtyRow, 0, len(groups))
	for _, group := range groups {
		rows = append(rows, SymptomSpecialtyRow{
			Specialty:       valueOrUnknown(group.Specialty),
			Symptom:         group.Symptom,
			OccurrenceCount: group.OccurrenceCount,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OccurrenceCount > rows[j].OccurrenceCount
	})

	return rows, nil
}

// findDoctor returns nil if the reference is malformed or the doctor doesn't exist
func (a *aggregator) findDoctor(ctx context.Context, doctorId string) (*Doctor, error) {
	id, ok := store.ParseObjectId(doctorId)
	if !ok {
		a.logger.Warnw("malformed doctor reference", "doctorId", doctorId)
		return nil, nil
	}

	a.limiter.Take()

	doctor := &Doctor{}
	found, err := a.reader.FindById(ctx, store.DoctorsCollection, id, doctor)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return doctor, nil
}

func (a *aggregator) readError(pipeline string, err error) error {
	a.logger.Errorw("aggregation failed", "pipeline", pipeline, zap.Error(err))
	return &ReadError{Pipeline: pipeline, Err: err}
}
