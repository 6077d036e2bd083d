package metrics_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/meditrack/aggregator-worker/aggregation"
	"github.com/meditrack/aggregator-worker/metrics"
)

var _ = Describe("PushRecorder", func() {
	var report aggregation.Report

	BeforeEach(func() {
		startedAt := time.Date(2024, time.March, 1, 2, 0, 0, 0, time.UTC)
		report = aggregation.Report{
			RunId:           "run",
			AggregationDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			State:           aggregation.StateDone,
			RowsWritten: map[string]int{
				"doctor_appointments":   2,
				"appointment_frequency": 5,
			},
			StartedAt:  startedAt,
			FinishedAt: startedAt.Add(90 * time.Second),
		}
	})

	It("exposes the outcome of the run", func() {
		recorder, err := metrics.NewPushRecorder(metrics.Config{}, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
		Expect(recorder.Record(context.Background(), report)).To(Succeed())

		expected := `
# HELP aggregator_last_run_success Whether the last aggregation run succeeded (1) or failed (0)
# TYPE aggregator_last_run_success gauge
aggregator_last_run_success 1
# HELP aggregator_run_duration_seconds Duration of the last aggregation run
# TYPE aggregator_run_duration_seconds gauge
aggregator_run_duration_seconds 90
# HELP aggregator_rows_written Rows written to each warehouse table by the last aggregation run
# TYPE aggregator_rows_written gauge
aggregator_rows_written{table="appointment_frequency"} 5
aggregator_rows_written{table="doctor_appointments"} 2
`
		Expect(testutil.GatherAndCompare(recorder.Gatherer(), strings.NewReader(expected),
			"aggregator_last_run_success",
			"aggregator_run_duration_seconds",
			"aggregator_rows_written",
		)).To(Succeed())
	})

	It("reports failed runs", func() {
		report.State = aggregation.StateFailed
		report.FailedState = aggregation.StateAppointmentFrequency
		report.Err = errors.New("connection reset")
		report.RowsWritten = map[string]int{"doctor_appointments": 2}

		recorder, err := metrics.NewPushRecorder(metrics.Config{}, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
		Expect(recorder.Record(context.Background(), report)).To(Succeed())

		expected := `
# HELP aggregator_last_run_success Whether the last aggregation run succeeded (1) or failed (0)
# TYPE aggregator_last_run_success gauge
aggregator_last_run_success 0
`
		Expect(testutil.GatherAndCompare(recorder.Gatherer(), strings.NewReader(expected), "aggregator_last_run_success")).To(Succeed())
	})

	Describe("with a pushgateway", func() {
		var server *httptest.Server
		var requests []*http.Request
		var status int

		BeforeEach(func() {
			requests = nil
			status = http.StatusOK
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests = append(requests, r)
				w.WriteHeader(status)
			}))
		})

		AfterEach(func() {
			server.Close()
		})

		It("pushes the metrics of the run", func() {
			recorder, err := metrics.NewPushRecorder(metrics.Config{PushgatewayURL: server.URL, Job: "meditrack_aggregator"}, zap.NewNop().Sugar())
			Expect(err).ToNot(HaveOccurred())
			Expect(recorder.Record(context.Background(), report)).To(Succeed())

			Expect(requests).To(HaveLen(1))
			Expect(requests[0].Method).To(Equal(http.MethodPut))
			Expect(requests[0].URL.Path).To(Equal("/metrics/job/meditrack_aggregator/instance/aggregator"))
		})

		It("returns an error when the push is rejected", func() {
			status = http.StatusInternalServerError
			recorder, err := metrics.NewPushRecorder(metrics.Config{PushgatewayURL: server.URL, Job: "meditrack_aggregator"}, zap.NewNop().Sugar())
			Expect(err).ToNot(HaveOccurred())
			Expect(recorder.Record(context.Background(), report)).ToNot(Succeed())
		})
	})
})
