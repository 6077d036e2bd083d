package worker_test

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/meditrack/aggregator-worker/aggregation"
	"github.com/meditrack/aggregator-worker/pipelines"
	pipelinesTest "github.com/meditrack/aggregator-worker/pipelines/test"
	warehouseTest "github.com/meditrack/aggregator-worker/warehouse/test"
	"github.com/meditrack/aggregator-worker/worker"
)

var _ = Describe("Run", func() {
	var ctrl *gomock.Controller
	var aggregator *pipelinesTest.MockAggregator
	var wh *warehouseTest.Warehouse
	var app *fx.App

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		aggregator = pipelinesTest.NewMockAggregator(ctrl)
		wh = warehouseTest.NewWarehouse()
	})

	AfterEach(func() {
		Expect(app.Stop(context.Background())).To(Succeed())
	})

	startApp := func() {
		logger := zap.NewNop().Sugar()
		runner := aggregation.NewRunner(aggregation.Params{
			Aggregator: aggregator,
			Warehouse:  wh,
			Logger:     logger,
		})
		app = fx.New(
			fx.Supply(runner, logger),
			worker.RunOnce,
			fx.NopLogger,
		)
		Expect(app.Err()).ToNot(HaveOccurred())
		Expect(app.Start(context.Background())).To(Succeed())
	}

	It("shuts down with a success exit code when the run succeeds", func() {
		aggregator.EXPECT().DoctorAppointments(gomock.Any()).Return([]pipelines.DoctorAppointmentRow{}, nil)
		aggregator.EXPECT().AppointmentFrequency(gomock.Any()).Return([]pipelines.FrequencyRow{}, nil)
		aggregator.EXPECT().SymptomsBySpecialty(gomock.Any()).Return([]pipelines.SymptomSpecialtyRow{}, nil)
		startApp()

		var signal fx.ShutdownSignal
		Eventually(app.Wait()).Should(Receive(&signal))
		Expect(signal.ExitCode).To(Equal(worker.ExitCodeSuccess))
		Expect(wh.Initialized).To(Equal(1))
	})

	It("shuts down with a failure exit code when the run fails", func() {
		wh.InitializeErr = errors.New("permission denied for schema public")
		startApp()

		var signal fx.ShutdownSignal
		Eventually(app.Wait()).Should(Receive(&signal))
		Expect(signal.ExitCode).To(Equal(worker.ExitCodeFailure))
	})
})
