package worker_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx"

	"github.com/meditrack/aggregator-worker/aggregation"
	"github.com/meditrack/aggregator-worker/worker"
)

var _ = Describe("Bootstrap", func() {
	Describe("Fx App", func() {
		var app *fx.App
		var components worker.Components
		var recorder aggregation.Recorder

		BeforeEach(func() {
			SetRequiredEnvVariables()

			init := func(c worker.Components, r aggregation.Recorder) {
				components = c
				recorder = r
			}
			opts := append([]fx.Option{}, worker.Modules...)
			opts = append(opts, fx.Invoke(init), fx.NopLogger)

			app = fx.New(opts...)
			Expect(app).ToNot(BeNil())
		})

		AfterEach(func() {
			components = worker.Components{}
			recorder = nil
			ClearRequiredEnvVariables()
		})

		It("build the DI graph successfully", func() {
			Expect(app.Err()).ToNot(HaveOccurred())
		})

		It("instantiates a runner", func() {
			Expect(components.Runner).ToNot(BeNil())
		})

		It("instantiates a metrics recorder", func() {
			Expect(recorder).ToNot(BeNil())
		})
	})

	Describe("Invalid configuration", func() {
		It("fails to build the DI graph", func() {
			Expect(os.Setenv("LOG_LEVEL", "verbose")).To(Succeed())
			defer func() {
				Expect(os.Unsetenv("LOG_LEVEL")).To(Succeed())
			}()

			opts := append([]fx.Option{}, worker.Modules...)
			opts = append(opts, fx.Invoke(func(worker.Components) {}), fx.NopLogger)

			app := fx.New(opts...)
			Expect(app.Err()).To(HaveOccurred())
		})
	})
})

func SetRequiredEnvVariables() {
	Expect(os.Setenv("MONGO_URL", "mongodb://localhost:27017")).ToNot(HaveOccurred())
	Expect(os.Setenv("MONGO_DB_NAME", "meditrack")).ToNot(HaveOccurred())
	Expect(os.Setenv("REDSHIFT_HOST", "localhost")).ToNot(HaveOccurred())
	Expect(os.Setenv("REDSHIFT_USER", "aggregator")).ToNot(HaveOccurred())
	Expect(os.Setenv("REDSHIFT_PASSWORD", "dummy")).ToNot(HaveOccurred())
}

func ClearRequiredEnvVariables() {
	Expect(os.Unsetenv("MONGO_URL")).ToNot(HaveOccurred())
	Expect(os.Unsetenv("MONGO_DB_NAME")).ToNot(HaveOccurred())
	Expect(os.Unsetenv("REDSHIFT_HOST")).ToNot(HaveOccurred())
	Expect(os.Unsetenv("REDSHIFT_USER")).ToNot(HaveOccurred())
	Expect(os.Unsetenv("REDSHIFT_PASSWORD")).ToNot(HaveOccurred())
}
