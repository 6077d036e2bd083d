package pipelines_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/meditrack/aggregator-worker/pipelines"
	"github.com/meditrack/aggregator-worker/store"
)

func stageNames(pipeline []bson.D) []string {
	names := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		names = append(names, stage[0].Key)
	}
	return names
}

var _ = Describe("Pipeline definitions", func() {
	It("groups appointments by doctor", func() {
		pipeline := pipelines.DoctorAppointmentsPipeline()
		Expect(stageNames(pipeline)).To(Equal([]string{"$group"}))
		Expect(pipeline[0][0].Value).To(ContainElement(bson.E{Key: "_id", Value: "$doctor_id"}))
	})

	It("groups appointments by date and sorts ascending", func() {
		pipeline := pipelines.AppointmentFrequencyPipeline()
		Expect(stageNames(pipeline)).To(Equal([]string{"$group", "$sort"}))
		Expect(pipeline[1][0].Value).To(Equal(bson.D{{Key: "_id", Value: 1}}))
	})

	Describe("symptoms by specialty", func() {
		var pipeline []bson.D

		BeforeEach(func() {
			pipeline = pipelines.SymptomsBySpecialtyPipeline()
		})

		It("joins doctors, flattens symptoms, groups and sorts descending", func() {
			Expect(stageNames(pipeline)).To(Equal([]string{
				"$addFields", "$lookup", "$unwind", "$unwind", "$group", "$sort", "$project",
			}))
			Expect(pipeline[1][0].Value).To(ContainElement(bson.E{Key: "from", Value: store.DoctorsCollection}))
			Expect(pipeline[5][0].Value).To(Equal(bson.D{{Key: "count", Value: -1}}))
		})

		It("converts doctor references without failing on malformed or missing ids", func() {
			Expect(pipeline[0][0].Value).To(Equal(bson.D{
				{Key: "doctor_object_id", Value: bson.D{{Key: "$convert", Value: bson.D{
					{Key: "input", Value: "$doctor_id"},
					{Key: "to", Value: "objectId"},
					{Key: "onError", Value: nil},
					{Key: "onNull", Value: nil},
				}}}},
			}))
			Expect(pipeline[1][0].Value).To(ContainElement(bson.E{Key: "localField", Value: "doctor_object_id"}))
		})

		It("drops appointments without a matching doctor", func() {
			// A plain path unwind does not preserve empty lookups
			Expect(pipeline[2][0].Value).To(Equal("$doctor_info"))
		})

		It("emits one unit per symptom", func() {
			Expect(pipeline[3][0].Value).To(Equal("$symptoms"))
		})
	})
})
