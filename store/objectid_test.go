package store_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meditrack/aggregator-worker/store"
)

var _ = Describe("ParseObjectId", func() {
	It("parses valid hex references", func() {
		expected := primitive.NewObjectID()
		id, ok := store.ParseObjectId(expected.Hex())
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal(expected))
	})

	It("reports malformed references", func() {
		id, ok := store.ParseObjectId("not-an-object-id")
		Expect(ok).To(BeFalse())
		Expect(id).To(Equal(primitive.NilObjectID))
	})

	It("reports empty references", func() {
		_, ok := store.ParseObjectId("")
		Expect(ok).To(BeFalse())
	})
})
