package test

import (
	"os"

	"go.mongodb.org/mongo-driver/bson"
)

func LoadFixture(relativePath string) ([]byte, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return os.ReadFile(wd + string(os.PathSeparator) + relativePath)
}

// LoadDocumentsFixture loads an extended json fixture of the form {"documents": [...]}
// and returns the documents as they would be returned by a cursor
func LoadDocumentsFixture(relativePath string) ([]interface{}, error) {
	data, err := LoadFixture(relativePath)
	if err != nil {
		return nil, err
	}

	fixture := struct {
		Documents []bson.D `bson:"documents"`
	}{}
	if err := bson.UnmarshalExtJSON(data, false, &fixture); err != nil {
		return nil, err
	}

	documents := make([]interface{}, 0, len(fixture.Documents))
	for _, document := range fixture.Documents {
		documents = append(documents, document)
	}
	return documents, nil
}
