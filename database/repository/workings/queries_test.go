package workingsRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"goodjob/models"
)

func TestBuildQuery(t *testing.T) {
	t.Run("no criteria only keeps published records", func(t *testing.T) {
		assert.Equal(t, bson.M{"status": models.StatusPublished}, BuildQuery(WorkingFilter{}))
	})

	t.Run("company matches name substring or exact id", func(t *testing.T) {
		q := BuildQuery(WorkingFilter{Company: "company1"})
		assert.Equal(t, bson.M{
			"status": models.StatusPublished,
			"$or": bson.A{
				bson.M{"company.name": bson.M{"$regex": "COMPANY1"}},
				bson.M{"company.id": "company1"},
			},
		}, q)
	})

	t.Run("job title is uppercased and escaped", func(t *testing.T) {
		q := BuildQuery(WorkingFilter{JobTitle: "c++ engineer"})
		assert.Equal(t, bson.M{"$regex": `C\+\+ ENGINEER`}, q["job_title"])
		assert.NotContains(t, q, "$or")
	})
}
