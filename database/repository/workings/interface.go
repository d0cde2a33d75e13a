// File: database/repository/workings/interface.go
package workingsRepo

import (
	"context"
	"errors"

	"goodjob/config"
	"goodjob/database"
	"goodjob/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no working matches the requested ID.
var ErrNotFound = errors.New("working not found")

// WorkingFilter narrows the published workings returned by FindPublished.
// Text criteria are matched as case-insensitive substrings; an empty
// criterion matches everything.
type WorkingFilter struct {
	// Company matches a substring of company.name or exactly company.id.
	Company string
	// JobTitle matches a substring of job_title.
	JobTitle string
}

type WorkingRepository interface {
	// FindPublished returns every published working matching filter, oldest first.
	FindPublished(ctx context.Context, filter WorkingFilter) ([]models.Working, error)
	GetByID(ctx context.Context, id string) (*models.Working, error)
	UpdateStatus(ctx context.Context, id, status string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoWorkingRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkingRepo returns a WorkingRepository backed by the workings collection.
func NewMongoWorkingRepo() WorkingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoWorkingRepo{
		coll: db.Collection("workings"),
	}
}
