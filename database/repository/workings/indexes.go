// FILE: database/repository/workings/indexes.go
package workingsRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes backing the statistics queries.
func (r *mongoWorkingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "job_title", Value: 1}},
			Options: options.Index().SetName("status_job_title_idx"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "company.name", Value: 1}},
			Options: options.Index().SetName("status_company_name_idx"),
		},
		{
			Keys:    bson.D{{Key: "company.id", Value: 1}},
			Options: options.Index().SetName("company_id_idx"),
		},
		// Listing order for FindPublished.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("status_created_at_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create workings indexes: %w", err)
	}
	return nil
}
