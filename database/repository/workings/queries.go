// File: database/repository/workings/queries.go
package workingsRepo

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"goodjob/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BuildQuery translates a WorkingFilter into a mongo filter document. Stored
// company names and job titles are uppercase, so the keyword is uppercased
// and escaped before being used as a regex.
func BuildQuery(f WorkingFilter) bson.M {
	query := bson.M{"status": models.StatusPublished}
	if f.Company != "" {
		query["$or"] = bson.A{
			bson.M{"company.name": bson.M{"$regex": substringPattern(f.Company)}},
			bson.M{"company.id": f.Company},
		}
	}
	if f.JobTitle != "" {
		query["job_title"] = bson.M{"$regex": substringPattern(f.JobTitle)}
	}
	return query
}

func substringPattern(keyword string) string {
	return regexp.QuoteMeta(strings.ToUpper(keyword))
}

// FindPublished returns published workings matching filter ordered by
// creation time, then _id.
func (r *mongoWorkingRepo) FindPublished(ctx context.Context, filter WorkingFilter) ([]models.Working, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, BuildQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query workings: %w", err)
	}
	defer cursor.Close(ctx)

	workings := []models.Working{}
	if err := cursor.All(ctx, &workings); err != nil {
		return nil, fmt.Errorf("failed to decode workings: %w", err)
	}
	return workings, nil
}

// GetByID returns the working with the given hex ObjectID.
func (r *mongoWorkingRepo) GetByID(ctx context.Context, id string) (*models.Working, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var working models.Working
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&working); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch working %s: %w", id, err)
	}
	return &working, nil
}
