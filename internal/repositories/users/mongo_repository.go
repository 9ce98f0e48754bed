package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dlevchenko/staffgraph/internal/common"
	"github.com/dlevchenko/staffgraph/internal/models"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("users")}
}

// Create inserts the user, assigning the id and creation timestamp.
func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.CreatedAt = time.Now().UTC()

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return user, nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return user, nil
}

func (r *MongoRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*models.User
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	return out, nil
}
