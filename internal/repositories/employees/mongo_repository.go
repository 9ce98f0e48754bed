package employees

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dlevchenko/staffgraph/internal/common"
	"github.com/dlevchenko/staffgraph/internal/models"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("employees")}
}

func (r *MongoRepository) GetAll(ctx context.Context, filter Filter) ([]*models.Employee, error) {
	query := bson.M{}
	if filter.Designation != "" {
		query["designation"] = filter.Designation
	}
	if filter.Department != "" {
		query["department"] = filter.Department
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*models.Employee
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding employees: %w", err)
	}

	return out, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	employee := &models.Employee{}
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error querying employee: %w", err)
	}

	return employee, nil
}

// Create inserts the employee, assigning the id and timestamps.
func (r *MongoRepository) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("error inserting employee: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		employee.ID = oid
	}

	return employee, nil
}

// Update applies the supplied fields with $set and returns the post-update
// record. Unsupplied fields retain their prior values.
func (r *MongoRepository) Update(ctx context.Context, id string, upd *models.EmployeeUpdate) (*models.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.FirstName != nil {
		set["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["last_name"] = *upd.LastName
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Gender != nil {
		set["gender"] = *upd.Gender
	}
	if upd.Designation != nil {
		set["designation"] = *upd.Designation
	}
	if upd.Salary != nil {
		set["salary"] = *upd.Salary
	}
	if upd.DateOfJoining != nil {
		set["date_of_joining"] = *upd.DateOfJoining
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.EmployeePhoto != nil {
		set["employee_photo"] = *upd.EmployeePhoto
	}

	employee := &models.Employee{}
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating employee: %w", err)
	}

	return employee, nil
}

// Delete removes the record and returns it.
func (r *MongoRepository) Delete(ctx context.Context, id string) (*models.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	employee := &models.Employee{}
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error deleting employee: %w", err)
	}

	return employee, nil
}
