package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a personnel record. The stored record is the source of truth;
// the presentation fields name, position, and profilePicture are derived at
// read time and never persisted.
type Employee struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FirstName     string             `bson:"first_name"`
	LastName      string             `bson:"last_name"`
	Email         string             `bson:"email"`
	Gender        string             `bson:"gender"`
	Designation   string             `bson:"designation"`
	Salary        int                `bson:"salary"`
	DateOfJoining string             `bson:"date_of_joining"`
	Department    string             `bson:"department"`
	EmployeePhoto string             `bson:"employee_photo,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// FullName derives the presented "name" field.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeUpdate describes a partial update. Nil fields are left untouched.
type EmployeeUpdate struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Gender        *string
	Designation   *string
	Salary        *int
	DateOfJoining *string
	Department    *string
	EmployeePhoto *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u *EmployeeUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.Gender == nil && u.Designation == nil && u.Salary == nil &&
		u.DateOfJoining == nil && u.Department == nil && u.EmployeePhoto == nil
}

// Apply copies the supplied fields onto e, leaving the rest untouched.
func (u *EmployeeUpdate) Apply(e *Employee) {
	if u.FirstName != nil {
		e.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		e.LastName = *u.LastName
	}
	if u.Email != nil {
		e.Email = *u.Email
	}
	if u.Gender != nil {
		e.Gender = *u.Gender
	}
	if u.Designation != nil {
		e.Designation = *u.Designation
	}
	if u.Salary != nil {
		e.Salary = *u.Salary
	}
	if u.DateOfJoining != nil {
		e.DateOfJoining = *u.DateOfJoining
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
	if u.EmployeePhoto != nil {
		e.EmployeePhoto = *u.EmployeePhoto
	}
}
