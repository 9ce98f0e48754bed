package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/dlevchenko/staffgraph/internal/models"
	"github.com/dlevchenko/staffgraph/internal/users"
)

// userField adapts a typed accessor into a graphql resolver. The user type
// deliberately has no password field, so the stored hash cannot leak through
// any selection.
func userField(fn func(*models.User) (interface{}, error)) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		user, ok := p.Source.(*models.User)
		if !ok {
			return nil, nil
		}
		return fn(user)
	}
}

func employeeField(fn func(*models.Employee) (interface{}, error)) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		employee, ok := p.Source.(*models.Employee)
		if !ok {
			return nil, nil
		}
		return fn(employee)
	}
}

func newUserType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.ID,
				Resolve: userField(func(u *models.User) (interface{}, error) {
					return u.ID.Hex(), nil
				}),
			},
			"username": &graphql.Field{
				Type: graphql.String,
				Resolve: userField(func(u *models.User) (interface{}, error) {
					return u.Username, nil
				}),
			},
			"email": &graphql.Field{
				Type: graphql.String,
				Resolve: userField(func(u *models.User) (interface{}, error) {
					return u.Email, nil
				}),
			},
			"created_at": &graphql.Field{
				Type: graphql.String,
				Resolve: userField(func(u *models.User) (interface{}, error) {
					return u.CreatedAt.Format(time.RFC3339), nil
				}),
			},
		},
	})
}

// newEmployeeType exposes the stored fields plus the derived presentation
// fields: name, position, and profilePicture are computed at read time from
// the record, never persisted separately.
func newEmployeeType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Employee",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.ID,
				Resolve: employeeField(func(e *models.Employee) (interface{}, error) {
					return e.ID.Hex(), nil
				}),
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: employeeField(func(e *models.Employee) (interface{}, error) {
					return e.FullName(), nil
				}),
			},
			"email": &graphql.Field{
				Type: graphql.String,
				Resolve: employeeField(func(e *models.Employee) (interface{}, error) {
					return e.Email, nil
				}),
			},
			"gender": &graphql.Field{
				Type: graphql.String,
				Resolve: employeeField(func(e *models.Employee) (interface{}, error) {
					return e.Gender, nil
				}),
			},
			"position": &graphql.Field{
				Type: graphql.String,
				Resolve: employeeField(func(e *models.Employee) (interface{}, error) {
					return e.Designation, nil
				}),
			},
			"salary": &graphql.Field{
				Type: graphql.Int,
				Resolve: employeeField(func(e *models.Employee) (interface{}, error) {
					return e.Salary, nil
				}),
			},
			"date_of_joining": &graphql.Field{
				Type: graphql.String,
				Resolve: employeeField(func(e *models.Employee) (interface{}, error) {
					return e.DateOfJoining, nil
				}),
			},
			"department": &graphql.Field{
				Type: graphql.String,
				Resolve: employeeField(func(e *models.Employee) (interface{}, error) {
					return e.Department, nil
				}),
			},
			"profilePicture": &graphql.Field{
				Type: graphql.String,
				Resolve: employeeField(func(e *models.Employee) (interface{}, error) {
					if e.EmployeePhoto == "" {
						return nil, nil
					}
					return e.EmployeePhoto, nil
				}),
			},
		},
	})
}

func newLoginResponseType(userType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "LoginResponse",
		Fields: graphql.Fields{
			"token": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					result, ok := p.Source.(*users.LoginResult)
					if !ok {
						return nil, nil
					}
					return result.Token, nil
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					result, ok := p.Source.(*users.LoginResult)
					if !ok {
						return nil, nil
					}
					return result.User, nil
				},
			},
		},
	})
}
