// Package graph defines the GraphQL schema and its resolvers: the public
// contract of the service. Types are constructed programmatically and each
// field resolves through the Resolver's services.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/dlevchenko/staffgraph/internal/employees"
	"github.com/dlevchenko/staffgraph/internal/models"
	"github.com/dlevchenko/staffgraph/internal/users"
)

// Resolver wires GraphQL resolvers to application services.
type Resolver struct {
	Users     *users.Service
	Employees *employees.Service
}

func (r *Resolver) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.Users.List(p.Context)
	if err != nil {
		return nil, internalError()
	}
	return list, nil
}

func (r *Resolver) resolveEmployees(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.Employees.List(p.Context)
	if err != nil {
		return nil, internalError()
	}
	return list, nil
}

func (r *Resolver) resolveEmployee(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	employee, err := r.Employees.Get(p.Context, id)
	if err != nil {
		return nil, employeeError(err)
	}
	return employee, nil
}

func (r *Resolver) resolveSearchEmployees(p graphql.ResolveParams) (interface{}, error) {
	designation, _ := p.Args["designation"].(string)
	department, _ := p.Args["department"].(string)

	list, err := r.Employees.Search(p.Context, designation, department)
	if err != nil {
		return nil, internalError()
	}
	return list, nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	result, err := r.Users.Login(p.Context, email, password)
	if err != nil {
		return nil, loginError(err)
	}
	return result, nil
}

func (r *Resolver) resolveSignup(p graphql.ResolveParams) (interface{}, error) {
	username, _ := p.Args["username"].(string)
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	user, err := r.Users.Signup(p.Context, username, email, password)
	if err != nil {
		return nil, internalError()
	}
	return user, nil
}

func (r *Resolver) resolveAddEmployee(p graphql.ResolveParams) (interface{}, error) {
	input := employees.Input{
		FirstName:     stringArg(p, "first_name"),
		LastName:      stringArg(p, "last_name"),
		Email:         stringArg(p, "email"),
		Gender:        stringArg(p, "gender"),
		Designation:   stringArg(p, "designation"),
		DateOfJoining: stringArg(p, "date_of_joining"),
		Department:    stringArg(p, "department"),
		EmployeePhoto: stringArg(p, "employee_photo"),
	}
	if v, ok := p.Args["salary"].(int); ok {
		input.Salary = v
	}

	employee, err := r.Employees.Add(p.Context, input)
	if err != nil {
		return nil, employeeError(err)
	}
	return employee, nil
}

func (r *Resolver) resolveUpdateEmployee(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	upd := &models.EmployeeUpdate{}

	if v, ok := p.Args["first_name"].(string); ok {
		upd.FirstName = &v
	}
	if v, ok := p.Args["last_name"].(string); ok {
		upd.LastName = &v
	}
	if v, ok := p.Args["email"].(string); ok {
		upd.Email = &v
	}
	if v, ok := p.Args["gender"].(string); ok {
		upd.Gender = &v
	}
	if v, ok := p.Args["designation"].(string); ok {
		upd.Designation = &v
	}
	if v, ok := p.Args["salary"].(int); ok {
		upd.Salary = &v
	}
	if v, ok := p.Args["date_of_joining"].(string); ok {
		upd.DateOfJoining = &v
	}
	if v, ok := p.Args["department"].(string); ok {
		upd.Department = &v
	}
	if v, ok := p.Args["employee_photo"].(string); ok {
		upd.EmployeePhoto = &v
	}

	employee, err := r.Employees.Update(p.Context, id, upd)
	if err != nil {
		return nil, employeeError(err)
	}
	return employee, nil
}

func (r *Resolver) resolveDeleteEmployee(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	if err := r.Employees.Delete(p.Context, id); err != nil {
		return nil, employeeError(err)
	}
	return "Employee deleted successfully", nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}
