package graph

import "github.com/graphql-go/graphql"

// NewSchema builds the executable schema around the given resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := newUserType()
	employeeType := newEmployeeType()
	loginResponseType := newLoginResponseType(userType)

	employeeFieldArgs := graphql.FieldConfigArgument{
		"first_name":      &graphql.ArgumentConfig{Type: graphql.String},
		"last_name":       &graphql.ArgumentConfig{Type: graphql.String},
		"email":           &graphql.ArgumentConfig{Type: graphql.String},
		"gender":          &graphql.ArgumentConfig{Type: graphql.String},
		"designation":     &graphql.ArgumentConfig{Type: graphql.String},
		"salary":          &graphql.ArgumentConfig{Type: graphql.Int},
		"date_of_joining": &graphql.ArgumentConfig{Type: graphql.String},
		"department":      &graphql.ArgumentConfig{Type: graphql.String},
		"employee_photo":  &graphql.ArgumentConfig{Type: graphql.String},
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQueryType",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type:    graphql.NewList(userType),
				Resolve: r.resolveUsers,
			},
			"employees": &graphql.Field{
				Type:    graphql.NewList(employeeType),
				Resolve: r.resolveEmployees,
			},
			"employee": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveEmployee,
			},
			"searchEmployeeByDesignationOrDepartment": &graphql.Field{
				Type: graphql.NewList(employeeType),
				Args: graphql.FieldConfigArgument{
					"designation": &graphql.ArgumentConfig{Type: graphql.String},
					"department":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveSearchEmployees,
			},
			"login": &graphql.Field{
				Type: loginResponseType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveLogin,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveSignup,
			},
			"addEmployee": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"first_name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"last_name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"gender":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"designation":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"salary":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"date_of_joining": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"department":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"employee_photo":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveAddEmployee,
			},
			"updateEmployee": &graphql.Field{
				Type: employeeType,
				Args: mergeArgs(graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				}, employeeFieldArgs),
				Resolve: r.resolveUpdateEmployee,
			},
			"deleteEmployee": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteEmployee,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    rootQuery,
		Mutation: mutation,
	})
}

func mergeArgs(args ...graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	merged := graphql.FieldConfigArgument{}
	for _, set := range args {
		for name, cfg := range set {
			merged[name] = cfg
		}
	}
	return merged
}
