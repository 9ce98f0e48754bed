package graph

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dlevchenko/staffgraph/internal/auth"
	"github.com/dlevchenko/staffgraph/internal/common"
	"github.com/dlevchenko/staffgraph/internal/config"
	"github.com/dlevchenko/staffgraph/internal/employees"
	"github.com/dlevchenko/staffgraph/internal/models"
	employeesrepo "github.com/dlevchenko/staffgraph/internal/repositories/employees"
	"github.com/dlevchenko/staffgraph/internal/users"
)

const testSecret = "test-secret"

// --- fakes ---

type fakeUsersRepo struct {
	byEmail map[string]*models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (f *fakeUsersRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

type fakeEmployeesRepo struct {
	records map[string]*models.Employee
	order   []string
}

func (f *fakeEmployeesRepo) GetAll(ctx context.Context, filter employeesrepo.Filter) ([]*models.Employee, error) {
	var out []*models.Employee
	for _, id := range f.order {
		e := f.records[id]
		if filter.Designation != "" && e.Designation != filter.Designation {
			continue
		}
		if filter.Department != "" && e.Department != filter.Department {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeesRepo) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	e, ok := f.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return e, nil
}

func (f *fakeEmployeesRepo) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	e.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	f.records[e.ID.Hex()] = e
	f.order = append(f.order, e.ID.Hex())
	return e, nil
}

func (f *fakeEmployeesRepo) Update(ctx context.Context, id string, upd *models.EmployeeUpdate) (*models.Employee, error) {
	e, ok := f.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	upd.Apply(e)
	e.UpdatedAt = time.Now().UTC()
	return e, nil
}

func (f *fakeEmployeesRepo) Delete(ctx context.Context, id string) (*models.Employee, error) {
	e, ok := f.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.records, id)
	for i, rid := range f.order {
		if rid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return e, nil
}

// --- helpers ---

func setupTestSchema(t *testing.T) graphql.Schema {
	t.Helper()

	cfg := &config.Config{
		SecretKey:             testSecret,
		TokenValidityDuration: time.Hour,
	}

	us := users.NewService(&fakeUsersRepo{byEmail: make(map[string]*models.User)}, cfg)
	es := employees.NewService(&fakeEmployeesRepo{records: make(map[string]*models.Employee)})

	schema, err := NewSchema(&Resolver{Users: us, Employees: es})
	if err != nil {
		t.Fatalf("NewSchema error: %v", err)
	}
	return schema
}

func exec(t *testing.T, schema graphql.Schema, query string) *graphql.Result {
	t.Helper()
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
}

func data(t *testing.T, result *graphql.Result) map[string]interface{} {
	t.Helper()
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	m, ok := result.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data shape: %T", result.Data)
	}
	return m
}

func firstErrorMessage(result *graphql.Result) string {
	if len(result.Errors) == 0 {
		return ""
	}
	return result.Errors[0].Message
}

func addTestEmployee(t *testing.T, schema graphql.Schema) string {
	t.Helper()

	result := exec(t, schema, `mutation {
		addEmployee(
			first_name: "Ann", last_name: "Lee", email: "ann@x.com",
			gender: "F", designation: "Engineer", salary: 90000,
			date_of_joining: "2024-01-01", department: "R&D"
		) { id }
	}`)

	emp := data(t, result)["addEmployee"].(map[string]interface{})
	return emp["id"].(string)
}

// --- tests ---

func TestSignup_ReturnsUserWithoutPassword(t *testing.T) {
	schema := setupTestSchema(t)

	result := exec(t, schema, `mutation {
		signup(username: "ann", email: "ann@x.com", password: "s3cret") {
			id username email created_at
		}
	}`)

	user := data(t, result)["signup"].(map[string]interface{})
	if user["username"] != "ann" || user["email"] != "ann@x.com" {
		t.Fatalf("unexpected user: %v", user)
	}
	if user["id"] == "" || user["id"] == nil {
		t.Fatalf("expected assigned id, got %v", user["id"])
	}
	if _, ok := user["password"]; ok {
		t.Fatalf("password leaked into response: %v", user)
	}
}

func TestUserType_HasNoPasswordField(t *testing.T) {
	schema := setupTestSchema(t)

	// selecting a password field must be a schema violation, not a null
	result := exec(t, schema, `{ users { password } }`)
	if !result.HasErrors() {
		t.Fatalf("expected validation error for password selection")
	}
}

func TestLogin_Success(t *testing.T) {
	schema := setupTestSchema(t)

	exec(t, schema, `mutation {
		signup(username: "ann", email: "ann@x.com", password: "s3cret") { id }
	}`)

	result := exec(t, schema, `{
		login(email: "ann@x.com", password: "s3cret") {
			token
			user { id email }
		}
	}`)

	login := data(t, result)["login"].(map[string]interface{})
	token := login["token"].(string)
	user := login["user"].(map[string]interface{})

	gotID, err := auth.GetUserIDFromToken(token, []byte(testSecret))
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if gotID != user["id"].(string) {
		t.Fatalf("token claim id = %q, want %q", gotID, user["id"])
	}
}

func TestLogin_Failures(t *testing.T) {
	schema := setupTestSchema(t)

	exec(t, schema, `mutation {
		signup(username: "ann", email: "ann@x.com", password: "right") { id }
	}`)

	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{
			name:    "unknown email",
			query:   `{ login(email: "ghost@x.com", password: "pw") { token } }`,
			wantMsg: "User not found",
		},
		{
			name:    "wrong password",
			query:   `{ login(email: "ann@x.com", password: "wrong") { token } }`,
			wantMsg: "Invalid credentials",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := exec(t, schema, tc.query)
			if got := firstErrorMessage(result); got != tc.wantMsg {
				t.Fatalf("error message = %q, want %q", got, tc.wantMsg)
			}
		})
	}
}

func TestAddEmployee_DerivedFields(t *testing.T) {
	schema := setupTestSchema(t)

	result := exec(t, schema, `mutation {
		addEmployee(
			first_name: "Ann", last_name: "Lee", email: "ann@x.com",
			gender: "F", designation: "Engineer", salary: 90000,
			date_of_joining: "2024-01-01", department: "R&D"
		) { id name position profilePicture salary department }
	}`)

	emp := data(t, result)["addEmployee"].(map[string]interface{})
	if emp["name"] != "Ann Lee" {
		t.Fatalf("name = %v, want Ann Lee", emp["name"])
	}
	if emp["position"] != "Engineer" {
		t.Fatalf("position = %v, want Engineer", emp["position"])
	}
	if emp["profilePicture"] != nil {
		t.Fatalf("profilePicture = %v, want null", emp["profilePicture"])
	}
	if emp["salary"] != 90000 {
		t.Fatalf("salary = %v, want 90000", emp["salary"])
	}
}

func TestEmployee_ByID_MatchesCreatedShape(t *testing.T) {
	schema := setupTestSchema(t)
	id := addTestEmployee(t, schema)

	result := exec(t, schema, fmt.Sprintf(`{
		employee(id: %q) { id name email gender position salary date_of_joining department }
	}`, id))

	emp := data(t, result)["employee"].(map[string]interface{})
	if emp["id"] != id {
		t.Fatalf("id = %v, want %v", emp["id"], id)
	}
	if emp["name"] != "Ann Lee" || emp["position"] != "Engineer" ||
		emp["date_of_joining"] != "2024-01-01" || emp["department"] != "R&D" {
		t.Fatalf("unexpected employee shape: %v", emp)
	}
}

func TestEmployee_NotFoundIsError(t *testing.T) {
	schema := setupTestSchema(t)

	result := exec(t, schema, `{ employee(id: "64f000000000000000000000") { id } }`)
	if got := firstErrorMessage(result); got != "Employee not found" {
		t.Fatalf("error message = %q, want %q", got, "Employee not found")
	}

	// the field must fail, not resolve to a silent null success
	if m, ok := result.Data.(map[string]interface{}); ok {
		if v := m["employee"]; v != nil {
			t.Fatalf("employee = %v, want nil alongside the error", v)
		}
	}
}

func TestSearch_NoFiltersEqualsEmployees(t *testing.T) {
	schema := setupTestSchema(t)
	addTestEmployee(t, schema)

	exec(t, schema, `mutation {
		addEmployee(
			first_name: "Bob", last_name: "Ray", email: "bob@x.com",
			gender: "M", designation: "Manager", salary: 70000,
			date_of_joining: "2023-05-10", department: "Sales"
		) { id }
	}`)

	all := data(t, exec(t, schema, `{ employees { id } }`))["employees"].([]interface{})
	searched := data(t, exec(t, schema, `{ searchEmployeeByDesignationOrDepartment { id } }`))["searchEmployeeByDesignationOrDepartment"].([]interface{})

	if len(all) != 2 || len(searched) != len(all) {
		t.Fatalf("employees = %d, unfiltered search = %d, want equal sets of 2", len(all), len(searched))
	}

	filtered := data(t, exec(t, schema, `{
		searchEmployeeByDesignationOrDepartment(designation: "Manager", department: "Sales") { name }
	}`))["searchEmployeeByDesignationOrDepartment"].([]interface{})

	if len(filtered) != 1 {
		t.Fatalf("conjunction search returned %d records, want 1", len(filtered))
	}
	if name := filtered[0].(map[string]interface{})["name"]; name != "Bob Ray" {
		t.Fatalf("name = %v, want Bob Ray", name)
	}
}

func TestUpdateEmployee_PartialUpdate(t *testing.T) {
	schema := setupTestSchema(t)
	id := addTestEmployee(t, schema)

	result := exec(t, schema, fmt.Sprintf(`mutation {
		updateEmployee(id: %q, salary: 5000) {
			name email gender position salary date_of_joining department
		}
	}`, id))

	emp := data(t, result)["updateEmployee"].(map[string]interface{})
	if emp["salary"] != 5000 {
		t.Fatalf("salary = %v, want 5000", emp["salary"])
	}
	if emp["name"] != "Ann Lee" || emp["email"] != "ann@x.com" || emp["gender"] != "F" ||
		emp["position"] != "Engineer" || emp["date_of_joining"] != "2024-01-01" ||
		emp["department"] != "R&D" {
		t.Fatalf("unrelated fields changed: %v", emp)
	}
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	schema := setupTestSchema(t)

	result := exec(t, schema, `mutation {
		updateEmployee(id: "64f000000000000000000000", salary: 1) { id }
	}`)
	if got := firstErrorMessage(result); got != "Employee not found" {
		t.Fatalf("error message = %q, want %q", got, "Employee not found")
	}
}

func TestUpdateEmployee_ValidationError(t *testing.T) {
	schema := setupTestSchema(t)
	id := addTestEmployee(t, schema)

	result := exec(t, schema, fmt.Sprintf(`mutation {
		updateEmployee(id: %q, email: "not-an-email") { id }
	}`, id))

	if !result.HasErrors() {
		t.Fatalf("expected validation error")
	}
	if msg := firstErrorMessage(result); !strings.Contains(msg, "validation error") {
		t.Fatalf("error message = %q, want validation error", msg)
	}
}

func TestDeleteEmployee_Lifecycle(t *testing.T) {
	schema := setupTestSchema(t)
	id := addTestEmployee(t, schema)

	result := exec(t, schema, fmt.Sprintf(`mutation { deleteEmployee(id: %q) }`, id))
	if got := data(t, result)["deleteEmployee"]; got != "Employee deleted successfully" {
		t.Fatalf("deleteEmployee = %v, want confirmation string", got)
	}

	// record is gone
	lookup := exec(t, schema, fmt.Sprintf(`{ employee(id: %q) { id } }`, id))
	if got := firstErrorMessage(lookup); got != "Employee not found" {
		t.Fatalf("error message = %q, want %q", got, "Employee not found")
	}

	// deleting again fails the same way
	again := exec(t, schema, fmt.Sprintf(`mutation { deleteEmployee(id: %q) }`, id))
	if got := firstErrorMessage(again); got != "Employee not found" {
		t.Fatalf("error message = %q, want %q", got, "Employee not found")
	}
}

func TestAddEmployee_MissingRequiredArgument(t *testing.T) {
	schema := setupTestSchema(t)

	result := exec(t, schema, `mutation {
		addEmployee(first_name: "Ann", last_name: "Lee") { id }
	}`)
	if !result.HasErrors() {
		t.Fatalf("expected schema-level validation error for missing required arguments")
	}
}
