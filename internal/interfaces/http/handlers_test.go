package http_test

// Helpers compartidos por los tests de handlers: repositorios fake en memoria
// (emulan los índices únicos del store) y construcción de la app Fiber con el
// router real.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empleados-api/internal/application/auth"
	"github.com/jhoicas/empleados-api/internal/application/employee"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	apphttp "github.com/jhoicas/empleados-api/internal/interfaces/http"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "empleados-api-test"
	testExpMin    = 60
)

type fakeUserRepo struct {
	users map[string]*entity.User // email -> user
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := r.users[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	cp := *user
	r.users[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeEmployeeRepo struct {
	docs map[string]*entity.Employee // id -> doc
	seq  int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{docs: map[string]*entity.Employee{}}
}

func (r *fakeEmployeeRepo) Create(emp *entity.Employee) error {
	for _, d := range r.docs {
		if d.Email == emp.Email && d.CreatedBy == emp.CreatedBy {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.seq++
	emp.ID = fmt.Sprintf("emp-%d", r.seq)
	cp := *emp
	r.docs[emp.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) FindByEmailAndOwner(email, ownerID string) (*entity.Employee, error) {
	for _, d := range r.docs {
		if d.Email == email && d.CreatedBy == ownerID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) ListByOwner(ownerID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, d := range r.docs {
		if d.CreatedBy == ownerID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) UpdateOwned(emp *entity.Employee) (bool, error) {
	d, ok := r.docs[emp.ID]
	if !ok || d.CreatedBy != emp.CreatedBy {
		return false, nil
	}
	d.Name = emp.Name
	d.Email = emp.Email
	d.Department = emp.Department
	d.Designation = emp.Designation
	d.Salary = emp.Salary
	return true, nil
}

func (r *fakeEmployeeRepo) DeleteOwned(id, ownerID string) (bool, error) {
	d, ok := r.docs[id]
	if !ok || d.CreatedBy != ownerID {
		return false, nil
	}
	delete(r.docs, id)
	return true, nil
}

// buildApp construye una app Fiber con el router real sobre repos fake.
func buildApp() (*fiber.App, *fakeUserRepo, *fakeEmployeeRepo) {
	userRepo := newFakeUserRepo()
	empRepo := newFakeEmployeeRepo()
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		EmployeeUC: employee.NewUseCase(empRepo),
		JWTSecret:  testJWTSecret,
	})
	return app, userRepo, empRepo
}

// doJSON lanza una petición JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin registra un usuario y devuelve su token.
func registerAndLogin(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": name, "email": email, "password": password,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": email, "password": password,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
