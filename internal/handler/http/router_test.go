package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/ems-backend-go/internal/config"
	"github.com/staffhub/ems-backend-go/internal/domain/user"
	"github.com/staffhub/ems-backend-go/internal/handler/http/response"
	"github.com/staffhub/ems-backend-go/internal/pkg/jwt"
)

// okHandlers satisfies every handler interface with a bare success
// response, so requests that reach a handler report 200 and requests
// stopped by middleware report 401 or 403.
type okHandlers struct{}

func (okHandlers) ok(w http.ResponseWriter, r *http.Request) { response.Success(w, nil) }

func (h okHandlers) Register(w http.ResponseWriter, r *http.Request)            { h.ok(w, r) }
func (h okHandlers) Login(w http.ResponseWriter, r *http.Request)               { h.ok(w, r) }
func (h okHandlers) LoginWithGoogle(w http.ResponseWriter, r *http.Request)     { h.ok(w, r) }
func (h okHandlers) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) { h.ok(w, r) }
func (h okHandlers) Logout(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandlers) RefreshToken(w http.ResponseWriter, r *http.Request)        { h.ok(w, r) }
func (h okHandlers) Me(w http.ResponseWriter, r *http.Request)                  { h.ok(w, r) }
func (h okHandlers) List(w http.ResponseWriter, r *http.Request)                { h.ok(w, r) }
func (h okHandlers) Get(w http.ResponseWriter, r *http.Request)                 { h.ok(w, r) }
func (h okHandlers) Create(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandlers) Update(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandlers) Delete(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandlers) UpdateRole(w http.ResponseWriter, r *http.Request)          { h.ok(w, r) }
func (h okHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request)        { h.ok(w, r) }
func (h okHandlers) UploadAvatar(w http.ResponseWriter, r *http.Request)        { h.ok(w, r) }
func (h okHandlers) UploadDocument(w http.ResponseWriter, r *http.Request)      { h.ok(w, r) }
func (h okHandlers) ClockIn(w http.ResponseWriter, r *http.Request)             { h.ok(w, r) }
func (h okHandlers) ClockOut(w http.ResponseWriter, r *http.Request)            { h.ok(w, r) }
func (h okHandlers) Apply(w http.ResponseWriter, r *http.Request)               { h.ok(w, r) }
func (h okHandlers) Review(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandlers) Balance(w http.ResponseWriter, r *http.Request)             { h.ok(w, r) }
func (h okHandlers) Calculate(w http.ResponseWriter, r *http.Request)           { h.ok(w, r) }
func (h okHandlers) Generate(w http.ResponseWriter, r *http.Request)            { h.ok(w, r) }
func (h okHandlers) DefineStructure(w http.ResponseWriter, r *http.Request)     { h.ok(w, r) }
func (h okHandlers) ListByEmployee(w http.ResponseWriter, r *http.Request)      { h.ok(w, r) }
func (h okHandlers) CreateDepartment(w http.ResponseWriter, r *http.Request)    { h.ok(w, r) }
func (h okHandlers) ListDepartments(w http.ResponseWriter, r *http.Request)     { h.ok(w, r) }
func (h okHandlers) UpdateDepartment(w http.ResponseWriter, r *http.Request)    { h.ok(w, r) }
func (h okHandlers) DeleteDepartment(w http.ResponseWriter, r *http.Request)    { h.ok(w, r) }
func (h okHandlers) CreateHoliday(w http.ResponseWriter, r *http.Request)       { h.ok(w, r) }
func (h okHandlers) ListHolidays(w http.ResponseWriter, r *http.Request)        { h.ok(w, r) }
func (h okHandlers) DeleteHoliday(w http.ResponseWriter, r *http.Request)       { h.ok(w, r) }
func (h okHandlers) CreateLeaveType(w http.ResponseWriter, r *http.Request)     { h.ok(w, r) }
func (h okHandlers) ListLeaveTypes(w http.ResponseWriter, r *http.Request)      { h.ok(w, r) }
func (h okHandlers) UpdateLeaveType(w http.ResponseWriter, r *http.Request)     { h.ok(w, r) }
func (h okHandlers) DeleteLeaveType(w http.ResponseWriter, r *http.Request)     { h.ok(w, r) }
func (h okHandlers) Assign(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandlers) ListEmployees(w http.ResponseWriter, r *http.Request)       { h.ok(w, r) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Env:         "test",
			FrontendURL: "http://localhost:5173",
		},
		Storage: config.StorageConfig{BasePath: t.TempDir()},
	}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")

	stub := okHandlers{}
	return NewRouter(cfg, jwtService, Handlers{
		Auth:        stub,
		User:        stub,
		Employee:    stub,
		Attendance:  stub,
		Leave:       stub,
		Payroll:     stub,
		Performance: stub,
		Settings:    stub,
		Shift:       stub,
	}), jwtService
}

func bearerToken(t *testing.T, jwtService jwt.Service, role user.Role) string {
	t.Helper()

	empID := "emp-1"
	token, _, err := jwtService.GenerateAccessToken("user-1", "user@example.com", &empID, role)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_RoleGates(t *testing.T) {
	router, jwtService := newTestRouter(t)

	cases := []struct {
		name   string
		method string
		path   string
		role   user.Role
		want   int
	}{
		{"employee cannot list employees", http.MethodGet, "/api/v1/employees", user.RoleEmployee, http.StatusForbidden},
		{"hr lists employees", http.MethodGet, "/api/v1/employees", user.RoleHR, http.StatusOK},
		{"employee reads one employee", http.MethodGet, "/api/v1/employees/emp-2", user.RoleEmployee, http.StatusOK},

		{"hr cannot calculate payroll", http.MethodPost, "/api/v1/payroll/calculate", user.RoleHR, http.StatusForbidden},
		{"admin calculates payroll", http.MethodPost, "/api/v1/payroll/calculate", user.RoleAdmin, http.StatusOK},
		{"hr cannot create payroll", http.MethodPost, "/api/v1/payroll", user.RoleHR, http.StatusForbidden},
		{"admin creates payroll", http.MethodPost, "/api/v1/payroll", user.RoleAdmin, http.StatusOK},
		{"hr generates payslip", http.MethodPost, "/api/v1/payroll/generate", user.RoleHR, http.StatusOK},
		{"employee cannot generate payslip", http.MethodPost, "/api/v1/payroll/generate", user.RoleEmployee, http.StatusForbidden},

		{"employee cannot approve leave", http.MethodPut, "/api/v1/leaves/leave-1/approve", user.RoleEmployee, http.StatusForbidden},
		{"hr approves leave", http.MethodPut, "/api/v1/leaves/leave-1/approve", user.RoleHR, http.StatusOK},

		{"hr cannot delete shift", http.MethodDelete, "/api/v1/shifts/shift-1", user.RoleHR, http.StatusForbidden},
		{"admin deletes shift", http.MethodDelete, "/api/v1/shifts/shift-1", user.RoleAdmin, http.StatusOK},

		{"hr cannot manage users", http.MethodGet, "/api/v1/users", user.RoleHR, http.StatusForbidden},
		{"admin lists users", http.MethodGet, "/api/v1/users", user.RoleAdmin, http.StatusOK},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(c.method, c.path, nil)
			req.Header.Set("Authorization", bearerToken(t, jwtService, c.role))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, c.want, rec.Code)
		})
	}
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
