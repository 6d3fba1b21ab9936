package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/ems-backend-go/internal/domain/attendance"
	"github.com/staffhub/ems-backend-go/internal/domain/employee"
)

const testSecret = "test-secret-key-for-jwt"

func testContext(t *testing.T, role, userID string, employeeID *string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte(testSecret), nil)
	claims := map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"type":    "access",
	}
	if employeeID != nil {
		claims["employee_id"] = *employeeID
	}

	token, _, err := tokenAuth.Encode(claims)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance // keyed by employeeID + date
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func sessionKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	key := sessionKey(a.EmployeeID, a.Date)
	if _, exists := f.records[key]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.records[key] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	a, ok := f.records[sessionKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAttendanceRepo) Close(ctx context.Context, id string, clockOut string, hoursWorked float64) (attendance.Attendance, error) {
	for key, a := range f.records {
		if a.ID == id {
			a.ClockOut = &clockOut
			a.HoursWorked = hoursWorked
			f.records[key] = a
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		if filter.EmployeeID != nil && *filter.EmployeeID != a.EmployeeID {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.UserID != nil && *e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrNoEmployeeRecord
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) SetAvatarURL(ctx context.Context, id string, url string) error {
	return nil
}

func (f *fakeEmployeeRepo) AppendDocument(ctx context.Context, id string, doc employee.Document) (employee.Employee, error) {
	return f.employees[id], nil
}

func (f *fakeEmployeeRepo) AssignShift(ctx context.Context, shiftID string, employeeIDs []string) (int64, error) {
	return int64(len(employeeIDs)), nil
}

func (f *fakeEmployeeRepo) ListByShift(ctx context.Context, shiftID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func newTestService(attendanceRepo *fakeAttendanceRepo, employeeRepo *fakeEmployeeRepo, now time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(attendanceRepo, employeeRepo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestClockIn_CreatesSession(t *testing.T) {
	empID := "emp-1"
	ctx := testContext(t, "employee", "user-1", &empID)

	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), now)

	resp, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Equal(t, "09:00:00", resp.ClockIn)
	assert.Equal(t, "present", resp.Status)
	assert.Nil(t, resp.ClockOut)
}

func TestClockIn_TwicePerDayRejected(t *testing.T) {
	empID := "emp-1"
	ctx := testContext(t, "employee", "user-1", &empID)

	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), now)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	empID := "emp-1"
	ctx := testContext(t, "employee", "user-1", &empID)

	now := time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), now)

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNoClockInRecord)
}

func TestClockOut_ComputesHoursWorked(t *testing.T) {
	empID := "emp-1"
	ctx := testContext(t, "employee", "user-1", &empID)

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeEmployeeRepo(), time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC) }
	resp, err := svc.ClockOut(ctx, attendance.ClockOutRequest{})
	require.NoError(t, err)

	assert.InDelta(t, 8.5, resp.HoursWorked, 0.001)
	require.NotNil(t, resp.ClockOut)
	assert.Equal(t, "17:30:00", *resp.ClockOut)
}

func TestClockOut_TwiceRejected(t *testing.T) {
	empID := "emp-1"
	ctx := testContext(t, "employee", "user-1", &empID)

	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC) }
	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestHoursBetween_OvernightShift(t *testing.T) {
	hours, err := hoursBetween("22:00:00", "06:00:00")
	require.NoError(t, err)
	assert.InDelta(t, 8.0, hours, 0.001)
}

func TestHoursBetween_RoundsToTwoDecimals(t *testing.T) {
	hours, err := hoursBetween("09:00:00", "17:20:00")
	require.NoError(t, err)
	assert.InDelta(t, 8.33, hours, 0.001)
}

func TestList_EmployeeScopedToOwnRecords(t *testing.T) {
	empID := "emp-1"
	otherID := "emp-2"

	repo := newFakeAttendanceRepo()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(context.Background(), attendance.Attendance{ID: "a1", EmployeeID: empID, Date: day, ClockIn: "09:00:00", Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), attendance.Attendance{ID: "a2", EmployeeID: otherID, Date: day, ClockIn: "09:00:00", Status: attendance.StatusPresent})
	require.NoError(t, err)

	svc := newTestService(repo, newFakeEmployeeRepo(), time.Now().UTC())

	// An employee asking for someone else's records still gets their own.
	ctx := testContext(t, "employee", "user-1", &empID)
	records, total, err := svc.List(ctx, attendance.ListAttendanceFilter{EmployeeID: &otherID})
	require.NoError(t, err)

	assert.EqualValues(t, 1, total)
	require.Len(t, records, 1)
	assert.Equal(t, empID, records[0].EmployeeID)
}

func TestList_ReviewerSeesAll(t *testing.T) {
	repo := newFakeAttendanceRepo()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(context.Background(), attendance.Attendance{ID: "a1", EmployeeID: "emp-1", Date: day, ClockIn: "09:00:00", Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), attendance.Attendance{ID: "a2", EmployeeID: "emp-2", Date: day, ClockIn: "09:00:00", Status: attendance.StatusPresent})
	require.NoError(t, err)

	svc := newTestService(repo, newFakeEmployeeRepo(), time.Now().UTC())

	ctx := testContext(t, "hr", "user-9", nil)
	_, total, err := svc.List(ctx, attendance.ListAttendanceFilter{})
	require.NoError(t, err)

	assert.EqualValues(t, 2, total)
}
