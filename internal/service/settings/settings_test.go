package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/ems-backend-go/internal/domain/settings"
)

type fakeSettingsRepo struct {
	departments map[string]settings.Department
	holidays    map[string]settings.Holiday
	leaveTypes  map[string]settings.LeaveType
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{
		departments: make(map[string]settings.Department),
		holidays:    make(map[string]settings.Holiday),
		leaveTypes:  make(map[string]settings.LeaveType),
	}
}

func (f *fakeSettingsRepo) CreateDepartment(ctx context.Context, dept *settings.Department) error {
	for _, d := range f.departments {
		if d.Name == dept.Name {
			return settings.ErrDepartmentExists
		}
	}
	dept.CreatedAt = time.Now()
	dept.UpdatedAt = dept.CreatedAt
	f.departments[dept.ID] = *dept
	return nil
}

func (f *fakeSettingsRepo) ListDepartments(ctx context.Context) ([]settings.Department, error) {
	var out []settings.Department
	for _, d := range f.departments {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeSettingsRepo) GetDepartmentByID(ctx context.Context, id string) (*settings.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, settings.ErrDepartmentNotFound
	}
	return &d, nil
}

func (f *fakeSettingsRepo) UpdateDepartment(ctx context.Context, dept *settings.Department) error {
	if _, ok := f.departments[dept.ID]; !ok {
		return settings.ErrDepartmentNotFound
	}
	dept.UpdatedAt = time.Now()
	f.departments[dept.ID] = *dept
	return nil
}

func (f *fakeSettingsRepo) DeleteDepartment(ctx context.Context, id string) error {
	if _, ok := f.departments[id]; !ok {
		return settings.ErrDepartmentNotFound
	}
	delete(f.departments, id)
	return nil
}

func (f *fakeSettingsRepo) CreateHoliday(ctx context.Context, holiday *settings.Holiday) error {
	holiday.CreatedAt = time.Now()
	holiday.UpdatedAt = holiday.CreatedAt
	f.holidays[holiday.ID] = *holiday
	return nil
}

func (f *fakeSettingsRepo) ListHolidays(ctx context.Context, filter *settings.ListHolidaysFilter) ([]settings.Holiday, error) {
	var out []settings.Holiday
	for _, h := range f.holidays {
		if filter.Year > 0 && h.Date.Year() != filter.Year {
			continue
		}
		if filter.Type != "" && string(h.Type) != filter.Type {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeSettingsRepo) DeleteHoliday(ctx context.Context, id string) error {
	if _, ok := f.holidays[id]; !ok {
		return settings.ErrHolidayNotFound
	}
	delete(f.holidays, id)
	return nil
}

func (f *fakeSettingsRepo) CreateLeaveType(ctx context.Context, lt *settings.LeaveType) error {
	for _, existing := range f.leaveTypes {
		if existing.Name == lt.Name {
			return settings.ErrLeaveTypeExists
		}
	}
	lt.CreatedAt = time.Now()
	lt.UpdatedAt = lt.CreatedAt
	f.leaveTypes[lt.ID] = *lt
	return nil
}

func (f *fakeSettingsRepo) ListLeaveTypes(ctx context.Context) ([]settings.LeaveType, error) {
	var out []settings.LeaveType
	for _, lt := range f.leaveTypes {
		out = append(out, lt)
	}
	return out, nil
}

func (f *fakeSettingsRepo) GetLeaveTypeByID(ctx context.Context, id string) (*settings.LeaveType, error) {
	lt, ok := f.leaveTypes[id]
	if !ok {
		return nil, settings.ErrLeaveTypeNotFound
	}
	return &lt, nil
}

func (f *fakeSettingsRepo) UpdateLeaveType(ctx context.Context, lt *settings.LeaveType) error {
	if _, ok := f.leaveTypes[lt.ID]; !ok {
		return settings.ErrLeaveTypeNotFound
	}
	lt.UpdatedAt = time.Now()
	f.leaveTypes[lt.ID] = *lt
	return nil
}

func (f *fakeSettingsRepo) DeleteLeaveType(ctx context.Context, id string) error {
	if _, ok := f.leaveTypes[id]; !ok {
		return settings.ErrLeaveTypeNotFound
	}
	delete(f.leaveTypes, id)
	return nil
}

func TestCreateDepartment_DuplicateName(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())
	ctx := context.Background()

	_, err := svc.CreateDepartment(ctx, &settings.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)

	_, err = svc.CreateDepartment(ctx, &settings.CreateDepartmentRequest{Name: "Engineering"})
	assert.ErrorIs(t, err, settings.ErrDepartmentExists)
}

func TestUpdateLeaveType_PartialUpdate(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())
	ctx := context.Background()

	created, err := svc.CreateLeaveType(ctx, &settings.CreateLeaveTypeRequest{
		Name: "Casual", Days: 12, CarryForward: false,
	})
	require.NoError(t, err)

	days := 15
	updated, err := svc.UpdateLeaveType(ctx, created.ID, &settings.UpdateLeaveTypeRequest{Days: &days})
	require.NoError(t, err)

	assert.Equal(t, "Casual", updated.Name)
	assert.Equal(t, 15, updated.Days)
	assert.False(t, updated.CarryForward)
}

func TestUpdateLeaveType_NotFound(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	days := 10
	_, err := svc.UpdateLeaveType(context.Background(), "missing", &settings.UpdateLeaveTypeRequest{Days: &days})
	assert.ErrorIs(t, err, settings.ErrLeaveTypeNotFound)
}

func TestUpdateLeaveType_RejectsNegativeDays(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	days := -1
	_, err := svc.UpdateLeaveType(context.Background(), "any", &settings.UpdateLeaveTypeRequest{Days: &days})
	assert.Error(t, err)
}

func TestCreateHoliday_RejectsUnknownType(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	_, err := svc.CreateHoliday(context.Background(), &settings.CreateHolidayRequest{
		Name: "Founders Day", Date: "2024-03-01", Type: "Galactic",
	})
	assert.Error(t, err)
}

func TestListHolidays_FiltersByYear(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())
	ctx := context.Background()

	_, err := svc.CreateHoliday(ctx, &settings.CreateHolidayRequest{Name: "New Year", Date: "2024-01-01", Type: "National"})
	require.NoError(t, err)
	_, err = svc.CreateHoliday(ctx, &settings.CreateHolidayRequest{Name: "New Year", Date: "2025-01-01", Type: "National"})
	require.NoError(t, err)

	holidays, err := svc.ListHolidays(ctx, &settings.ListHolidaysFilter{Year: 2024})
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "2024-01-01", holidays[0].Date)
}