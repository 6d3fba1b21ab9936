package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/leave"
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

type fakeLeaveRepo struct {
	leaves map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	f.leaves[l.ID] = l
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	l, ok := f.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.ListLeavesFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, l := range f.leaves {
		if filter.EmployeeID != nil && *filter.EmployeeID != l.EmployeeID {
			continue
		}
		if filter.Status != nil && *filter.Status != string(l.Status) {
			continue
		}
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID && l.Status == leave.StatusApproved {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	if _, ok := f.leaves[l.ID]; !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	f.leaves[l.ID] = l
	return l, nil
}

func (f *fakeLeaveRepo) Review(ctx context.Context, id string, status leave.Status, reviewerID string, comments *string) (leave.LeaveRequest, error) {
	l, ok := f.leaves[id]
	if !ok || l.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyReviewed
	}
	now := time.Now()
	l.Status = status
	l.ReviewedBy = &reviewerID
	l.ReviewedAt = &now
	l.Comments = comments
	f.leaves[id] = l
	return l, nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.leaves[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(f.leaves, id)
	return nil
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

func seedEmployee(id string) employee.Employee {
	return employee.Employee{ID: id, EmployeeCode: "EMP-" + id, Name: "Employee " + id}
}

func approvedLeave(id, employeeID, start, end string) leave.LeaveRequest {
	startDate, _ := time.Parse("2006-01-02", start)
	endDate, _ := time.Parse("2006-01-02", end)
	return leave.LeaveRequest{
		ID:         id,
		EmployeeID: employeeID,
		LeaveType:  "casual",
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     leave.StatusApproved,
	}
}

func TestApply_FiledForCaller(t *testing.T) {
	empID := "emp-1"
	ctx := testContext(t, "employee", "user-1", &empID)

	svc := NewLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo(), nil, 20)

	resp, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		LeaveType: "sick",
		StartDate: "2024-05-01",
		EndDate:   "2024-05-03",
		Reason:    "flu",
	})
	require.NoError(t, err)

	assert.Equal(t, empID, resp.EmployeeID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, resp.Days)
}

func TestApply_RejectsReversedDates(t *testing.T) {
	empID := "emp-1"
	ctx := testContext(t, "employee", "user-1", &empID)

	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(), nil, 20)

	_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		LeaveType: "sick",
		StartDate: "2024-05-03",
		EndDate:   "2024-05-01",
		Reason:    "flu",
	})
	require.Error(t, err)
	assert.Empty(t, leaveRepo.leaves)
}

func TestGet_ForeignRecordForbidden(t *testing.T) {
	ownerID := "emp-1"
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(), nil, 20)

	ownerCtx := testContext(t, "employee", "user-1", &ownerID)
	applied, err := svc.Apply(ownerCtx, leave.ApplyLeaveRequest{
		LeaveType: "sick",
		StartDate: "2024-05-01",
		EndDate:   "2024-05-02",
		Reason:    "flu",
	})
	require.NoError(t, err)

	otherID := "emp-2"
	otherCtx := testContext(t, "employee", "user-2", &otherID)
	_, err = svc.Get(otherCtx, applied.ID)
	assert.ErrorIs(t, err, leave.ErrNotOwner)

	hrCtx := testContext(t, "hr", "user-9", nil)
	got, err := svc.Get(hrCtx, applied.ID)
	require.NoError(t, err)
	assert.Equal(t, applied.ID, got.ID)
}

func TestReview_FirstDecisionWins(t *testing.T) {
	empID := "emp-1"
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(seedEmployee(empID)), nil, 20)

	applyCtx := testContext(t, "employee", "user-1", &empID)
	applied, err := svc.Apply(applyCtx, leave.ApplyLeaveRequest{
		LeaveType: "casual",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-11",
		Reason:    "travel",
	})
	require.NoError(t, err)

	reviewCtx := testContext(t, "hr", "user-9", nil)
	reviewed, err := svc.Review(reviewCtx, leave.ReviewLeaveRequest{ID: applied.ID, Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", reviewed.Status)

	_, err = svc.Review(reviewCtx, leave.ReviewLeaveRequest{ID: applied.ID, Status: "rejected"})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyReviewed)
}

func TestUpdate_LockedAfterReview(t *testing.T) {
	empID := "emp-1"
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(seedEmployee(empID)), nil, 20)

	applyCtx := testContext(t, "employee", "user-1", &empID)
	applied, err := svc.Apply(applyCtx, leave.ApplyLeaveRequest{
		LeaveType: "casual",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-11",
		Reason:    "travel",
	})
	require.NoError(t, err)

	reviewCtx := testContext(t, "admin", "user-9", nil)
	_, err = svc.Review(reviewCtx, leave.ReviewLeaveRequest{ID: applied.ID, Status: "rejected"})
	require.NoError(t, err)

	newReason := "changed my mind"
	_, err = svc.Update(applyCtx, leave.UpdateLeaveRequest{ID: applied.ID, Reason: &newReason})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyReviewed)
}

func TestUpdate_OnlyOwnerMayEdit(t *testing.T) {
	owner := "emp-1"
	intruder := "emp-2"
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(seedEmployee(owner), seedEmployee(intruder)), nil, 20)

	ownerCtx := testContext(t, "employee", "user-1", &owner)
	applied, err := svc.Apply(ownerCtx, leave.ApplyLeaveRequest{
		LeaveType: "casual",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-11",
		Reason:    "travel",
	})
	require.NoError(t, err)

	newReason := "not yours"
	intruderCtx := testContext(t, "employee", "user-2", &intruder)
	_, err = svc.Update(intruderCtx, leave.UpdateLeaveRequest{ID: applied.ID, Reason: &newReason})
	assert.ErrorIs(t, err, leave.ErrNotOwner)
}

func TestList_EmployeeScopedToOwnRequests(t *testing.T) {
	mine := "emp-1"
	other := "emp-2"
	leaveRepo := newFakeLeaveRepo()
	leaveRepo.leaves["l1"] = approvedLeave("l1", mine, "2024-01-10", "2024-01-11")
	leaveRepo.leaves["l2"] = approvedLeave("l2", other, "2024-01-10", "2024-01-11")

	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(), nil, 20)

	ctx := testContext(t, "employee", "user-1", &mine)
	leaves, total, err := svc.List(ctx, leave.ListLeavesFilter{EmployeeID: &other})
	require.NoError(t, err)

	assert.EqualValues(t, 1, total)
	require.Len(t, leaves, 1)
	assert.Equal(t, mine, leaves[0].EmployeeID)
}

func TestBalance_InclusiveDaysAndPool(t *testing.T) {
	empID := "emp-1"
	leaveRepo := newFakeLeaveRepo()
	// 3 days + 1 day = 4 days taken.
	leaveRepo.leaves["l1"] = approvedLeave("l1", empID, "2024-02-05", "2024-02-07")
	leaveRepo.leaves["l2"] = approvedLeave("l2", empID, "2024-03-01", "2024-03-01")
	// Pending requests do not draw from the pool.
	pending := approvedLeave("l3", empID, "2024-04-01", "2024-04-10")
	pending.Status = leave.StatusPending
	leaveRepo.leaves["l3"] = pending

	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(seedEmployee(empID)), nil, 20)

	ctx := testContext(t, "hr", "user-9", nil)
	balance, err := svc.Balance(ctx, empID)
	require.NoError(t, err)

	assert.Equal(t, 2, balance.TotalLeaves)
	assert.Equal(t, 4, balance.TotalDaysTaken)
	assert.Equal(t, 16, balance.Balance)
	assert.Equal(t, 20, balance.DefaultBalance)
}

func TestBalance_NeverNegative(t *testing.T) {
	empID := "emp-1"
	leaveRepo := newFakeLeaveRepo()
	leaveRepo.leaves["l1"] = approvedLeave("l1", empID, "2024-01-01", "2024-01-31")

	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(seedEmployee(empID)), nil, 20)

	ctx := testContext(t, "hr", "user-9", nil)
	balance, err := svc.Balance(ctx, empID)
	require.NoError(t, err)

	assert.Equal(t, 31, balance.TotalDaysTaken)
	assert.Equal(t, 0, balance.Balance)
}
