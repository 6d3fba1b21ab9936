package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day counts as one", date(2024, time.March, 5), date(2024, time.March, 5), 1},
		{"two consecutive days", date(2024, time.March, 5), date(2024, time.March, 6), 2},
		{"full week", date(2024, time.March, 4), date(2024, time.March, 10), 7},
		{"across month boundary", date(2024, time.January, 30), date(2024, time.February, 2), 4},
		{"across leap day", date(2024, time.February, 28), date(2024, time.March, 1), 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DaysInclusive(c.start, c.end); got != c.want {
				t.Errorf("DaysInclusive(%s, %s) = %d, want %d",
					c.start.Format("2006-01-02"), c.end.Format("2006-01-02"), got, c.want)
			}
		})
	}
}

func TestIsReviewed(t *testing.T) {
	l := LeaveRequest{Status: StatusPending}
	if l.IsReviewed() {
		t.Error("pending request reported as reviewed")
	}
	l.Status = StatusApproved
	if !l.IsReviewed() {
		t.Error("approved request not reported as reviewed")
	}
	l.Status = StatusRejected
	if !l.IsReviewed() {
		t.Error("rejected request not reported as reviewed")
	}
}
