package performance

import "time"

type Review struct {
	ID               string
	EmployeeID       string
	Period           string // review period label, e.g. "2024-Q1"
	Rating           float64
	Goals            []string
	Feedback         string
	Strengths        []string
	ImprovementAreas []string
	ReviewerID       string
	ReviewDate       time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
	ReviewerName *string
}
