package settings

import "time"

type Department struct {
	ID        string
	Name      string
	Head      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type HolidayType string

const (
	HolidayNational HolidayType = "National"
	HolidayRegional HolidayType = "Regional"
	HolidayCompany  HolidayType = "Company"
)

var ValidHolidayTypes = []HolidayType{HolidayNational, HolidayRegional, HolidayCompany}

func IsValidHolidayType(t string) bool {
	for _, v := range ValidHolidayTypes {
		if string(v) == t {
			return true
		}
	}
	return false
}

type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	Type      HolidayType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LeaveType struct {
	ID           string
	Name         string
	Days         int
	CarryForward bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
