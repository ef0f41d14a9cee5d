package domain

import "time"

// userIDDateLayout renders dates as ddmmyyyy.
const userIDDateLayout = "02012006"

// Identity holds the static fields attached to every classification response.
type Identity struct {
	FullName   string `yaml:"full_name"`
	BirthDate  string `yaml:"birth_date"` // ddmmyyyy; empty stamps the request date
	Email      string `yaml:"email"`
	RollNumber string `yaml:"roll_number"`
}

// UserID returns "<full_name>_<ddmmyyyy>".
func (i Identity) UserID(now time.Time) string {
	date := i.BirthDate
	if date == "" {
		date = now.Format(userIDDateLayout)
	}
	return i.FullName + "_" + date
}
