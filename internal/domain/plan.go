package domain

import "time"

// Plan is reference data. The application never creates or mutates plans;
// selecting one produces no record until checkout.
type Plan struct {
	ID        string
	Name      string
	Price     float64
	Period    string
	Features  []string
	IsPopular bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
