package models

import "time"

type Subscription struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Type          string    `json:"type"`
	SessionsTotal int       `json:"sessionsTotal"`
	SessionsUsed  int       `json:"sessionsUsed"`
	Discount      float64   `json:"discount"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	IsActive      bool      `json:"isActive"`
	Price         float64   `json:"price"`
}
