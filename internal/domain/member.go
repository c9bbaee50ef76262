package domain

import "time"

// Member is the domain model for a gym member.
type Member struct {
	ID            string
	Name          string
	Username      string
	Email         string
	Phone         string
	Plan          Plan
	TrainerID     string // weak reference, resolved by lookup
	JoinDate      time.Time
	Attendance    []time.Time // date-only values
	PaymentStatus PaymentStatus
	Status        EntityStatus
}
