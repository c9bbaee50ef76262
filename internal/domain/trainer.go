package domain

import "time"

// Trainer is the domain model for a gym trainer.
type Trainer struct {
	ID              string
	Name            string
	Username        string
	Specialization  string
	ExperienceYears int
	MemberIDs       []string // weak references to assigned members
	JoinDate        time.Time
	Attendance      []time.Time // date-only values
	SalaryStatus    PaymentStatus
	Status          EntityStatus
}
