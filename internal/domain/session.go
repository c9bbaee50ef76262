package domain

import "time"

// Identity is the user record returned by the auth endpoint. Role-specific
// fields are zero-valued when they do not apply.
type Identity struct {
	ID              string        `json:"id"`
	Username        string        `json:"username"`
	Name            string        `json:"name"`
	JoinDate        time.Time     `json:"join_date"`
	Attendance      []time.Time   `json:"attendance,omitempty"`
	Plan            Plan          `json:"plan,omitempty"`
	PaymentStatus   PaymentStatus `json:"payment_status,omitempty"`
	TrainerID       string        `json:"trainer_id,omitempty"`
	Specialization  string        `json:"specialization,omitempty"`
	ExperienceYears int           `json:"experience_years,omitempty"`
	SalaryStatus    PaymentStatus `json:"salary_status,omitempty"`
}

// Session is the authenticated identity, role, and token for this process.
// Role and identity are always set together; a partially populated session
// never exists.
type Session struct {
	Token string
	User  Identity
	Role  Role
}
