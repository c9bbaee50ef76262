package dto

import (
	"github.com/gymkit/dashboard/internal/domain"
)

// LoginRequest payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returned by the auth endpoint on success.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
	Role  string      `json:"role"`
}

// ErrorResponse is the structured error body the backend returns on failure.
type ErrorResponse struct {
	Message string `json:"message"`
}

// UserPayload is the wire form of the authenticated user record.
type UserPayload struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	Name            string   `json:"name"`
	JoinDate        string   `json:"joinDate"`
	Attendance      []string `json:"attendance"`
	Plan            string   `json:"plan"`
	PaymentStatus   string   `json:"paymentStatus"`
	TrainerID       string   `json:"assignedTrainer"`
	Specialization  string   `json:"specialization"`
	ExperienceYears int      `json:"experienceYears"`
	SalaryStatus    string   `json:"salaryStatus"`
}

// ToDomain converts the payload into a domain identity, normalizing dates to
// date-only values.
func (p UserPayload) ToDomain() domain.Identity {
	return domain.Identity{
		ID:              p.ID,
		Username:        p.Username,
		Name:            p.Name,
		JoinDate:        parseDate(p.JoinDate),
		Attendance:      parseDates(p.Attendance),
		Plan:            domain.Plan(p.Plan),
		PaymentStatus:   domain.PaymentStatus(p.PaymentStatus),
		TrainerID:       p.TrainerID,
		Specialization:  p.Specialization,
		ExperienceYears: p.ExperienceYears,
		SalaryStatus:    domain.PaymentStatus(p.SalaryStatus),
	}
}
