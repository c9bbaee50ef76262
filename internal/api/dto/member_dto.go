package dto

import (
	"time"

	"github.com/gymkit/dashboard/internal/domain"
)

// dateLayout is the normalized date-only form used for comparisons; backend
// values may carry a time component which is dropped.
const dateLayout = "2006-01-02"

// MemberPayload is the wire form of a member record.
type MemberPayload struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Plan          string   `json:"plan"`
	TrainerID     string   `json:"assignedTrainer"`
	JoinDate      string   `json:"joinDate"`
	Attendance    []string `json:"attendance"`
	PaymentStatus string   `json:"paymentStatus"`
	Status        string   `json:"status"`
}

// MemberRequest is the body for creating or updating a member. Password is
// only sent at creation; username never changes after creation.
type MemberRequest struct {
	Name          string `json:"name"`
	Username      string `json:"username,omitempty"`
	Password      string `json:"password,omitempty"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Plan          string `json:"plan"`
	TrainerID     string `json:"assignedTrainer"`
	PaymentStatus string `json:"paymentStatus"`
	Status        string `json:"status"`
}

// ToDomain converts the payload into a domain member.
func (p MemberPayload) ToDomain() domain.Member {
	return domain.Member{
		ID:            p.ID,
		Name:          p.Name,
		Username:      p.Username,
		Email:         p.Email,
		Phone:         p.Phone,
		Plan:          domain.Plan(p.Plan),
		TrainerID:     p.TrainerID,
		JoinDate:      parseDate(p.JoinDate),
		Attendance:    parseDates(p.Attendance),
		PaymentStatus: domain.PaymentStatus(p.PaymentStatus),
		Status:        domain.EntityStatus(p.Status),
	}
}

// MembersToDomain converts a fetched collection.
func MembersToDomain(payloads []MemberPayload) []domain.Member {
	members := make([]domain.Member, 0, len(payloads))
	for _, p := range payloads {
		members = append(members, p.ToDomain())
	}
	return members
}

func parseDate(s string) time.Time {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseDates(values []string) []time.Time {
	if len(values) == 0 {
		return nil
	}
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		if d := parseDate(v); !d.IsZero() {
			dates = append(dates, d)
		}
	}
	return dates
}
