package dto

import "github.com/gymkit/dashboard/internal/domain"

// TrainerPayload is the wire form of a trainer record.
type TrainerPayload struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Username        string   `json:"username"`
	Specialization  string   `json:"specialization"`
	ExperienceYears int      `json:"experienceYears"`
	MemberIDs       []string `json:"assignedMembers"`
	JoinDate        string   `json:"joinDate"`
	Attendance      []string `json:"attendance"`
	SalaryStatus    string   `json:"salaryStatus"`
	Status          string   `json:"status"`
}

// TrainerRequest is the body for creating or updating a trainer.
type TrainerRequest struct {
	Name            string `json:"name"`
	Username        string `json:"username,omitempty"`
	Password        string `json:"password,omitempty"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experienceYears"`
	SalaryStatus    string `json:"salaryStatus"`
	Status          string `json:"status"`
}

// ToDomain converts the payload into a domain trainer.
func (p TrainerPayload) ToDomain() domain.Trainer {
	return domain.Trainer{
		ID:              p.ID,
		Name:            p.Name,
		Username:        p.Username,
		Specialization:  p.Specialization,
		ExperienceYears: p.ExperienceYears,
		MemberIDs:       p.MemberIDs,
		JoinDate:        parseDate(p.JoinDate),
		Attendance:      parseDates(p.Attendance),
		SalaryStatus:    domain.PaymentStatus(p.SalaryStatus),
		Status:          domain.EntityStatus(p.Status),
	}
}

// TrainersToDomain converts a fetched collection.
func TrainersToDomain(payloads []TrainerPayload) []domain.Trainer {
	trainers := make([]domain.Trainer, 0, len(payloads))
	for _, p := range payloads {
		trainers = append(trainers, p.ToDomain())
	}
	return trainers
}
