package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/gymkit/dashboard/internal/auth"
	"github.com/gymkit/dashboard/internal/cache"
	"github.com/gymkit/dashboard/internal/domain"
)

// RenderPage turns session and cache state into the view model for a page.
// Renderers are pure: now is injected so output is reproducible.
func RenderPage(page domain.PageID, sess domain.Session, snap cache.Snapshot, now time.Time) Page {
	switch page {
	case domain.PageDashboard:
		return renderDashboard(sess, snap, now)
	case domain.PageMembers:
		return renderMembersTable(snap)
	case domain.PageTrainers:
		return renderTrainersTable(snap)
	case domain.PagePayment:
		return renderPayment(sess)
	case domain.PageSalary:
		return renderSalary(sess, snap)
	case domain.PageEquipment:
		return renderEquipment(sess)
	case domain.PagePlans:
		return renderPlans(sess)
	}
	return Page{ID: page, Role: sess.Role}
}

// RenderFrame builds the chrome: welcome banner and role-filtered navigation
// with the single active link marked.
func RenderFrame(sess *domain.Session, active domain.PageID) Frame {
	if sess == nil {
		return Frame{LoggedIn: false}
	}
	pages := auth.PagesFor(sess.Role)
	nav := make([]NavLink, 0, len(pages))
	for _, p := range pages {
		nav = append(nav, NavLink{
			Page:   p,
			Label:  navLabel(p),
			Active: p == active,
		})
	}
	return Frame{
		LoggedIn: true,
		Welcome:  fmt.Sprintf("Welcome, %s", displayName(sess.User)),
		Nav:      nav,
	}
}

func renderDashboard(sess domain.Session, snap cache.Snapshot, now time.Time) Page {
	p := Page{ID: domain.PageDashboard, Title: "Dashboard", Role: sess.Role}
	if sess.Role == domain.RoleAdmin {
		p.Admin = &AdminHome{
			TotalMembers:   len(snap.Members),
			TotalTrainers:  len(snap.Trainers),
			ActiveTrainers: snap.ActiveTrainerCount(),
			PaidMembers:    len(snap.PaidMembers()),
			Revenue:        snap.Revenue(),
		}
		return p
	}

	home := &PersonalHome{
		Welcome:     fmt.Sprintf("%s's Dashboard", displayName(sess.User)),
		MemberSince: ElapsedSince(sess.User.JoinDate, now),
		Calendar:    BuildMonthGrid(now.Year(), now.Month(), sess.User.Attendance),
	}
	switch sess.Role {
	case domain.RoleMember:
		home.Plan = string(sess.User.Plan)
		home.PaymentStatus = string(sess.User.PaymentStatus)
		home.TrainerName = snap.TrainerName(sess.User.TrainerID)
	case domain.RoleTrainer:
		home.SalaryStatus = string(sess.User.SalaryStatus)
		for _, m := range snap.MembersOfTrainer(sess.User.ID) {
			home.Roster = append(home.Roster, Roster{ID: m.ID, Name: m.Name, Plan: string(m.Plan)})
		}
	}
	p.Mine = home
	return p
}

func renderMembersTable(snap cache.Snapshot) Page {
	table := &Table{
		Columns: []string{"Name", "Username", "Phone", "Plan", "Trainer", "Payment", "Status"},
	}
	for _, m := range snap.Members {
		table.Rows = append(table.Rows, Row{
			ID: m.ID,
			Cells: []string{
				m.Name,
				m.Username,
				m.Phone,
				string(m.Plan),
				snap.TrainerName(m.TrainerID),
				string(m.PaymentStatus),
				string(m.Status),
			},
			Status: string(m.Status),
			Actions: []Action{
				{Kind: ActionEdit, EntityID: m.ID},
				{Kind: ActionDelete, EntityID: m.ID},
			},
		})
	}
	return Page{ID: domain.PageMembers, Title: "Members", Role: domain.RoleAdmin, Table: table}
}

func renderTrainersTable(snap cache.Snapshot) Page {
	table := &Table{
		Columns: []string{"Name", "Username", "Specialization", "Experience", "Assigned", "Salary", "Status"},
	}
	for _, t := range snap.Trainers {
		table.Rows = append(table.Rows, Row{
			ID: t.ID,
			Cells: []string{
				t.Name,
				t.Username,
				t.Specialization,
				fmt.Sprintf("%d yrs", t.ExperienceYears),
				fmt.Sprintf("%d", len(snap.MembersOfTrainer(t.ID))),
				string(t.SalaryStatus),
				string(t.Status),
			},
			Status: string(t.Status),
			Actions: []Action{
				{Kind: ActionEdit, EntityID: t.ID},
				{Kind: ActionDelete, EntityID: t.ID},
			},
		})
	}
	return Page{ID: domain.PageTrainers, Title: "Trainers", Role: domain.RoleAdmin, Table: table}
}

func renderPayment(sess domain.Session) Page {
	return Page{
		ID:    domain.PagePayment,
		Title: "Payment",
		Role:  sess.Role,
		Payment: &Payment{
			Plan:      string(sess.User.Plan),
			PlanPrice: sess.User.Plan.Price(),
			Status:    string(sess.User.PaymentStatus),
		},
	}
}

func renderSalary(sess domain.Session, snap cache.Snapshot) Page {
	return Page{
		ID:    domain.PageSalary,
		Title: "Salary",
		Role:  sess.Role,
		Salary: &Salary{
			Status:          string(sess.User.SalaryStatus),
			ExperienceYears: sess.User.ExperienceYears,
			AssignedMembers: len(snap.MembersOfTrainer(sess.User.ID)),
		},
	}
}

func renderEquipment(sess domain.Session) Page {
	return Page{
		ID:        domain.PageEquipment,
		Title:     "Equipment",
		Role:      sess.Role,
		Equipment: &Equipment{Items: domain.EquipmentCatalog()},
	}
}

func renderPlans(sess domain.Session) Page {
	plans := &Plans{}
	for _, plan := range domain.Plans() {
		plans.Entries = append(plans.Entries, PlanEntry{
			Name:    string(plan),
			Price:   plan.Price(),
			Current: sess.Role == domain.RoleMember && sess.User.Plan == plan,
		})
	}
	return Page{ID: domain.PagePlans, Title: "Plans", Role: sess.Role, Plans: plans}
}

func displayName(user domain.Identity) string {
	if user.Name != "" {
		return user.Name
	}
	return user.Username
}

func navLabel(page domain.PageID) string {
	s := string(page)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
