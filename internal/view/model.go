package view

import "github.com/gymkit/dashboard/internal/domain"

// Page is the structured view model for one rendered page. Exactly one of the
// content fields is set, matching the page ID. The presentation layer decides
// how to display it; nothing here depends on a particular UI toolkit.
type Page struct {
	ID    domain.PageID  `json:"id"`
	Title string         `json:"title"`
	Role  domain.Role    `json:"role"`
	Admin *AdminHome     `json:"admin,omitempty"`
	Mine  *PersonalHome  `json:"mine,omitempty"`
	Table *Table         `json:"table,omitempty"`
	Payment   *Payment   `json:"payment,omitempty"`
	Salary    *Salary    `json:"salary,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
	Plans     *Plans     `json:"plans,omitempty"`
}

// AdminHome is the admin dashboard: aggregate counts and revenue.
type AdminHome struct {
	TotalMembers   int `json:"total_members"`
	TotalTrainers  int `json:"total_trainers"`
	ActiveTrainers int `json:"active_trainers"`
	PaidMembers    int `json:"paid_members"`
	Revenue        int `json:"revenue"`
}

// PersonalHome is the member or trainer dashboard: own attendance and status.
type PersonalHome struct {
	Welcome     string    `json:"welcome"`
	MemberSince Elapsed   `json:"member_since"`
	Calendar    MonthGrid `json:"calendar"`
	// member-only
	Plan          string `json:"plan,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	TrainerName   string `json:"trainer_name,omitempty"`
	// trainer-only
	SalaryStatus string   `json:"salary_status,omitempty"`
	Roster       []Roster `json:"roster,omitempty"`
}

// Roster is one assigned member on the trainer dashboard.
type Roster struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Plan string `json:"plan"`
}

// ActionKind distinguishes row action triggers bound by form controllers.
type ActionKind string

const (
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
)

// Action is a row-level trigger the presentation layer binds to a controller.
type Action struct {
	Kind     ActionKind `json:"kind"`
	EntityID string     `json:"entity_id"`
}

// Row is one entity row of an admin table.
type Row struct {
	ID      string   `json:"id"`
	Cells   []string `json:"cells"`
	Status  string   `json:"status"`
	Actions []Action `json:"actions"`
}

// Table is an admin data table (members or trainers).
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Payment is the member's own payment page.
type Payment struct {
	Plan      string `json:"plan"`
	PlanPrice int    `json:"plan_price"`
	Status    string `json:"status"`
}

// Salary is the trainer's own salary page.
type Salary struct {
	Status          string `json:"status"`
	ExperienceYears int    `json:"experience_years"`
	AssignedMembers int    `json:"assigned_members"`
}

// Equipment is the static equipment listing page.
type Equipment struct {
	Items []domain.Equipment `json:"items"`
}

// PlanEntry is one membership tier on the plans page.
type PlanEntry struct {
	Name    string `json:"name"`
	Price   int    `json:"price"`
	Current bool   `json:"current"`
}

// Plans is the membership plan catalog page.
type Plans struct {
	Entries []PlanEntry `json:"entries"`
}

// NavLink is one navigation entry of the page frame.
type NavLink struct {
	Page   domain.PageID `json:"page"`
	Label  string        `json:"label"`
	Active bool          `json:"active"`
}

// Frame is the chrome around pages: welcome banner and role-filtered nav.
// Exactly one link is active at a time.
type Frame struct {
	LoggedIn bool      `json:"logged_in"`
	Welcome  string    `json:"welcome,omitempty"`
	Nav      []NavLink `json:"nav,omitempty"`
}
