package domain

// Role gates navigation and view content for the signed-in user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleMember  Role = "member"
	RoleTrainer Role = "trainer"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleTrainer:
		return true
	}
	return false
}

// PageID identifies a navigable page of the dashboard.
type PageID string

const (
	PageDashboard PageID = "dashboard"
	PageMembers   PageID = "members"
	PageTrainers  PageID = "trainers"
	PagePayment   PageID = "payment"
	PageSalary    PageID = "salary"
	PageEquipment PageID = "equipment"
	PagePlans     PageID = "plans"
)
