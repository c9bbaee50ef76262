package auth

import "github.com/gymkit/dashboard/internal/domain"

// allowedPages is the role→capability table. Navigation targets outside a
// role's set are silently ignored by the router.
var allowedPages = map[domain.Role][]domain.PageID{
	domain.RoleAdmin: {
		domain.PageDashboard,
		domain.PageMembers,
		domain.PageTrainers,
		domain.PageEquipment,
		domain.PagePlans,
	},
	domain.RoleMember: {
		domain.PageDashboard,
		domain.PagePayment,
		domain.PageEquipment,
		domain.PagePlans,
	},
	domain.RoleTrainer: {
		domain.PageDashboard,
		domain.PageSalary,
		domain.PageEquipment,
		domain.PagePlans,
	},
}

// PagesFor returns the pages the role may navigate to, in navigation order.
func PagesFor(role domain.Role) []domain.PageID {
	pages := allowedPages[role]
	out := make([]domain.PageID, len(pages))
	copy(out, pages)
	return out
}

// CanView reports whether the role is permitted to view the page.
func CanView(role domain.Role, page domain.PageID) bool {
	for _, p := range allowedPages[role] {
		if p == page {
			return true
		}
	}
	return false
}
