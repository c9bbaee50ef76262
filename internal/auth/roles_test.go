package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gymkit/dashboard/internal/domain"
)

func TestPagesFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []domain.PageID{
		domain.PageDashboard, domain.PageMembers, domain.PageTrainers, domain.PageEquipment, domain.PagePlans,
	}, PagesFor(domain.RoleAdmin))
	assert.Equal(t, []domain.PageID{
		domain.PageDashboard, domain.PagePayment, domain.PageEquipment, domain.PagePlans,
	}, PagesFor(domain.RoleMember))
	assert.Equal(t, []domain.PageID{
		domain.PageDashboard, domain.PageSalary, domain.PageEquipment, domain.PagePlans,
	}, PagesFor(domain.RoleTrainer))
	assert.Empty(t, PagesFor(domain.Role("bogus")))
}

func TestCanView(t *testing.T) {
	t.Parallel()

	assert.True(t, CanView(domain.RoleAdmin, domain.PageMembers))
	assert.False(t, CanView(domain.RoleMember, domain.PageMembers))
	assert.False(t, CanView(domain.RoleMember, domain.PageSalary))
	assert.True(t, CanView(domain.RoleTrainer, domain.PageSalary))
	assert.False(t, CanView(domain.RoleAdmin, domain.PageID("nonsense")))
	assert.False(t, CanView(domain.Role(""), domain.PageDashboard))
}
