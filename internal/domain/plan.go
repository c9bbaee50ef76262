package domain

// Plan is a membership tier.
type Plan string

const (
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
	PlanVIP     Plan = "vip"
)

// planPrices maps each tier to its monthly price.
var planPrices = map[Plan]int{
	PlanBasic:   10000,
	PlanPremium: 18000,
	PlanVIP:     25000,
}

// Price returns the monthly price for the plan. Unknown plans price at zero
// rather than erroring, so a bad backend value never breaks aggregation.
func (p Plan) Price() int {
	return planPrices[p]
}

// Plans lists the known tiers in ascending price order.
func Plans() []Plan {
	return []Plan{PlanBasic, PlanPremium, PlanVIP}
}

// PaymentStatus marks whether a member's fee or a trainer's salary is settled.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "Paid"
	PaymentUnpaid PaymentStatus = "Unpaid"
)

// EntityStatus represents lifecycle states for members and trainers.
type EntityStatus string

const (
	StatusActive   EntityStatus = "active"
	StatusInactive EntityStatus = "inactive"
)
