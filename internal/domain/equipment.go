package domain

// Equipment is a piece of gym equipment shown on the equipment page. The
// backend exposes no equipment endpoint, so the catalog is a fixed listing.
type Equipment struct {
	Name      string
	Category  string
	Quantity  int
	Condition string
}

// EquipmentCatalog returns the gym's equipment listing.
func EquipmentCatalog() []Equipment {
	return []Equipment{
		{Name: "Treadmill", Category: "Cardio", Quantity: 8, Condition: "Good"},
		{Name: "Stationary Bike", Category: "Cardio", Quantity: 6, Condition: "Good"},
		{Name: "Rowing Machine", Category: "Cardio", Quantity: 4, Condition: "Fair"},
		{Name: "Bench Press", Category: "Strength", Quantity: 5, Condition: "Good"},
		{Name: "Squat Rack", Category: "Strength", Quantity: 4, Condition: "Good"},
		{Name: "Dumbbell Set", Category: "Free Weights", Quantity: 12, Condition: "Good"},
		{Name: "Kettlebell Set", Category: "Free Weights", Quantity: 10, Condition: "Fair"},
		{Name: "Cable Machine", Category: "Strength", Quantity: 3, Condition: "Good"},
	}
}
