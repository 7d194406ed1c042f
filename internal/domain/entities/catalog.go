package entities

// Default values seeded into the unit/category registries when the backing
// store is empty. Both registries are open-ended: users add new values ad hoc.
var (
	DefaultUnits = []string{"m²", "un", "hora", "Outros"}

	DefaultCategories = []string{
		"Pintura", "Marcenaria", "Elétrica", "Hidráulica",
		"Alvenaria", "Vidraçaria", "Outros",
	}
)
