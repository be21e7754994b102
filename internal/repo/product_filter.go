package repo

// ProductFilter narrows a product listing. Category matches exactly;
// Search is a case-insensitive substring match over name or SKU.
type ProductFilter struct {
	Category string
	Search   string
}
