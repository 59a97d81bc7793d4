package domain

type ProductFilter struct {
	CategoryID *int64
}
