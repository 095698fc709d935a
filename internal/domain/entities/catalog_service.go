package entities

// CatalogService is a reusable flat-rate service definition. Lines copy its
// label and price at creation time; later catalog edits do not touch them.
type CatalogService struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	LaborPrice int64  `json:"labor_price"`
	PartsPrice int64  `json:"parts_price"`
	Active     bool   `json:"active"`
}

func (c CatalogService) UnitPrice() int64 {
	return c.LaborPrice + c.PartsPrice
}
