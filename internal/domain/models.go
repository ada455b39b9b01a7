package domain

const (
	ConditionNew         = "NEW"
	ConditionUsed        = "USED"
	ConditionRefurbished = "REFURBISHED"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         int      `json:"price"`     // CLP, whole pesos
	Condition     string   `json:"condition"` // NEW | USED | REFURBISHED
	Stock         int      `json:"stock"`
	OnOffer       bool     `json:"onOffer"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	SKU           string   `json:"sku,omitempty"`
	Category      string   `json:"category,omitempty"`
	OriginalPrice int      `json:"originalPrice,omitempty"` // set only when OnOffer
}

// ImageList returns the product images, substituting a deterministic
// placeholder keyed by the product id when none were provided.
func (p Product) ImageList() []string {
	if len(p.Images) == 0 {
		return []string{"https://picsum.photos/seed/" + p.ID + "/800/600"}
	}
	return p.Images
}

type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

type Branch struct {
	ID             string `json:"id"`
	City           string `json:"city"`
	Region         string `json:"region"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	MapImage       string `json:"mapImage,omitempty"`
	IsHeadquarters bool   `json:"isHeadquarters,omitempty"`
}
