package domain

// GPU is a sellable graphics card in the catalog. Prices are integer cents.
type GPU struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Memory       string `json:"memory"`
	PriceCents   int64  `json:"priceCents"`
	Stock        int    `json:"stock"`
	Image        string `json:"image"`
}
