package domain

// CartLine is one GPU inside a cart. Fields are copied from the GPU at the
// moment of addition; StockCeiling is the stock level seen then and caps the
// quantity for subsequent increments.
type CartLine struct {
	GPUID        string `json:"gpuId"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Memory       string `json:"memory"`
	PriceCents   int64  `json:"priceCents"`
	Image        string `json:"image"`
	StockCeiling int    `json:"stockCeiling"`
	Quantity     int    `json:"quantity"`
}

type Cart struct {
	SessionID  string     `json:"sessionId"`
	Lines      []CartLine `json:"lineItems"`
	TotalCents int64      `json:"totalCents"`
}
