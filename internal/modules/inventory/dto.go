package inventory

type PartPayload struct {
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	Stock     int     `json:"stock" binding:"gte=0"`
	BuyPrice  float64 `json:"buy_price" binding:"gte=0"`
	SellPrice float64 `json:"sell_price" binding:"gte=0"`
	Unit      string  `json:"unit" binding:"required"`
}

// exportRow keeps the original inventory CSV layout: the export strips the
// id and keeps the raw field names as headers.
type exportRow struct {
	Name      string  `csv:"name"`
	Category  string  `csv:"category"`
	Stock     int     `csv:"stock"`
	BuyPrice  float64 `csv:"buyPrice"`
	SellPrice float64 `csv:"sellPrice"`
	Unit      string  `csv:"unit"`
}
