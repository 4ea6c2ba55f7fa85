package supplier

type SupplierPayload struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Address string `json:"address" binding:"required"`
	Status  string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type PurchasePayload struct {
	PartID   int64   `json:"part_id" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	BuyPrice float64 `json:"buy_price" binding:"gte=0"`
	Date     string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type exportRow struct {
	ID      int64  `csv:"ID"`
	Name    string `csv:"Nama"`
	Contact string `csv:"Kontak"`
	Address string `csv:"Alamat"`
	Status  string `csv:"Status"`
}
