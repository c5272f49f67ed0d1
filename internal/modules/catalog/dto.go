package catalog

type CreateHotelRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Tel     string `json:"tel"`
	Picture string `json:"picture"`
}

type UpdateHotelRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Tel     *string `json:"tel"`
	Picture *string `json:"picture"`
}

type CreateRoomRequest struct {
	Type   string  `json:"type"`
	Number int     `json:"number" binding:"required"`
	Price  float64 `json:"price" binding:"required"`
}

type UpdateRoomRequest struct {
	Type   *string  `json:"type"`
	Number *int     `json:"number"`
	Price  *float64 `json:"price"`
}
