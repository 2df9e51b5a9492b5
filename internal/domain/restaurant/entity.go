package restaurant

// Restaurant representa um restaurante vinculado a uma cooperativa
type Restaurant struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CooperativeID int64  `json:"cooperative_id"` // Zero quando o restaurante não pertence a nenhuma cooperativa
}
