package dto

// WarehouseResponse etiqueta de almacén y su uso en el libro.
type WarehouseResponse struct {
	Name      string `json:"name"`
	Known     bool   `json:"known"`     // predefinida
	Movements int    `json:"movements"` // movimientos que la usan
}

// WarehouseListResponse etiquetas conocidas seguidas de las que solo aparecen en el libro.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
