package entity

// Etiquetas de almacén conocidas. Son informativas: el stock se controla por producto, no por almacén.
const (
	WarehousePrincipal   = "Principal"
	WarehouseSecundario  = "Secundario"
	WarehouseShowroom    = "Showroom"
	WarehouseAjusteAdmin = "Ajuste Admin"
)

// KnownWarehouses devuelve las etiquetas predefinidas en orden de presentación.
func KnownWarehouses() []string {
	return []string{WarehousePrincipal, WarehouseSecundario, WarehouseShowroom, WarehouseAjusteAdmin}
}
