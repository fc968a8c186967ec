package entity

import "time"

// Categorías válidas para Product.
const (
	CategoryClothing  = "clothing"
	CategoryEquipment = "equipment"
)

// Product representa un artículo rentable del inventario.
// Los tres contadores particionan el total: quantity = available + rented + tomado informal.
// El invariante quantity == available_quantity + rented_quantity se verifica en
// cada escritura; lo "tomado" (checkout informal) es la diferencia y nunca se persiste.
type Product struct {
	ID                string
	Name              string  // único a nivel global
	Category          string  // clothing | equipment
	Gender            *string // male | female | nil
	Type              string  // ej. "alpine", "jacket"
	Quantity          int     // total en propiedad
	AvailableQuantity int     // en estante
	RentedQuantity    int     // fuera en renta formal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TakenOut devuelve las unidades tomadas informalmente (derivado, no almacenado).
func (p *Product) TakenOut() int {
	return p.Quantity - p.AvailableQuantity - p.RentedQuantity
}

// QuantityInvariantHolds verifica quantity == available + rented.
func (p *Product) QuantityInvariantHolds() bool {
	return p.Quantity == p.AvailableQuantity+p.RentedQuantity
}

// ValidCategory verifica que la categoría pertenezca al conjunto cerrado.
func ValidCategory(c string) bool {
	return c == CategoryClothing || c == CategoryEquipment
}
