package workorder

// StockDisponible normaliza el par de campos aliasados stock/cantidad de un
// repuesto: stock si está poblado, si no cantidad, si no 0. Es el único punto
// de lectura del stock; las escrituras fijan ambos campos con el mismo valor.
func StockDisponible(stock, cantidad *int) int {
	if stock != nil {
		return *stock
	}
	if cantidad != nil {
		return *cantidad
	}
	return 0
}

// NuevoStock calcula el stock resultante de un consumo, saturando en cero.
func NuevoStock(disponible, consumido int) int {
	s := disponible - consumido
	if s < 0 {
		return 0
	}
	return s
}
