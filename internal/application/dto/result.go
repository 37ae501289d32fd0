package dto

// TabularResult resultado de una consulta: columnas en el orden del SELECT y
// filas en el orden devuelto por el almacén. Es un snapshot inmutable; la capa
// de caché lo serializa tal cual.
type TabularResult struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ColumnIndex devuelve la posición de una columna, o -1 si no existe.
func (t *TabularResult) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
