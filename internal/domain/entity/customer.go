package entity

// Customer cliente registrado. Solo se crea durante la siembra.
type Customer struct {
	ID   int64
	Name string
}
