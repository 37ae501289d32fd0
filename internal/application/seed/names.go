package seed

import (
	"fmt"
	"math/rand"
)

// prng envuelve *rand.Rand con los generadores de texto del dataset.
// No hay librería de datos falsos en el stack, así que los nombres salen de
// listas fijas combinadas; con la semilla fija el resultado es reproducible.
type prng struct {
	*rand.Rand
}

func newPRNG(seed int64) *prng {
	return &prng{rand.New(rand.NewSource(seed))}
}

var firstNames = []string{
	"Ana", "Andrés", "Camila", "Carlos", "Daniela", "Diego", "Elena",
	"Felipe", "Gabriela", "Jorge", "Juliana", "Laura", "Luis", "Manuela",
	"Mariana", "Mateo", "Natalia", "Óscar", "Paula", "Santiago", "Sofía",
	"Tomás", "Valentina", "Víctor",
}

var lastNames = []string{
	"Álvarez", "Cárdenas", "Castro", "Díaz", "García", "Gómez", "González",
	"Herrera", "López", "Martínez", "Mejía", "Moreno", "Muñoz", "Ortiz",
	"Pérez", "Ramírez", "Rodríguez", "Rojas", "Sánchez", "Torres", "Vargas",
}

var companyPrefixes = []string{
	"Distribuidora", "Comercializadora", "Suministros", "Importadora",
	"Logística", "Almacenes", "Depósito",
}

var companySuffixes = []string{"S.A.S.", "Ltda.", "& Cía."}

// personName nombre completo de cliente: nombre + apellido.
func (r *prng) personName() string {
	return firstNames[r.Intn(len(firstNames))] + " " + lastNames[r.Intn(len(lastNames))]
}

// companyName razón social de proveedor, ej. "Distribuidora Rojas S.A.S.".
func (r *prng) companyName() string {
	return fmt.Sprintf("%s %s %s",
		companyPrefixes[r.Intn(len(companyPrefixes))],
		lastNames[r.Intn(len(lastNames))],
		companySuffixes[r.Intn(len(companySuffixes))],
	)
}

// phoneNumber celular colombiano de contacto, ej. "+57 312 456 7890".
func (r *prng) phoneNumber() string {
	return fmt.Sprintf("+57 3%02d %03d %04d", r.Intn(100), r.Intn(1000), r.Intn(10000))
}
