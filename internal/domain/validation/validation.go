// Package validation contiene las reglas de validación de entrada del sistema.
// Son predicados puros: sin I/O, sin estado compartido.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Parte local de 6 a 30 caracteres, primer y último alfanuméricos,
	// interior con letras/dígitos y . _ % + -. Dominio fijo: gmail.com
	// (regla de producto heredada; generalizarla es una sola línea aquí).
	reEmail = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._%+-]{4,28}[a-zA-Z0-9]@gmail\.com$`)

	// Solo letras y espacios, 2 a 50 caracteres (aplica a name, department y designation).
	reTextField = regexp.MustCompile(`^[A-Za-z ]{2,50}$`)
)

// Email valida el formato de correo. RE2 no soporta lookahead, así que la
// prohibición de puntos consecutivos se comprueba aparte.
func Email(s string) bool {
	if strings.Contains(s, "..") {
		return false
	}
	return reEmail.MatchString(s)
}

// Password exige longitud mínima de 6; sin reglas de complejidad.
func Password(s string) bool {
	return len(s) >= 6
}

// Name valida nombres de persona.
func Name(s string) bool {
	return reTextField.MatchString(s)
}

// TextField valida department y designation.
func TextField(s string) bool {
	return reTextField.MatchString(s)
}

// Salary acepta un número JSON o un string numérico y devuelve el entero
// validado. Rechaza nil, no numéricos, fraccionarios y valores <= 0;
// nunca coerciona.
func Salary(v any) (int, bool) {
	switch s := v.(type) {
	case int:
		return s, s > 0
	case int64:
		return int(s), s > 0
	case float64:
		if s != math.Trunc(s) {
			return 0, false
		}
		n := int(s)
		return n, n > 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return n, n > 0
	default:
		return 0, false
	}
}
