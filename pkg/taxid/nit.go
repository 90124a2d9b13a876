// Package taxid valida identificaciones tributarias colombianas de proveedores.
package taxid

import (
	"errors"
	"fmt"
)

// TypeNIT tipo de identificación que exige dígito de verificación.
const TypeNIT = "NIT"

var ErrInvalidNIT = errors.New("NIT inválido")

// pesos módulo 11 aplicados a los 9 dígitos base, de izquierda a derecha.
var nitWeights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// CheckDigit calcula el dígito de verificación de los 9 primeros dígitos de nit.
func CheckDigit(nit string) (byte, error) {
	digits := digitsOf(nit)
	if len(digits) < 9 {
		return 0, fmt.Errorf("%w: se requieren 9 dígitos, hay %d", ErrInvalidNIT, len(digits))
	}
	return checkDigit(digits[:9]), nil
}

// ValidateNIT acepta "900123456-7", "900.123.456-7" o "9001234567".
func ValidateNIT(nit string) error {
	digits := digitsOf(nit)
	if len(digits) != 10 {
		return fmt.Errorf("%w: se esperaban 9 dígitos más el de verificación, hay %d", ErrInvalidNIT, len(digits))
	}
	if want := checkDigit(digits[:9]); digits[9] != want {
		return fmt.Errorf("%w: dígito de verificación %c, se esperaba %c", ErrInvalidNIT, digits[9], want)
	}
	return nil
}

func checkDigit(base []byte) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * nitWeights[i]
	}
	r := sum % 11
	if r < 2 {
		return byte('0' + r)
	}
	return byte('0' + 11 - r)
}

func digitsOf(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	return out
}
