// Package brdoc valida documentos brasileños (CPF de personas y CNPJ de empresas)
// mediante el algoritmo módulo 11 de dígitos verificadores.
package brdoc

import (
	"fmt"
	"unicode"
)

// pesos del CNPJ: el primer dígito usa los 12 primeros; el segundo antepone 6.
var (
	cnpjWeights1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCPF valida un CPF (con o sin puntos/guiones): 11 dígitos, no todos iguales
// y dígitos verificadores correctos. "529.982.247-25" y "52998224725" son equivalentes.
func ValidateCPF(cpf string) error {
	digits := Digits(cpf)
	if len(digits) != 11 {
		return fmt.Errorf("brdoc: CPF debe tener 11 dígitos, se encontraron %d", len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("brdoc: CPF con dígitos repetidos")
	}
	for n := 9; n <= 10; n++ {
		var sum int
		for i := 0; i < n; i++ {
			sum += int(digits[i]-'0') * (n + 1 - i)
		}
		if expected := checkDigit(sum); digits[n] != expected {
			return fmt.Errorf("brdoc: dígito verificador del CPF inválido: esperado %c, recibido %c", expected, digits[n])
		}
	}
	return nil
}

// ValidateCNPJ valida un CNPJ (con o sin puntuación): 14 dígitos, no todos iguales
// y dígitos verificadores correctos.
func ValidateCNPJ(cnpj string) error {
	digits := Digits(cnpj)
	if len(digits) != 14 {
		return fmt.Errorf("brdoc: CNPJ debe tener 14 dígitos, se encontraron %d", len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("brdoc: CNPJ con dígitos repetidos")
	}
	var sum int
	for i, w := range cnpjWeights1 {
		sum += int(digits[i]-'0') * w
	}
	if expected := checkDigit(sum); digits[12] != expected {
		return fmt.Errorf("brdoc: primer dígito verificador del CNPJ inválido: esperado %c, recibido %c", expected, digits[12])
	}
	sum = 0
	for i, w := range cnpjWeights2 {
		sum += int(digits[i]-'0') * w
	}
	if expected := checkDigit(sum); digits[13] != expected {
		return fmt.Errorf("brdoc: segundo dígito verificador del CNPJ inválido: esperado %c, recibido %c", expected, digits[13])
	}
	return nil
}

// Digits devuelve solo los dígitos de s. Se usa para normalizar antes de persistir.
func Digits(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

func checkDigit(sum int) byte {
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + (11 - r))
}

func allEqual(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
