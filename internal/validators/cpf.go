package validators

import "strings"

const (
	CPFMinDigits = 10
	CPFMaxDigits = 14
)

// NormalizeCPF remove máscara (pontos, traço, espaços) e devolve só dígitos.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(cpf) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsValidCPF(normalized string) bool {
	n := len(normalized)
	return n >= CPFMinDigits && n <= CPFMaxDigits
}
