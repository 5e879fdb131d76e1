package coupon

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

const (
	// Prefix префикс кодов купонов
	Prefix = "RW"
	// codeLength длина случайной части кода
	codeLength = 16
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generate генерирует код купона вида RW-XXXXXXXXXXXXXXXX.
// Случайная часть берется из UUID v4, а не из времени: коды должны быть
// устойчивы к коллизиям при параллельных обменах. Уникальность дополнительно
// гарантируется ограничением в БД.
func Generate() string {
	id := uuid.New()
	token := encoding.EncodeToString(id[:])[:codeLength]
	return Prefix + "-" + token
}

// Validate проверяет формат кода купона
func Validate(code string) bool {
	if len(code) != len(Prefix)+1+codeLength {
		return false
	}
	if !strings.HasPrefix(code, Prefix+"-") {
		return false
	}

	token := code[len(Prefix)+1:]
	for _, c := range token {
		// Алфавит base32: A-Z и 2-7
		if (c < 'A' || c > 'Z') && (c < '2' || c > '7') {
			return false
		}
	}
	return true
}
