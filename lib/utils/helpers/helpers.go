package helpers

import (
	"context"
	"regexp"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var spaceSeq = regexp.MustCompile(`\s+`)

// CollapseSpaces обрезает строку и схлопывает внутренние пробелы до одного
func CollapseSpaces(str string) string {
	return spaceSeq.ReplaceAllString(strings.TrimSpace(str), " ")
}

// MaskEmail скрывает локальную часть адреса, оставляя первые два символа
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return email
	}
	local := email[:at]
	if len(local) <= 2 {
		return local + "***" + email[at:]
	}
	return local[:2] + "***" + email[at:]
}

// MaskPhone оставляет только последние 4 цифры номера
func MaskPhone(phone string) string {
	digits := []rune{}
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return "***"
	}
	return "***-***-" + string(digits[len(digits)-4:])
}
