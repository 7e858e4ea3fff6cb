package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"hr-screening-bot/models"
)

// Verdict результат проверки введённого значения.
// Hint заполняется только при неуспехе и подсказывает кандидату формат.
type Verdict struct {
	Ok   bool
	Hint string
}

// Rules настройки проверки, передаются из конфигурации
type Rules struct {
	PhoneMinDigits int
	PhoneMaxDigits int
}

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneDigitRe = regexp.MustCompile(`^\+?[0-9]+$`)
	phoneSepRe   = regexp.MustCompile(`[\s\-\(\)]`)
)

// ответы кандидатов без коммерческого опыта
var noExperienceAnswers = []string{"0", "нет", "нет опыта", "без опыта", "fresher", "no", "none"}

func ok() Verdict {
	return Verdict{Ok: true}
}

func fail(hint string) Verdict {
	return Verdict{Ok: false, Hint: hint}
}

// Check проверяет значение поля по его типу. Без побочных эффектов.
func Check(kind models.FieldKind, raw string, rules Rules) Verdict {
	switch kind {
	case models.KindName:
		return checkName(raw)
	case models.KindEmail:
		return checkEmail(raw)
	case models.KindPhone:
		return checkPhone(raw, rules)
	case models.KindExperience:
		return checkExperience(raw)
	default:
		return checkFreeText(raw)
	}
}

func checkName(raw string) Verdict {
	value := strings.TrimSpace(raw)
	if value == "" {
		return fail("Имя не должно быть пустым, напишите, например: Иван Петров")
	}
	for _, r := range value {
		if unicode.IsLetter(r) {
			return ok()
		}
	}
	return fail("В имени должна быть хотя бы одна буква, напишите, например: Иван Петров")
}

func checkEmail(raw string) Verdict {
	value := strings.TrimSpace(raw)
	if strings.Count(value, "@") != 1 || !emailRe.MatchString(value) {
		return fail("Укажите почту в формате имя@домен, например: ivan.petrov@example.com")
	}
	return ok()
}

func checkPhone(raw string, rules Rules) Verdict {
	hint := fmt.Sprintf("Укажите номер телефона из %d-%d цифр, например: +7 912 345-67-89", rules.PhoneMinDigits, rules.PhoneMaxDigits)
	value := phoneSepRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if value == "" || !phoneDigitRe.MatchString(value) {
		return fail(hint)
	}
	digits := strings.TrimPrefix(value, "+")
	if len(digits) < rules.PhoneMinDigits || len(digits) > rules.PhoneMaxDigits {
		return fail(hint)
	}
	return ok()
}

func checkExperience(raw string) Verdict {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, answer := range noExperienceAnswers {
		if value == answer {
			return ok()
		}
	}
	value = strings.ReplaceAll(value, ",", ".")
	years, err := strconv.ParseFloat(value, 64)
	if err != nil || years < 0 || years > 60 {
		return fail("Укажите опыт числом лет, например: 3 или 1.5, для начинающих допустимо 0")
	}
	return ok()
}

func checkFreeText(raw string) Verdict {
	if strings.TrimSpace(raw) == "" {
		return fail("Ответ не должен быть пустым")
	}
	return ok()
}
