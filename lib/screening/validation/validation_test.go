package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-screening-bot/models"
)

var testRules = Rules{
	PhoneMinDigits: 7,
	PhoneMaxDigits: 15,
}

func TestCheck(t *testing.T) {
	t.Run(`name check`, func(t *testing.T) {
		v := Check(models.KindName, "Иван Петров", testRules)
		require.True(t, v.Ok)
		require.Empty(t, v.Hint)

		v = Check(models.KindName, "   ", testRules)
		require.False(t, v.Ok)
		require.Contains(t, v.Hint, "Иван Петров")

		v = Check(models.KindName, "12345", testRules)
		require.False(t, v.Ok)

		v = Check(models.KindName, "J", testRules)
		require.True(t, v.Ok)
	})

	t.Run(`email check`, func(t *testing.T) {
		for _, email := range []string{"ivan.petrov@example.com", "a@b.ru", "user+tag@mail.example.org"} {
			v := Check(models.KindEmail, email, testRules)
			require.True(t, v.Ok, email)
		}

		for _, email := range []string{"", "ivan", "ivan@", "@example.com", "ivan@example", "ivan@@example.com", "ив ан@example.com", "ivan@exa mple.com"} {
			v := Check(models.KindEmail, email, testRules)
			require.False(t, v.Ok, email)
			require.Contains(t, v.Hint, "ivan.petrov@example.com")
		}
	})

	t.Run(`phone check`, func(t *testing.T) {
		for _, phone := range []string{"+7 912 345-67-89", "89123456789", "+1 (555) 123-4567", "1234567"} {
			v := Check(models.KindPhone, phone, testRules)
			require.True(t, v.Ok, phone)
		}

		for _, phone := range []string{"", "телефон", "123456", "1234567890123456", "+7 912 abc", "12+34567"} {
			v := Check(models.KindPhone, phone, testRules)
			require.False(t, v.Ok, phone)
			require.Contains(t, v.Hint, "+7 912 345-67-89")
		}
	})

	t.Run(`phone bounds from rules check`, func(t *testing.T) {
		narrow := Rules{PhoneMinDigits: 10, PhoneMaxDigits: 11}
		v := Check(models.KindPhone, "1234567", narrow)
		require.False(t, v.Ok)
		require.Contains(t, v.Hint, "10-11")

		v = Check(models.KindPhone, "89123456789", narrow)
		require.True(t, v.Ok)
	})

	t.Run(`experience check`, func(t *testing.T) {
		for _, exp := range []string{"0", "3", "1.5", "1,5", "10", "нет опыта", "Fresher"} {
			v := Check(models.KindExperience, exp, testRules)
			require.True(t, v.Ok, exp)
		}

		for _, exp := range []string{"", "-1", "сто", "99", "3 года"} {
			v := Check(models.KindExperience, exp, testRules)
			require.False(t, v.Ok, exp)
			require.Contains(t, v.Hint, "1.5")
		}
	})

	t.Run(`free text check`, func(t *testing.T) {
		v := Check(models.KindFreeText, "Москва", testRules)
		require.True(t, v.Ok)

		v = Check(models.KindFreeText, "  ", testRules)
		require.False(t, v.Ok)
	})
}
