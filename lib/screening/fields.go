package screening

import (
	"hr-screening-bot/models"
)

// FieldSpec анкетное поле: что спросить и как проверять ответ
type FieldSpec struct {
	Key    models.FieldKey
	Kind   models.FieldKind
	Label  string // подпись поля для подтверждений и итога
	Prompt string // вопрос кандидату
}

// порядок опроса кандидата
var screeningFields = []FieldSpec{
	{
		Key:    models.FieldName,
		Kind:   models.KindName,
		Label:  "имя",
		Prompt: "Как вас зовут? Укажите, пожалуйста, имя и фамилию.",
	},
	{
		Key:    models.FieldEmail,
		Kind:   models.KindEmail,
		Label:  "электронная почта",
		Prompt: "Укажите адрес электронной почты для связи.",
	},
	{
		Key:    models.FieldPhone,
		Kind:   models.KindPhone,
		Label:  "телефон",
		Prompt: "Укажите контактный номер телефона.",
	},
	{
		Key:    models.FieldExperience,
		Kind:   models.KindExperience,
		Label:  "опыт работы",
		Prompt: "Сколько лет профессионального опыта у вас за плечами?",
	},
	{
		Key:    models.FieldPosition,
		Kind:   models.KindFreeText,
		Label:  "желаемая позиция",
		Prompt: "На какую позицию вы претендуете?",
	},
	{
		Key:    models.FieldLocation,
		Kind:   models.KindFreeText,
		Label:  "локация",
		Prompt: "В каком городе вы находитесь? Укажите, если готовы к переезду или удалённой работе.",
	},
	{
		Key:    models.FieldTechStack,
		Kind:   models.KindFreeText,
		Label:  "технологический стек",
		Prompt: "Перечислите через запятую ваш технологический стек: языки, фреймворки, базы данных, инструменты.",
	},
}
