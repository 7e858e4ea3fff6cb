package screening

// реплики бота, не зависящие от ИИ
const (
	greetingText = "Здравствуйте! Я ассистент по первичному скринингу кандидатов. " +
		"Задам несколько вопросов о вас и вашем опыте, это займёт около десяти минут. " +
		"Если захотите прерваться, просто напишите «пока» или «выход»."

	ackFallbackText = "Спасибо, записал."

	acceptedAsIsText = "Принято, двигаемся дальше."

	questionsIntroText = "Отлично, анкета заполнена. Теперь несколько технических вопросов по вашему стеку."

	noQuestionsText = "Технические вопросы сейчас недоступны, рекрутер задаст их при личном общении."

	summaryIntroText = "Подведём итог. Вот что я записал:"

	farewellFallbackText = "Спасибо за уделённое время! Рекрутер изучит ваши ответы и свяжется с вами в течение нескольких рабочих дней."

	summarizingReplyText = "Скрининг уже завершён, все ответы записаны. Если вопросов не осталось, напишите «пока»."

	byeText = "Всего доброго! Будем на связи."

	terminatedReplyText = "Диалог завершён. Чтобы пройти скрининг ещё раз, начните новую сессию."
)

// слова завершения диалога, сравнение без учёта регистра
var exitWords = []string{"пока", "выход", "стоп", "до свидания", "bye", "exit", "quit", "goodbye", "end", "stop"}
