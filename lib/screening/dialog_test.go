package screening

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hr-screening-bot/lib/questions"
	"hr-screening-bot/lib/screening/validation"
	"hr-screening-bot/models"
	dbmodels "hr-screening-bot/models/db"
)

type stubQuestions struct {
	sets map[string]questions.QuestionSet
}

func (s stubQuestions) GetQuestions(ctx context.Context, sessionID, technology string, desiredCount int) questions.QuestionSet {
	return s.sets[technology]
}

type stubAcks struct {
	ack      string
	ackErr   error
	farewell string
	fwErr    error
}

func (s stubAcks) GenerateAcknowledgement(ctx context.Context, sessionID, fieldLabel, value string) (string, error) {
	return s.ack, s.ackErr
}

func (s stubAcks) GenerateFarewell(ctx context.Context, sessionID, candidateName string) (string, error) {
	return s.farewell, s.fwErr
}

type stubStore struct {
	saved []dbmodels.Interview
}

func (s *stubStore) Save(rec dbmodels.Interview) (string, error) {
	s.saved = append(s.saved, rec)
	return rec.ID, nil
}

func (s *stubStore) GetByID(id string) (*dbmodels.Interview, error) {
	return nil, nil
}

func (s *stubStore) List(page, limit int) ([]dbmodels.Interview, int64, error) {
	return nil, 0, nil
}

func (s *stubStore) ListAll() ([]dbmodels.Interview, error) {
	return s.saved, nil
}

func pythonSqlQuestions() map[string]questions.QuestionSet {
	return map[string]questions.QuestionSet{
		"python": {Questions: []questions.Question{
			{Text: "Что такое GIL?", Origin: models.OriginRetrieved},
			{Text: "Чем list отличается от tuple?", Origin: models.OriginRetrieved},
		}},
		"sql": {Questions: []questions.Question{
			{Text: "Что такое индекс?", Origin: models.OriginRetrieved},
			{Text: "Чем JOIN отличается от UNION?", Origin: models.OriginGenerated},
		}},
	}
}

func newTestImpl(q questions.Provider, acks AckSource, store *stubStore) impl {
	return impl{
		settings: Settings{
			MaxAttempts:      2,
			QuestionsPerTech: 2,
			MaxTechnologies:  5,
			SessionTTL:       30 * time.Minute,
			Rules:            validation.Rules{PhoneMinDigits: 7, PhoneMaxDigits: 15},
		},
		registry:  newSessionRegistry(),
		questions: q,
		acks:      acks,
		store:     store,
	}
}

func sendOk(t *testing.T, h impl, sessionID, text string) []string {
	view, err := h.ProcessMessage(context.Background(), sessionID, text)
	require.Nil(t, err)
	return view.Replies
}

func TestDialogFlow(t *testing.T) {
	ctx := context.Background()

	t.Run(`full flow check`, func(t *testing.T) {
		store := &stubStore{}
		h := newTestImpl(stubQuestions{sets: pythonSqlQuestions()}, stubAcks{ack: "Приятно познакомиться!", farewell: "До связи!"}, store)

		start, err := h.StartSession(ctx)
		require.Nil(t, err)
		require.Equal(t, models.StateCollecting, start.State)
		require.Equal(t, 2, len(start.Replies))
		require.Equal(t, greetingText, start.Replies[0])
		require.Equal(t, screeningFields[0].Prompt, start.Replies[1])
		id := start.SessionID

		replies := sendOk(t, h, id, "Иван Петров")
		require.Equal(t, []string{"Приятно познакомиться!", screeningFields[1].Prompt}, replies)
		sendOk(t, h, id, "ivan.petrov@example.com")
		sendOk(t, h, id, "+7 912 345-67-89")
		sendOk(t, h, id, "5")
		sendOk(t, h, id, "Backend-разработчик")
		replies = sendOk(t, h, id, "Москва")
		require.Equal(t, screeningFields[6].Prompt, replies[1])

		replies = sendOk(t, h, id, "Python, SQL")
		require.Equal(t, 3, len(replies))
		require.Equal(t, questionsIntroText, replies[1])
		require.Equal(t, "Вопрос по python (1/2): Что такое GIL?", replies[2])

		replies = sendOk(t, h, id, "Блокировка интерпретатора")
		require.Equal(t, []string{"Вопрос по python (2/2): Чем list отличается от tuple?"}, replies)
		replies = sendOk(t, h, id, "list изменяемый")
		require.Equal(t, []string{"Вопрос по sql (1/2): Что такое индекс?"}, replies)
		replies = sendOk(t, h, id, "Структура для ускорения поиска")
		require.Equal(t, []string{"Вопрос по sql (2/2): Чем JOIN отличается от UNION?"}, replies)

		view, err := h.ProcessMessage(ctx, id, "JOIN объединяет столбцы")
		require.Nil(t, err)
		require.Equal(t, models.StateSummarizing, view.State)
		require.Equal(t, 2, len(view.Replies))
		require.Contains(t, view.Replies[0], summaryIntroText)
		require.Contains(t, view.Replies[0], "- имя: Иван Петров")
		require.Contains(t, view.Replies[0], "Технических вопросов задано: 4, ответов получено: 4.")
		require.Equal(t, "До связи!", view.Replies[1])

		replies = sendOk(t, h, id, "Когда ждать ответа?")
		require.Equal(t, []string{summarizingReplyText}, replies)

		view, err = h.ProcessMessage(ctx, id, "пока")
		require.Nil(t, err)
		require.Equal(t, true, view.Done)
		require.Equal(t, []string{byeText}, view.Replies)

		require.Equal(t, 1, len(store.saved))
		rec := store.saved[0]
		require.Equal(t, id, rec.ID)
		require.Equal(t, models.TerminationCompleted, rec.TerminationReason)
		require.Equal(t, "Иван Петров", rec.CandidateName)
		require.Equal(t, "ivan.petrov@example.com", rec.Email)
		require.Equal(t, "Backend-разработчик", rec.Position)
		require.Equal(t, len(screeningFields), len(rec.Fields.Fields))
		require.Equal(t, 4, len(rec.Questions.Questions))
		require.Equal(t, "python", rec.Questions.Questions[0].Technology)
		require.Equal(t, "Блокировка интерпретатора", rec.Questions.Questions[0].Answer)
		require.Equal(t, false, rec.Degraded)

		// сессия удалена из реестра, повторное сообщение отклоняется
		_, err = h.ProcessMessage(ctx, id, "ещё раз")
		require.Equal(t, ErrSessionNotFound, err)
	})

	t.Run(`retry hint then accept check`, func(t *testing.T) {
		store := &stubStore{}
		h := newTestImpl(stubQuestions{}, stubAcks{}, store)
		start, err := h.StartSession(ctx)
		require.Nil(t, err)
		id := start.SessionID

		sendOk(t, h, id, "Анна")
		replies := sendOk(t, h, id, "не почта")
		require.Equal(t, 1, len(replies))
		require.Contains(t, replies[0], "ivan.petrov@example.com")

		replies = sendOk(t, h, id, "anna@example.com")
		require.Equal(t, ackFallbackText, replies[0])
		require.Equal(t, screeningFields[2].Prompt, replies[1])

		sess := h.registry.get(id)
		require.NotNil(t, sess)
		email := sess.dialog.Fields[1]
		require.Equal(t, models.AcceptValid, email.Reason)
		require.Equal(t, 2, email.Attempts)
	})

	t.Run(`max attempts exhausted accept check`, func(t *testing.T) {
		store := &stubStore{}
		h := newTestImpl(stubQuestions{}, stubAcks{}, store)
		start, err := h.StartSession(ctx)
		require.Nil(t, err)
		id := start.SessionID

		sendOk(t, h, id, "Анна")
		sendOk(t, h, id, "не почта")
		replies := sendOk(t, h, id, "опять не почта")
		require.Equal(t, acceptedAsIsText, replies[0])
		require.Equal(t, screeningFields[2].Prompt, replies[1])

		sess := h.registry.get(id)
		email := sess.dialog.Fields[1]
		require.Equal(t, models.AcceptMaxAttemptsExhausted, email.Reason)
		require.Equal(t, "опять не почта", email.Value)
		require.Equal(t, 2, email.Attempts)
	})

	t.Run(`exit word during collection check`, func(t *testing.T) {
		store := &stubStore{}
		h := newTestImpl(stubQuestions{}, stubAcks{}, store)
		start, err := h.StartSession(ctx)
		require.Nil(t, err)
		id := start.SessionID

		sendOk(t, h, id, "Иван Петров")
		view, err := h.ProcessMessage(ctx, id, "  Пока  ")
		require.Nil(t, err)
		require.Equal(t, true, view.Done)
		require.Equal(t, 2, len(view.Replies))
		require.Contains(t, view.Replies[0], "- имя: Иван Петров")
		require.Equal(t, farewellFallbackText, view.Replies[1])

		require.Equal(t, 1, len(store.saved))
		rec := store.saved[0]
		require.Equal(t, models.TerminationExitWord, rec.TerminationReason)
		require.Equal(t, 1, len(rec.Fields.Fields))
	})

	t.Run(`exit before any field check`, func(t *testing.T) {
		store := &stubStore{}
		h := newTestImpl(stubQuestions{}, stubAcks{}, store)
		start, err := h.StartSession(ctx)
		require.Nil(t, err)

		view, err := h.ProcessMessage(ctx, start.SessionID, "выход")
		require.Nil(t, err)
		require.Equal(t, true, view.Done)
		require.Equal(t, 1, len(store.saved))
		require.Equal(t, 0, len(store.saved[0].Fields.Fields))
		require.Equal(t, "", store.saved[0].CandidateName)
	})

	t.Run(`exit word never treated as answer check`, func(t *testing.T) {
		store := &stubStore{}
		h := newTestImpl(stubQuestions{sets: pythonSqlQuestions()}, stubAcks{}, store)
		start, err := h.StartSession(ctx)
		require.Nil(t, err)
		id := start.SessionID

		for _, msg := range []string{"Иван Петров", "ivan@example.com", "+79123456789", "5", "Разработчик", "Москва"} {
			sendOk(t, h, id, msg)
		}
		sendOk(t, h, id, "Python")
		view, err := h.ProcessMessage(ctx, id, "Stop")
		require.Nil(t, err)
		require.Equal(t, true, view.Done)
		rec := store.saved[0]
		require.Equal(t, models.TerminationExitWord, rec.TerminationReason)
		// слово выхода не записано как ответ на вопрос
		require.Equal(t, "", rec.Questions.Questions[0].Answer)
	})

	t.Run(`no questions available check`, func(t *testing.T) {
		store := &stubStore{}
		h := newTestImpl(stubQuestions{}, stubAcks{}, store)
		start, err := h.StartSession(ctx)
		require.Nil(t, err)
		id := start.SessionID

		for _, msg := range []string{"Иван Петров", "ivan@example.com", "+79123456789", "5", "Разработчик", "Москва"} {
			sendOk(t, h, id, msg)
		}
		view, err := h.ProcessMessage(ctx, id, "Cobol")
		require.Nil(t, err)
		require.Equal(t, models.StateSummarizing, view.State)
		// подтверждение, уведомление, итог и прощание одним ходом
		require.Equal(t, 4, len(view.Replies))
		require.Equal(t, noQuestionsText, view.Replies[1])
		require.Contains(t, view.Replies[2], summaryIntroText)
	})

	t.Run(`degraded note in summary check`, func(t *testing.T) {
		store := &stubStore{}
		sets := map[string]questions.QuestionSet{
			"python": {
				Questions: []questions.Question{{Text: "Что такое GIL?", Origin: models.OriginRetrieved}},
				Degraded:  true,
			},
		}
		h := newTestImpl(stubQuestions{sets: sets}, stubAcks{}, store)
		start, err := h.StartSession(ctx)
		require.Nil(t, err)
		id := start.SessionID

		for _, msg := range []string{"Иван Петров", "ivan@example.com", "+79123456789", "5", "Разработчик", "Москва"} {
			sendOk(t, h, id, msg)
		}
		sendOk(t, h, id, "Python")
		view, err := h.ProcessMessage(ctx, id, "Блокировка")
		require.Nil(t, err)
		require.Equal(t, models.StateSummarizing, view.State)
		require.Contains(t, view.Replies[0], "Часть технических вопросов подготовить не удалось")
		require.Equal(t, true, h.registry.get(id).dialog.Degraded)
	})

	t.Run(`tech list parsing check`, func(t *testing.T) {
		techs := parseTechList("Python,  SQL ;python\nGo", 5)
		require.Equal(t, []string{"python", "sql", "go"}, techs)

		techs = parseTechList("a, b, c, d", 2)
		require.Equal(t, []string{"a", "b"}, techs)

		techs = parseTechList(" , ;", 5)
		require.Equal(t, 0, len(techs))
	})

	t.Run(`exit word matching check`, func(t *testing.T) {
		require.Equal(t, true, isExitWord("ПОКА"))
		require.Equal(t, true, isExitWord("  до   свидания  "))
		require.Equal(t, true, isExitWord("Bye"))
		require.Equal(t, false, isExitWord("пока не знаю"))
		require.Equal(t, false, isExitWord("стоп-слово"))
	})

	t.Run(`unknown session check`, func(t *testing.T) {
		h := newTestImpl(stubQuestions{}, stubAcks{}, &stubStore{})
		_, err := h.ProcessMessage(ctx, "no-such-id", "привет")
		require.Equal(t, ErrSessionNotFound, err)
		_, err = h.GetProgress("no-such-id")
		require.Equal(t, ErrSessionNotFound, err)
	})

	t.Run(`progress view check`, func(t *testing.T) {
		h := newTestImpl(stubQuestions{sets: pythonSqlQuestions()}, stubAcks{}, &stubStore{})
		start, err := h.StartSession(ctx)
		require.Nil(t, err)
		id := start.SessionID

		sendOk(t, h, id, "Иван Петров")
		sendOk(t, h, id, "ivan@example.com")
		progress, err := h.GetProgress(id)
		require.Nil(t, err)
		require.Equal(t, models.StateCollecting, progress.State)
		require.Equal(t, 2, len(progress.Fields))
		require.Equal(t, models.FieldName, progress.Fields[0].Key)
		require.Equal(t, "Иван Петров", progress.Fields[0].Value)
		require.Equal(t, 0, len(progress.Questions))
	})

	t.Run(`expire idle check`, func(t *testing.T) {
		store := &stubStore{}
		h := newTestImpl(stubQuestions{}, stubAcks{}, store)
		start, err := h.StartSession(ctx)
		require.Nil(t, err)
		stale := start.SessionID
		fresh, err := h.StartSession(ctx)
		require.Nil(t, err)

		sess := h.registry.get(stale)
		sess.dialog.LastActivity = time.Now().Add(-time.Hour)

		h.ExpireIdle(ctx)
		require.Equal(t, 1, len(store.saved))
		require.Equal(t, models.TerminationExpired, store.saved[0].TerminationReason)
		require.Nil(t, h.registry.get(stale))
		require.NotNil(t, h.registry.get(fresh.SessionID))
	})

	t.Run(`summary masking absent check`, func(t *testing.T) {
		// кандидату в итоге показываются его же данные без маскирования
		store := &stubStore{}
		h := newTestImpl(stubQuestions{}, stubAcks{}, store)
		start, err := h.StartSession(ctx)
		require.Nil(t, err)
		id := start.SessionID

		sendOk(t, h, id, "Иван Петров")
		sendOk(t, h, id, "ivan@example.com")
		view, err := h.ProcessMessage(ctx, id, "пока")
		require.Nil(t, err)
		require.Contains(t, view.Replies[0], "ivan@example.com")
		require.Equal(t, false, strings.Contains(view.Replies[0], "***"))
	})
}
