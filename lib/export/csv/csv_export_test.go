package csvexport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hr-screening-bot/models"
	dbmodels "hr-screening-bot/models/db"
)

func TestAppendInterview(t *testing.T) {
	t.Run(`append only one row per session check`, func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export", "interviews.csv")
		exporter := &impl{path: path}

		first := dbmodels.Interview{
			BaseModel:     dbmodels.BaseModel{ID: "session-1"},
			CandidateName: "Иван Петров",
			Email:         "ivan.petrov@example.com",
			Phone:         "+79123456789",
			Position:      "Backend разработчик",
			Fields: dbmodels.InterviewFields{Fields: []dbmodels.InterviewField{
				{Key: models.FieldExperience, Value: "3", Reason: models.AcceptValid, Attempts: 1},
				{Key: models.FieldLocation, Value: "Москва", Reason: models.AcceptValid, Attempts: 1},
				{Key: models.FieldTechStack, Value: "python, sql", Reason: models.AcceptValid, Attempts: 1},
			}},
			Questions: dbmodels.InterviewQuestions{Questions: []dbmodels.InterviewQuestion{
				{Technology: "python", Text: "Что такое GIL?", Origin: models.OriginRetrieved, Answer: "Блокировка интерпретатора"},
			}},
			TerminationReason: models.TerminationCompleted,
			FinishedAt:        time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC),
		}
		require.Nil(t, exporter.AppendInterview(first))

		// частичная сессия тоже выгружается одной строкой
		second := dbmodels.Interview{
			BaseModel:         dbmodels.BaseModel{ID: "session-2"},
			CandidateName:     "Анна",
			TerminationReason: models.TerminationExitWord,
			FinishedAt:        time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC),
		}
		require.Nil(t, exporter.AppendInterview(second))

		f, err := os.Open(path)
		require.Nil(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.Nil(t, err)

		// заголовок пишется один раз
		require.Len(t, rows, 3)
		require.Equal(t, csvHeader, rows[0])

		require.Equal(t, "session-1", rows[1][0])
		require.Equal(t, "Иван Петров", rows[1][2])
		require.Equal(t, "3", rows[1][5])
		require.Equal(t, "python, sql", rows[1][8])
		require.Equal(t, string(models.TerminationCompleted), rows[1][9])
		require.Contains(t, rows[1][11], "Что такое GIL?")

		require.Equal(t, "session-2", rows[2][0])
		require.Equal(t, "", rows[2][4])
		require.Equal(t, string(models.TerminationExitWord), rows[2][9])
	})
}
