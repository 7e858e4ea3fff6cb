package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hr-screening-bot/models"
	dbmodels "hr-screening-bot/models/db"
)

func TestExportInterviewList(t *testing.T) {
	t.Run(`interview list export check`, func(t *testing.T) {
		rec := dbmodels.Interview{
			CandidateName:     "Иван Петров",
			Email:             "ivan@example.com",
			Phone:             "+79123456789",
			Position:          "Backend-разработчик",
			TerminationReason: models.TerminationCompleted,
			FinishedAt:        time.Date(2025, 3, 14, 15, 4, 0, 0, time.UTC),
		}
		rec.Fields.Fields = []dbmodels.InterviewField{
			{Key: models.FieldLocation, Value: "Москва", Reason: models.AcceptValid, Attempts: 1},
			{Key: models.FieldExperience, Value: "5", Reason: models.AcceptValid, Attempts: 1},
			{Key: models.FieldTechStack, Value: "python, sql", Reason: models.AcceptValid, Attempts: 1},
		}
		rec.Questions.Questions = []dbmodels.InterviewQuestion{
			{Technology: "python", Text: "Что такое GIL?", Origin: models.OriginRetrieved, Answer: "Блокировка"},
			{Technology: "python", Text: "Что делает декоратор?", Origin: models.OriginGenerated},
		}

		buf, err := impl{}.ExportInterviewList([]dbmodels.Interview{rec})
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("Скрининги")
		require.Nil(t, err)
		require.Equal(t, 2, len(rows))
		require.Equal(t, interviewHeaders[0], rows[0][0])
		require.Equal(t, "Иван Петров", rows[1][0])
		require.Contains(t, rows[1][1], "ivan@example.com")
		require.Equal(t, "Москва", rows[1][3])
		require.Equal(t, "python, sql", rows[1][5])
		require.Equal(t, "задано 2 / отвечено 1", rows[1][6])
		require.Equal(t, string(models.TerminationCompleted), rows[1][7])
		require.Equal(t, "14.03.2025 15:04", rows[1][9])
	})

	t.Run(`empty list export check`, func(t *testing.T) {
		buf, err := impl{}.ExportInterviewList(nil)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("Скрининги")
		require.Nil(t, err)
		require.Equal(t, 1, len(rows))
	})
}
