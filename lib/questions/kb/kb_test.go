package kb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestKB(t *testing.T) {
	t.Run(`normalize check`, func(t *testing.T) {
		require.Equal(t, "python", Normalize("  PYTHON "))
		require.Equal(t, "ci/cd", Normalize("CI/CD"))
		require.Equal(t, "ruby on rails", Normalize(" Ruby   On  Rails "))
	})

	t.Run(`defaults check`, func(t *testing.T) {
		err := Init("")
		require.Nil(t, err)

		list := Instance.Get("python")
		require.Len(t, list, 4)

		// регистр и пробелы не влияют на поиск
		sameList := Instance.Get("  PYTHON ")
		require.Equal(t, list, sameList)

		// js это псевдоним javascript
		require.Equal(t, Instance.Get("javascript"), Instance.Get("js"))

		require.Nil(t, Instance.Get("cobol"))
		require.True(t, Instance.Len() > 20)
	})

	t.Run(`stored order check`, func(t *testing.T) {
		err := Init("")
		require.Nil(t, err)

		first := Instance.Get("docker")
		second := Instance.Get("docker")
		require.Equal(t, first, second)
	})

	t.Run(`immutable after init check`, func(t *testing.T) {
		err := Init("")
		require.Nil(t, err)

		list := Instance.Get("git")
		list[0] = "изменённый вопрос"

		fresh := Instance.Get("git")
		require.NotEqual(t, "изменённый вопрос", fresh[0])
	})

	t.Run(`overlay check`, func(t *testing.T) {
		path := writeOverlay(t, [][]string{
			{"Технология", "Вопрос"},
			{"Python", "Какие инструменты профилирования вы применяли?"},
			{"elixir", "Что такое OTP и зачем он нужен?"},
			{"python", "Чем список отличается от кортежа и когда что использовать?"}, // дубль встроенного
		})

		err := Init(path)
		require.Nil(t, err)

		pythonList := Instance.Get("python")
		require.Len(t, pythonList, 5)
		require.Equal(t, "Какие инструменты профилирования вы применяли?", pythonList[4])

		elixirList := Instance.Get("elixir")
		require.Len(t, elixirList, 1)
	})

	t.Run(`overlay missing file check`, func(t *testing.T) {
		err := Init("/no/such/file.xlsx")
		require.NotNil(t, err)
	})
}

func writeOverlay(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.Nil(t, err)
			require.Nil(t, f.SetCellValue(sheet, cell, value))
		}
	}
	path := filepath.Join(t.TempDir(), "questions.xlsx")
	require.Nil(t, f.SaveAs(path))
	require.Nil(t, f.Close())
	return path
}
