package kb

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"hr-screening-bot/lib/utils/helpers"
)

// Normalize приводит название технологии к ключу базы:
// нижний регистр, без краевых пробелов, внутренние пробелы схлопнуты
func Normalize(technology string) string {
	return strings.ToLower(helpers.CollapseSpaces(technology))
}

type Provider interface {
	// Get возвращает вопросы по технологии в авторском порядке.
	// Возвращается копия, база после инициализации не изменяется.
	Get(technology string) []string
	Len() int
}

var Instance Provider

// Init собирает базу один раз на старте: встроенный набор
// плюс необязательный xlsx-файл с дополнительными вопросами
func Init(overlayPath string) error {
	base := make(map[string][]string, len(kbDefaults))
	total := 0
	for tech, list := range kbDefaults {
		questions := make([]string, len(list))
		copy(questions, list)
		base[Normalize(tech)] = questions
		total += len(questions)
	}
	if overlayPath != "" {
		added, err := applyOverlay(base, overlayPath)
		if err != nil {
			return err
		}
		total += added
		log.WithField("path", overlayPath).Infof("В базу знаний добавлено %v вопросов из файла", added)
	}
	Instance = &impl{questions: base}
	log.Infof("База знаний вопросов загружена, технологий: %v, вопросов: %v", len(base), total)
	return nil
}

type impl struct {
	questions map[string][]string
}

func (i impl) Get(technology string) []string {
	stored, ok := i.questions[Normalize(technology)]
	if !ok {
		return nil
	}
	result := make([]string, len(stored))
	copy(result, stored)
	return result
}

func (i impl) Len() int {
	return len(i.questions)
}

// формат файла: первая строка заголовок, колонка A технология, колонка B вопрос
func applyOverlay(base map[string][]string, path string) (added int, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "не удалось открыть xlsx файл с вопросами")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.WithError(closeErr).Error("ошибка закрытия файла")
		}
	}()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return 0, errors.New("в xlsx файле с вопросами нет листов")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return 0, errors.Wrap(err, "не удалось прочитать лист с вопросами")
	}
	for rowIdx, row := range rows {
		if rowIdx == 0 {
			continue
		}
		if len(row) < 2 {
			continue
		}
		tech := Normalize(row[0])
		question := helpers.CollapseSpaces(row[1])
		if tech == "" || question == "" {
			continue
		}
		if containsQuestion(base[tech], question) {
			continue
		}
		base[tech] = append(base[tech], question)
		added++
	}
	return added, nil
}

func containsQuestion(list []string, question string) bool {
	for _, item := range list {
		if strings.EqualFold(helpers.CollapseSpaces(item), question) {
			return true
		}
	}
	return false
}
