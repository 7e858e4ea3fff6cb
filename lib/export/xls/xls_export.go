package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"hr-screening-bot/models"
	dbmodels "hr-screening-bot/models/db"
)

type Provider interface {
	ExportInterviewList(list []dbmodels.Interview) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var interviewHeaders = []string{"ФИО", "Контакты", "Позиция", "Локация", "Опыт", "Стек", "Вопросы", "Причина завершения", "Деградация", "Дата завершения"}

func (i impl) ExportInterviewList(list []dbmodels.Interview) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, interviewHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeInterviewData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Скрининги")
	return f.WriteToBuffer()
}

func writeInterviewData(f *excelize.File, sheet string, list []dbmodels.Interview, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(interviewHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.CandidateName); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Позиция"
		col++
		if err := writeColumn(f, sheet, col, row, item.Position); err != nil {
			return row, err
		}

		// "Локация"
		col++
		if err := writeColumn(f, sheet, col, row, item.Fields.Get(models.FieldLocation)); err != nil {
			return row, err
		}

		// "Опыт"
		col++
		if err := writeColumn(f, sheet, col, row, item.Fields.Get(models.FieldExperience)); err != nil {
			return row, err
		}

		// "Стек"
		col++
		if err := writeColumn(f, sheet, col, row, item.Fields.Get(models.FieldTechStack)); err != nil {
			return row, err
		}

		// "Вопросы"
		col++
		asked := len(item.Questions.Questions)
		answered := 0
		for _, q := range item.Questions.Questions {
			if q.Answer != "" {
				answered++
			}
		}
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("задано %v / отвечено %v", asked, answered)); err != nil {
			return row, err
		}

		// "Причина завершения"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.TerminationReason)); err != nil {
			return row, err
		}

		// "Деградация"
		col++
		degraded := ""
		if item.Degraded {
			degraded = "да"
		}
		if err := writeColumn(f, sheet, col, row, degraded); err != nil {
			return row, err
		}

		// "Дата завершения"
		col++
		if !item.FinishedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.FinishedAt.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
