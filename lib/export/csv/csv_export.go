package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"hr-screening-bot/models"
	dbmodels "hr-screening-bot/models/db"
)

// Provider пишет по одной строке на завершённую сессию в общий csv файл.
// Файл только дополняется, уже записанные строки не переписываются
type Provider interface {
	AppendInterview(rec dbmodels.Interview) error
}

var Instance Provider

func NewHandler(path string) {
	Instance = &impl{path: path}
}

type impl struct {
	mu   sync.Mutex
	path string
}

var csvHeader = []string{
	"session_id", "finished_at", "name", "email", "phone", "experience",
	"position", "location", "tech_stack", "termination_reason", "degraded", "questions",
}

func (i *impl) AppendInterview(rec dbmodels.Interview) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(i.path), 0755); err != nil {
		return errors.Wrap(err, "не удалось создать каталог для csv выгрузки")
	}
	f, err := os.OpenFile(i.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "не удалось открыть csv файл выгрузки")
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "не удалось получить размер csv файла")
	}
	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err = w.Write(csvHeader); err != nil {
			return errors.Wrap(err, "не удалось записать заголовок csv")
		}
	}
	questions, err := json.Marshal(rec.Questions)
	if err != nil {
		return errors.Wrap(err, "не удалось сериализовать вопросы для csv")
	}
	row := []string{
		rec.ID,
		rec.FinishedAt.Format(time.RFC3339),
		rec.CandidateName,
		rec.Email,
		rec.Phone,
		rec.Fields.Get(models.FieldExperience),
		rec.Position,
		rec.Fields.Get(models.FieldLocation),
		rec.Fields.Get(models.FieldTechStack),
		string(rec.TerminationReason),
		strconv.FormatBool(rec.Degraded),
		string(questions),
	}
	if err = w.Write(row); err != nil {
		return errors.Wrap(err, "не удалось записать строку csv")
	}
	w.Flush()
	return errors.Wrap(w.Error(), "ошибка записи csv")
}
