package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-screening-bot/models/db"
)

type Provider interface {
	Save(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (rec *dbmodels.Interview, err error)
	List(page, limit int) (list []dbmodels.Interview, rowCount int64, err error)
	ListAll() (list []dbmodels.Interview, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Interview) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(page, limit int) (list []dbmodels.Interview, rowCount int64, err error) {
	err = i.db.
		Model(&dbmodels.Interview{}).
		Count(&rowCount).
		Error
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err = i.db.
		Order("finished_at desc").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAll() (list []dbmodels.Interview, err error) {
	err = i.db.
		Order("finished_at desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
