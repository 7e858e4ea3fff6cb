package screening

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-screening-bot/config"
	"hr-screening-bot/db"
	dadataproxy "hr-screening-bot/lib/dadata"
	csvexport "hr-screening-bot/lib/export/csv"
	filestorage "hr-screening-bot/lib/file-storage"
	gpthandler "hr-screening-bot/lib/gpt"
	messagetemplate "hr-screening-bot/lib/message-template"
	"hr-screening-bot/lib/questions"
	interviewstore "hr-screening-bot/lib/screening/store"
	"hr-screening-bot/lib/screening/validation"
	"hr-screening-bot/lib/smtp"
	botnotify "hr-screening-bot/lib/utils/bot-notify"
	"hr-screening-bot/lib/utils/helpers"
	initchecker "hr-screening-bot/lib/utils/init-checker"
	connectionhub "hr-screening-bot/lib/ws/hub/connection-hub"
	"hr-screening-bot/models"
	screeningapimodels "hr-screening-bot/models/api/screening"
	dbmodels "hr-screening-bot/models/db"
	wsmodels "hr-screening-bot/models/ws"
)

type Provider interface {
	StartSession(ctx context.Context) (screeningapimodels.MessageView, error)
	ProcessMessage(ctx context.Context, sessionID, text string) (screeningapimodels.MessageView, error)
	GetProgress(sessionID string) (*screeningapimodels.ProgressView, error)
	ExpireIdle(ctx context.Context)
}

var Instance Provider

var ErrSessionNotFound = errors.New("сессия не найдена")

// AckSource источник реплик-подтверждений и прощания
type AckSource interface {
	GenerateAcknowledgement(ctx context.Context, sessionID, fieldLabel, value string) (string, error)
	GenerateFarewell(ctx context.Context, sessionID, candidateName string) (string, error)
}

type Settings struct {
	MaxAttempts      int
	QuestionsPerTech int
	MaxTechnologies  int
	SessionTTL       time.Duration
	Rules            validation.Rules
}

func NewHandler() {
	cfg := config.Conf.Screening
	instance := impl{
		settings: Settings{
			MaxAttempts:      cfg.MaxAttempts,
			QuestionsPerTech: cfg.QuestionsPerTech,
			MaxTechnologies:  cfg.MaxTechnologies,
			SessionTTL:       time.Duration(cfg.SessionTTLMin) * time.Minute,
			Rules: validation.Rules{
				PhoneMinDigits: cfg.PhoneMinDigits,
				PhoneMaxDigits: cfg.PhoneMaxDigits,
			},
		},
		registry:  newSessionRegistry(),
		questions: questions.Instance,
		acks:      gpthandler.Instance,
		store:     interviewstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"questions", instance.questions,
		"acks", instance.acks,
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	settings  Settings
	registry  *sessionRegistry
	questions questions.Provider
	acks      AckSource
	store     interviewstore.Provider
}

func (i impl) StartSession(ctx context.Context) (screeningapimodels.MessageView, error) {
	now := time.Now()
	d := Dialog{
		ID:           uuid.NewString(),
		State:        models.StateCollecting,
		StartedAt:    now,
		LastActivity: now,
	}
	i.registry.add(d)
	log.WithField("session_id", d.ID).Info("Начата сессия скрининга")
	return screeningapimodels.MessageView{
		SessionID: d.ID,
		Replies:   []string{greetingText, screeningFields[0].Prompt},
		State:     d.State,
	}, nil
}

func (i impl) ProcessMessage(ctx context.Context, sessionID, text string) (screeningapimodels.MessageView, error) {
	sess := i.registry.get(sessionID)
	if sess == nil {
		return screeningapimodels.MessageView{}, ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	d := &sess.dialog
	replies := i.advance(ctx, d, text)
	d.LastActivity = time.Now()
	if d.State == models.StateTerminated {
		i.finalize(ctx, d)
		i.registry.remove(d.ID)
	}
	return messageView(d, replies), nil
}

func (i impl) GetProgress(sessionID string) (*screeningapimodels.ProgressView, error) {
	sess := i.registry.get(sessionID)
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	d := &sess.dialog
	view := screeningapimodels.ProgressView{
		SessionID: d.ID,
		State:     d.State,
		Degraded:  d.Degraded,
	}
	for _, f := range d.Fields {
		view.Fields = append(view.Fields, screeningapimodels.FieldView{
			Key:      f.Spec.Key,
			Label:    f.Spec.Label,
			Value:    f.Value,
			Reason:   f.Reason,
			Attempts: f.Attempts,
		})
	}
	for _, set := range d.Sets {
		for _, q := range set.Questions {
			view.Questions = append(view.Questions, screeningapimodels.QuestionView{
				Technology: set.Technology,
				Text:       q.Text,
				Origin:     q.Origin,
				Answer:     q.Answer,
			})
		}
	}
	return &view, nil
}

// ExpireIdle завершает сессии без активности дольше Settings.SessionTTL
func (i impl) ExpireIdle(ctx context.Context) {
	cutoff := time.Now().Add(-i.settings.SessionTTL)
	for _, id := range i.registry.ids() {
		if helpers.IsContextDone(ctx) {
			return
		}
		sess := i.registry.get(id)
		if sess == nil {
			continue
		}
		sess.mu.Lock()
		d := &sess.dialog
		if d.State != models.StateTerminated && d.LastActivity.Before(cutoff) {
			replies := i.terminate(ctx, d, models.TerminationExpired)
			i.finalize(ctx, d)
			i.registry.remove(d.ID)
			i.pushExpired(d, replies)
			log.WithField("session_id", d.ID).Info("Сессия скрининга завершена по таймауту")
		}
		sess.mu.Unlock()
	}
}

func (i impl) pushExpired(d *Dialog, replies []string) {
	if connectionhub.Instance == nil {
		return
	}
	view := messageView(d, replies)
	connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
		SessionID: d.ID,
		Time:      time.Now().Format("02.01.2006 15:04:05"),
		Replies:   view.Replies,
		State:     view.State,
		Done:      view.Done,
	})
	connectionhub.Instance.SendClose(d.ID)
}

// finalize сохраняет итог диалога, ошибки экспорта не прерывают завершение
func (i impl) finalize(ctx context.Context, d *Dialog) {
	logger := log.WithField("session_id", d.ID)
	rec := buildInterviewRecord(d)
	i.resolveLocation(ctx, &rec, logger)
	if _, err := i.store.Save(rec); err != nil {
		logger.WithError(err).Error("ошибка сохранения результата скрининга в БД")
	}
	if csvexport.Instance != nil {
		if err := csvexport.Instance.AppendInterview(rec); err != nil {
			logger.WithError(err).Error("ошибка выгрузки результата скрининга в csv")
		}
	}
	i.archiveTranscript(ctx, rec, logger)
	i.sendCompletionEmail(d, rec, logger)
	botnotify.SendScreeningResult(d.ID, rec.CandidateName, string(d.TermReason), logger)
	logger.WithField("reason", d.TermReason).Info("Сессия скрининга завершена")
}

// resolveLocation дополняет запись адресом из справочника, сбой не мешает сохранению
func (i impl) resolveLocation(ctx context.Context, rec *dbmodels.Interview, logger *log.Entry) {
	if dadataproxy.Instance == nil || rec.Location == "" {
		return
	}
	resolved, err := dadataproxy.Instance.SuggestLocation(ctx, rec.Location)
	if err != nil {
		logger.WithError(err).Error("ошибка нормализации локации через DaData")
		return
	}
	rec.LocationResolved = resolved
}

func (i impl) archiveTranscript(ctx context.Context, rec dbmodels.Interview, logger *log.Entry) {
	if filestorage.Instance == nil {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сериализации результата скрининга")
		return
	}
	if err = filestorage.Instance.UploadTranscript(ctx, rec.ID, data); err != nil {
		logger.WithError(err).Error("ошибка архивации результата скрининга в S3")
	}
}

func (i impl) sendCompletionEmail(d *Dialog, rec dbmodels.Interview, logger *log.Entry) {
	if smtp.Instance == nil || config.Conf == nil || config.Conf.Smtp.From == "" {
		return
	}
	if !d.Completed {
		return
	}
	email := acceptedEmail(d)
	if email == "" {
		return
	}
	asked, _ := d.questionCount()
	msg, err := messagetemplate.BuildInterviewCompleteMsg(models.InterviewEmailData{
		CandidateName: rec.CandidateName,
		Position:      rec.Position,
		TechStack:     rec.Fields.Get(models.FieldTechStack),
		QuestionCount: asked,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сборки письма о завершении скрининга")
		return
	}
	err = smtp.Instance.SendEMail(config.Conf.Smtp.From, email, msg, messagetemplate.GetInterviewCompleteTitle())
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма о завершении скрининга")
	}
}

// acceptedEmail возвращает адрес, только если он прошёл проверку формата
func acceptedEmail(d *Dialog) string {
	for _, f := range d.Fields {
		if f.Spec.Key == models.FieldEmail && f.Reason == models.AcceptValid {
			return f.Value
		}
	}
	return ""
}

func buildInterviewRecord(d *Dialog) dbmodels.Interview {
	rec := dbmodels.Interview{
		BaseModel:         dbmodels.BaseModel{ID: d.ID},
		CandidateName:     d.fieldValue(models.FieldName),
		Email:             d.fieldValue(models.FieldEmail),
		Phone:             d.fieldValue(models.FieldPhone),
		Position:          d.fieldValue(models.FieldPosition),
		Location:          d.fieldValue(models.FieldLocation),
		TerminationReason: d.TermReason,
		Degraded:          d.Degraded,
		FinishedAt:        time.Now(),
	}
	for _, f := range d.Fields {
		rec.Fields.Fields = append(rec.Fields.Fields, dbmodels.InterviewField{
			Key:      f.Spec.Key,
			Value:    f.Value,
			Reason:   f.Reason,
			Attempts: f.Attempts,
		})
	}
	for _, set := range d.Sets {
		for _, q := range set.Questions {
			rec.Questions.Questions = append(rec.Questions.Questions, dbmodels.InterviewQuestion{
				Technology: set.Technology,
				Text:       q.Text,
				Origin:     q.Origin,
				Answer:     q.Answer,
			})
		}
	}
	return rec
}

func messageView(d *Dialog, replies []string) screeningapimodels.MessageView {
	return screeningapimodels.MessageView{
		SessionID: d.ID,
		Replies:   replies,
		State:     d.State,
		Done:      d.State == models.StateTerminated,
	}
}
