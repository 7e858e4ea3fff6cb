package dbmodels

type AiLog struct {
	BaseModel
	SysPromt   string       `comment:"System промт"`
	UserPromt  string       `comment:"User промт"`
	Answer     string       `comment:"Ответ ИИ"`
	SessionID  string       `gorm:"type:varchar(36);index" comment:"Идентификатор сессии скрининга"`
	ReqestType AiReqestType `gorm:"type:varchar(255)" comment:"Тип запроса к ИИ"`
	AiName     AiName       `gorm:"type:varchar(255)" comment:"Название ИИ"`
}

type AiName string

const (
	AiYaGptType AiName = "yandexgpt"
)

type AiReqestType string

const (
	AiTechQuestionsType      AiReqestType = "TechQuestions"
	AiExtraTechQuestionsType AiReqestType = "ExtraTechQuestions"
	AiAcknowledgementType    AiReqestType = "Acknowledgement"
	AiFarewellType           AiReqestType = "Farewell"
)
