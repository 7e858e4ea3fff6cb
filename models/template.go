package models

type InterviewEmailData struct {
	CandidateName string
	Position      string
	TechStack     string
	QuestionCount int
}
