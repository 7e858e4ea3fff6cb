package messagetemplate

import (
	"bytes"
	"html/template"
	"os"
	"strings"

	"github.com/pkg/errors"

	"hr-screening-bot/models"
)

const interviewCompleteTitle = "Скрининг пройден"

func BuildInterviewCompleteMsg(data models.InterviewEmailData) (string, error) {
	tpl, err := getTemplate("static/interview_complete.html", true)
	if err != nil {
		return "", err
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func GetInterviewCompleteTitle() string {
	return interviewCompleteTitle
}

func getTemplate(filePath string, isHtml bool) (*template.Template, error) {
	tmplBody, err := getTplFile(filePath)
	if err != nil {
		return nil, err
	}
	var body string
	if isHtml {
		body = strings.Replace(string(tmplBody), "\n", "", -1)
	} else {
		body = string(tmplBody)
	}

	tpl, err := template.New("msg_body").Parse(body)
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

func getTplFile(filePath string) ([]byte, error) {
	body, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения файла шаблона %v", filePath)
	}
	return body, nil
}
