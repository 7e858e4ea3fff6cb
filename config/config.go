package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-screening" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"" env:"SMTP_FROM"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"screening-transcripts" env:"S3_BUCKET_NAME"`
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
	}
	Screening struct {
		MaxAttempts      int    `default:"2" env:"SCREENING_MAX_ATTEMPTS"`
		QuestionsPerTech int    `default:"3" env:"SCREENING_QUESTIONS_PER_TECH"`
		MaxTechnologies  int    `default:"5" env:"SCREENING_MAX_TECHNOLOGIES"`
		PhoneMinDigits   int    `default:"7" env:"SCREENING_PHONE_MIN_DIGITS"`
		PhoneMaxDigits   int    `default:"15" env:"SCREENING_PHONE_MAX_DIGITS"`
		SessionTTLMin    int    `default:"30" env:"SCREENING_SESSION_TTL_MIN"`
		KBOverlayPath    string `default:"" env:"SCREENING_KB_OVERLAY_PATH"`
	}
	Export struct {
		CsvPath string `default:"./export/interviews.csv" env:"EXPORT_CSV_PATH"`
	}
	NotifyBot struct {
		Addr string `default:"" env:"NOTIFY_BOT_ADDR"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
