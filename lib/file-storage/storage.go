package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"hr-screening-bot/config"
)

type Provider interface {
	UploadTranscript(ctx context.Context, interviewID string, data []byte) error
	GetTranscript(ctx context.Context, interviewID string) ([]byte, error)
}

var Instance Provider

type impl struct {
	s3client *minio.Client
}

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

func (i impl) UploadTranscript(ctx context.Context, interviewID string, data []byte) error {
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, transcriptObjectName(interviewID),
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки стенограммы в S3")
	}
	return nil
}

func (i impl) GetTranscript(ctx context.Context, interviewID string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, transcriptObjectName(interviewID), minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения стенограммы из S3")
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения стенограммы")
	}
	return data, nil
}

func transcriptObjectName(interviewID string) string {
	return fmt.Sprintf("transcripts/%s.json", interviewID)
}
