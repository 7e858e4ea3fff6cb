package dadataproxy

import (
	"context"

	dadata "github.com/ekomobile/dadata/v2"
	"github.com/ekomobile/dadata/v2/api/suggest"
)

type Provider interface {
	SuggestLocation(ctx context.Context, query string) (string, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// SuggestLocation возвращает нормализованный адрес по свободному тексту кандидата.
// Ключи DaData берутся из переменных окружения DADATA_API_KEY/DADATA_SECRET_KEY
func (i impl) SuggestLocation(ctx context.Context, query string) (string, error) {
	api := dadata.NewSuggestApi()
	params := suggest.RequestParams{Query: query}
	ret, err := api.Address(ctx, &params)
	if err != nil {
		return "", err
	}
	if len(ret) == 0 {
		return "", nil
	}
	return ret[0].Value, nil
}
