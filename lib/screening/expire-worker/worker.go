package expireworker

import (
	"context"
	"time"

	"hr-screening-bot/lib/screening"
	baseworker "hr-screening-bot/lib/utils/base-worker"
)

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("ScreeningExpireWorker", 15*time.Second, 1*time.Minute),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
}

func (i impl) handle(ctx context.Context) {
	screening.Instance.ExpireIdle(ctx)
}
