package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hirelens/hirelens/internal/cache"
	"github.com/hirelens/hirelens/internal/providers/proxycurl"
	"github.com/hirelens/hirelens/internal/utils"
)

const creditCacheKey = "proxycurl:credit-balance"
const creditCacheTTL = time.Minute

type CreditProvider interface {
	GetCreditBalance(ctx context.Context) (*proxycurl.CreditBalance, error)
}

type CreditService interface {
	Balance(ctx context.Context) (*proxycurl.CreditBalance, error)
}

type creditService struct {
	provider CreditProvider
	cache    cache.Cache
	log      *logrus.Logger
}

func NewCreditService(provider CreditProvider, c cache.Cache, log *logrus.Logger) CreditService {
	if c == nil {
		c = cache.Noop{}
	}
	return &creditService{provider: provider, cache: c, log: log}
}

func (s *creditService) Balance(ctx context.Context) (*proxycurl.CreditBalance, error) {
	const op = "CreditService.Balance"

	var cached proxycurl.CreditBalance
	if hit, err := s.cache.GetJSON(ctx, creditCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	cb, err := s.provider.GetCreditBalance(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch credit balance", err)
	}

	if err := s.cache.SetJSON(ctx, creditCacheKey, cb, creditCacheTTL); err != nil {
		s.log.WithError(err).Debug("failed to cache credit balance")
	}
	return cb, nil
}
