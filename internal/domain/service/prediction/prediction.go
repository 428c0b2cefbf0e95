package prediction

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"raincast/internal/domain"
	"raincast/internal/domain/entity"
	"raincast/internal/domain/service/humidity"
	"raincast/internal/domain/value"
	"raincast/pkg/contextx"
	"raincast/pkg/lox"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Service turns a series of readings into a rainfall prediction. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	policy        value.RainPolicy
	humidityCache *cache.Cache
}

func NewService(policy value.RainPolicy) *Service {
	return &Service{
		policy: policy,
	}
}

// WithHumidityCache memoizes rounded humidity per (air, dew) pair for ttl.
// A non-positive ttl leaves the cache disabled.
func (s *Service) WithHumidityCache(ttl time.Duration) *Service {
	if ttl > 0 {
		s.humidityCache = cache.New(ttl, 2*ttl) //nolint:mnd
	}

	return s
}

func (s *Service) Policy() value.RainPolicy {
	return s.policy
}

// Predict scores every reading, orders them by humidity and applies the
// rainfall rule: high chance when the highest humidity satisfies the policy
// and the last air temperature is below the first one.
func (s *Service) Predict(ctx context.Context, readings []entity.Reading) (entity.Prediction, error) {
	if len(readings) == 0 {
		return entity.Prediction{}, domain.NewEmptyReadingsError()
	}

	scored, err := lox.MapErr(readings, func(r entity.Reading, _ int) (entity.ScoredReading, error) {
		return s.score(r)
	})
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("score: %w", err)
	}

	sorted := slices.Clone(scored)
	slices.SortStableFunc(sorted, func(a, b entity.ScoredReading) int {
		return cmp.Compare(a.RelativeHumidity, b.RelativeHumidity)
	})

	highest := lo.MaxBy(scored, func(item, highest entity.ScoredReading) bool {
		return item.RelativeHumidity > highest.RelativeHumidity
	})

	first, last := readings[0], readings[len(readings)-1]
	temperatureDropping := last.AirTemp < first.AirTemp

	chance := value.RainChanceLow
	if s.policy.HumidEnough(highest.RelativeHumidity) && temperatureDropping {
		chance = value.RainChanceHigh
	}

	logger(ctx).Debug(
		"prediction computed",
		slog.Int("readings", len(readings)),
		slog.Float64("highest-rh", highest.RelativeHumidity),
		slog.Bool("temperature-dropping", temperatureDropping),
		slog.String("policy", s.policy.String()),
		slog.String("chance", chance.String()),
	)

	return entity.Prediction{
		SortedResults: sorted,
		Highest:       highest,
		Chance:        chance,
	}, nil
}

func (s *Service) score(r entity.Reading) (entity.ScoredReading, error) {
	if !isFinite(r.AirTemp) || !isFinite(r.DewPoint) {
		return entity.ScoredReading{}, domain.NewInvalidReadingFormatError(
			fmt.Errorf("non-finite reading air=%g dew=%g", r.AirTemp, r.DewPoint),
		)
	}

	rh, err := s.relativeHumidity(r)
	if err != nil {
		return entity.ScoredReading{}, err
	}

	return entity.ScoredReading{
		Reading:          r,
		RelativeHumidity: rh,
	}, nil
}

func (s *Service) relativeHumidity(r entity.Reading) (float64, error) {
	if s.humidityCache == nil {
		return humidity.RelativeRounded(r.AirTemp, r.DewPoint)
	}

	key := strconv.FormatFloat(r.AirTemp, 'g', -1, 64) + "/" + strconv.FormatFloat(r.DewPoint, 'g', -1, 64)

	if rh, ok := s.humidityCache.Get(key); ok {
		return rh.(float64), nil //nolint:forcetypeassert
	}

	rh, err := humidity.RelativeRounded(r.AirTemp, r.DewPoint)
	if err != nil {
		return 0, err
	}

	s.humidityCache.SetDefault(key, rh)

	return rh, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
