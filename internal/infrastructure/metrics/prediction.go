// Package metrics exposes prediction outcomes as Prometheus collectors.
package metrics

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
	"github.com/prometheus/client_golang/prometheus"

	"raincast/internal/domain/entity"
)

const namespace = "raincast"

// PredictionCollector counts predictions by outcome and rejected requests by
// error code.
type PredictionCollector struct {
	predictions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	readings    prometheus.Histogram
	highestRH   prometheus.Histogram
}

// NewPredictionCollector registers the collectors on reg. Collectors already
// present on reg are reused, so two collectors built on one registry share
// their series.
func NewPredictionCollector(reg prometheus.Registerer) (*PredictionCollector, error) {
	predictions := prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Predictions served, by rain chance.",
	}, []string{"chance"})

	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
		Namespace: namespace,
		Name:      "prediction_rejections_total",
		Help:      "Prediction requests rejected, by error code.",
	}, []string{"code"})

	readings := prometheus.NewHistogram(prometheus.HistogramOpts{ //nolint:exhaustruct
		Namespace: namespace,
		Name:      "prediction_readings",
		Help:      "Readings per prediction request.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), //nolint:mnd
	})

	highestRH := prometheus.NewHistogram(prometheus.HistogramOpts{ //nolint:exhaustruct
		Namespace: namespace,
		Name:      "prediction_highest_relative_humidity",
		Help:      "Highest relative humidity of a prediction, percent.",
		Buckets:   prometheus.LinearBuckets(10, 10, 10), //nolint:mnd
	})

	var err error

	if predictions, err = register(reg, predictions); err != nil {
		return nil, err
	}

	if rejections, err = register(reg, rejections); err != nil {
		return nil, err
	}

	if readings, err = register(reg, readings); err != nil {
		return nil, err
	}

	if highestRH, err = register(reg, highestRH); err != nil {
		return nil, err
	}

	return &PredictionCollector{
		predictions: predictions,
		rejections:  rejections,
		readings:    readings,
		highestRH:   highestRH,
	}, nil
}

func (c *PredictionCollector) ObservePrediction(p entity.Prediction) {
	c.predictions.WithLabelValues(p.Chance.String()).Inc()
	c.readings.Observe(float64(len(p.SortedResults)))
	c.highestRH.Observe(p.Highest.RelativeHumidity)
}

func (c *PredictionCollector) ObserveRejection(code failure.ErrorCode) {
	c.rejections.WithLabelValues(code.String()).Inc()
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return c, fmt.Errorf("reg.Register: %w", err)
	}

	existing, ok := are.ExistingCollector.(T)
	if !ok {
		return c, fmt.Errorf("existing collector has type %T: %w", are.ExistingCollector, err)
	}

	return existing, nil
}
