package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"raincast/internal/domain/entity"
	"raincast/internal/domain/value"
	"raincast/internal/infrastructure/metrics"
	"raincast/pkg/errcodes"
)

func TestPredictionCollector(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()

	collector, err := metrics.NewPredictionCollector(reg)
	rq.NoError(err)

	collector.ObservePrediction(entity.Prediction{
		SortedResults: make([]entity.ScoredReading, 3),
		Highest:       entity.ScoredReading{RelativeHumidity: 93.88},
		Chance:        value.RainChanceHigh,
	})
	collector.ObservePrediction(entity.Prediction{
		SortedResults: make([]entity.ScoredReading, 1),
		Highest:       entity.ScoredReading{RelativeHumidity: 33.06},
		Chance:        value.RainChanceLow,
	})
	collector.ObserveRejection(errcodes.EmptyReadings)
	collector.ObserveRejection(errcodes.EmptyReadings)

	rq.Equal(2, testutil.CollectAndCount(reg, "raincast_predictions_total"))

	families, err := reg.Gather()
	rq.NoError(err)

	counts := map[string]float64{}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case "raincast_predictions_total", "raincast_prediction_rejections_total":
				counts[mf.GetName()+"/"+m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
			case "raincast_prediction_readings", "raincast_prediction_highest_relative_humidity":
				counts[mf.GetName()] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	rq.Equal(map[string]float64{
		"raincast_predictions_total/HIGH_RAIN":               1,
		"raincast_predictions_total/LOW_RAIN":                1,
		"raincast_prediction_rejections_total/EmptyReadings": 2,
		"raincast_prediction_readings":                       2,
		"raincast_prediction_highest_relative_humidity":      2,
	}, counts)
}

func TestPredictionCollectorReusesRegistered(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()

	first, err := metrics.NewPredictionCollector(reg)
	rq.NoError(err)

	second, err := metrics.NewPredictionCollector(reg)
	rq.NoError(err)

	first.ObserveRejection(errcodes.InvalidReadingFormat)
	second.ObserveRejection(errcodes.InvalidReadingFormat)

	rq.Equal(1, testutil.CollectAndCount(reg, "raincast_prediction_rejections_total"))
}
