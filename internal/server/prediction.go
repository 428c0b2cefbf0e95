package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"raincast/internal/domain"
	"raincast/internal/domain/entity"
	"raincast/pkg/errcodes"
	"raincast/pkg/httpx/reply"
	"raincast/pkg/httpx/req"
	"raincast/pkg/rest"
)

const homeMessage = "Raincast Predictor backend is live!"

type predictionService interface {
	Predict(context.Context, []entity.Reading) (entity.Prediction, error)
}

type predictionRecorder interface {
	ObservePrediction(entity.Prediction)
	ObserveRejection(failure.ErrorCode)
}

type PredictionServer struct {
	predictionService  predictionService
	predictionRecorder predictionRecorder
}

func NewPredictionServer(
	predictionService predictionService,
	predictionRecorder predictionRecorder,
) PredictionServer {
	return PredictionServer{
		predictionService:  predictionService,
		predictionRecorder: predictionRecorder,
	}
}

func (s PredictionServer) getHome(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Status{Message: homeMessage})

	return nil
}

func (s PredictionServer) postPredict(w http.ResponseWriter, r *http.Request) (err error) {
	ctx := r.Context()

	defer func() {
		if err != nil && failure.IsInvalidArgumentError(err) {
			s.predictionRecorder.ObserveRejection(failure.Code(err))
		}
	}()

	var request rest.PredictRequest

	if err = req.Read(
		r,
		&request,
		req.WithValidationCode(errcodes.InvalidReadingFormat),
		req.WithValidationDescription(domain.DescriptionInvalidReadingFormat),
	); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	readings, err := newDomainReadings(request.Readings)
	if err != nil {
		return fmt.Errorf("newDomainReadings: %w", err)
	}

	prediction, err := s.predictionService.Predict(ctx, readings)
	if err != nil {
		return fmt.Errorf("predictionService.Predict: %w", err)
	}

	s.predictionRecorder.ObservePrediction(prediction)

	logger(ctx).Info(
		"prediction served",
		slog.Int("readings", len(readings)),
		slog.String("chance", prediction.Chance.String()),
	)

	reply.JSON(ctx, w, http.StatusOK, newRESTPredictResponse(prediction))

	return nil
}
