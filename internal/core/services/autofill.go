package services

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"train-autofill/internal/core/domain"
	ports "train-autofill/internal/core/ports/output"
)

// AutofillHandler fills the train name field from the train number field.
//
// Every blur with a non-empty number starts its own lookup. Lookups are not
// de-duplicated or canceled, and each writes the name field when it completes,
// so the last lookup to finish decides what the field shows.
type AutofillHandler struct {
	numberField ports.Field
	nameField   ports.Field
	client      ports.TrainNameClient
	logger      log.FieldLogger

	inflight sync.WaitGroup
}

func NewAutofillHandler(numberField, nameField ports.Field, client ports.TrainNameClient, logger log.FieldLogger) *AutofillHandler {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &AutofillHandler{
		numberField: numberField,
		nameField:   nameField,
		client:      client,
		logger:      logger,
	}
}

// OnBlur captures the current train number and resolves it in the background.
// It returns before the lookup completes.
func (h *AutofillHandler) OnBlur(ctx context.Context) {
	trainNumber := h.numberField.Value()
	if trainNumber == "" {
		return
	}

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		if text, ok := h.resolve(ctx, trainNumber); ok {
			h.nameField.SetValue(text)
		}
	}()
}

// Resolve looks up trainNumber and returns the text for the name field.
func (h *AutofillHandler) Resolve(ctx context.Context, trainNumber string) string {
	text, _ := h.resolve(ctx, trainNumber)
	return text
}

// resolve reports ok == false when the lookup was abandoned because ctx
// ended, in which case nothing is written or logged.
func (h *AutofillHandler) resolve(ctx context.Context, trainNumber string) (string, bool) {
	result, err := h.client.LookupTrainName(ctx, trainNumber)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			return domain.LookupErrorText, false
		}
		h.logger.WithError(err).WithField("train_number", trainNumber).Error("error fetching train name")
		return domain.LookupErrorText, true
	}
	if result == nil {
		return domain.TrainNotFoundText, true
	}

	h.logger.WithFields(log.Fields{
		"train_number": result.TrainNumber,
		"found":        result.Found,
	}).Debug("train name resolved")

	return result.DisplayText(), true
}

// Wait blocks until every lookup started so far has written its result.
func (h *AutofillHandler) Wait() {
	h.inflight.Wait()
}
