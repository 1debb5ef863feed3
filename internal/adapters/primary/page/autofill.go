package page

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"train-autofill/internal/core/domain"
	ports "train-autofill/internal/core/ports/output"
	"train-autofill/internal/core/services"
)

// BindAutofill resolves the train number and name elements once and fills the
// name whenever the number loses focus.
func BindAutofill(ctx context.Context, doc *Document, client ports.TrainNameClient, logger log.FieldLogger) (*services.AutofillHandler, error) {
	numberEl, ok := doc.GetElementByID(domain.TrainNumberElementID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, domain.TrainNumberElementID)
	}
	nameEl, ok := doc.GetElementByID(domain.TrainNameElementID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, domain.TrainNameElementID)
	}

	h := services.NewAutofillHandler(numberEl, nameEl, client, logger)
	numberEl.AddEventListener(domain.EventBlur, func() { h.OnBlur(ctx) })

	return h, nil
}
