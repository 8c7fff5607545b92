package delivery

import (
	"fmt"

	"posdelivery/internal/pkg/errs"
)

// PaymentMethod records how the customer pays for a delivery. It drives the
// grouping of the settlement report when couriers hand in their takings.
type PaymentMethod string

const (
	// PaymentCash means the courier collects cash on delivery.
	PaymentCash PaymentMethod = "cash"
	// PaymentTransfer means the customer paid by bank transfer or card.
	PaymentTransfer PaymentMethod = "transfer"
)

// getPaymentMethodLabels returns the map of payment methods to display labels.
func getPaymentMethodLabels() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentCash:     "Cash",
		PaymentTransfer: "Transfer",
	}
}

// Validate checks that the payment method is one of the known values.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodLabels()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a valid payment method", string(p)))
	}
	return nil
}

// Label returns the display label of the payment method.
func (p PaymentMethod) Label() string {
	if label, ok := getPaymentMethodLabels()[p]; ok {
		return label
	}
	return string(p)
}
