package commands

import (
	"errors"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrRateDeliveryCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrRateDeliveryCommandIsNotConstructed = errors.New(
	"RateDeliveryCommand must be created via NewRateDeliveryCommand constructor",
)

// RateDeliveryCommand records the customer's score for a completed delivery,
// collected by staff when the store follows up on the order.
type RateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	rating  int
	comment string

	guard guard.ConstructorGuard
}

// NewRateDeliveryCommand creates a command to rate a delivery. The rating
// must fall within the accepted range.
func NewRateDeliveryCommand(orderID kernel.UUID, rating int, comment string) (RateDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RateDeliveryCommand{}, err
	}

	if rating < delivery.RatingMin || rating > delivery.RatingMax {
		return RateDeliveryCommand{}, errs.NewValueIsOutOfRangeError(
			"rating", rating, delivery.RatingMin, delivery.RatingMax)
	}

	return RateDeliveryCommand{
		orderID: orderID,
		rating:  rating,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRateDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to rate.
func (c RateDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// Rating returns the customer's score.
func (c RateDeliveryCommand) Rating() int { return c.rating }

// Comment returns the customer's comment, empty when none.
func (c RateDeliveryCommand) Comment() string { return c.comment }
