package commands

import (
	"errors"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrAddCommentCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrAddCommentCommandIsNotConstructed = errors.New(
	"AddCommentCommand must be created via NewAddCommentCommand constructor",
)

// AddCommentCommand appends a courier comment to an order's notes and history.
// Issued from the courier's app, so it carries the calling courier for the
// ownership check.
type AddCommentCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	courierID   kernel.UUID
	courierName string
	comment     string

	guard guard.ConstructorGuard
}

// NewAddCommentCommand creates a command to append a courier comment.
func NewAddCommentCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	courierName string,
	comment string,
) (AddCommentCommand, error) {
	cmd := AddCommentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setCourierName(courierName),
		cmd.setComment(comment),
	); err != nil {
		return AddCommentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCommentCommand) Validate() error {
	return c.guard.Validate(ErrAddCommentCommandIsNotConstructed)
}

// OrderID returns the commented order.
func (c AddCommentCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the calling courier.
func (c AddCommentCommand) CourierID() kernel.UUID { return c.courierID }

// CourierName returns the calling courier's name for the history log.
func (c AddCommentCommand) CourierName() string { return c.courierName }

// Comment returns the comment text.
func (c AddCommentCommand) Comment() string { return c.comment }

func (c *AddCommentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddCommentCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *AddCommentCommand) setCourierName(courierName string) error {
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}

	c.courierName = courierName
	return nil
}

func (c *AddCommentCommand) setComment(comment string) error {
	if comment == "" {
		return errs.NewValueIsRequiredError("comment")
	}

	c.comment = comment
	return nil
}
