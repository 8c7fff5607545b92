package commands

import (
	"errors"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCreateDeliveryOrderCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
	"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
)

// CreateDeliveryOrderCommand represents a request to register a new delivery
// order from the point of sale. Required details go through the constructor;
// optional ones are attached afterwards with the Set methods before the
// command is handled.
type CreateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	deliveryAddress string
	deliveryPhone   string
	priority        delivery.Priority
	paymentMethod   delivery.PaymentMethod

	posOrderRef   string
	customerNotes string
	zoneID        *kernel.UUID
	cost          *decimal.Decimal
	location      *kernel.GeoLocation

	guard guard.ConstructorGuard
}

// NewCreateDeliveryOrderCommand creates a command to register a new delivery
// order. Validates that the order ID is valid, the customer name and address
// are present, and the priority and payment method are known values.
func NewCreateDeliveryOrderCommand(
	orderID kernel.UUID,
	customerName string,
	deliveryAddress string,
	deliveryPhone string,
	priority delivery.Priority,
	paymentMethod delivery.PaymentMethod,
) (CreateDeliveryOrderCommand, error) {
	cmd := CreateDeliveryOrderCommand{
		deliveryPhone: deliveryPhone,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPriority(priority),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateDeliveryOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerName returns the customer's name.
func (c CreateDeliveryOrderCommand) CustomerName() string { return c.customerName }

// DeliveryAddress returns the destination address.
func (c CreateDeliveryOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// DeliveryPhone returns the customer's phone number.
func (c CreateDeliveryOrderCommand) DeliveryPhone() string { return c.deliveryPhone }

// Priority returns the requested priority.
func (c CreateDeliveryOrderCommand) Priority() delivery.Priority { return c.priority }

// PaymentMethod returns how the customer pays.
func (c CreateDeliveryOrderCommand) PaymentMethod() delivery.PaymentMethod { return c.paymentMethod }

// PosOrderRef returns the linked point-of-sale order reference.
func (c CreateDeliveryOrderCommand) PosOrderRef() string { return c.posOrderRef }

// CustomerNotes returns the delivery instructions.
func (c CreateDeliveryOrderCommand) CustomerNotes() string { return c.customerNotes }

// ZoneID returns the requested delivery zone, nil when none.
func (c CreateDeliveryOrderCommand) ZoneID() *kernel.UUID { return c.zoneID }

// Cost returns the explicit delivery fee, nil to use the zone default.
func (c CreateDeliveryOrderCommand) Cost() *decimal.Decimal { return c.cost }

// Location returns the geocoded delivery address, nil when not geocoded.
func (c CreateDeliveryOrderCommand) Location() *kernel.GeoLocation { return c.location }

// SetPosOrderRef links the order to a point-of-sale order reference.
func (c *CreateDeliveryOrderCommand) SetPosOrderRef(ref string) {
	c.posOrderRef = ref
}

// SetCustomerNotes attaches the customer's delivery instructions.
func (c *CreateDeliveryOrderCommand) SetCustomerNotes(notes string) {
	c.customerNotes = notes
}

// SetZoneID requests a delivery zone whose defaults apply to the order.
func (c *CreateDeliveryOrderCommand) SetZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = &zoneID
	return nil
}

// SetCost sets an explicit delivery fee overriding the zone default.
func (c *CreateDeliveryOrderCommand) SetCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("cost")
	}

	c.cost = &cost
	return nil
}

// SetLocation attaches the geocoded position of the delivery address.
func (c *CreateDeliveryOrderCommand) SetLocation(latitude, longitude float64) error {
	location, err := kernel.NewGeoLocation(latitude, longitude)
	if err != nil {
		return err
	}

	c.location = &location
	return nil
}

func (c *CreateDeliveryOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateDeliveryOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateDeliveryOrderCommand) setPriority(priority delivery.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateDeliveryOrderCommand) setPaymentMethod(paymentMethod delivery.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
