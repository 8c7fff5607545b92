// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"posdelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the delivery order repository within a transaction.
	OrderRepoFactory interface {
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// ZoneRepoFactory provides access to the zone repository within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// SettingsRepoFactory provides access to the settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which reads
	// the zone to apply cost and time defaults.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ZoneRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// UpdateOrderUoW manages transactions for order edits, which read the
	// zone when the order is moved to a different one.
	UpdateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ZoneRepoFactory
	}

	// UpdateOrderUoWFactory creates new order edit unit of work instances.
	UpdateOrderUoWFactory interface {
		Create() UpdateOrderUoW
	}

	// AssignUoW manages transactions for assignment, which checks the
	// courier before handing it the order.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// CompleteUoW manages transactions for completion, which reads the
	// store settings to enforce proof-of-delivery requirements.
	CompleteUoW interface {
		TxManager
		OrderRepoFactory
		SettingsRepoFactory
	}

	// CompleteUoWFactory creates new completion unit of work instances.
	CompleteUoWFactory interface {
		Create() CompleteUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// CourierSessionUoW manages transactions spanning couriers and their
	// sessions: login and token validation.
	CourierSessionUoW interface {
		TxManager
		CourierRepoFactory
		SessionRepoFactory
	}

	// CourierSessionUoWFactory creates new courier/session unit of work instances.
	CourierSessionUoWFactory interface {
		Create() CourierSessionUoW
	}

	// SessionUoW manages transactions for session-only operations.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}
)
