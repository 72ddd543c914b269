// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"aiddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// LotRepoFactory provides access to the lot repository within a transaction.
	LotRepoFactory interface {
		LotRepository() ports.LotRepository
	}

	// MovementRepoFactory provides access to the stock ledger within a transaction.
	MovementRepoFactory interface {
		MovementRepository() ports.MovementRepository
	}

	// KitRepoFactory provides access to the kit repository within a transaction.
	KitRepoFactory interface {
		KitRepository() ports.KitRepository
	}

	// DeliveryUoW manages transactions for delivery-only operations: the
	// workflow transitions that touch no other aggregate.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CreationUoW manages transactions for delivery creation, which reads
	// the owning request while writing the new delivery.
	CreationUoW interface {
		TxManager
		DeliveryRepoFactory
		RequestRepoFactory
	}

	// CreationUoWFactory creates new creation unit of work instances.
	CreationUoWFactory interface {
		Create() CreationUoW
	}

	// AllocationUoW manages transactions for stock allocation: the delivery
	// transition, the lot decrements, and the EXIT ledger entries commit or
	// roll back as one.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	err := uow.Begin(ctx)
	//	defer uow.Rollback(ctx)
	//
	//	deliveryRepo := uow.DeliveryRepository()
	//	lotRepo := uow.LotRepository()
	//	// ... plan and persist the allocation
	//
	//	err = uow.Commit(ctx)
	AllocationUoW interface {
		TxManager
		DeliveryRepoFactory
		LotRepoFactory
		MovementRepoFactory
		KitRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// FulfillmentUoW manages transactions for delivery completion, which
	// updates the delivery and the owning request's fulfillment together.
	FulfillmentUoW interface {
		TxManager
		DeliveryRepoFactory
		RequestRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// CancellationUoW manages transactions for cancellation, which reverses
	// any drawn stock alongside the delivery's own transition.
	CancellationUoW interface {
		TxManager
		DeliveryRepoFactory
		LotRepoFactory
		MovementRepoFactory
	}

	// CancellationUoWFactory creates new cancellation unit of work instances.
	CancellationUoWFactory interface {
		Create() CancellationUoW
	}
)
