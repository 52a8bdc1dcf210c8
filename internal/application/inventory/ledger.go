package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// IncreaseStock applies a positive ledger mutation and appends its movement
// record. The stock row is created on first use and locked for the rest of
// the caller's transaction, so both repositories must be bound to the same
// transaction.
func IncreaseStock(
	ctx context.Context,
	stocks warehouse.StockRepository,
	movements warehouse.ProductMovementRepository,
	warehouseID, productID uuid.UUID,
	quantity decimal.Decimal,
	movementType warehouse.MovementType,
	documentType string,
	documentID uuid.UUID,
	actor shared.Actor,
) error {
	stock, err := stocks.GetOrCreateForUpdate(ctx, warehouseID, productID)
	if err != nil {
		return err
	}

	before := stock.Quantity
	if err := stock.Increase(quantity); err != nil {
		return err
	}
	if err := stocks.Save(ctx, stock); err != nil {
		return err
	}

	movement, err := warehouse.NewProductMovement(
		productID, warehouseID, movementType, documentType, documentID,
		quantity, before, stock.Quantity, actor,
	)
	if err != nil {
		return err
	}
	return movements.Create(ctx, movement)
}

// DecreaseStock applies a negative ledger mutation and appends its movement
// record. A missing or short stock row fails with the insufficient stock
// error before anything is written.
func DecreaseStock(
	ctx context.Context,
	stocks warehouse.StockRepository,
	movements warehouse.ProductMovementRepository,
	warehouseID, productID uuid.UUID,
	quantity decimal.Decimal,
	movementType warehouse.MovementType,
	documentType string,
	documentID uuid.UUID,
	actor shared.Actor,
) error {
	stock, err := stocks.GetOrCreateForUpdate(ctx, warehouseID, productID)
	if err != nil {
		return err
	}

	before := stock.Quantity
	if err := stock.Decrease(quantity); err != nil {
		return err
	}
	if err := stocks.Save(ctx, stock); err != nil {
		return err
	}

	movement, err := warehouse.NewProductMovement(
		productID, warehouseID, movementType, documentType, documentID,
		quantity, before, stock.Quantity, actor,
	)
	if err != nil {
		return err
	}
	return movements.Create(ctx, movement)
}
