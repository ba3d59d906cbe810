package usecase

import (
	"context"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/pkg/errors"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository, userRepo repository.UserRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, userID string, page, pageSize int) ([]*entity.Order, int64, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return uc.orderRepo.ListByUser(ctx, userID, pageSize, offset)
}

// GetOrder returns an order to its owner, or to an admin.
func (uc *OrderUseCase) GetOrder(ctx context.Context, callerID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != callerID {
		caller, err := uc.userRepo.GetByID(ctx, callerID)
		if err != nil || caller.Role != entity.RoleAdmin {
			return nil, errors.Forbidden("Not allowed to view this order", nil)
		}
	}

	return order, nil
}
