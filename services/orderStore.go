package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/trackpro/trackpro-api/models"
)

// GormOrderStore persists orders and their items to MySQL.
type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// CreateOrder writes the order row and one row per line item in a
// single transaction. The unique index on payment_intent_id makes a
// racing duplicate insert fail instead of creating a second order.
func (s *GormOrderStore) CreateOrder(ctx context.Context, order *models.Order) error {
	items := order.OrderItems
	order.OrderItems = nil

	tx := s.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return err
	}

	for i := range items {
		items[i].OrderID = int(order.ID)
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	order.OrderItems = items
	return nil
}

// FindOrderByPaymentIntent returns nil without an error when no order
// exists for the intent yet.
func (s *GormOrderStore) FindOrderByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("OrderItems").
		Where("payment_intent_id = ?", paymentIntentID).
		First(&order).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}
