package store

import (
	"context"

	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/pkg/tool"
	"gorm.io/gorm"
)

// PaymentStore persists ledger entries keyed by gateway ids.
type PaymentStore struct {
	db *gorm.DB
}

func NewPaymentStore(db *gorm.DB) *PaymentStore { return &PaymentStore{db: db} }

func (s *PaymentStore) Create(ctx context.Context, p *models.Payment) error {
	if p.ID == "" {
		p.ID = tool.GenerateUUIDV7()
	}
	return translate(s.db.WithContext(ctx).Create(p).Error, "create payment")
}

func (s *PaymentStore) FindBySubscriptionID(ctx context.Context, subscriptionID string) (*models.Payment, error) {
	var p models.Payment
	err := s.db.WithContext(ctx).Where("razorpay_subscription_id = ?", subscriptionID).Take(&p).Error
	if err != nil {
		return nil, translate(err, "find payment by subscription")
	}
	return &p, nil
}

func (s *PaymentStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Payment{})
	if res.Error != nil {
		return translate(res.Error, "delete payment")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete payment")
	}
	return nil
}
