package store

import (
	"context"

	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/pkg/tool"
	"github.com/fatflowers/coursehub/pkg/types"
	"gorm.io/gorm"
)

var accountColumns = map[string]bool{
	"name": true, "email": true, "role": true, "subscription_status": true, "created_at": true,
}

type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore { return &AccountStore{db: db} }

// Create prepares and inserts a new account.
func (s *AccountStore) Create(ctx context.Context, a *models.Account) error {
	if err := a.PrepareForPersistence(); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = tool.GenerateUUIDV7()
	}
	return translate(s.db.WithContext(ctx).Create(a).Error, "create account")
}

// Save prepares and writes every column of a.
func (s *AccountStore) Save(ctx context.Context, a *models.Account) error {
	if err := a.PrepareForPersistence(); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Save(a).Error, "save account")
}

func (s *AccountStore) FindByID(ctx context.Context, id string) (*models.Account, error) {
	var a models.Account
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error; err != nil {
		return nil, translate(err, "find account")
	}
	return &a, nil
}

func (s *AccountStore) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	if err := s.db.WithContext(ctx).Where("email = ?", email).Take(&a).Error; err != nil {
		return nil, translate(err, "find account by email")
	}
	return &a, nil
}

func (s *AccountStore) List(ctx context.Context, req *ListRequest) (*ListResult[models.Account], error) {
	res, err := list[models.Account](s.db.WithContext(ctx), req, accountColumns)
	return res, translate(err, "list accounts")
}

func (s *AccountStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Account{})
	if res.Error != nil {
		return translate(res.Error, "delete account")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete account")
	}
	return nil
}

func (s *AccountStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Account{}).Count(&n).Error
	return n, translate(err, "count accounts")
}

func (s *AccountStore) CountBySubscriptionStatus(ctx context.Context, status types.SubscriptionStatus) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Account{}).Where("subscription_status = ?", status).Count(&n).Error
	return n, translate(err, "count accounts by subscription status")
}
