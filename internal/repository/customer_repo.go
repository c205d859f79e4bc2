package repository

import (
	"context"

	"shopledger/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id uint) (*model.Customer, error)
	List(ctx context.Context, search string) ([]model.Customer, error)
	Save(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) FindByID(ctx context.Context, id uint) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context, search string) ([]model.Customer, error) {
	var customers []model.Customer
	q := r.db.WithContext(ctx).Model(&model.Customer{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("full_name LIKE ? OR phone_number LIKE ?", pattern, pattern)
	}
	err := q.Order("full_name ASC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Save(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *customerRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, id)
	return res.RowsAffected, res.Error
}
