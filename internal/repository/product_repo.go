package repository

import (
	"context"
	"fmt"

	"shopledger/internal/model"

	"gorm.io/gorm"
)

// Stock locations a product's quantity is partitioned across.
const (
	LocationWarehouse = "warehouse"
	LocationStore     = "store"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, search string) ([]model.Product, error)
	Save(ctx context.Context, p *model.Product) error
	// Delete returns the number of rows removed so the service can turn a
	// zero into an explicit not-found error.
	Delete(ctx context.Context, id string) (int64, error)
	LowStock(ctx context.Context, threshold int, location string) ([]model.Product, error)

	// Conditional stock updates. Both guard the source quantity in the WHERE
	// clause and report RowsAffected, so a stale read can never drive stock
	// negative. Used inside transactions — callers pass the live tx.
	TransferStockTx(tx *gorm.DB, id, from, to string, qty int) (int64, error)
	DeductSaleStockTx(tx *gorm.DB, id string, qty int) (int64, error)
	FindByIDTx(tx *gorm.DB, id string) (*model.Product, error)

	// AddWarehouseStock books a purchase: qty goes to the warehouse and the
	// total, the store split is untouched.
	AddWarehouseStock(ctx context.Context, id string, qty int) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByIDTx(tx *gorm.DB, id string) (*model.Product, error) {
	var p model.Product
	err := tx.Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, search string) ([]model.Product, error) {
	var products []model.Product
	q := r.db.WithContext(ctx).Model(&model.Product{})
	if search != "" {
		// SQLite LIKE is case-insensitive for ASCII, matching the
		// case-insensitive name/company collation of the schema.
		pattern := "%" + search + "%"
		q = q.Where("name LIKE ? OR company LIKE ?", pattern, pattern)
	}
	err := q.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Save(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

func (r *productRepo) LowStock(ctx context.Context, threshold int, location string) ([]model.Product, error) {
	col, err := locationColumn(location)
	if err != nil {
		return nil, err
	}
	var products []model.Product
	findErr := r.db.WithContext(ctx).
		Where(fmt.Sprintf("%s <= ?", col), threshold).
		Order(col + " ASC").
		Find(&products).Error
	return products, findErr
}

func (r *productRepo) TransferStockTx(tx *gorm.DB, id, from, to string, qty int) (int64, error) {
	fromCol, err := locationColumn(from)
	if err != nil {
		return 0, err
	}
	toCol, err := locationColumn(to)
	if err != nil {
		return 0, err
	}
	res := tx.Model(&model.Product{}).
		Where(fmt.Sprintf("id = ? AND %s >= ?", fromCol), id, qty).
		Updates(map[string]interface{}{
			fromCol: gorm.Expr(fromCol+" - ?", qty),
			toCol:   gorm.Expr(toCol+" + ?", qty),
		})
	return res.RowsAffected, res.Error
}

func (r *productRepo) DeductSaleStockTx(tx *gorm.DB, id string, qty int) (int64, error) {
	// Sales draw from store stock only. Total and store move together so the
	// location-split invariant survives the deduction.
	res := tx.Model(&model.Product{}).
		Where("id = ? AND store_quantity >= ?", id, qty).
		Updates(map[string]interface{}{
			"store_quantity": gorm.Expr("store_quantity - ?", qty),
			"quantity":       gorm.Expr("quantity - ?", qty),
		})
	return res.RowsAffected, res.Error
}

func (r *productRepo) AddWarehouseStock(ctx context.Context, id string, qty int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"warehouse_quantity": gorm.Expr("warehouse_quantity + ?", qty),
			"quantity":           gorm.Expr("quantity + ?", qty),
		})
	return res.RowsAffected, res.Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }

// locationColumn maps a location name to its quantity column. The whitelist
// doubles as SQL-injection protection since the column is interpolated.
func locationColumn(location string) (string, error) {
	switch location {
	case LocationWarehouse:
		return "warehouse_quantity", nil
	case LocationStore:
		return "store_quantity", nil
	default:
		return "", fmt.Errorf("unknown location %q", location)
	}
}
