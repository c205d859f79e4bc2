package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"shopledger/internal/dto"
	"shopledger/internal/infra"
	"shopledger/internal/model"
	"shopledger/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledgerFixture wires the real repositories and services over a throwaway
// SQLite file, exercising the actual transaction and conditional-update paths
// the stub tests cannot reach.
type ledgerFixture struct {
	inventory InventoryService
	sales     SaleService
	dues      DuesService
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	db, err := infra.NewDatabase(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)

	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	duesRepo := repository.NewDuesRepository(db)

	inventory := NewInventoryService(productRepo)
	return &ledgerFixture{
		inventory: inventory,
		sales:     NewSaleService(saleRepo, inventory),
		dues:      NewDuesService(saleRepo, duesRepo),
	}
}

func (f *ledgerFixture) addProduct(t *testing.T, id string, warehouse, store int) {
	t.Helper()
	_, err := f.inventory.AddProduct(context.Background(), dto.AddProductRequest{
		ID:                id,
		Name:              "Gear Oil 80W90",
		Company:           "Shell",
		CostPrice:         decimal.NewFromInt(100),
		Quantity:          warehouse + store,
		WarehouseQuantity: intPtr(warehouse),
		StoreQuantity:     intPtr(store),
	})
	require.NoError(t, err)
}

func TestSaleRollsBackOnInsufficientStock(t *testing.T) {
	f := newLedgerFixture(t)
	f.addProduct(t, "P1", 50, 2)

	_, err := f.sales.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeRetail,
		ProductID:    "P1",
		ProductName:  "Gear Oil 80W90",
		SellingPrice: decimal.NewFromInt(150),
		CostPrice:    decimal.NewFromInt(100),
		Quantity:     5,
		PaidAmount:   decimal.NewFromInt(750),
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// The transaction rolled the sale row back along with the deduction.
	sales, err := f.sales.SalesByDateRange(context.Background(),
		mustDay(t, "2000-01-01"), mustDay(t, "2100-01-01"), "")
	require.NoError(t, err)
	assert.Empty(t, sales)

	p, err := f.inventory.GetProduct(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.StoreQuantity)
	assert.Equal(t, 52, p.Quantity)
}

func TestWholesaleSaleFeedsDuesLedger(t *testing.T) {
	f := newLedgerFixture(t)
	f.addProduct(t, "P1", 0, 20)

	_, err := f.sales.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeWholesale,
		ProductID:    "P1",
		ProductName:  "Gear Oil 80W90",
		SellingPrice: decimal.NewFromInt(140),
		CostPrice:    decimal.NewFromInt(100),
		Quantity:     10,
		PaidAmount:   decimal.NewFromInt(1000),
		CustomerName: strPtr("Ali"),
	})
	require.NoError(t, err)

	remaining, err := f.dues.CustomerDuesByName(context.Background(), "Ali")
	require.NoError(t, err)
	assert.True(t, remaining.Equal(decimal.NewFromInt(400)), "got %s", remaining)

	require.NoError(t, f.dues.AddPayment(context.Background(), dto.AddPaymentRequest{
		CustomerName: "Ali",
		Amount:       decimal.NewFromInt(150),
	}))

	remaining, err = f.dues.CustomerDuesByName(context.Background(), "Ali")
	require.NoError(t, err)
	assert.True(t, remaining.Equal(decimal.NewFromInt(250)), "got %s", remaining)

	board, err := f.dues.CustomerDuesWithPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "Ali", board[0].CustomerName)
	assert.True(t, board[0].RemainingDue.Equal(decimal.NewFromInt(250)))

	// Settle in full: the customer falls off the board.
	require.NoError(t, f.dues.AddPayment(context.Background(), dto.AddPaymentRequest{
		CustomerName: "Ali",
		Amount:       decimal.NewFromInt(250),
	}))
	board, err = f.dues.CustomerDuesWithPayments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, board)
}

func TestRetailSalesNeverAppearOnDuesBoard(t *testing.T) {
	f := newLedgerFixture(t)
	f.addProduct(t, "P1", 0, 20)

	// Unpaid retail amounts are walk-away losses, not tracked dues.
	_, err := f.sales.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeRetail,
		ProductID:    "P1",
		ProductName:  "Gear Oil 80W90",
		SellingPrice: decimal.NewFromInt(150),
		Quantity:     2,
		PaidAmount:   decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	board, err := f.dues.CustomerDuesWithPayments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, board)
}

func TestTransferThenSaleAcrossRealStore(t *testing.T) {
	f := newLedgerFixture(t)
	f.addProduct(t, "P1", 10, 0)

	// Nothing on the store floor yet: the sale must fail.
	_, err := f.sales.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeRetail,
		ProductID:    "P1",
		ProductName:  "Gear Oil 80W90",
		SellingPrice: decimal.NewFromInt(150),
		Quantity:     1,
		PaidAmount:   decimal.NewFromInt(150),
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	_, err = f.inventory.Transfer(context.Background(), "P1", dto.TransferRequest{
		From:     repository.LocationWarehouse,
		To:       repository.LocationStore,
		Quantity: 4,
	})
	require.NoError(t, err)

	resp, err := f.sales.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeRetail,
		ProductID:    "P1",
		ProductName:  "Gear Oil 80W90",
		SellingPrice: decimal.NewFromInt(150),
		CostPrice:    decimal.NewFromInt(100),
		Quantity:     3,
		PaidAmount:   decimal.NewFromInt(450),
	})
	require.NoError(t, err)
	assert.True(t, resp.Profit.Equal(decimal.NewFromInt(150)))

	p, err := f.inventory.GetProduct(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, 6, p.WarehouseQuantity)
	assert.Equal(t, 1, p.StoreQuantity)
	assert.Equal(t, 7, p.Quantity)
}

func TestLowStockFiltersAndOrdersByStoreQuantity(t *testing.T) {
	f := newLedgerFixture(t)
	f.addProduct(t, "plenty", 0, 50)
	f.addProduct(t, "low", 0, 7)
	f.addProduct(t, "empty", 10, 0)
	f.addProduct(t, "edge", 0, 10)

	got, err := f.inventory.LowStock(context.Background(), 10, repository.LocationStore)
	require.NoError(t, err)

	// Only store_quantity <= 10, ascending by store_quantity; the threshold
	// itself is included and warehouse stock is irrelevant.
	require.Len(t, got, 3)
	assert.Equal(t, "empty", got[0].ID)
	assert.Equal(t, "low", got[1].ID)
	assert.Equal(t, "edge", got[2].ID)
}

func mustDay(t *testing.T, s string) (ts time.Time) {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02", s, time.Local)
	require.NoError(t, err)
	return ts
}
