package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrRohit-01/barcode-stock-system/internal/application/inventory"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeDB struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.InventoryMovement
}

type fakeProductRepo struct{ db *fakeDB }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.db.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.db.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error)     { return nil, nil }
func (r *fakeProductRepo) GetByBarcode(string) (*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (r *fakeProductRepo) UpdateStock(productID string, quantity decimal.Decimal) error {
	p, ok := r.db.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *fakeProductRepo) List(string, int, int) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.db.products {
		if p.IsLowStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(string) error { return nil }

type fakeMovementRepo struct{ db *fakeDB }

var _ repository.InventoryMovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	cp := *m
	r.db.movements = append(r.db.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(string) (*entity.InventoryMovement, error) { return nil, nil }

func (r *fakeMovementRepo) List(productID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.db.movements {
		if productID == "" || m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner serializa con un mutex y restaura el estado si fn falla.
type fakeTxRunner struct{ db *fakeDB }

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tr.db.mu.Lock()
	defer tr.db.mu.Unlock()

	snapProducts := make(map[string]entity.Product, len(tr.db.products))
	for id, p := range tr.db.products {
		snapProducts[id] = *p
	}
	snapMovements := len(tr.db.movements)

	if err := fn(&fakeMovementRepo{db: tr.db}, &fakeProductRepo{db: tr.db}); err != nil {
		for id, p := range snapProducts {
			cp := p
			tr.db.products[id] = &cp
		}
		tr.db.movements = tr.db.movements[:snapMovements]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID = "00000000-0000-0000-0000-000000000001"
	testUserID    = "00000000-0000-0000-0000-0000000000aa"
)

func buildUseCase(stock, minStock int64) (*inventory.RecordMovementUseCase, *fakeDB) {
	db := &fakeDB{products: map[string]*entity.Product{
		testProductID: {
			ID:            testProductID,
			Name:          "Leche Entera 1L",
			SKU:           "LEC-001",
			Barcode:       "7701234567892",
			PriceRetail:   decimal.NewFromInt(2),
			StockQuantity: decimal.NewFromInt(stock),
			MinStockLevel: decimal.NewFromInt(minStock),
			Status:        entity.ProductStatusActive,
		},
	}}
	uc := inventory.NewRecordMovementUseCase(
		&fakeTxRunner{db: db}, &fakeProductRepo{db: db}, &fakeMovementRepo{db: db},
	)
	return uc, db
}

func movementInput(typ, reason string, qty int64) inventory.MovementInput {
	return inventory.MovementInput{
		UserID:    testUserID,
		ProductID: testProductID,
		Type:      typ,
		Quantity:  decimal.NewFromInt(qty),
		Reason:    reason,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_EntradaSumaStock(t *testing.T) {
	uc, db := buildUseCase(10, 2)

	mov, err := uc.RecordMovement(context.Background(),
		movementInput(entity.MovementTypeIn, entity.MovementReasonPurchase, 5))
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.True(t, db.products[testProductID].StockQuantity.Equal(decimal.NewFromInt(15)),
		"entrada de 5 sobre 10 debe dejar 15")
	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(5)),
		"la cantidad del movimiento siempre es positiva")
	assert.Equal(t, testUserID, mov.PerformedBy)
	require.Len(t, db.movements, 1)
}

func TestRecordMovement_SalidaRestaStock(t *testing.T) {
	uc, db := buildUseCase(10, 2)

	_, err := uc.RecordMovement(context.Background(),
		movementInput(entity.MovementTypeOut, entity.MovementReasonAdjustment, 4))
	require.NoError(t, err)

	assert.True(t, db.products[testProductID].StockQuantity.Equal(decimal.NewFromInt(6)))
}

// Una salida que dejaría stock negativo se rechaza y no toca nada.
func TestRecordMovement_SalidaMayorQueStock_Rechazada(t *testing.T) {
	uc, db := buildUseCase(3, 2)

	_, err := uc.RecordMovement(context.Background(),
		movementInput(entity.MovementTypeOut, entity.MovementReasonSale, 5))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, db.products[testProductID].StockQuantity.Equal(decimal.NewFromInt(3)),
		"el stock no debe cambiar tras un rechazo")
	assert.Empty(t, db.movements, "no debe registrarse el movimiento rechazado")
}

// La salida del stock exacto es válida y deja el stock en cero.
func TestRecordMovement_SalidaDelStockExacto(t *testing.T) {
	uc, db := buildUseCase(3, 2)

	_, err := uc.RecordMovement(context.Background(),
		movementInput(entity.MovementTypeOut, entity.MovementReasonSale, 3))
	require.NoError(t, err)
	assert.True(t, db.products[testProductID].StockQuantity.Equal(decimal.Zero))
}

func TestRecordMovement_Validaciones(t *testing.T) {
	uc, _ := buildUseCase(10, 2)
	ctx := context.Background()

	cases := []struct {
		name string
		in   inventory.MovementInput
	}{
		{"tipo inválido", movementInput("transfer", entity.MovementReasonSale, 1)},
		{"motivo inválido", movementInput(entity.MovementTypeIn, "regalo", 1)},
		{"cantidad cero", movementInput(entity.MovementTypeIn, entity.MovementReasonPurchase, 0)},
		{"cantidad negativa", movementInput(entity.MovementTypeIn, entity.MovementReasonPurchase, -3)},
		{"sin producto", inventory.MovementInput{UserID: testUserID, Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(1), Reason: entity.MovementReasonPurchase}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordMovement(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRecordMovement_ProductoInexistente(t *testing.T) {
	uc, _ := buildUseCase(10, 2)

	in := movementInput(entity.MovementTypeOut, entity.MovementReasonSale, 1)
	in.ProductID = "no-existe"
	_, err := uc.RecordMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSaleOutInTx — el camino que usa el checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSaleOutInTx_DescuentaYRegistraMovimiento(t *testing.T) {
	uc, db := buildUseCase(10, 2)

	product, err := uc.RecordSaleOutInTx(
		&fakeMovementRepo{db: db}, &fakeProductRepo{db: db},
		testProductID, testUserID, "TXN123",
		decimal.NewFromInt(4), time.Now(),
	)
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.True(t, product.StockQuantity.Equal(decimal.NewFromInt(6)),
		"el producto devuelto trae el stock ya descontado")
	assert.Equal(t, "LEC-001", product.SKU, "devuelve el snapshot para la línea de venta")

	require.Len(t, db.movements, 1)
	assert.Equal(t, entity.MovementReasonSale, db.movements[0].Reason)
	assert.Equal(t, "TXN123", db.movements[0].Reference)
}

func TestRecordSaleOutInTx_StockInsuficiente(t *testing.T) {
	uc, db := buildUseCase(2, 1)

	_, err := uc.RecordSaleOutInTx(
		&fakeMovementRepo{db: db}, &fakeProductRepo{db: db},
		testProductID, testUserID, "TXN123",
		decimal.NewFromInt(3), time.Now(),
	)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, db.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LowStock
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_ProductoEnUmbral(t *testing.T) {
	uc, _ := buildUseCase(5, 2)

	// 5 > 2: todavía no está bajo
	low, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	assert.Empty(t, low)

	// Tras vender 3 queda 2 == umbral: ya cuenta como stock bajo
	_, err = uc.RecordMovement(context.Background(),
		movementInput(entity.MovementTypeOut, entity.MovementReasonSale, 3))
	require.NoError(t, err)

	low, err = uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, testProductID, low[0].ID)
}
