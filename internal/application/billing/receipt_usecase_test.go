package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrRohit-01/barcode-stock-system/internal/application/billing"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
)

// stubGenerator captura los argumentos y devuelve bytes fijos.
type stubGenerator struct {
	lastTx      *entity.Transaction
	lastCashier string
	lastStore   billing.StoreInfo
}

var _ billing.ReceiptPDFGenerator = (*stubGenerator)(nil)

func (g *stubGenerator) GenerateReceiptPDF(_ context.Context, tx *entity.Transaction, cashierName string, store billing.StoreInfo) ([]byte, error) {
	g.lastTx = tx
	g.lastCashier = cashierName
	g.lastStore = store
	return []byte("%PDF-fake"), nil
}

// stubUserRepo resuelve el cajero por ID.
type stubUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func (r *stubUserRepo) Create(*entity.User) error { return nil }

func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindByEmail(string) (*entity.User, error) { return nil, nil }
func (r *stubUserRepo) Update(*entity.User) error                { return nil }

func TestDownloadReceipt_GeneraPDFConItems(t *testing.T) {
	s := newMemStore(productA(5), productB(1))
	checkout := buildCheckout(s, 18)

	created, err := checkout.CreateTransaction(context.Background(), testCashierID, cartRequest())
	require.NoError(t, err)

	gen := &stubGenerator{}
	store := billing.StoreInfo{Name: "Tienda Centro", Phone: "555-0100"}
	users := &stubUserRepo{users: map[string]*entity.User{
		testCashierID: {ID: testCashierID, Username: "caja1"},
	}}
	uc := billing.NewReceiptUseCase(&memTransactionRepo{s: s}, users, gen, store)

	pdf, filename, err := uc.DownloadReceipt(context.Background(), created.Number)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "recibo_"+created.Number+".pdf", filename)
	assert.Equal(t, "caja1", gen.lastCashier, "debe resolver el username del cajero")
	assert.Equal(t, "Tienda Centro", gen.lastStore.Name)
	require.NotNil(t, gen.lastTx)
	assert.Len(t, gen.lastTx.Items, 2, "la venta se entrega al generador con sus ítems")
}

func TestDownloadReceipt_CajeroDesconocido_UsaID(t *testing.T) {
	s := newMemStore(productA(5), productB(1))
	checkout := buildCheckout(s, 18)

	created, err := checkout.CreateTransaction(context.Background(), testCashierID, cartRequest())
	require.NoError(t, err)

	gen := &stubGenerator{}
	users := &stubUserRepo{users: map[string]*entity.User{}}
	uc := billing.NewReceiptUseCase(&memTransactionRepo{s: s}, users, gen, billing.StoreInfo{})

	_, _, err = uc.DownloadReceipt(context.Background(), created.Number)
	require.NoError(t, err)
	assert.Equal(t, testCashierID, gen.lastCashier)
}

func TestDownloadReceipt_VentaInexistente(t *testing.T) {
	s := newMemStore()
	gen := &stubGenerator{}
	uc := billing.NewReceiptUseCase(&memTransactionRepo{s: s}, &stubUserRepo{}, gen, billing.StoreInfo{})

	_, _, err := uc.DownloadReceipt(context.Background(), "TXN-no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
