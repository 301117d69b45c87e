package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrRohit-01/barcode-stock-system/internal/application/dto"
	"github.com/MrRohit-01/barcode-stock-system/internal/application/usecase"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de productos
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	byID map[string]*entity.Product
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*entity.Product)}
}

func (r *stubProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.byID {
		if existing.SKU == p.SKU || existing.Barcode == p.Barcode {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *stubProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) UpdateStock(productID string, quantity decimal.Decimal) error {
	p, ok := r.byID[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *stubProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, nil }

func (r *stubProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func createRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:    "Gaseosa Cola 1.5L",
		SKU:     "GAS-001",
		Barcode: "7701234567895",
		Price: dto.ProductPrice{
			Cost:   decimal.NewFromFloat(1.10),
			Retail: decimal.NewFromFloat(1.90),
		},
		StockQuantity: decimal.NewFromInt(150),
		MinStockLevel: decimal.NewFromInt(30),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ProductoValido(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())

	out, err := uc.Create(createRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "debe asignarse un ID")
	assert.Equal(t, "GAS-001", out.SKU)
	assert.Equal(t, entity.ProductStatusActive, out.Status, "el producto nace activo")
	assert.True(t, out.StockQuantity.Equal(decimal.NewFromInt(150)))
}

func TestCreate_SKUDuplicado_RetornaDuplicate(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())

	_, err := uc.Create(createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.Barcode = "7709999999999" // barcode distinto, SKU igual
	_, err = uc.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_BarcodeDuplicado_RetornaDuplicate(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())

	_, err := uc.Create(createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.SKU = "GAS-002" // SKU distinto, barcode igual
	_, err = uc.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())

	sinSKU := createRequest()
	sinSKU.SKU = ""
	_, err := uc.Create(sinSKU)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "SKU vacío")

	precioNegativo := createRequest()
	precioNegativo.Price.Retail = decimal.NewFromInt(-1)
	_, err = uc.Create(precioNegativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	stockNegativo := createRequest()
	stockNegativo.StockQuantity = decimal.NewFromInt(-5)
	_, err = uc.Create(stockNegativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetByBarcode — el flujo del escáner en caja
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByBarcode_Existente(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())
	created, err := uc.Create(createRequest())
	require.NoError(t, err)

	out, err := uc.GetByBarcode("7701234567895")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, created.ID, out.ID)
}

// Código desconocido: nil sin error. Es la señal que el cliente usa para abrir
// el formulario de alta de producto con el código ya cargado.
func TestGetByBarcode_Desconocido_NilSinError(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())

	out, err := uc.GetByBarcode("0000000000000")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Escanear dos veces el mismo código devuelve el mismo producto (sin efectos).
func TestGetByBarcode_Idempotente(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())
	_, err := uc.Create(createRequest())
	require.NoError(t, err)

	first, err := uc.GetByBarcode("7701234567895")
	require.NoError(t, err)
	second, err := uc.GetByBarcode("7701234567895")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.StockQuantity.Equal(second.StockQuantity))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SKUExists / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestSKUExists(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())
	_, err := uc.Create(createRequest())
	require.NoError(t, err)

	exists, err := uc.SKUExists("GAS-001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = uc.SKUExists("NO-EXISTE")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdate_CamposParciales(t *testing.T) {
	repo := newStubProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(createRequest())
	require.NoError(t, err)

	nuevoNombre := "Gaseosa Cola Zero 1.5L"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, nuevoNombre, out.Name)
	assert.Equal(t, created.SKU, out.SKU, "el SKU no cambia en update")
	assert.True(t, out.StockQuantity.Equal(created.StockQuantity),
		"el stock no se toca desde el update del catálogo")
}

func TestUpdate_EstadoInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())
	created, err := uc.Create(createRequest())
	require.NoError(t, err)

	invalido := "archivado"
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Status: &invalido})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ProductoInexistente_NilSinError(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())

	nombre := "x"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDelete(t *testing.T) {
	uc := usecase.NewProductUseCase(newStubProductRepo())
	created, err := uc.Create(createRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "borrar dos veces debe fallar la segunda")
}
