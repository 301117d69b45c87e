package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrRohit-01/barcode-stock-system/internal/application/dto"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. El stock se ajusta vía
// movimientos de inventario y el checkout, nunca por el update del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto validando unicidad de SKU y código de barras.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.Barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.Cost.LessThan(decimal.Zero) || in.Price.Retail.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.StockQuantity.LessThan(decimal.Zero) || in.MinStockLevel.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetBySKU(in.SKU); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, _ := uc.repo.GetByBarcode(in.Barcode); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		SKU:            in.SKU,
		Barcode:        in.Barcode,
		Category:       in.Category,
		Brand:          in.Brand,
		PriceCost:      in.Price.Cost,
		PriceRetail:    in.Price.Retail,
		PriceWholesale: in.Price.Wholesale,
		StockQuantity:  in.StockQuantity,
		MinStockLevel:  in.MinStockLevel,
		Status:         entity.ProductStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetByBarcode resuelve un código escaneado a un producto. Nil sin error
// significa "no encontrado": el cliente lo trata como señal de producto nuevo.
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// SKUExists verifica si un SKU ya está registrado.
func (uc *ProductUseCase) SKUExists(sku string) (bool, error) {
	product, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return false, err
	}
	return product != nil, nil
}

// Update actualiza un producto. No permite modificar stock (se maneja vía
// movimientos) ni SKU/barcode (identidad del producto).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Price != nil {
		if in.Price.Cost.LessThan(decimal.Zero) || in.Price.Retail.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.PriceCost = in.Price.Cost
		product.PriceRetail = in.Price.Retail
		product.PriceWholesale = in.Price.Wholesale
	}
	if in.MinStockLevel != nil {
		if in.MinStockLevel.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.Status != nil {
		if *in.Status != entity.ProductStatusActive && *in.Status != entity.ProductStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda opcional (nombre, SKU o barcode) y paginación.
func (uc *ProductUseCase) List(search string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := ToProductResponse(p)
	return &out
}

// ToProductResponse convierte la entidad a su DTO de salida.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Category:    p.Category,
		Brand:       p.Brand,
		Price: dto.ProductPrice{
			Cost:      p.PriceCost,
			Retail:    p.PriceRetail,
			Wholesale: p.PriceWholesale,
		},
		StockQuantity: p.StockQuantity,
		MinStockLevel: p.MinStockLevel,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
