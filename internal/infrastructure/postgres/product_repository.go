package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/MrRohit-01/barcode-stock-system/internal/domain"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, sku, barcode, category, brand,
		price_cost, price_retail, price_wholesale, stock_quantity, min_stock_level,
		status, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, sku, barcode, category, brand,
			price_cost, price_retail, price_wholesale, stock_quantity, min_stock_level,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.SKU, product.Barcode,
		product.Category, product.Brand,
		product.PriceCost, product.PriceRetail, product.PriceWholesale,
		product.StockQuantity, product.MinStockLevel,
		product.Status, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

// GetByBarcode obtiene un producto por código de barras (flujo de escaneo).
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE barcode = $1`, barcode)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE) para
// serializar los ajustes de stock dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.Barcode, &p.Category, &p.Brand,
		&p.PriceCost, &p.PriceRetail, &p.PriceWholesale, &p.StockQuantity, &p.MinStockLevel,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente. No toca stock_quantity (se maneja
// vía UpdateStock dentro de transacciones).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, category = $4, brand = $5,
			price_cost = $6, price_retail = $7, price_wholesale = $8,
			min_stock_level = $9, status = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Category, product.Brand,
		product.PriceCost, product.PriceRetail, product.PriceWholesale,
		product.MinStockLevel, product.Status, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija el stock del producto (usado por el motor de inventario
// después de GetForUpdate, en la misma transacción).
func (r *ProductRepo) UpdateStock(productID string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// List lista productos con búsqueda opcional (ILIKE sobre nombre, SKU y barcode) y paginación.
func (r *ProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" WHERE name ILIKE $%d OR sku ILIKE $%d OR barcode ILIKE $%d", pos, pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListLowStock lista productos con stock_quantity <= min_stock_level.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE stock_quantity <= min_stock_level ORDER BY stock_quantity ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.Barcode, &p.Category, &p.Brand,
			&p.PriceCost, &p.PriceRetail, &p.PriceWholesale, &p.StockQuantity, &p.MinStockLevel,
			&p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
