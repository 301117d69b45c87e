// seed genera un script SQL con datos de demostración: un usuario por rol
// (admin, staff, cashier) con contraseñas bcrypt y un catálogo de productos
// de ejemplo con SKU y código de barras.
//
// Uso: go run ./cmd/seed [password-admin]
// Por defecto la contraseña de todos los usuarios es "changeme123".
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	username string
	email    string
	role     string
}

type seedProduct struct {
	name     string
	sku      string
	barcode  string
	category string
	brand    string
	cost     string
	retail   string
	stock    string
	minStock string
}

var users = []seedUser{
	{username: "admin", email: "admin@tienda.local", role: "admin"},
	{username: "bodega", email: "bodega@tienda.local", role: "staff"},
	{username: "caja1", email: "caja1@tienda.local", role: "cashier"},
}

var products = []seedProduct{
	{"Arroz Premium 1kg", "ARR-001", "7701234567890", "granos", "Roa", "2.10", "3.50", "120", "20"},
	{"Aceite Girasol 1L", "ACE-001", "7701234567891", "aceites", "Gourmet", "4.80", "6.90", "60", "10"},
	{"Leche Entera 1L", "LEC-001", "7701234567892", "lacteos", "Alpina", "0.95", "1.40", "200", "40"},
	{"Café Molido 500g", "CAF-001", "7701234567893", "bebidas", "Juan Valdez", "5.20", "8.00", "45", "8"},
	{"Jabón de Baño x3", "JAB-001", "7701234567894", "aseo", "Protex", "2.60", "4.20", "80", "15"},
	{"Gaseosa Cola 1.5L", "GAS-001", "7701234567895", "bebidas", "Postobón", "1.10", "1.90", "150", "30"},
}

func main() {
	password := "changeme123"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar hash bcrypt: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración: usuarios por rol y catálogo de ejemplo.\n")
	out.WriteString("-- Generado por cmd/seed. No usar en producción.\n\n")

	out.WriteString("-- 1. Usuarios\n")
	for _, u := range users {
		fmt.Fprintf(out, "INSERT INTO users (id, username, email, password_hash, role, status)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s', 'active')\n",
			uuid.New().String(), escapeSQL(u.username), escapeSQL(u.email), string(hash), u.role)
		out.WriteString("ON CONFLICT DO NOTHING;\n")
	}
	out.WriteString("\n-- 2. Productos\n")
	for _, p := range products {
		fmt.Fprintf(out, "INSERT INTO products (id, name, sku, barcode, category, brand, price_cost, price_retail, stock_quantity, min_stock_level, status)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s', '%s', %s, %s, %s, %s, 'active')\n",
			uuid.New().String(), escapeSQL(p.name), p.sku, p.barcode,
			p.category, escapeSQL(p.brand), p.cost, p.retail, p.stock, p.minStock)
		out.WriteString("ON CONFLICT DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d usuarios, %d productos\n", outPath, len(users), len(products))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
