// Package barcode genera imágenes Code-128 (PNG) para SKUs y números de
// transacción. El cliente POS escanea estos códigos para resolver productos.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Dimensiones por defecto de la imagen generada (px).
const (
	DefaultWidth  = 300
	DefaultHeight = 100
)

// EncodePNG genera un código de barras Code-128 del texto dado y lo devuelve
// como PNG. width/height <= 0 usan los valores por defecto.
func EncodePNG(text string, width, height int) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("barcode: texto vacío")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	code, err := code128.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("barcode: codificar %q: %w", text, err)
	}
	scaled, err := bc.Scale(code, width, height)
	if err != nil {
		return nil, fmt.Errorf("barcode: escalar: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("barcode: codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}
