// seed genera un script SQL para poblar la tabla productos a partir de una exportación CSV
// del sistema anterior (codificación Windows-1252, separador ';').
//
// Columnas esperadas: nombre;descripcion;categoria;precio;impuesto;stock
// La primera fila es la cabecera. Precio e impuesto aceptan coma o punto decimal.
//
// Uso: go run ./cmd/seed [ruta/productos.csv] [salida.sql]
// Por defecto lee productos.csv y escribe seed_productos.sql en la raíz del módulo.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type productRow struct {
	name        string
	description string
	category    string
	price       decimal.Decimal
	taxRate     decimal.Decimal
	stock       int
}

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "seed_productos.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := readProducts(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos\n", outPath, len(rows))
}

// readProducts decodifica el CSV Windows-1252 y valida cada fila.
func readProducts(r io.Reader) ([]productRow, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.Windows1252.NewDecoder()))
	cr.Comma = ';'
	cr.FieldsPerRecord = 6
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("archivo vacío")
		}
		return nil, fmt.Errorf("cabecera: %w", err)
	}

	var rows []productRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(rec []string) (productRow, error) {
	name := strings.TrimSpace(rec[0])
	if name == "" {
		return productRow{}, fmt.Errorf("nombre vacío")
	}
	price, err := parseDecimal(rec[3])
	if err != nil || price.IsNegative() {
		return productRow{}, fmt.Errorf("precio inválido %q", rec[3])
	}
	taxRate, err := parseDecimal(rec[4])
	if err != nil || taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return productRow{}, fmt.Errorf("impuesto inválido %q", rec[4])
	}
	stock, err := strconv.Atoi(strings.TrimSpace(rec[5]))
	if err != nil || stock < 0 {
		return productRow{}, fmt.Errorf("stock inválido %q", rec[5])
	}
	return productRow{
		name:        name,
		description: strings.TrimSpace(rec[1]),
		category:    strings.TrimSpace(rec[2]),
		price:       price.Round(2),
		taxRate:     taxRate,
		stock:       stock,
	}, nil
}

// parseDecimal acepta "1.234,50", "1234,50" y "1234.50".
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

func writeSQL(w io.Writer, rows []productRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("no hay productos para insertar")
	}
	var b strings.Builder
	b.WriteString("-- Productos iniciales\n")
	b.WriteString("-- Generado por cmd/seed desde la exportación CSV\n\n")
	b.WriteString("INSERT INTO productos (nombre, descripcion, categoria, precio, impuesto, stock) VALUES\n")
	for i, r := range rows {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', %s, %s, %d)",
			escapeSQL(r.name), escapeSQL(r.description), escapeSQL(r.category),
			r.price.StringFixed(2), r.taxRate.String(), r.stock)
		if i < len(rows)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString(";\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
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
