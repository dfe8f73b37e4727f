package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func windows1252(t *testing.T, s string) []byte {
	t.Helper()
	out, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return out
}

func TestReadProducts_DecodesWindows1252(t *testing.T) {
	data := windows1252(t, "nombre;descripcion;categoria;precio;impuesto;stock\n"+
		"Café de Nariño;Bolsa 500g;Bebidas;29,99;8;50\n"+
		"Taza D'Oro;Cerámica;Menaje;1.234,5;19;10\n")

	rows, err := readProducts(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Café de Nariño", rows[0].name)
	assert.Equal(t, "29.99", rows[0].price.StringFixed(2))
	assert.Equal(t, "8", rows[0].taxRate.String())
	assert.Equal(t, 50, rows[0].stock)
	assert.Equal(t, "1234.50", rows[1].price.StringFixed(2))
}

func TestReadProducts_RejectsInvalidRows(t *testing.T) {
	tests := map[string]string{
		"precio negativo":   "A;;;-1;8;1\n",
		"impuesto excesivo": "A;;;1;150;1\n",
		"stock no numérico": "A;;;1;8;muchos\n",
		"nombre vacío":      ";;;1;8;1\n",
	}
	for name, line := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := readProducts(strings.NewReader("nombre;descripcion;categoria;precio;impuesto;stock\n" + line))
			assert.Error(t, err)
		})
	}
}

func TestWriteSQL_EscapesQuotes(t *testing.T) {
	rows, err := readProducts(bytes.NewReader(windows1252(t,
		"nombre;descripcion;categoria;precio;impuesto;stock\nTaza D'Oro;;Menaje;10;19;3\n")))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, writeSQL(&out, rows))
	assert.Contains(t, out.String(), "('Taza D''Oro', '', 'Menaje', 10.00, 19, 3);")
}
