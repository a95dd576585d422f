package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/nutriplan/diet-service/internal/nutrient"
)

const utf8Table = "name,price_per_100g,energy_kcal,protein_g\n" +
	"鶏むね肉,98,108,22.3\n" +
	"白米,41,342,6.1\n"

func TestParseCSVUTF8(t *testing.T) {
	foods, err := parseCSV([]byte(utf8Table), "test.csv")
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "鶏むね肉", foods[0].Name)
	assert.Equal(t, 108.0, foods[0].Nutrients[nutrient.Energy])
}

func TestParseCSVUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(utf8Table)...)
	foods, err := parseCSV(data, "test.csv")
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "鶏むね肉", foods[0].Name)
}

func TestParseCSVShiftJIS(t *testing.T) {
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(utf8Table))
	require.NoError(t, err)

	foods, err := parseCSV(encoded, "test.csv")
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "鶏むね肉", foods[0].Name)
	assert.Equal(t, "白米", foods[1].Name)
}

func TestParseCSVMissingHeader(t *testing.T) {
	_, err := parseCSV([]byte(""), "test.csv")
	require.Error(t, err)
}
