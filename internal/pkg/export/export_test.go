package export

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planRow struct {
	Name      string
	PackageID string
	Price     float64
}

func TestSheetWritesHeaderAndRowsInOrder(t *testing.T) {
	packageNames := map[string]string{"p1": "Basic", "p2": "Premium"}
	cols := []Column[planRow]{
		{Header: "Plan", Value: func(r planRow) string { return r.Name }},
		{Header: "Package", Value: func(r planRow) string { return packageNames[r.PackageID] }},
		{Header: "Price", Value: func(r planRow) string { return strconv.FormatFloat(r.Price, 'f', 2, 64) }},
	}
	rows := []planRow{
		{Name: "monthly", PackageID: "p2", Price: 19.99},
		{Name: "yearly", PackageID: "p1", Price: 99},
	}

	f, err := Sheet("Plans", cols, rows)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Plans")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Plan", "Package", "Price"}, got[0])
	assert.Equal(t, []string{"monthly", "Premium", "19.99"}, got[1])
	assert.Equal(t, []string{"yearly", "Basic", "99.00"}, got[2])
}

func TestSheetEmptyRows(t *testing.T) {
	cols := []Column[planRow]{
		{Header: "Plan", Value: func(r planRow) string { return r.Name }},
	}

	f, err := Sheet("Plans", cols, nil)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Plans")
	require.NoError(t, err)
	require.Len(t, got, 1) // header only
}

func TestFileName(t *testing.T) {
	name := FileName("subscriptions")
	assert.True(t, strings.HasPrefix(name, "subscriptions-"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
}
