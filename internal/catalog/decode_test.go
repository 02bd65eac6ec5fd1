package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Checker-Finance/octopus-adapter/pkg/model"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "sample_products.json"))
	require.NoError(t, err)
	return string(data)
}

// ─── Successful decode ────────────────────────────────────────────────────────

func TestDecode_SingleProductWithExtraFields(t *testing.T) {
	raw := `{"results": [{
		"code": "AGILE-FLEX-22-11-25",
		"direction": "IMPORT",
		"full_name": "Agile Octopus November 2022 v1",
		"display_name": "Agile Octopus",
		"is_variable": true,
		"term": null,
		"links": [{"href": "https://api.octopus.energy/v1/products/AGILE-FLEX-22-11-25/", "method": "GET", "rel": "self"}],
		"brand": "OCTOPUS_ENERGY"
	}]}`

	c, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, model.Product{
		Code:        "AGILE-FLEX-22-11-25",
		DisplayName: "Agile Octopus",
		Brand:       "OCTOPUS_ENERGY",
	}, c.Products[0])
}

func TestDecode_PreservesOrder(t *testing.T) {
	raw := `{"results": [
		{"code": "C", "display_name": "Third", "brand": "B1"},
		{"code": "A", "display_name": "First", "brand": "B2"},
		{"code": "B", "display_name": "Second", "brand": "B3", "is_green": false}
	]}`

	c, err := Decode(raw)
	require.NoError(t, err)

	want := []model.Product{
		{Code: "C", DisplayName: "Third", Brand: "B1"},
		{Code: "A", DisplayName: "First", Brand: "B2"},
		{Code: "B", DisplayName: "Second", Brand: "B3"},
	}
	if diff := cmp.Diff(want, c.Products); diff != "" {
		t.Errorf("decoded products mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_EmptyResults(t *testing.T) {
	c, err := Decode(`{"results": []}`)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestDecode_EmptyStringsArePresent(t *testing.T) {
	c, err := Decode(`{"results": [{"code": "", "display_name": "", "brand": ""}]}`)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, model.Product{}, c.Products[0])
}

func TestDecode_Fixture(t *testing.T) {
	c, err := Decode(loadFixture(t))
	require.NoError(t, err)
	require.Equal(t, 5, c.Len())
	assert.Contains(t, c.Products, model.Product{
		Code:        "AGILE-FLEX-22-11-25",
		DisplayName: "Agile Octopus",
		Brand:       "OCTOPUS_ENERGY",
	})
	assert.Equal(t, "E-FLEX-22-11-25", c.Products[4].Code)
}

// ─── Malformed input ──────────────────────────────────────────────────────────

func TestDecode_Failures(t *testing.T) {
	cases := map[string]string{
		"empty body":           ``,
		"not json":             `<html>502 Bad Gateway</html>`,
		"truncated":            `{"results": [{"code": "X"`,
		"top-level array":      `[{"code": "X", "display_name": "Y", "brand": "Z"}]`,
		"json null":            `null`,
		"missing results":      `{"detail": "Not found."}`,
		"null results":         `{"results": null}`,
		"results not an array": `{"results": {"code": "X"}}`,
		"entry not an object":  `{"results": ["AGILE"]}`,
		"null entry":           `{"results": [null]}`,
		"missing code":         `{"results": [{"display_name": "Agile Octopus", "brand": "OCTOPUS_ENERGY"}]}`,
		"missing display_name": `{"results": [{"code": "X", "brand": "OCTOPUS_ENERGY"}]}`,
		"missing brand":        `{"results": [{"code": "X", "display_name": "Agile Octopus"}]}`,
		"null brand":           `{"results": [{"code": "X", "display_name": "Agile Octopus", "brand": null}]}`,
		"numeric code":         `{"results": [{"code": 42, "display_name": "Agile Octopus", "brand": "OCTOPUS_ENERGY"}]}`,
		"bool display_name":    `{"results": [{"code": "X", "display_name": true, "brand": "OCTOPUS_ENERGY"}]}`,
		"second entry invalid": `{"results": [{"code": "X", "display_name": "Y", "brand": "Z"}, {"code": "W"}]}`,
		"upper-case results":   `{"RESULTS": [{"code": "AGILE-FLEX-22-11-25", "display_name": "Agile Octopus", "brand": "OCTOPUS_ENERGY"}]}`,
		"title-case results":   `{"Results": [{"code": "X", "display_name": "Agile Octopus", "brand": "OCTOPUS_ENERGY"}]}`,
		"miscased entry keys":  `{"results": [{"CODE": "X", "Display_Name": "Agile Octopus", "BRAND": "OCTOPUS_ENERGY"}]}`,
		"one miscased key":     `{"results": [{"code": "X", "display_name": "Agile Octopus", "Brand": "OCTOPUS_ENERGY"}]}`,
		"invalid utf-8 value":  "{\"results\": [{\"code\": \"A\xff\", \"display_name\": \"Agile Octopus\", \"brand\": \"OCTOPUS_ENERGY\"}]}",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var (
				c   model.Catalog
				err error
			)
			require.NotPanics(t, func() { c, err = Decode(raw) })
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecode)
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestDecode_ExactKeysWithMiscasedExtras(t *testing.T) {
	c, err := Decode(`{"results": [{"code": "X", "Code": "Y", "display_name": "Agile Octopus", "brand": "OCTOPUS_ENERGY"}], "Results": []}`)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "X", c.Products[0].Code)
}

func TestDecode_NonASCIIKeptIntact(t *testing.T) {
	c, err := Decode(`{"results": [{"code": "X", "display_name": "Agile Octopus – Fix", "brand": "OCTOPUS_ENERGY"}]}`)
	require.NoError(t, err)
	assert.Equal(t, "Agile Octopus – Fix", c.Products[0].DisplayName)
}

func TestDecode_ValidationErrorNamesJSONField(t *testing.T) {
	_, err := Decode(`{"results": [{"code": "X", "brand": "OCTOPUS_ENERGY"}]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display_name")
}
