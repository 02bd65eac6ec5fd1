package catalog

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/Checker-Finance/octopus-adapter/pkg/model"
)

// wireCatalog mirrors the listing payload. Pointers let the validator tell a
// missing field apart from an empty string.
type wireCatalog struct {
	Results []wireProduct `json:"results" validate:"required,dive"`
}

type wireProduct struct {
	Code        *string `json:"code" validate:"required"`
	DisplayName *string `json:"display_name" validate:"required"`
	Brand       *string `json:"brand" validate:"required"`
}

var (
	validate = newValidator()

	// object keys match exactly; "RESULTS" or "Code" count as missing
	strictJSON = jsoniter.Config{CaseSensitive: true}.Froze()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names ("display_name") instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses a /v1/products/ response body into a Catalog.
// Every entry must carry code, display_name and brand as strings; unknown
// fields are ignored, keys are case-sensitive. Failures wrap ErrDecode.
func Decode(raw string) (model.Catalog, error) {
	if !utf8.ValidString(raw) {
		return model.Catalog{}, fmt.Errorf("%w: body is not valid UTF-8", ErrDecode)
	}

	var wc wireCatalog
	if err := strictJSON.UnmarshalFromString(raw, &wc); err != nil {
		return model.Catalog{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := validate.Struct(wc); err != nil {
		return model.Catalog{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	products := make([]model.Product, 0, len(wc.Results))
	for _, wp := range wc.Results {
		products = append(products, model.Product{
			Code:        *wp.Code,
			DisplayName: *wp.DisplayName,
			Brand:       *wp.Brand,
		})
	}
	return model.Catalog{Products: products}, nil
}
