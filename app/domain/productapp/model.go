package productapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/shopspring/decimal"
)

// Product represents an item in the store catalogue.
type Product struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Active      bool   `json:"active"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (app Product) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
}

func toAppProduct(bus productbus.Product) Product {
	return Product{
		ID:          bus.ID.String(),
		SKU:         bus.SKU,
		Name:        bus.Name.String(),
		Price:       bus.Price.StringFixed(2),
		Stock:       bus.Stock,
		Active:      bus.Active,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppProducts(prds []productbus.Product) []Product {
	app := make([]Product, len(prds))
	for i, prd := range prds {
		app[i] = toAppProduct(prd)
	}
	return app
}

// =============================================================================

// NewProduct defines the data needed to add a product.
type NewProduct struct {
	SKU   string `json:"sku" validate:"required,max=64"`
	Name  string `json:"name" validate:"required"`
	Price string `json:"price" validate:"required,numeric"`
	Stock int    `json:"stock" validate:"gte=0"`
}

// Decode implements the decoder interface.
func (app *NewProduct) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewProduct) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewProduct(app NewProduct) (productbus.NewProduct, error) {
	var fieldErrors errs.FieldErrors

	nme, err := name.Parse(app.Name)
	if err != nil {
		fieldErrors.Add("name", err)
	}

	price, err := parseMoney(app.Price)
	if err != nil {
		fieldErrors.Add("price", err)
	}

	if fieldErrors != nil {
		return productbus.NewProduct{}, fieldErrors.ToError()
	}

	bus := productbus.NewProduct{
		SKU:   app.SKU,
		Name:  nme,
		Price: price,
		Stock: app.Stock,
	}

	return bus, nil
}

// =============================================================================

// UpdateProduct defines the data needed to change a product.
type UpdateProduct struct {
	SKU    *string `json:"sku" validate:"omitempty,max=64"`
	Name   *string `json:"name"`
	Price  *string `json:"price" validate:"omitempty,numeric"`
	Stock  *int    `json:"stock"`
	Active *bool   `json:"active"`
}

// Decode implements the decoder interface.
func (app *UpdateProduct) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateProduct) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateProduct(app UpdateProduct) (productbus.UpdateProduct, error) {
	var fieldErrors errs.FieldErrors
	var bus productbus.UpdateProduct

	if app.Name != nil {
		nme, err := name.Parse(*app.Name)
		switch err {
		case nil:
			bus.Name = &nme
		default:
			fieldErrors.Add("name", err)
		}
	}

	if app.Price != nil {
		p, err := parseMoney(*app.Price)
		switch err {
		case nil:
			bus.Price = &p
		default:
			fieldErrors.Add("price", err)
		}
	}

	if fieldErrors != nil {
		return productbus.UpdateProduct{}, fieldErrors.ToError()
	}

	bus.SKU = app.SKU
	bus.Stock = app.Stock
	bus.Active = app.Active

	return bus, nil
}

// =============================================================================

// Summary reports the size and value of the catalogue.
type Summary struct {
	Products  int    `json:"products"`
	Units     int    `json:"units"`
	Valuation string `json:"valuation"`
}

// Encode implements the encoder interface.
func (app Summary) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
}

func toAppSummary(bus productbus.Summary) Summary {
	return Summary{
		Products:  bus.Products,
		Units:     bus.Units,
		Valuation: bus.Valuation.StringFixed(2),
	}
}

// =============================================================================

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount %s is negative", s)
	}

	return d.Round(2), nil
}
