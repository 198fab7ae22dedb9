package orderapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus"
	"github.com/shopspring/decimal"
)

// Item is a line on an order.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// Order represents a table's tab. Items are only filled in when a single
// order is fetched.
type Order struct {
	ID          string `json:"id"`
	TableNumber int    `json:"tableNumber"`
	Status      string `json:"status"`
	Total       string `json:"total"`
	Items       []Item `json:"items,omitempty"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (app Order) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
}

func toAppOrder(bus orderbus.Order) Order {
	var items []Item
	if len(bus.Items) > 0 {
		items = make([]Item, len(bus.Items))
		for i, it := range bus.Items {
			items[i] = Item{
				ID:        it.ID.String(),
				Name:      it.Name,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice.StringFixed(2),
				LineTotal: it.LineTotal.StringFixed(2),
			}
		}
	}

	return Order{
		ID:          bus.ID.String(),
		TableNumber: bus.TableNumber,
		Status:      bus.Status.String(),
		Total:       bus.Total.StringFixed(2),
		Items:       items,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppOrders(orders []orderbus.Order) []Order {
	app := make([]Order, len(orders))
	for i, o := range orders {
		app[i] = toAppOrder(o)
	}
	return app
}

// =============================================================================

// NewItem defines a line on a new order.
type NewItem struct {
	Name      string `json:"name" validate:"required,max=120"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	UnitPrice string `json:"unitPrice" validate:"required,numeric"`
}

// NewOrder defines the data needed to open an order.
type NewOrder struct {
	TableNumber int       `json:"tableNumber" validate:"required,gte=1"`
	Items       []NewItem `json:"items" validate:"required,min=1,dive"`
}

// Decode implements the decoder interface.
func (app *NewOrder) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewOrder) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewOrder(app NewOrder) (orderbus.NewOrder, error) {
	var fieldErrors errs.FieldErrors

	items := make([]orderbus.NewItem, len(app.Items))
	for i, it := range app.Items {
		price, err := decimal.NewFromString(it.UnitPrice)
		if err != nil {
			fieldErrors.Add(fmt.Sprintf("items[%d].unitPrice", i), err)
			continue
		}

		if price.IsNegative() {
			fieldErrors.Add(fmt.Sprintf("items[%d].unitPrice", i), fmt.Errorf("price %s is negative", it.UnitPrice))
			continue
		}

		items[i] = orderbus.NewItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: price.Round(2),
		}
	}

	if fieldErrors != nil {
		return orderbus.NewOrder{}, fieldErrors.ToError()
	}

	bus := orderbus.NewOrder{
		TableNumber: app.TableNumber,
		Items:       items,
	}

	return bus, nil
}

// =============================================================================

// UpdateStatus defines the data needed to move an order along.
type UpdateStatus struct {
	Status string `json:"status" validate:"required"`
}

// Decode implements the decoder interface.
func (app *UpdateStatus) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateStatus) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}
