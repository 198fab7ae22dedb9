package ingredientapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/unit"
	"github.com/shopspring/decimal"
)

// Ingredient represents a stocked ingredient with its current balance.
type Ingredient struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	ReorderLevel string `json:"reorderLevel"`
	Balance      string `json:"balance"`
	LowStock     bool   `json:"lowStock"`
	DateCreated  string `json:"dateCreated"`
	DateUpdated  string `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (app Ingredient) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
}

func toAppIngredient(bus ingredientbus.Ingredient) Ingredient {
	return Ingredient{
		ID:           bus.ID.String(),
		Name:         bus.Name.String(),
		Unit:         bus.Unit.String(),
		ReorderLevel: bus.ReorderLevel.String(),
		Balance:      bus.Balance.String(),
		LowStock:     bus.LowStock(),
		DateCreated:  bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:  bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppIngredients(ings []ingredientbus.Ingredient) []Ingredient {
	app := make([]Ingredient, len(ings))
	for i, ing := range ings {
		app[i] = toAppIngredient(ing)
	}
	return app
}

// =============================================================================

// NewIngredient defines the data needed to add a new ingredient.
type NewIngredient struct {
	Name         string `json:"name" validate:"required"`
	Unit         string `json:"unit" validate:"required"`
	ReorderLevel string `json:"reorderLevel" validate:"omitempty,numeric"`
	OpeningStock string `json:"openingStock" validate:"omitempty,numeric"`
}

// Decode implements the decoder interface.
func (app *NewIngredient) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewIngredient) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewIngredient(app NewIngredient) (ingredientbus.NewIngredient, error) {
	var fieldErrors errs.FieldErrors

	nme, err := name.Parse(app.Name)
	if err != nil {
		fieldErrors.Add("name", err)
	}

	un, err := unit.Parse(app.Unit)
	if err != nil {
		fieldErrors.Add("unit", err)
	}

	reorder, err := parseAmount(app.ReorderLevel)
	if err != nil {
		fieldErrors.Add("reorderLevel", err)
	}

	opening, err := parseAmount(app.OpeningStock)
	if err != nil {
		fieldErrors.Add("openingStock", err)
	}

	if fieldErrors != nil {
		return ingredientbus.NewIngredient{}, fieldErrors.ToError()
	}

	bus := ingredientbus.NewIngredient{
		Name:         nme,
		Unit:         un,
		ReorderLevel: reorder,
		OpeningStock: opening,
	}

	return bus, nil
}

// =============================================================================

// UpdateIngredient defines the data needed to update an ingredient.
type UpdateIngredient struct {
	Name         *string `json:"name"`
	Unit         *string `json:"unit"`
	ReorderLevel *string `json:"reorderLevel" validate:"omitempty,numeric"`
}

// Decode implements the decoder interface.
func (app *UpdateIngredient) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateIngredient) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateIngredient(app UpdateIngredient) (ingredientbus.UpdateIngredient, error) {
	var fieldErrors errs.FieldErrors
	var bus ingredientbus.UpdateIngredient

	if app.Name != nil {
		nme, err := name.Parse(*app.Name)
		switch err {
		case nil:
			bus.Name = &nme
		default:
			fieldErrors.Add("name", err)
		}
	}

	if app.Unit != nil {
		un, err := unit.Parse(*app.Unit)
		switch err {
		case nil:
			bus.Unit = &un
		default:
			fieldErrors.Add("unit", err)
		}
	}

	if app.ReorderLevel != nil {
		lvl, err := parseAmount(*app.ReorderLevel)
		switch err {
		case nil:
			bus.ReorderLevel = &lvl
		default:
			fieldErrors.Add("reorderLevel", err)
		}
	}

	if fieldErrors != nil {
		return ingredientbus.UpdateIngredient{}, fieldErrors.ToError()
	}

	return bus, nil
}

// =============================================================================

// Entry is one movement on an ingredient's ledger.
type Entry struct {
	ID           string `json:"id"`
	IngredientID string `json:"ingredientId"`
	Kind         string `json:"kind"`
	Quantity     string `json:"quantity"`
	Note         string `json:"note"`
	DateCreated  string `json:"dateCreated"`
}

// Encode implements the encoder interface.
func (app Entry) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
}

func toAppEntry(bus ingredientbus.Entry) Entry {
	return Entry{
		ID:           bus.ID.String(),
		IngredientID: bus.IngredientID.String(),
		Kind:         bus.Kind.String(),
		Quantity:     bus.Quantity.String(),
		Note:         bus.Note,
		DateCreated:  bus.CreatedAt.Format(time.RFC3339),
	}
}

func toAppEntries(entries []ingredientbus.Entry) []Entry {
	app := make([]Entry, len(entries))
	for i, e := range entries {
		app[i] = toAppEntry(e)
	}
	return app
}

// NewMovement defines the data needed to move stock.
type NewMovement struct {
	Kind     string `json:"kind" validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
	Note     string `json:"note" validate:"max=500"`
}

// Decode implements the decoder interface.
func (app *NewMovement) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewMovement) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewMovement(app NewMovement) (ingredientbus.NewMovement, error) {
	var fieldErrors errs.FieldErrors

	kind, err := ingredientbus.ParseKind(app.Kind)
	if err != nil {
		fieldErrors.Add("kind", err)
	}

	// Adjustments carry their own sign so negatives are allowed here.
	qty, err := decimal.NewFromString(app.Quantity)
	if err != nil {
		fieldErrors.Add("quantity", err)
	}

	if fieldErrors != nil {
		return ingredientbus.NewMovement{}, fieldErrors.ToError()
	}

	bus := ingredientbus.NewMovement{
		Kind:     kind,
		Quantity: qty,
		Note:     app.Note,
	}

	return bus, nil
}

// =============================================================================

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount %s is negative", s)
	}

	return d, nil
}
