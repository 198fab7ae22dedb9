// Package ingredientbus provides business access to brewery ingredients and
// their inventory ledger.
package ingredientbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/foundation/otel"
	"github.com/shopspring/decimal"
)

// Set of error variables for CRUD operations.
var (
	ErrNotFound          = errors.New("ingredient not found")
	ErrUniqueName        = errors.New("ingredient name is not unique")
	ErrQuantity          = errors.New("quantity is not valid for this movement")
	ErrInsufficientStock = errors.New("not enough stock for this movement")
)

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, scope tenancy.Scope, ing Ingredient) error
	Update(ctx context.Context, scope tenancy.Scope, ing Ingredient) error
	Delete(ctx context.Context, scope tenancy.Scope, ing Ingredient) error
	Query(ctx context.Context, scope tenancy.Scope, filter QueryFilter, orderBy order.By, page page.Page) ([]Ingredient, error)
	Count(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID) (Ingredient, error)
	Lock(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID) error
	Balances(ctx context.Context, scope tenancy.Scope, ingredientIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
	CreateEntries(ctx context.Context, scope tenancy.Scope, entries []Entry) error
	DeleteEntries(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID) (int64, error)
	QueryEntries(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID, page page.Page) ([]Entry, error)
	CountEntries(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID) (int, error)
}

// Core manages the set of APIs for ingredient access.
type Core struct {
	storer Storer
}

// NewCore constructs an ingredient core API for use.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// NewWithTx constructs a new core value that will use the
// specified transaction in any store related calls.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	return NewCore(storer), nil
}

// Create adds a new ingredient. A positive opening stock is booked as a
// receipt on the ledger; run it inside a transaction to keep both writes
// together.
func (c *Core) Create(ctx context.Context, scope tenancy.Scope, ni NewIngredient) (Ingredient, error) {
	ctx, span := otel.AddSpan(ctx, "business.ingredientbus.create")
	defer span.End()

	if ni.OpeningStock.IsNegative() {
		return Ingredient{}, fmt.Errorf("opening stock: %w", ErrQuantity)
	}

	now := time.Now()

	ing := Ingredient{
		ID:           uuid.New(),
		TenantID:     scope.TenantID(),
		Name:         ni.Name,
		Unit:         ni.Unit,
		ReorderLevel: ni.ReorderLevel,
		Balance:      decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storer.Create(ctx, scope, ing); err != nil {
		return Ingredient{}, fmt.Errorf("create: %w", err)
	}

	if ni.OpeningStock.IsPositive() {
		entry := Entry{
			ID:           uuid.New(),
			TenantID:     scope.TenantID(),
			IngredientID: ing.ID,
			Kind:         KindReceipt,
			Quantity:     ni.OpeningStock,
			Note:         "opening stock",
			CreatedAt:    now,
		}

		if err := c.storer.CreateEntries(ctx, scope, []Entry{entry}); err != nil {
			return Ingredient{}, fmt.Errorf("createentries: %w", err)
		}

		ing.Balance = ni.OpeningStock
	}

	return ing, nil
}

// Update modifies information about an ingredient.
func (c *Core) Update(ctx context.Context, scope tenancy.Scope, ing Ingredient, ui UpdateIngredient) (Ingredient, error) {
	ctx, span := otel.AddSpan(ctx, "business.ingredientbus.update")
	defer span.End()

	if ui.Name != nil {
		ing.Name = *ui.Name
	}

	if ui.Unit != nil {
		ing.Unit = *ui.Unit
	}

	if ui.ReorderLevel != nil {
		ing.ReorderLevel = *ui.ReorderLevel
	}

	ing.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, scope, ing); err != nil {
		return Ingredient{}, fmt.Errorf("update: %w", err)
	}

	return ing, nil
}

// Delete removes the ingredient and every ledger entry that references it.
// Run it inside a transaction to keep both writes together.
func (c *Core) Delete(ctx context.Context, scope tenancy.Scope, ing Ingredient) error {
	ctx, span := otel.AddSpan(ctx, "business.ingredientbus.delete")
	defer span.End()

	if _, err := c.storer.DeleteEntries(ctx, scope, ing.ID); err != nil {
		return fmt.Errorf("deleteentries: %w", err)
	}

	if err := c.storer.Delete(ctx, scope, ing); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing ingredients with their balances.
func (c *Core) Query(ctx context.Context, scope tenancy.Scope, filter QueryFilter, orderBy order.By, page page.Page) ([]Ingredient, error) {
	ctx, span := otel.AddSpan(ctx, "business.ingredientbus.query")
	defer span.End()

	ings, err := c.storer.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	if len(ings) == 0 {
		return ings, nil
	}

	ids := make([]uuid.UUID, len(ings))
	for i, ing := range ings {
		ids[i] = ing.ID
	}

	balances, err := c.storer.Balances(ctx, scope, ids)
	if err != nil {
		return nil, fmt.Errorf("balances: %w", err)
	}

	for i := range ings {
		ings[i].Balance = balances[ings[i].ID]
	}

	return ings, nil
}

// Count returns the total number of ingredients.
func (c *Core) Count(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.ingredientbus.count")
	defer span.End()

	return c.storer.Count(ctx, scope, filter)
}

// QueryByID finds the ingredient by the specified ID.
func (c *Core) QueryByID(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID) (Ingredient, error) {
	ctx, span := otel.AddSpan(ctx, "business.ingredientbus.querybyid")
	defer span.End()

	ing, err := c.storer.QueryByID(ctx, scope, ingredientID)
	if err != nil {
		return Ingredient{}, fmt.Errorf("query: ingredientID[%s]: %w", ingredientID, err)
	}

	balances, err := c.storer.Balances(ctx, scope, []uuid.UUID{ing.ID})
	if err != nil {
		return Ingredient{}, fmt.Errorf("balances: %w", err)
	}

	ing.Balance = balances[ing.ID]

	return ing, nil
}

// AddMovement books a stock movement against the ingredient. Movements that
// would take the balance below zero are refused.
func (c *Core) AddMovement(ctx context.Context, scope tenancy.Scope, ing Ingredient, nm NewMovement) (Entry, error) {
	ctx, span := otel.AddSpan(ctx, "business.ingredientbus.addmovement")
	defer span.End()

	qty, err := signedQuantity(nm.Kind, nm.Quantity)
	if err != nil {
		return Entry{}, err
	}

	// Movements on one ingredient queue on its row until the booking
	// transaction ends.
	if err := c.storer.Lock(ctx, scope, ing.ID); err != nil {
		return Entry{}, fmt.Errorf("lock: %w", err)
	}

	balances, err := c.storer.Balances(ctx, scope, []uuid.UUID{ing.ID})
	if err != nil {
		return Entry{}, fmt.Errorf("balances: %w", err)
	}

	balance := balances[ing.ID]
	if balance.Add(qty).IsNegative() {
		return Entry{}, fmt.Errorf("balance[%s] movement[%s]: %w", balance, qty, ErrInsufficientStock)
	}

	entry := Entry{
		ID:           uuid.New(),
		TenantID:     scope.TenantID(),
		IngredientID: ing.ID,
		Kind:         nm.Kind,
		Quantity:     qty,
		Note:         nm.Note,
		CreatedAt:    time.Now(),
	}

	if err := c.storer.CreateEntries(ctx, scope, []Entry{entry}); err != nil {
		return Entry{}, fmt.Errorf("createentries: %w", err)
	}

	return entry, nil
}

// Ledger returns the ingredient's movements, newest first.
func (c *Core) Ledger(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID, page page.Page) ([]Entry, error) {
	ctx, span := otel.AddSpan(ctx, "business.ingredientbus.ledger")
	defer span.End()

	entries, err := c.storer.QueryEntries(ctx, scope, ingredientID, page)
	if err != nil {
		return nil, fmt.Errorf("queryentries: %w", err)
	}

	return entries, nil
}

// CountLedger returns the number of movements booked for the ingredient.
func (c *Core) CountLedger(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.ingredientbus.countledger")
	defer span.End()

	return c.storer.CountEntries(ctx, scope, ingredientID)
}

func signedQuantity(k Kind, qty decimal.Decimal) (decimal.Decimal, error) {
	switch k.sign {
	case 0:
		if qty.IsZero() {
			return decimal.Zero, fmt.Errorf("%s of zero: %w", k, ErrQuantity)
		}
		return qty, nil

	default:
		if !qty.IsPositive() {
			return decimal.Zero, fmt.Errorf("%s of %s: %w", k, qty, ErrQuantity)
		}
		if k.sign < 0 {
			return qty.Neg(), nil
		}
		return qty, nil
	}
}
