package ingredientdb

import "github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"

var orderByFields = map[string]string{
	ingredientbus.OrderByID:          "ingredient_id",
	ingredientbus.OrderByName:        "name",
	ingredientbus.OrderByUnit:        "unit",
	ingredientbus.OrderByDateCreated: "created_at",
}
