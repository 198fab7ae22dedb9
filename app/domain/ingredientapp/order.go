package ingredientapp

import "github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"

var orderByFields = map[string]string{
	"ingredient_id": ingredientbus.OrderByID,
	"name":          ingredientbus.OrderByName,
	"unit":          ingredientbus.OrderByUnit,
	"dateCreated":   ingredientbus.OrderByDateCreated,
}
