// Package serialize converts entities into plain records for API responses.
//
// Each entity has its own function. Relationships are followed through
// edges; following an edge marks it and its inverse as visited for the
// subtree below, so a back-reference is never embedded and the graph walk
// stops one hop past the association row.
package serialize

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
)

// Record is the exchange representation of an entity
type Record map[string]any

// Edge names one direction of a relationship, as "<entity>.<relation>"
type Edge string

const (
	RestaurantPizzas      Edge = "restaurant.pizzas"
	PizzaRestaurants      Edge = "pizza.restaurants"
	RestaurantPizzaParent Edge = "restaurant_pizza.restaurant"
	RestaurantPizzaPizza  Edge = "restaurant_pizza.pizza"
)

var inverse = map[Edge]Edge{
	RestaurantPizzas:      RestaurantPizzaParent,
	RestaurantPizzaParent: RestaurantPizzas,
	PizzaRestaurants:      RestaurantPizzaPizza,
	RestaurantPizzaPizza:  PizzaRestaurants,
}

// Visited is the set of edges already walked on the current path.
// It is never mutated in place: With returns a copy.
type Visited map[Edge]struct{}

// With returns a copy of v that also holds the given edges
func (v Visited) With(edges ...Edge) Visited {
	out := make(Visited, len(v)+len(edges))
	for e := range v {
		out[e] = struct{}{}
	}
	for _, e := range edges {
		out[e] = struct{}{}
	}
	return out
}

// Has reports whether e was visited
func (v Visited) Has(e Edge) bool {
	_, ok := v[e]
	return ok
}

// follow reports whether e may be walked and returns the set for the child
func (v Visited) follow(e Edge) (Visited, bool) {
	if v.Has(e) {
		return v, false
	}
	return v.With(e, inverse[e]), true
}

// Restaurant serializes a restaurant and, unless excluded, its association rows.
// Rows embed their pizza but not the restaurant again.
func Restaurant(r models.Restaurant, visited Visited) Record {
	rec := Record{
		"id":      r.ID,
		"name":    r.Name,
		"address": r.Address,
	}
	if child, ok := visited.follow(RestaurantPizzas); ok {
		pizzas := make([]Record, 0, len(r.Pizzas))
		for _, rp := range r.Pizzas {
			pizzas = append(pizzas, RestaurantPizza(rp, child))
		}
		rec["pizzas"] = pizzas
	}
	return rec
}

// Pizza serializes a pizza and, unless excluded, the rows linking it to restaurants
func Pizza(p models.Pizza, visited Visited) Record {
	rec := Record{
		"id":          p.ID,
		"name":        p.Name,
		"ingredients": p.Ingredients,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
	if child, ok := visited.follow(PizzaRestaurants); ok {
		restaurants := make([]Record, 0, len(p.Restaurants))
		for _, rp := range p.Restaurants {
			restaurants = append(restaurants, RestaurantPizza(rp, child))
		}
		rec["restaurants"] = restaurants
	}
	return rec
}

// RestaurantPizza serializes an association row with both sides embedded one
// level deep. A side that was not loaded is rendered as nil.
func RestaurantPizza(rp models.RestaurantPizza, visited Visited) Record {
	rec := Record{
		"id":            rp.ID,
		"name":          rp.Name,
		"price":         rp.Price,
		"restaurant_id": rp.RestaurantID,
		"pizza_id":      rp.PizzaID,
		"created_at":    rp.CreatedAt,
		"updated_at":    rp.UpdatedAt,
	}
	if child, ok := visited.follow(RestaurantPizzaParent); ok {
		if rp.Restaurant != nil {
			rec["restaurant"] = Restaurant(*rp.Restaurant, child)
		} else {
			rec["restaurant"] = nil
		}
	}
	if child, ok := visited.follow(RestaurantPizzaPizza); ok {
		if rp.Pizza != nil {
			rec["pizza"] = Pizza(*rp.Pizza, child)
		} else {
			rec["pizza"] = nil
		}
	}
	return rec
}

// Restaurants serializes a listing without association rows
func Restaurants(rs []models.Restaurant) []Record {
	out := make([]Record, 0, len(rs))
	summary := Visited{}.With(RestaurantPizzas)
	for _, r := range rs {
		out = append(out, Restaurant(r, summary))
	}
	return out
}

// Pizzas serializes a listing without association rows
func Pizzas(ps []models.Pizza) []Record {
	out := make([]Record, 0, len(ps))
	summary := Visited{}.With(PizzaRestaurants)
	for _, p := range ps {
		out = append(out, Pizza(p, summary))
	}
	return out
}
