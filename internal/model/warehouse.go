package model

import (
	"fmt"
	"time"
)

type ElectronicItem struct {
	ID             int
	Name           string
	Quantity       int
	Brand          string
	WarrantyMonths int
}

func (e ElectronicItem) Key() int   { return e.ID }
func (e ElectronicItem) Stock() int { return e.Quantity }

func (e ElectronicItem) WithQuantity(q int) ElectronicItem {
	e.Quantity = q
	return e
}

func (e ElectronicItem) String() string {
	return fmt.Sprintf("Electronics #%d: %s (%s), Qty=%d, Warranty=%dm",
		e.ID, e.Name, e.Brand, e.Quantity, e.WarrantyMonths)
}

type GroceryItem struct {
	ID         int
	Name       string
	Quantity   int
	ExpiryDate time.Time
}

func (g GroceryItem) Key() int   { return g.ID }
func (g GroceryItem) Stock() int { return g.Quantity }

func (g GroceryItem) WithQuantity(q int) GroceryItem {
	g.Quantity = q
	return g
}

func (g GroceryItem) String() string {
	return fmt.Sprintf("Grocery #%d: %s, Qty=%d, Expires=%s",
		g.ID, g.Name, g.Quantity, g.ExpiryDate.Format(DateLayout))
}
