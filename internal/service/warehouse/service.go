package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/repository/stock"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/transport/console"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/platform/logger"
)

type service struct {
	electronics *stock.Repository[model.ElectronicItem]
	groceries   *stock.Repository[model.GroceryItem]
	out         *console.Printer
	now         func() time.Time
}

func NewWarehouseService(out *console.Printer) *service {
	return &service{
		electronics: stock.New[model.ElectronicItem](),
		groceries:   stock.New[model.GroceryItem](),
		out:         out,
		now:         time.Now,
	}
}

func (s *service) Electronics() *stock.Repository[model.ElectronicItem] { return s.electronics }
func (s *service) Groceries() *stock.Repository[model.GroceryItem]      { return s.groceries }

// Seed stops at the first item that cannot be added.
func (s *service) Seed(ctx context.Context) error {
	const op = "warehouse.Seed"

	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	electronics := []model.ElectronicItem{
		{ID: 1, Name: "Laptop", Quantity: 10, Brand: "Dell", WarrantyMonths: 24},
		{ID: 2, Name: "Smartphone", Quantity: 25, Brand: "Samsung", WarrantyMonths: 12},
		{ID: 3, Name: "Router", Quantity: 15, Brand: "TP-Link", WarrantyMonths: 18},
	}
	groceries := []model.GroceryItem{
		{ID: 101, Name: "Rice 5kg", Quantity: 50, ExpiryDate: today.AddDate(0, 12, 0)},
		{ID: 102, Name: "Milk 1L", Quantity: 80, ExpiryDate: today.AddDate(0, 0, 20)},
		{ID: 103, Name: "Bread", Quantity: 30, ExpiryDate: today.AddDate(0, 0, 3)},
	}

	for _, e := range electronics {
		if err := s.electronics.Add(e); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	for _, g := range groceries {
		if err := s.groceries.Add(g); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	logger.Info(ctx, "warehouse seeded",
		logger.Int("electronics", s.electronics.Len()),
		logger.Int("groceries", s.groceries.Len()),
	)
	return nil
}

// IncreaseStock reports the outcome on the console and returns the error, if any.
func IncreaseStock[T stock.Item[T]](ctx context.Context, out *console.Printer, repo *stock.Repository[T], id, quantity int) error {
	item, err := repo.IncreaseStock(id, quantity)
	if err != nil {
		logger.Warn(ctx, "increase stock failed", logger.Int("id", id), logger.ErrorF(err))
		out.Caught(err)
		return err
	}

	out.OK("Increased stock for #%d by %d. New Qty=%d", id, quantity, item.Stock())
	return nil
}

func RemoveItem[T stock.Item[T]](ctx context.Context, out *console.Printer, repo *stock.Repository[T], id int) error {
	if err := repo.Remove(id); err != nil {
		logger.Warn(ctx, "remove item failed", logger.Int("id", id), logger.ErrorF(err))
		out.Caught(err)
		return err
	}

	out.OK("Removed item #%d", id)
	return nil
}

// Run seeds both repositories, prints them and walks through the failure scenarios.
func (s *service) Run(ctx context.Context) error {
	if err := s.Seed(ctx); err != nil {
		return err
	}

	s.out.Heading("Grocery Items")
	console.List(s.out, s.groceries.All(), "No groceries.")

	s.out.Heading("Electronic Items")
	console.List(s.out, s.electronics.All(), "No electronics.")

	s.out.Heading("Stock Updates")
	_ = IncreaseStock(ctx, s.out, s.electronics, 1, 5)
	_ = IncreaseStock(ctx, s.out, s.electronics, 999, 5)

	s.out.Heading("Exception Scenarios")
	dup := model.GroceryItem{ID: 101, Name: "Duplicate Rice", Quantity: 10, ExpiryDate: s.now().AddDate(0, 6, 0)}
	if err := s.groceries.Add(dup); err != nil {
		s.out.Caught(err)
	}

	_ = RemoveItem(ctx, s.out, s.electronics, 999)

	if err := s.electronics.UpdateQuantity(1, -5); err != nil {
		s.out.Caught(err)
	}

	return nil
}
