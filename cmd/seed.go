package cmd

import (
	"context"
	"fmt"
	"time"

	"butchermarket/internal/core/domain/model/kernel"
	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	id    int
	name  string
	price int64
}

// The shop's standing catalog, prices in EGP per kilogram.
func catalogSeed() []seedProduct {
	return []seedProduct{
		{1, "شورت ريبس (Short Ribs)", 400},
		{2, "ريش شوي (Beef Ribs)", 420},
		{3, "سمانة ستيك (Beef Steak)", 460},
		{4, "ريب اي ستيك (Rib Eye Steak)", 460},
		{5, "انتركوت ستيك (Strip Loin Steak)", 460},
		{6, "توماهوك ستيك (Tomahawk Steak)", 480},
		{7, "عرق فلتو (Fillet Roast)", 460},
		{8, "عرق روستو (Eye Round Roast)", 480},
		{9, "عكاوي (Oxtail)", 390},
		{10, "كباب حلة عادي (Beef Cubes Extra Fat)", 400},
		{11, "لحم مفروم عادي (Minced Beef - Extra Fat)", 400},
		{12, "دوش كندوز (Beef Breast)", 410},
		{13, "كباب خضار - سن أو قشرة (Beef Cubes Low Fat)", 420},
		{14, "شاورما (Shawarma)", 430},
		{15, "فتيك/بيكاتا (Escalope/Piccata)", 500},
		{16, "موزة / كولاته كندوز", 450},
		{17, "لحم مفروم - دهن قليل (Minced Beef - Low Fat)", 450},
		{18, "كباب حلة صافي (Beef Cubes Premium)", 460},
		{19, "مكعبات رأس عصفور (Beef Fondue)", 470},
		{20, "كبده صافي (Ox Liver)", 490},
		{21, "كبده وقلب وكلاوي (Ox Liver, Heart & Kidney)", 470},
	}
}

// SeedCatalog fills the empty catalog with the shop's standing products.
func (c *CompositionRoot) SeedCatalog(ctx context.Context) error {
	for _, seed := range catalogSeed() {
		aggregate, err := product.NewProduct(seed.id, seed.name, decimal.NewFromInt(seed.price))
		if err != nil {
			return fmt.Errorf("seed product %d: %w", seed.id, err)
		}
		if err = c.products.Add(ctx, aggregate); err != nil {
			return fmt.Errorf("seed product %d: %w", seed.id, err)
		}
	}
	return nil
}

// SeedDemoOrders adds two example orders so a fresh dashboard is not empty.
// Intended for demo and development runs only.
func (c *CompositionRoot) SeedDemoOrders(ctx context.Context) error {
	delivered, err := demoOrder(
		"BM-171701",
		"أحمد محمود", "0123456789", "123 شارع المثال، القاهرة", "بجوار المسجد الكبير",
		11, "لحم مفروم عادي (Minced Beef - Extra Fat)", "2", 400,
		order.Cash, order.Delivered, time.Now().Add(-48*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("seed order BM-171701: %w", err)
	}

	ready, err := demoOrder(
		"BM-171700",
		"فاطمة علي", "0109876543", "45 شارع النصر، الجيزة", "",
		14, "شاورما (Shawarma)", "1.5", 430,
		order.InstaPay, order.Ready, time.Now().Add(-24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("seed order BM-171700: %w", err)
	}

	for _, aggregate := range []*order.Order{delivered, ready} {
		if err = c.orders.Add(ctx, aggregate); err != nil {
			return fmt.Errorf("seed order %s: %w", aggregate.ID(), err)
		}
	}
	return nil
}

func demoOrder(
	rawID, name, phone, address, landmark string,
	productID int, productName, kilos string, price int64,
	payment order.PaymentMethod, status order.Status, createdAt time.Time,
) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(rawID)
	if err != nil {
		return nil, err
	}
	customer, err := order.NewCustomer(name, phone, "", address, landmark)
	if err != nil {
		return nil, err
	}
	item, err := order.NewItem(productID, productName,
		decimal.RequireFromString(kilos), decimal.NewFromInt(price))
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(id, customer, []order.Item{item}, payment, status, createdAt)
}
