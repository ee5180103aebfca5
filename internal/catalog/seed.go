package catalog

import (
	"github.com/anurag0510/ecom-search-engine/internal/domain"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// seedProducts returns the static seed catalog: 14 products across 5
// categories. IDs are sequential and stable across restarts.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:           "1",
			Name:         "Wireless Bluetooth Headphones",
			Description:  "Over-ear wireless headphones with active noise cancelling and 30-hour battery life.",
			Category:     "Electronics",
			Price:        79.99,
			Rating:       fptr(4.6),
			ReviewCount:  iptr(2847),
			Popularity:   iptr(412),
			IsBestSeller: true,
			InStock:      true,
		},
		{
			ID:          "2",
			Name:        "4K Streaming Media Player",
			Description: "Plug-in media player with voice remote, Dolby Vision and all major streaming apps.",
			Category:    "Electronics",
			Price:       49.99,
			Rating:      fptr(4.4),
			ReviewCount: iptr(1932),
			Popularity:  iptr(288),
			InStock:     true,
		},
		{
			ID:           "3",
			Name:         "Portable Bluetooth Speaker",
			Description:  "Compact waterproof speaker with 360-degree sound and 12-hour playtime.",
			Category:     "Electronics",
			Price:        39.99,
			Rating:       fptr(4.5),
			ReviewCount:  iptr(3521),
			Popularity:   iptr(530),
			IsBestSeller: true,
			InStock:      true,
		},
		{
			ID:          "4",
			Name:        "USB-C Fast Charger 65W",
			Description: "GaN wall charger that powers laptops, tablets and phones from a single port.",
			Category:    "Electronics",
			Price:       29.99,
			Rating:      fptr(4.7),
			ReviewCount: iptr(864),
			Popularity:  iptr(190),
			InStock:     true,
		},
		{
			ID:           "5",
			Name:         "Smart Fitness Watch",
			Description:  "GPS sports watch with heart-rate tracking, sleep analysis and 7-day battery.",
			Category:     "Wearables",
			Price:        129.99,
			Rating:       fptr(4.3),
			ReviewCount:  iptr(2210),
			Popularity:   iptr(350),
			IsBestSeller: true,
			InStock:      true,
		},
		{
			ID:          "6",
			Name:        "Luxury Chronograph Watch",
			Description: "Stainless-steel chronograph with sapphire crystal and automatic movement.",
			Category:    "Wearables",
			Price:       299.99,
			Rating:      fptr(4.8),
			ReviewCount: iptr(156),
			Popularity:  iptr(40),
			InStock:     false,
		},
		{
			ID:          "7",
			Name:        "Fitness Tracker Band",
			Description: "Slim activity band that replaces a bulky sports watch for everyday tracking.",
			Category:    "Wearables",
			Price:       59.95,
			Rating:      fptr(4.1),
			ReviewCount: iptr(1480),
			Popularity:  iptr(260),
			InStock:     true,
		},
		{
			ID:          "8",
			Name:        "Trail Running Shoes",
			Description: "Lightweight trail shoes with aggressive grip and a breathable mesh upper.",
			Category:    "Footwear",
			Price:       89.99,
			Rating:      fptr(4.5),
			ReviewCount: iptr(978),
			Popularity:  iptr(150),
			InStock:     true,
		},
		{
			ID:          "9",
			Name:        "Classic Leather Sneakers",
			Description: "Everyday low-top sneakers in full-grain leather with a cushioned insole.",
			Category:    "Footwear",
			Price:       74.50,
			Rating:      fptr(4.2),
			ReviewCount: iptr(645),
			Popularity:  iptr(120),
			InStock:     true,
		},
		{
			ID:          "10",
			Name:        "Waterproof Hiking Boots",
			Description: "Mid-cut hiking boots with a waterproof membrane and ankle support.",
			Category:    "Footwear",
			Price:       139.00,
			Rating:      fptr(4.6),
			ReviewCount: iptr(512),
			Popularity:  iptr(95),
			InStock:     true,
		},
		{
			ID:           "11",
			Name:         "French Press Coffee Maker",
			Description:  "Borosilicate glass press with a double-filter plunger, makes 8 cups.",
			Category:     "Home & Kitchen",
			Price:        34.99,
			Rating:       fptr(4.4),
			ReviewCount:  iptr(1874),
			Popularity:   iptr(310),
			IsBestSeller: true,
			InStock:      true,
		},
		{
			ID:           "12",
			Name:         "Cast Iron Skillet 12-Inch",
			Description:  "Pre-seasoned cast iron skillet for stovetop, oven and open flame.",
			Category:     "Home & Kitchen",
			Price:        44.95,
			Rating:       fptr(4.8),
			ReviewCount:  iptr(5230),
			Popularity:   iptr(480),
			IsBestSeller: true,
			InStock:      true,
		},
		{
			ID:          "13",
			Name:        "Minimalist Leather Wallet",
			Description: "Slim RFID-blocking card wallet that holds up to 10 cards.",
			Category:    "Accessories",
			Price:       24.99,
			Rating:      fptr(4.3),
			ReviewCount: iptr(932),
			Popularity:  iptr(210),
			InStock:     true,
		},
		{
			ID:          "14",
			Name:        "Silicone Watch Strap 22mm",
			Description: "Quick-release silicone strap compatible with most 22mm smartwatches.",
			Category:    "Accessories",
			Price:       19.99,
			Rating:      fptr(4.0),
			ReviewCount: iptr(388),
			Popularity:  iptr(130),
			InStock:     true,
		},
	}
}
