package store

import "storefront/internal/assets"

// DefaultCatalog is the demo inventory inserted on first start.
var DefaultCatalog = []Product{
	{Name: "Wireless Bluetooth Headphones", Category: "electronics", Price: 79.99, InStock: true, Image: assets.PlaceholderURL, Description: "High-quality wireless headphones with noise cancellation"},
	{Name: "Smartphone Case", Category: "accessories", Price: 24.99, InStock: true, Image: assets.PlaceholderURL, Description: "Durable protective case for your smartphone"},
	{Name: "Coffee Maker", Category: "home", Price: 149.99, InStock: false, Image: assets.PlaceholderURL, Description: "Automatic drip coffee maker with programmable timer"},
	{Name: "Running Shoes", Category: "clothing", Price: 89.99, InStock: true, Image: assets.PlaceholderURL, Description: "Comfortable running shoes with advanced cushioning"},
	{Name: "Laptop Stand", Category: "electronics", Price: 45.99, InStock: true, Image: assets.PlaceholderURL, Description: "Adjustable aluminum laptop stand for better ergonomics"},
	{Name: "Wireless Mouse", Category: "electronics", Price: 29.99, InStock: false, Image: assets.PlaceholderURL, Description: "Ergonomic wireless mouse with precision tracking"},
	{Name: "Water Bottle", Category: "accessories", Price: 19.99, InStock: true, Image: assets.PlaceholderURL, Description: "Insulated stainless steel water bottle keeps drinks cold"},
	{Name: "Desk Lamp", Category: "home", Price: 59.99, InStock: true, Image: assets.PlaceholderURL, Description: "LED desk lamp with adjustable brightness and color temperature"},
}
