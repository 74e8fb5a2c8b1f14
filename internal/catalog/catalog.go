// Package catalog holds the static storefront seed: the category tree and
// the first-run inventory. The data mirrors the demo catalog the storefront
// has shipped with since the beginning; ids are stable because stored
// snapshots and old carts reference them.
package catalog

import "github.com/honeyshop/honeyshop-backend/internal/inventory"

// Category is one storefront department.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Categories returns the fixed category tree in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// SeedItems returns a fresh copy of the first-run inventory.
func SeedItems() []inventory.Item {
	out := make([]inventory.Item, len(seedItems))
	copy(out, seedItems)
	return out
}

// FindCategory returns the category with the given id, or nil.
func FindCategory(id string) *Category {
	for i := range categories {
		if categories[i].ID == id {
			category := categories[i]
			return &category
		}
	}
	return nil
}

var categories = []Category{
	{
		ID:          "electronics",
		Name:        "Electronics",
		Description: "The latest gadgets and electronic devices",
		Image:       img("photo-1498049794561-7780e7231661"),
	},
	{
		ID:          "clothing",
		Name:        "Clothing",
		Description: "Stylish and comfortable clothing for all occasions",
		Image:       img("photo-1489987707025-afc232f7ea0f"),
	},
	{
		ID:          "home",
		Name:        "Home & Kitchen",
		Description: "Everything you need for your home and kitchen",
		Image:       img("photo-1556911220-bff31c812dba"),
	},
	{
		ID:          "beauty",
		Name:        "Beauty & Personal Care",
		Description: "Premium beauty and personal care products",
		Image:       img("photo-1571781926291-c477ebfd024b"),
	},
	{
		ID:          "sports",
		Name:        "Sports & Outdoors",
		Description: "Equipment and gear for all your outdoor activities",
		Image:       img("photo-1517649763962-0c623066013b"),
	},
}

func img(id string) string {
	return "https://images.unsplash.com/" + id + "?w=800&auto=format&fit=crop&q=60"
}

var seedItems = []inventory.Item{
	{ID: "e1", Name: "Ultra HD Smart TV", Description: "55-inch Ultra HD Smart TV with built-in streaming apps and voice control.", Price: 699.99, Image: img("photo-1593359677879-a4bb92f829d1"), Category: "electronics", Rating: 4.7, Quantity: 15, Featured: true},
	{ID: "e2", Name: "Wireless Noise-Cancelling Headphones", Description: "Premium wireless headphones with active noise cancellation and 30-hour battery life.", Price: 249.99, Image: img("photo-1505740420928-5e560c06d30e"), Category: "electronics", Rating: 4.8, Quantity: 25},
	{ID: "e3", Name: "Professional DSLR Camera", Description: "24.1 Megapixel DSLR Camera with 18-55mm lens, perfect for professional photography.", Price: 899.99, Image: img("photo-1502982720700-bfff97f2ecac"), Category: "electronics", Rating: 4.6, Quantity: 10},
	{ID: "e4", Name: "High-Performance Gaming Laptop", Description: "15.6-inch gaming laptop with RTX graphics, 16GB RAM, and 1TB SSD storage.", Price: 1299.99, Image: img("photo-1593642702821-c8da6771f0c6"), Category: "electronics", Rating: 4.5, Quantity: 8, Featured: true},
	{ID: "e5", Name: "Wireless Charging Pad", Description: "Fast wireless charging pad compatible with all Qi-enabled devices.", Price: 39.99, Image: img("photo-1603539279542-e5205f2e780f"), Category: "electronics", Rating: 4.4, Quantity: 30},
	{ID: "e6", Name: "Smart Home Security System", Description: "Complete home security system with cameras, sensors, and mobile app integration.", Price: 349.99, Image: img("photo-1558002038-1055907df827"), Category: "electronics", Rating: 4.3, Quantity: 12},
	{ID: "e7", Name: "4K Action Camera", Description: "Waterproof 4K action camera with image stabilization and slow-motion recording.", Price: 199.99, Image: img("photo-1564466809058-bf4114d55352"), Category: "electronics", Rating: 4.5, Quantity: 20},
	{ID: "e8", Name: "Bluetooth Portable Speaker", Description: "Waterproof Bluetooth speaker with 24-hour battery life and deep bass.", Price: 89.99, Image: img("photo-1608043152269-423dbba4e7e1"), Category: "electronics", Rating: 4.2, Quantity: 25},
	{ID: "e9", Name: "Smart Fitness Watch", Description: "Advanced fitness tracker with heart rate monitoring, GPS, and smartphone notifications.", Price: 149.99, Image: img("photo-1579586337278-3befd40fd17a"), Category: "electronics", Rating: 4.6, Quantity: 18, Featured: true},
	{ID: "e10", Name: "Drone with HD Camera", Description: "Foldable drone with 4K camera, 30-minute flight time, and intelligent flight modes.", Price: 599.99, Image: img("photo-1579829366248-204fe8413f31"), Category: "electronics", Rating: 4.7, Quantity: 7},

	{ID: "c1", Name: "Men's Classic Fit Dress Shirt", Description: "Premium cotton dress shirt with wrinkle-resistant finish, available in various colors.", Price: 49.99, Image: img("photo-1603252109303-2751441dd157"), Category: "clothing", Rating: 4.5, Quantity: 35},
	{ID: "c2", Name: "Women's High-Waisted Jeans", Description: "Comfortable stretch denim jeans with a flattering high-waisted fit.", Price: 59.99, Image: img("photo-1541099649105-f69ad21f3246"), Category: "clothing", Rating: 4.7, Quantity: 40, Featured: true},
	{ID: "c3", Name: "Unisex Casual Hoodie", Description: "Soft cotton-blend hoodie with kangaroo pocket, perfect for layering.", Price: 39.99, Image: img("photo-1556821840-3a63f95609a7"), Category: "clothing", Rating: 4.6, Quantity: 50},
	{ID: "c4", Name: "Men's Performance Running Shoes", Description: "Lightweight running shoes with responsive cushioning and breathable mesh upper.", Price: 119.99, Image: img("photo-1542291026-7eec264c27ff"), Category: "clothing", Rating: 4.8, Quantity: 25},
	{ID: "c5", Name: "Women's Leather Ankle Boots", Description: "Classic leather ankle boots with comfortable heel and durable construction.", Price: 89.99, Image: img("photo-1605812860427-4024433a70fd"), Category: "clothing", Rating: 4.5, Quantity: 20},
	{ID: "c6", Name: "Men's Slim Fit Chino Pants", Description: "Versatile slim-fit chino pants made from stretch cotton for all-day comfort.", Price: 54.99, Image: img("photo-1473966968600-fa801b869a1a"), Category: "clothing", Rating: 4.4, Quantity: 30},
	{ID: "c7", Name: "Women's Summer Maxi Dress", Description: "Flowing maxi dress in lightweight fabric with floral pattern, perfect for summer.", Price: 69.99, Image: img("photo-1623609163841-5e69d8c62cc8"), Category: "clothing", Rating: 4.7, Quantity: 22, Featured: true},
	{ID: "c8", Name: "Unisex Waterproof Rain Jacket", Description: "Lightweight, packable rain jacket with hood and sealed seams.", Price: 79.99, Image: img("photo-1545594861-3bef43ff2fc8"), Category: "clothing", Rating: 4.6, Quantity: 18},
	{ID: "c9", Name: "Men's Cotton T-Shirt Pack", Description: "Pack of 5 premium cotton t-shirts in assorted colors.", Price: 34.99, Image: img("photo-1576566588028-4147f3842f27"), Category: "clothing", Rating: 4.5, Quantity: 45},
	{ID: "c10", Name: "Women's Athletic Leggings", Description: "High-waisted athletic leggings with moisture-wicking fabric and hidden pocket.", Price: 49.99, Image: img("photo-1556137832-b10bcc9741de"), Category: "clothing", Rating: 4.8, Quantity: 38},

	{ID: "h1", Name: "Professional Chef's Knife", Description: "8-inch high-carbon stainless steel chef's knife with ergonomic handle.", Price: 79.99, Image: img("photo-1593618998160-e34014e67546"), Category: "home", Rating: 4.7, Quantity: 20},
	{ID: "h2", Name: "Non-Stick Cookware Set", Description: "10-piece non-stick cookware set including pots, pans, and utensils.", Price: 149.99, Image: img("photo-1584045723894-e910d3d1ae13"), Category: "home", Rating: 4.6, Quantity: 15, Featured: true},
	{ID: "h3", Name: "Plush Microfiber Bedding Set", Description: "Queen-size bedding set with duvet cover, fitted sheet, and pillowcases.", Price: 129.99, Image: img("photo-1522771739844-6a9f6d5f14af"), Category: "home", Rating: 4.8, Quantity: 22},
	{ID: "h4", Name: "Programmable Coffee Maker", Description: "12-cup programmable coffee maker with built-in grinder and thermal carafe.", Price: 119.99, Image: img("photo-1564890369478-c89ca6d9cde9"), Category: "home", Rating: 4.5, Quantity: 18},
	{ID: "h5", Name: "Smart LED Floor Lamp", Description: "WiFi-enabled floor lamp with color changing capability and voice control.", Price: 89.99, Image: img("photo-1540932239986-30128078f3c5"), Category: "home", Rating: 4.3, Quantity: 14},
	{ID: "h6", Name: "Luxury Bath Towel Set", Description: "Set of 6 premium cotton bath towels, hand towels, and washcloths.", Price: 59.99, Image: img("photo-1563453392212-326f5e854473"), Category: "home", Rating: 4.7, Quantity: 35},
	{ID: "h7", Name: "Robotic Vacuum Cleaner", Description: "Smart robot vacuum with mapping technology, app control, and automatic charging.", Price: 249.99, Image: img("photo-1567690187548-f07b1d7bf5a9"), Category: "home", Rating: 4.6, Quantity: 12, Featured: true},
	{ID: "h8", Name: "Modern End Table", Description: "Sleek side table with storage drawer, perfect for living room or bedroom.", Price: 129.99, Image: img("photo-1551298698-66b830a4f11c"), Category: "home", Rating: 4.4, Quantity: 8},
	{ID: "h9", Name: "Air Purifier with HEPA Filter", Description: "Air purifier that removes 99.97% of airborne particles with quiet operation.", Price: 169.99, Image: img("photo-1585401586477-ddbaed355d0b"), Category: "home", Rating: 4.5, Quantity: 16},
	{ID: "h10", Name: "Decorative Throw Pillow Set", Description: "Set of 4 decorative throw pillows in complementary patterns and colors.", Price: 49.99, Image: img("photo-1584100936595-c0654b55a2e2"), Category: "home", Rating: 4.3, Quantity: 28},

	{ID: "b1", Name: "Premium Skincare Set", Description: "Complete skincare set with cleanser, toner, serum, and moisturizer.", Price: 89.99, Image: img("photo-1556228720-195a672e8a03"), Category: "beauty", Rating: 4.8, Quantity: 25, Featured: true},
	{ID: "b2", Name: "Professional Hair Dryer", Description: "Salon-quality hair dryer with multiple heat settings and ionic technology.", Price: 119.99, Image: img("photo-1522338242992-e1a54906a8da"), Category: "beauty", Rating: 4.6, Quantity: 18},
	{ID: "b3", Name: "Luxury Perfume", Description: "Elegant fragrance with notes of jasmine, vanilla, and sandalwood.", Price: 129.99, Image: img("photo-1541643600914-78b084683601"), Category: "beauty", Rating: 4.7, Quantity: 22},
	{ID: "b4", Name: "Electric Toothbrush", Description: "Rechargeable sonic toothbrush with multiple cleaning modes and timer.", Price: 79.99, Image: img("photo-1559591937-edd1a583e5da"), Category: "beauty", Rating: 4.5, Quantity: 30},
	{ID: "b5", Name: "Makeup Brush Set", Description: "Professional 15-piece makeup brush set with synthetic bristles and storage case.", Price: 49.99, Image: img("photo-1522335789203-aabd1fc54bc9"), Category: "beauty", Rating: 4.6, Quantity: 35},
	{ID: "b6", Name: "Natural Bath Bomb Set", Description: "Set of 6 handcrafted bath bombs with essential oils and dried flowers.", Price: 29.99, Image: img("photo-1558959448-d7973f3e3aaf"), Category: "beauty", Rating: 4.4, Quantity: 40},
	{ID: "b7", Name: "Eyeshadow Palette", Description: "Professional eyeshadow palette with 24 highly pigmented matte and shimmer shades.", Price: 44.99, Image: img("photo-1599305090598-fe179d501227"), Category: "beauty", Rating: 4.7, Quantity: 25, Featured: true},
	{ID: "b8", Name: "Men's Grooming Kit", Description: "Complete grooming kit with beard trimmer, razor, and skincare products.", Price: 69.99, Image: img("photo-1621607512052-59e42f9b251e"), Category: "beauty", Rating: 4.5, Quantity: 20},
	{ID: "b9", Name: "Facial Cleansing Brush", Description: "Waterproof silicone facial cleansing brush with sonic vibration technology.", Price: 59.99, Image: img("photo-1626339867228-7830b343cf7c"), Category: "beauty", Rating: 4.3, Quantity: 15},
	{ID: "b10", Name: "Hair Styling Tools Set", Description: "Set with straightener, curling iron, and styling products for all hair types.", Price: 149.99, Image: img("photo-1572457091633-672a0a318b23"), Category: "beauty", Rating: 4.6, Quantity: 12},

	{ID: "s1", Name: "Yoga Mat with Carrying Strap", Description: "Non-slip yoga mat with alignment markings and convenient carrying strap.", Price: 39.99, Image: img("photo-1518611012118-696072aa579a"), Category: "sports", Rating: 4.6, Quantity: 40},
	{ID: "s2", Name: "Mountain Bike", Description: "All-terrain mountain bike with 21 speeds, disc brakes, and front suspension.", Price: 599.99, Image: img("photo-1485965120184-e220f721d03e"), Category: "sports", Rating: 4.8, Quantity: 10, Featured: true},
	{ID: "s3", Name: "Tennis Racket", Description: "Professional tennis racket with optimal control and power for all skill levels.", Price: 129.99, Image: img("photo-1617734976396-908b5b6fe15e"), Category: "sports", Rating: 4.5, Quantity: 15},
	{ID: "s4", Name: "Hiking Backpack", Description: "Waterproof 50L hiking backpack with multiple compartments and hydration system compatibility.", Price: 89.99, Image: img("photo-1553731944-64ffd4765cd9"), Category: "sports", Rating: 4.7, Quantity: 22},
	{ID: "s5", Name: "Basketball", Description: "Official size and weight basketball with superior grip and durability.", Price: 29.99, Image: img("photo-1518641353966-e7f08c91b4da"), Category: "sports", Rating: 4.4, Quantity: 30},
	{ID: "s6", Name: "Camping Tent", Description: "4-person waterproof tent with easy setup and mesh windows for ventilation.", Price: 149.99, Image: img("photo-1563299796-17596ed6b017"), Category: "sports", Rating: 4.6, Quantity: 18, Featured: true},
	{ID: "s7", Name: "Fitness Tracker Smartwatch", Description: "Waterproof fitness tracker with heart rate monitor, sleep tracking, and workout modes.", Price: 99.99, Image: img("photo-1575311373937-040b8e1fd398"), Category: "sports", Rating: 4.5, Quantity: 25},
	{ID: "s8", Name: "Adjustable Dumbbell Set", Description: "Space-saving adjustable dumbbell set with weights ranging from 5-52.5 lbs.", Price: 349.99, Image: img("photo-1584735935682-2f2b69dff9d2"), Category: "sports", Rating: 4.8, Quantity: 12},
	{ID: "s9", Name: "Insulated Water Bottle", Description: "32oz vacuum-insulated stainless steel water bottle that keeps drinks cold for 24 hours.", Price: 34.99, Image: img("photo-1602143407151-7111542de6e8"), Category: "sports", Rating: 4.6, Quantity: 45},
	{ID: "s10", Name: "Golf Club Set", Description: "Complete set of golf clubs with driver, woods, irons, putter, and carrying bag.", Price: 599.99, Image: img("photo-1593111774240-d449cc2b766c"), Category: "sports", Rating: 4.7, Quantity: 8},
}
