package generator

import "math/rand"

type product struct {
	name      string
	basePrice float64
	category  string
}

// productCatalog is the fixed pool items are drawn from 70% of the time.
var productCatalog = []product{
	{"Software License Annual", 1200.00, "software"},
	{"Cloud Hosting Package", 450.00, "software"},
	{"Support Contract Premium", 890.00, "software"},
	{"ERP Module Subscription", 2400.00, "software"},
	{"Office Desk Ergonomic", 560.00, "furniture"},
	{"Conference Table Oak", 1450.00, "furniture"},
	{"Office Chair Mesh", 320.00, "furniture"},
	{"Storage Cabinet Steel", 410.00, "furniture"},
	{"Laptop Business 14\"", 1350.00, "hardware"},
	{"Monitor 27\" 4K", 480.00, "hardware"},
	{"Network Switch 48-Port", 950.00, "hardware"},
	{"Server Rack Unit", 3200.00, "hardware"},
	{"Consulting Day Senior", 1600.00, "services"},
	{"Workshop Facilitation", 2100.00, "services"},
	{"Translation Service", 340.00, "services"},
	{"Maintenance Visit", 280.00, "services"},
	{"Forklift Rental Monthly", 1900.00, "logistics"},
	{"Pallet Shipment EU", 240.00, "logistics"},
	{"Warehouse Storage m2", 85.00, "logistics"},
	{"Express Courier Service", 65.00, "logistics"},
}

// Category-scoped fragments for the 30% of items synthesized as
// "{adjective} {noun}" instead of a catalog draw.
var (
	itemAdjectives = map[string][]string{
		"software":  {"Modular", "Enterprise", "Scalable", "Managed"},
		"furniture": {"Adjustable", "Modular", "Premium", "Compact"},
		"hardware":  {"Industrial", "Refurbished", "High-Performance", "Portable"},
		"services":  {"On-Site", "Remote", "Certified", "Quarterly"},
		"logistics": {"Express", "Bulk", "Temperature-Controlled", "Insured"},
	}
	itemNouns = map[string][]string{
		"software":  {"Platform License", "API Package", "Analytics Suite", "Backup Service"},
		"furniture": {"Workstation", "Shelving System", "Partition Set", "Lounge Unit"},
		"hardware":  {"Workstation Bundle", "Printer System", "Scanner Unit", "Access Terminal"},
		"services":  {"Audit", "Training Session", "System Review", "Installation"},
		"logistics": {"Freight Batch", "Container Slot", "Delivery Route", "Customs Handling"},
	}
	itemCategories = []string{"software", "furniture", "hardware", "services", "logistics"}
)

// generatedProduct synthesizes an off-catalog item with a procedurally
// chosen base price in [50,5000].
func generatedProduct(rng *rand.Rand) product {
	category := itemCategories[rng.Intn(len(itemCategories))]
	adjectives := itemAdjectives[category]
	nouns := itemNouns[category]
	return product{
		name:      adjectives[rng.Intn(len(adjectives))] + " " + nouns[rng.Intn(len(nouns))],
		basePrice: 50 + rng.Float64()*4950,
		category:  category,
	}
}
