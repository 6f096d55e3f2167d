package catalog

import "github.com/cammarket/storefront/internal/core/domain"

// Seed data. Ids are assigned in insertion order: a higher id means the
// product was added more recently.

var seedCategories = []domain.Category{
	{ID: "electronics", Name: "Electronics", NameFr: "Électronique"},
	{ID: "fashion", Name: "Fashion", NameFr: "Mode"},
	{ID: "home-living", Name: "Home & Living", NameFr: "Maison & Déco"},
	{ID: "agriculture", Name: "Agriculture", NameFr: "Agriculture"},
	{ID: "beauty", Name: "Beauty", NameFr: "Beauté"},
}

var seedRegions = []domain.Region{
	{ID: "adamawa", Name: "Adamawa", Capital: "Ngaoundéré"},
	{ID: "centre", Name: "Centre", Capital: "Yaoundé"},
	{ID: "east", Name: "East", Capital: "Bertoua"},
	{ID: "far-north", Name: "Far North", Capital: "Maroua"},
	{ID: "littoral", Name: "Littoral", Capital: "Douala"},
	{ID: "north", Name: "North", Capital: "Garoua"},
	{ID: "northwest", Name: "Northwest", Capital: "Bamenda"},
	{ID: "west", Name: "West", Capital: "Bafoussam"},
	{ID: "south", Name: "South", Capital: "Ebolowa"},
	{ID: "southwest", Name: "Southwest", Capital: "Buea"},
}

var seedVendors = []domain.Vendor{
	{Name: "Douala Tech Hub", RegionID: "littoral", Rating: 4.7},
	{Name: "Yaoundé Electronics", RegionID: "centre", Rating: 4.4},
	{Name: "Bamenda Styles", RegionID: "northwest", Rating: 4.2},
	{Name: "Buea Mountain Goods", RegionID: "southwest", Rating: 4.6},
	{Name: "Maroua Artisans", RegionID: "far-north", Rating: 4.0},
	{Name: "Bafoussam Farms", RegionID: "west", Rating: 4.5},
}

var seedProducts = []domain.Product{
	{ID: 1, Name: "Smartphone X20", NameFr: "Smartphone X20", Price: 185000, CategoryID: "electronics", RegionID: "littoral", Seller: "Douala Tech Hub", Rating: 4.6, Stock: 24, Discount: 10, IsFlashSale: true, DeliveryOptions: []string{"standard", "express"}, Condition: domain.ConditionNew},
	{ID: 2, Name: "Laptop Pro 14", NameFr: "Ordinateur portable Pro 14", Price: 450000, CategoryID: "electronics", RegionID: "littoral", Seller: "Douala Tech Hub", Rating: 4.8, Stock: 8, DeliveryOptions: []string{"standard"}, Condition: domain.ConditionNew},
	{ID: 3, Name: "Bluetooth Speaker", NameFr: "Enceinte Bluetooth", Price: 28000, CategoryID: "electronics", RegionID: "centre", Seller: "Yaoundé Electronics", Rating: 4.1, Stock: 50, Discount: 15, DeliveryOptions: []string{"standard", "express", "pickup"}, Condition: domain.ConditionNew},
	{ID: 4, Name: "LED TV 43\"", NameFr: "Téléviseur LED 43\"", Price: 210000, CategoryID: "electronics", RegionID: "centre", Seller: "Yaoundé Electronics", Rating: 4.3, Stock: 12, DeliveryOptions: []string{"standard"}, Condition: domain.ConditionNew},
	{ID: 5, Name: "Refurbished Tablet A8", NameFr: "Tablette A8 reconditionnée", Price: 65000, CategoryID: "electronics", RegionID: "littoral", Seller: "Douala Tech Hub", Rating: 3.9, Stock: 15, Discount: 20, DeliveryOptions: []string{"pickup", "standard"}, Condition: domain.ConditionUsed},
	{ID: 6, Name: "Power Bank 20000mAh", NameFr: "Batterie externe 20000mAh", Price: 15000, CategoryID: "electronics", RegionID: "west", Seller: "Bafoussam Farms", Rating: 4.4, Stock: 60, DeliveryOptions: []string{"standard", "pickup"}, Condition: domain.ConditionNew},
	{ID: 7, Name: "Wireless Earbuds", NameFr: "Écouteurs sans fil", Price: 22000, CategoryID: "electronics", RegionID: "littoral", Seller: "Douala Tech Hub", Rating: 4.0, Stock: 35, Discount: 5, IsFlashSale: true, DeliveryOptions: []string{"express"}, Condition: domain.ConditionNew},
	{ID: 8, Name: "Used Desktop Tower", NameFr: "Tour de bureau d'occasion", Price: 120000, CategoryID: "electronics", RegionID: "northwest", Seller: "Bamenda Styles", Rating: 3.6, Stock: 4, DeliveryOptions: []string{"pickup"}, Condition: domain.ConditionUsed},
	{ID: 9, Name: "Solar Lamp Kit", NameFr: "Kit lampe solaire", Price: 18500, CategoryID: "electronics", RegionID: "far-north", Seller: "Maroua Artisans", Rating: 4.7, Stock: 40, DeliveryOptions: []string{"standard"}, Condition: domain.ConditionNew},
	{ID: 10, Name: "Smartwatch Fit", NameFr: "Montre connectée Fit", Price: 52000, CategoryID: "electronics", RegionID: "centre", Seller: "Yaoundé Electronics", Rating: 4.2, Stock: 20, Discount: 25, IsFlashSale: true, DeliveryOptions: []string{"standard", "express"}, Condition: domain.ConditionNew},
	{ID: 11, Name: "Ankara Dress", NameFr: "Robe Ankara", Price: 24000, CategoryID: "fashion", RegionID: "northwest", Seller: "Bamenda Styles", Rating: 4.5, Stock: 30, DeliveryOptions: []string{"standard", "pickup"}, Condition: domain.ConditionNew},
	{ID: 12, Name: "Toghu Jacket", NameFr: "Veste Toghu", Price: 85000, CategoryID: "fashion", RegionID: "northwest", Seller: "Bamenda Styles", Rating: 4.9, Stock: 10, DeliveryOptions: []string{"standard"}, Condition: domain.ConditionNew},
	{ID: 13, Name: "Leather Sandals", NameFr: "Sandales en cuir", Price: 12500, CategoryID: "fashion", RegionID: "far-north", Seller: "Maroua Artisans", Rating: 4.1, Stock: 45, Discount: 10, DeliveryOptions: []string{"standard", "pickup"}, Condition: domain.ConditionNew},
	{ID: 14, Name: "Secondhand Denim Jacket", NameFr: "Veste en jean d'occasion", Price: 9000, CategoryID: "fashion", RegionID: "littoral", Seller: "Douala Tech Hub", Rating: 3.8, Stock: 7, DeliveryOptions: []string{"pickup"}, Condition: domain.ConditionUsed},
	{ID: 15, Name: "Kaba Ngondo Gown", NameFr: "Robe Kaba Ngondo", Price: 32000, CategoryID: "fashion", RegionID: "littoral", Seller: "Douala Tech Hub", Rating: 4.6, Stock: 18, IsFlashSale: true, Discount: 30, DeliveryOptions: []string{"standard", "express"}, Condition: domain.ConditionNew},
	{ID: 16, Name: "Bamboo Coffee Table", NameFr: "Table basse en bambou", Price: 47000, CategoryID: "home-living", RegionID: "southwest", Seller: "Buea Mountain Goods", Rating: 4.3, Stock: 9, DeliveryOptions: []string{"standard"}, Condition: domain.ConditionNew},
	{ID: 17, Name: "Raffia Basket Set", NameFr: "Ensemble de paniers en raphia", Price: 8500, CategoryID: "home-living", RegionID: "west", Seller: "Bafoussam Farms", Rating: 4.8, Stock: 55, DeliveryOptions: []string{"standard", "pickup"}, Condition: domain.ConditionNew},
	{ID: 18, Name: "Clay Cooking Pot", NameFr: "Marmite en argile", Price: 6000, CategoryID: "home-living", RegionID: "far-north", Seller: "Maroua Artisans", Rating: 4.4, Stock: 38, Discount: 5, DeliveryOptions: []string{"pickup"}, Condition: domain.ConditionNew},
	{ID: 19, Name: "Foam Mattress 160cm", NameFr: "Matelas mousse 160cm", Price: 95000, CategoryID: "home-living", RegionID: "centre", Seller: "Yaoundé Electronics", Rating: 4.0, Stock: 14, DeliveryOptions: []string{"standard"}, Condition: domain.ConditionNew},
	{ID: 20, Name: "Cocoa Beans 50kg", NameFr: "Fèves de cacao 50kg", Price: 140000, CategoryID: "agriculture", RegionID: "southwest", Seller: "Buea Mountain Goods", Rating: 4.7, Stock: 22, DeliveryOptions: []string{"standard"}, Condition: domain.ConditionNew},
	{ID: 21, Name: "Arabica Coffee 5kg", NameFr: "Café arabica 5kg", Price: 27500, CategoryID: "agriculture", RegionID: "west", Seller: "Bafoussam Farms", Rating: 4.9, Stock: 33, Discount: 10, IsFlashSale: true, DeliveryOptions: []string{"standard", "express"}, Condition: domain.ConditionNew},
	{ID: 22, Name: "Palm Oil 20L", NameFr: "Huile de palme 20L", Price: 19000, CategoryID: "agriculture", RegionID: "littoral", Seller: "Douala Tech Hub", Rating: 4.2, Stock: 48, DeliveryOptions: []string{"pickup", "standard"}, Condition: domain.ConditionNew},
	{ID: 23, Name: "Honey 2L Jar", NameFr: "Pot de miel 2L", Price: 11000, CategoryID: "agriculture", RegionID: "adamawa", Seller: "Maroua Artisans", Rating: 4.6, Stock: 26, DeliveryOptions: []string{"standard"}, Condition: domain.ConditionNew},
	{ID: 24, Name: "Shea Butter 1kg", NameFr: "Beurre de karité 1kg", Price: 7500, CategoryID: "beauty", RegionID: "north", Seller: "Maroua Artisans", Rating: 4.8, Stock: 70, Discount: 15, DeliveryOptions: []string{"standard", "pickup"}, Condition: domain.ConditionNew},
	{ID: 25, Name: "Black Soap Bundle", NameFr: "Lot de savons noirs", Price: 5500, CategoryID: "beauty", RegionID: "west", Seller: "Bafoussam Farms", Rating: 4.5, Stock: 64, DeliveryOptions: []string{"standard"}, Condition: domain.ConditionNew},
	{ID: 26, Name: "Hair Clipper Set", NameFr: "Kit tondeuse", Price: 21000, CategoryID: "beauty", RegionID: "centre", Seller: "Yaoundé Electronics", Rating: 4.1, Stock: 17, DeliveryOptions: []string{"standard", "express"}, Condition: domain.ConditionNew},
	{ID: 27, Name: "Gaming Console S", NameFr: "Console de jeu S", Price: 320000, CategoryID: "electronics", RegionID: "littoral", Seller: "Douala Tech Hub", Rating: 4.7, Stock: 6, DeliveryOptions: []string{"standard", "express"}, Condition: domain.ConditionNew},
	{ID: 28, Name: "Used Camera DSLR", NameFr: "Appareil photo reflex d'occasion", Price: 175000, CategoryID: "electronics", RegionID: "centre", Seller: "Yaoundé Electronics", Rating: 4.0, Stock: 3, Discount: 10, DeliveryOptions: []string{"pickup", "standard"}, Condition: domain.ConditionUsed},
	{ID: 29, Name: "Electric Kettle", NameFr: "Bouilloire électrique", Price: 13500, CategoryID: "electronics", RegionID: "west", Seller: "Bafoussam Farms", Rating: 3.9, Stock: 29, DeliveryOptions: []string{"standard"}, Condition: domain.ConditionNew},
	{ID: 30, Name: "Router AC1200", NameFr: "Routeur AC1200", Price: 38000, CategoryID: "electronics", RegionID: "littoral", Seller: "Douala Tech Hub", Rating: 4.3, Stock: 21, Discount: 5, DeliveryOptions: []string{"standard", "pickup"}, Condition: domain.ConditionNew},
}
