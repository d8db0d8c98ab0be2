package main

import (
	"github.com/vastra-store/internal/config"
	"github.com/vastra-store/internal/logger"
	"github.com/vastra-store/internal/models"
)

type seedProduct struct {
	CategorySlug string
	Slug         string
	Name         string
	Description  string
	Price        int64
	MRP          int64
	Fabric       string
	Color        string
	Image        string
	Stock        int
	Featured     bool
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{
			Slug:        "sarees",
			Name:        "Sarees",
			Description: "Handloom and designer sarees from across India",
			Image:       "/images/categories/sarees.jpg",
			SortOrder:   1,
		},
		{
			Slug:        "kurtas",
			Name:        "Kurtas & Kurtis",
			Description: "Everyday and festive kurtas for men and women",
			Image:       "/images/categories/kurtas.jpg",
			SortOrder:   2,
		},
		{
			Slug:        "lehengas",
			Name:        "Lehengas",
			Description: "Bridal and occasion lehengas with intricate work",
			Image:       "/images/categories/lehengas.jpg",
			SortOrder:   3,
		},
		{
			Slug:        "sherwanis",
			Name:        "Sherwanis",
			Description: "Wedding and reception sherwanis",
			Image:       "/images/categories/sherwanis.jpg",
			SortOrder:   4,
		},
		{
			Slug:        "dupattas",
			Name:        "Dupattas & Stoles",
			Description: "Phulkari, bandhani and chanderi dupattas",
			Image:       "/images/categories/dupattas.jpg",
			SortOrder:   5,
		},
	}

	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Slug)
			categoryIDs[cat.Slug] = cat.ID
		} else {
			stdLog.Printf("Category already exists: %s", existing.Slug)
			categoryIDs[existing.Slug] = existing.ID
		}
	}

	products := []seedProduct{
		{
			CategorySlug: "sarees",
			Slug:         "kanjivaram-silk-saree-maroon",
			Name:         "Kanjivaram Silk Saree",
			Description:  "Pure mulberry silk Kanjivaram with gold zari border and traditional temple motifs. Blouse piece included.",
			Price:        12999,
			MRP:          15999,
			Fabric:       "silk",
			Color:        "maroon",
			Image:        "/images/products/kanjivaram-maroon.jpg",
			Stock:        8,
			Featured:     true,
		},
		{
			CategorySlug: "sarees",
			Slug:         "banarasi-georgette-saree-teal",
			Name:         "Banarasi Georgette Saree",
			Description:  "Lightweight Banarasi georgette with silver zari buttis, ideal for evening functions.",
			Price:        4499,
			MRP:          5999,
			Fabric:       "georgette",
			Color:        "teal",
			Image:        "/images/products/banarasi-teal.jpg",
			Stock:        15,
			Featured:     true,
		},
		{
			CategorySlug: "sarees",
			Slug:         "handloom-cotton-saree-mustard",
			Name:         "Handloom Cotton Saree",
			Description:  "Soft mangalagiri cotton with contrast nizam border, comfortable for daily wear.",
			Price:        1499,
			MRP:          1899,
			Fabric:       "cotton",
			Color:        "mustard",
			Image:        "/images/products/handloom-mustard.jpg",
			Stock:        30,
		},
		{
			CategorySlug: "kurtas",
			Slug:         "chikankari-kurta-white",
			Name:         "Lucknowi Chikankari Kurta",
			Description:  "Hand embroidered chikankari on fine mulmul cotton, straight cut with side slits.",
			Price:        1899,
			MRP:          2499,
			Fabric:       "cotton",
			Color:        "white",
			Image:        "/images/products/chikankari-white.jpg",
			Stock:        25,
			Featured:     true,
		},
		{
			CategorySlug: "kurtas",
			Slug:         "anarkali-kurta-set-navy",
			Name:         "Anarkali Kurta Set",
			Description:  "Flared anarkali in rayon with gota patti detailing, comes with churidar and dupatta.",
			Price:        2799,
			MRP:          3499,
			Fabric:       "rayon",
			Color:        "navy",
			Image:        "/images/products/anarkali-navy.jpg",
			Stock:        18,
		},
		{
			CategorySlug: "kurtas",
			Slug:         "mens-silk-kurta-beige",
			Name:         "Men's Raw Silk Kurta",
			Description:  "Raw silk kurta with mandarin collar and concealed placket, festive staple.",
			Price:        2299,
			MRP:          2999,
			Fabric:       "silk",
			Color:        "beige",
			Image:        "/images/products/mens-kurta-beige.jpg",
			Stock:        20,
		},
		{
			CategorySlug: "lehengas",
			Slug:         "bridal-lehenga-red",
			Name:         "Bridal Velvet Lehenga",
			Description:  "Deep red velvet lehenga with zardozi embroidery, cancan lining and double dupatta.",
			Price:        28999,
			MRP:          34999,
			Fabric:       "velvet",
			Color:        "red",
			Image:        "/images/products/bridal-red.jpg",
			Stock:        4,
			Featured:     true,
		},
		{
			CategorySlug: "lehengas",
			Slug:         "mirror-work-lehenga-pink",
			Name:         "Mirror Work Lehenga",
			Description:  "Georgette lehenga with kutchi mirror work, perfect for sangeet and garba nights.",
			Price:        7999,
			MRP:          9999,
			Fabric:       "georgette",
			Color:        "pink",
			Image:        "/images/products/mirror-pink.jpg",
			Stock:        10,
		},
		{
			CategorySlug: "sherwanis",
			Slug:         "jodhpuri-sherwani-ivory",
			Name:         "Jodhpuri Sherwani",
			Description:  "Ivory brocade sherwani with antique gold buttons, includes matching stole.",
			Price:        15999,
			MRP:          19999,
			Fabric:       "brocade",
			Color:        "ivory",
			Image:        "/images/products/sherwani-ivory.jpg",
			Stock:        6,
			Featured:     true,
		},
		{
			CategorySlug: "dupattas",
			Slug:         "phulkari-dupatta-multicolour",
			Name:         "Phulkari Dupatta",
			Description:  "Hand embroidered Punjabi phulkari on chiffon base, pairs with solid suits.",
			Price:        999,
			MRP:          1299,
			Fabric:       "chiffon",
			Color:        "multicolour",
			Image:        "/images/products/phulkari.jpg",
			Stock:        40,
		},
		{
			CategorySlug: "dupattas",
			Slug:         "banarasi-dupatta-gold",
			Name:         "Banarasi Silk Dupatta",
			Description:  "Woven Banarasi dupatta with all-over zari jaal, festive essential.",
			Price:        1599,
			MRP:          1999,
			Fabric:       "silk",
			Color:        "gold",
			Image:        "/images/products/banarasi-dupatta.jpg",
			Stock:        22,
		},
	}

	for _, sp := range products {
		categoryID, ok := categoryIDs[sp.CategorySlug]
		if !ok {
			stdLog.Printf("Skipping product %s: category %s missing", sp.Slug, sp.CategorySlug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", sp.Slug).First(&existing).Error; err == nil {
			stdLog.Printf("Product already exists: %s", sp.Slug)
			continue
		}
		product := models.Product{
			CategoryID:    categoryID,
			Slug:          sp.Slug,
			Name:          sp.Name,
			Description:   sp.Description,
			Price:         models.NewMoneyFromInt(sp.Price),
			MRP:           models.NewMoneyFromInt(sp.MRP),
			Fabric:        sp.Fabric,
			Color:         sp.Color,
			Images:        models.StringArray([]string{sp.Image}),
			StockQuantity: sp.Stock,
			IsFeatured:    sp.Featured,
			IsActive:      true,
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", sp.Slug, err)
			continue
		}
		stdLog.Printf("Created product: %s", sp.Slug)
	}

	stdLog.Printf("Seed finished")
}
