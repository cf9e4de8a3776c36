package config

import (
	"log"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DataDir  string
	LogLevel string

	// Durable catalog store locations. The cleaned CSV is preferred at
	// serve time when it exists.
	CatalogJSON    string
	CatalogCSV     string
	CatalogCleaned string

	// Optional Mongo-backed catalog store; file store is used when the
	// URI is empty.
	MongoURI string
	MongoDB  string

	CacheTTL time.Duration

	Feeds []FeedConfig
}

// FeedConfig describes one retailer feed: where to read it, how its
// price cells are encoded, and which constant metadata to stamp. The
// whole normalization run is driven from a table of these.
type FeedConfig struct {
	Name     string `yaml:"name"`
	Format   string `yaml:"format"` // csv or json
	Path     string `yaml:"path"`
	Retailer string `yaml:"retailer"`
	Category string `yaml:"category"`

	// PriceMode "combined" means the price cell carries an embedded
	// discount annotation ("₹45,999 20% off"); anything else treats
	// price/mrp/discount as separate cells.
	PriceMode      string `yaml:"priceMode"`
	PriceColumn    string `yaml:"priceColumn"`
	MRPColumn      string `yaml:"mrpColumn"`
	DiscountColumn string `yaml:"discountColumn"`
	RatingColumn   string `yaml:"ratingColumn"`
	ReviewsColumn  string `yaml:"reviewsColumn"`
	OfferColumn    string `yaml:"offerColumn"`
	DeliveryColumn string `yaml:"deliveryColumn"`

	// ImageColumns narrows the image column candidates for feeds whose
	// generic aliases would pick the wrong column.
	ImageColumns []string `yaml:"imageColumns"`
}

func Load() *Config {
	// .env is only present in local development; deployed environments
	// provide real environment variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		DataDir:        getEnv("DATA_DIR", "."),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CatalogJSON:    getEnv("CATALOG_JSON", "products.json"),
		CatalogCSV:     getEnv("CATALOG_CSV", "products.csv"),
		CatalogCleaned: getEnv("CATALOG_CLEANED", "products_cleaned.csv"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDB:        getEnv("MONGO_DB", "productCatalog"),
		CacheTTL:       getDuration("CACHE_TTL", 5*time.Minute),
		Feeds:          DefaultFeeds(),
	}

	if path := getEnv("FEEDS_CONFIG", "feeds.yaml"); path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			var file struct {
				Feeds []FeedConfig `yaml:"feeds"`
			}
			if err := yaml.Unmarshal(raw, &file); err != nil {
				log.Printf("config: cannot parse %s: %v (using default feed table)", path, err)
			} else if len(file.Feeds) > 0 {
				cfg.Feeds = file.Feeds
			}
		}
	}

	return cfg
}

// DefaultFeeds is the compiled-in feed table covering the eight
// retailer exports the scraper produces. A feeds.yaml file overrides it
// wholesale.
func DefaultFeeds() []FeedConfig {
	return []FeedConfig{
		{
			Name: "reliance_laptops", Format: "csv", Path: "reliance_laptops.csv",
			Retailer: "Reliance", Category: "laptops",
			PriceMode: "combined", PriceColumn: "price",
		},
		{
			Name: "reliance_mobiles", Format: "json", Path: "reliance_mobiles.json",
			Retailer: "Reliance", Category: "mobiles",
			PriceColumn: "price", MRPColumn: "mrp", DiscountColumn: "discount",
		},
		{
			Name: "amazon_laptops", Format: "csv", Path: "amazon_laptops.csv",
			Retailer: "Amazon", Category: "laptops",
			PriceMode: "combined", PriceColumn: "price",
		},
		{
			Name: "amazon_mobiles", Format: "json", Path: "amazon_mobiles.json",
			Retailer: "Amazon", Category: "mobiles",
			PriceColumn: "price", RatingColumn: "rating", ReviewsColumn: "reviews",
		},
		{
			Name: "croma_mobiles", Format: "csv", Path: "croma_limited.csv",
			Retailer: "Croma", Category: "mobiles",
			PriceColumn: "price", RatingColumn: "rating",
			ImageColumns: []string{"image"},
		},
		{
			Name: "flipkart_mobiles", Format: "json", Path: "flipkart_mobiles.json",
			Retailer: "Flipkart", Category: "mobiles",
			PriceColumn: "price", RatingColumn: "rating",
		},
		{
			Name: "flipkart_laptops", Format: "json", Path: "flipkart_laptops.json",
			Retailer: "Flipkart", Category: "laptops",
			PriceColumn: "price", RatingColumn: "rating",
		},
		{
			Name: "croma_laptops", Format: "json", Path: "croma_laptops.json",
			Retailer: "Croma", Category: "laptops",
			PriceColumn: "current_price", MRPColumn: "original_price", DiscountColumn: "discount",
			RatingColumn: "rating", ReviewsColumn: "reviews",
			OfferColumn: "offer", DeliveryColumn: "delivery",
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("config: invalid duration for %s, using %s", key, fallback)
	}
	return fallback
}
