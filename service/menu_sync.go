package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-postgres-restopos/models"
)

// FetchMenuFromMongo menarik item menu dari deployment MongoDB milik operator
// (fitur import menu). Semua collection non-system dibaca; kalau dokumen tidak
// punya category, nama collection dipakai sebagai kategorinya. Return: item +
// daftar kategori terurut.
func FetchMenuFromMongo(ctx context.Context, uri, databaseName string) ([]models.MenuItem, []string, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("koneksi MongoDB gagal: %w", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	dbName := databaseName
	if dbName == "" {
		dbName = extractDatabaseName(uri)
	}
	db := client.Database(dbName)

	collNames, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, nil, fmt.Errorf("gagal list collection: %w", err)
	}

	var items []models.MenuItem
	categorySet := map[string]struct{}{}

	for _, collName := range collNames {
		if strings.HasPrefix(collName, "system.") {
			continue
		}
		cur, err := db.Collection(collName).Find(ctx, bson.D{})
		if err != nil {
			return nil, nil, fmt.Errorf("gagal baca collection %s: %w", collName, err)
		}
		var docs []bson.M
		if err := cur.All(ctx, &docs); err != nil {
			return nil, nil, fmt.Errorf("gagal decode collection %s: %w", collName, err)
		}
		for _, doc := range docs {
			name, _ := doc["name"].(string)
			if name == "" {
				continue
			}
			category, _ := doc["category"].(string)
			if category == "" {
				category = collName
			}
			categorySet[category] = struct{}{}

			price := asDecimal(doc["price"])
			item := models.MenuItem{
				Name:     name,
				Category: category,
				Price:    price.StringFixed(2),
				// cost tidak ada di sumber; estimasi 40% dari harga jual
				Cost:      price.Mul(decimal.NewFromFloat(0.4)).Round(2).StringFixed(2),
				Available: true,
				IsVeg:     true,
			}
			if v, ok := doc["isAvailable"].(bool); ok {
				item.Available = v
			}
			if v, ok := doc["isVeg"].(bool); ok {
				item.IsVeg = v
			}
			if v, ok := doc["image"].(string); ok && v != "" {
				item.Image = &v
			}
			if v, ok := doc["description"].(string); ok && v != "" {
				item.Description = &v
			}
			items = append(items, item)
		}
	}

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return items, categories, nil
}

func asDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int32:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		if d, err := decimal.NewFromString(n); err == nil {
			return d
		}
	}
	return decimal.Zero
}

var (
	mongoAppNameRe = regexp.MustCompile(`(?i)appName=([^&]+)`)
	mongoPathRe    = regexp.MustCompile(`mongodb(?:\+srv)?://[^/]+/([^?&]+)`)
)

// extractDatabaseName menebak nama database dari URI: appName dulu, lalu path,
// fallback "test" (default driver).
func extractDatabaseName(uri string) string {
	if m := mongoAppNameRe.FindStringSubmatch(uri); len(m) == 2 {
		return strings.ToLower(m[1])
	}
	if m := mongoPathRe.FindStringSubmatch(uri); len(m) == 2 && m[1] != "" {
		return m[1]
	}
	return "test"
}
