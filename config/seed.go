package config

import (
	"log"

	"go-postgres-restopos/models"
)

// SeedInitialData mengisi lantai, meja, dan menu default kalau database masih
// kosong (cek jumlah floors). Idempotent: run kedua tidak menduplikasi.
func SeedInitialData() {
	var cnt int64
	DB.Model(&models.Floor{}).Count(&cnt)
	if cnt > 0 {
		return
	}

	log.Println("🌱 Seeding data awal...")

	floor := models.Floor{Name: "Ground Floor", DisplayOrder: 0}
	if err := DB.Create(&floor).Error; err != nil {
		log.Printf("⚠️  Gagal seed lantai: %v", err)
		return
	}

	tableNumbers := []string{"T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8", "T9", "T10", "T11", "T12"}
	seats := []int{4, 6, 4, 2, 8, 4, 2, 6, 4, 4, 2, 4}
	for i, no := range tableNumbers {
		t := models.Table{
			TableNumber: no,
			Seats:       seats[i],
			Status:      models.TableFree,
			FloorID:     &floor.ID,
		}
		if err := DB.Create(&t).Error; err != nil {
			log.Printf("⚠️  Gagal seed meja %s: %v", no, err)
		}
	}

	menu := []models.MenuItem{
		{Name: "Chicken Burger", Category: "Burgers", Price: "199.00", Cost: "80.00", Available: true, IsVeg: false, Variants: []string{"Regular", "Large"}},
		{Name: "Veggie Pizza", Category: "Pizza", Price: "299.00", Cost: "120.00", Available: true, IsVeg: true},
		{Name: "French Fries", Category: "Fast Food", Price: "99.00", Cost: "35.00", Available: true, IsVeg: true, Variants: []string{"Small", "Medium", "Large"}},
		{Name: "Coca Cola", Category: "Beverages", Price: "50.00", Cost: "20.00", Available: true, IsVeg: true},
		{Name: "Caesar Salad", Category: "Salads", Price: "149.00", Cost: "60.00", Available: true, IsVeg: true},
		{Name: "Pasta Alfredo", Category: "Pasta", Price: "249.00", Cost: "100.00", Available: true, IsVeg: true},
		{Name: "Chocolate Cake", Category: "Desserts", Price: "129.00", Cost: "50.00", Available: true, IsVeg: true},
		{Name: "Ice Cream", Category: "Desserts", Price: "79.00", Cost: "30.00", Available: true, IsVeg: true, Variants: []string{"Vanilla", "Chocolate", "Strawberry"}},
	}
	for _, m := range menu {
		item := m
		if err := DB.Create(&item).Error; err != nil {
			log.Printf("⚠️  Gagal seed menu %s: %v", m.Name, err)
		}
	}

	log.Println("✅ Seeding selesai")
}
