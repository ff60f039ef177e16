// Package seed : catalogue initial fixe, inséré par POST /seed.
package seed

import (
	"time"

	"velora_back_end/internal/models"
)

// Catalog retourne les cinq produits du catalogue de départ.
// Les valeurs sont figées ; seules les dates d'avis sont posées à l'appel.
func Catalog() []models.Product {
	now := time.Now().UTC()

	return []models.Product{
		{
			Title:       "Portable Blender Pro X",
			Description: "Blend smoothies on-the-go with a powerful, quiet motor. USB-C fast charging, self-cleaning, BPA-free.",
			Category:    "Fitness",
			Media: []models.Media{
				{URL: "https://images.unsplash.com/photo-1556911220-e15b29be8c8f", Kind: "image"},
			},
			Price:      models.PriceInfo{SupplierPrice: 16.0, TargetPrice: 49.99, Currency: "USD", MarginX: 3.1},
			TrendScore: 89,
			Badges:     []string{"Money-back Guarantee", "BPA-Free", "USB-C Fast Charge"},
			SEO: models.SEO{
				Title:       "Portable Blender Pro X",
				Description: "Powerful portable blender for smoothies, shakes and more.",
				Keywords:    []string{"portable blender", "usb-c blender", "smoothie maker"},
			},
			Angles: []models.Angle{
				{Hook: "Stop skipping breakfast", Script: "Open with chaotic morning, then show 10-sec smoothie."},
			},
			Avatars: []models.Avatar{
				{Name: "Lerato", Age: 28, Archetype: "Busy Professional", Pains: []string{"No time for breakfast"}, Desires: []string{"Healthy lifestyle"}},
			},
			Reviews: []models.Review{
				{Name: "Sam", Rating: 5, Comment: "Game changer for the gym!", Date: now},
			},
			Stock: 250,
		},
		{
			Title:       "Pet Hair Eraser Turbo",
			Description: "Cordless handheld vacuum engineered for pet hair with turbo brush and HEPA filtration.",
			Category:    "Pet",
			Media: []models.Media{
				{URL: "https://images.unsplash.com/photo-1581578731548-c64695cc6952", Kind: "image"},
			},
			Price:      models.PriceInfo{SupplierPrice: 22.0, TargetPrice: 69.99, Currency: "USD", MarginX: 3.1},
			TrendScore: 91,
			Badges:     []string{"HEPA Certified", "2-Year Warranty"},
			SEO: models.SEO{
				Title:       "Pet Hair Eraser Turbo",
				Description: "Cordless HEPA handheld vacuum for pet hair.",
				Keywords:    []string{"pet vacuum", "handheld vacuum", "pet hair remover"},
			},
			Angles: []models.Angle{
				{Hook: "If you have pets, watch this", Script: "Show sofa full of hair → quick clean montage."},
			},
			Avatars: []models.Avatar{
				{Name: "Thabo", Age: 34, Archetype: "Pet Parent", Pains: []string{"Hair everywhere"}, Desires: []string{"Clean home"}},
			},
			Reviews: []models.Review{
				{Name: "Amy", Rating: 5, Comment: "Picks up everything.", Date: now},
			},
			Stock: 180,
		},
		{
			Title:       "LED Galaxy Projector 2.0",
			Description: "Transform rooms into a galaxy with app control, sleep timer, and white noise.",
			Category:    "Lifestyle",
			Media: []models.Media{
				{URL: "https://images.unsplash.com/photo-1510940537115-1e3ab72b45dc", Kind: "image"},
			},
			Price:      models.PriceInfo{SupplierPrice: 14.5, TargetPrice: 49.99, Currency: "USD", MarginX: 3.4},
			TrendScore: 87,
			Badges:     []string{"App Control", "Timer", "White Noise"},
			SEO: models.SEO{
				Title:       "LED Galaxy Projector",
				Description: "Cosmic ambience projector with app control.",
				Keywords:    []string{"galaxy projector", "room lights", "ambient light"},
			},
			Angles: []models.Angle{
				{Hook: "Turn any room into a vibe", Script: "Dark room → stars on → relaxing shots."},
			},
			Avatars: []models.Avatar{
				{Name: "Neo", Age: 22, Archetype: "Student Creator", Pains: []string{"Boring room"}, Desires: []string{"Aesthetic vibe"}},
			},
			Reviews: []models.Review{
				{Name: "Jess", Rating: 5, Comment: "My sleep improved a lot.", Date: now},
			},
			Stock: 300,
		},
		{
			Title:       "Smart Posture Corrector",
			Description: "Wearable posture trainer with vibration alerts and app analytics.",
			Category:    "Tech",
			Media: []models.Media{
				{URL: "https://images.unsplash.com/photo-1543269865-cbf427effbad", Kind: "image"},
			},
			Price:      models.PriceInfo{SupplierPrice: 18.0, TargetPrice: 59.99, Currency: "USD", MarginX: 3.3},
			TrendScore: 90,
			Badges:     []string{"App Sync", "USB-C", "1-Year Warranty"},
			SEO: models.SEO{
				Title:       "Smart Posture Corrector",
				Description: "Wearable posture sensor with app analytics.",
				Keywords:    []string{"posture corrector", "wearable", "back pain"},
			},
			Angles: []models.Angle{
				{Hook: "Hunching at your desk?", Script: "Office B-roll + phone notifications."},
			},
			Avatars: []models.Avatar{
				{Name: "Aisha", Age: 31, Archetype: "Remote Worker", Pains: []string{"Neck/back pain"}, Desires: []string{"Better posture"}},
			},
			Reviews: []models.Review{
				{Name: "Ben", Rating: 4, Comment: "Really helps me sit upright.", Date: now},
			},
			Stock: 200,
		},
		{
			Title:       "AeroBrew Kettle",
			Description: "Gooseneck electric kettle with precise temperature control for coffee & tea.",
			Category:    "Kitchen",
			Media: []models.Media{
				{URL: "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd", Kind: "image"},
			},
			Price:      models.PriceInfo{SupplierPrice: 21.0, TargetPrice: 69.99, Currency: "USD", MarginX: 3.3},
			TrendScore: 86,
			Badges:     []string{"Auto Shutoff", "Barista Approved"},
			SEO: models.SEO{
				Title:       "AeroBrew Kettle",
				Description: "Precision gooseneck kettle for pour-over coffee.",
				Keywords:    []string{"gooseneck kettle", "coffee kettle", "barista"},
			},
			Angles: []models.Angle{
				{Hook: "Make café-quality coffee at home", Script: "Thermometer closeups + pour-over."},
			},
			Avatars: []models.Avatar{
				{Name: "Sipho", Age: 29, Archetype: "Coffee Enthusiast", Pains: []string{"Inconsistent pours"}, Desires: []string{"Perfect brew"}},
			},
			Reviews: []models.Review{
				{Name: "Mila", Rating: 5, Comment: "Dialed my pour-over.", Date: now},
			},
			Stock: 160,
		},
	}
}
