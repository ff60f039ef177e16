package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media : un visuel produit (image|video|gif)
type Media struct {
	URL  string `bson:"url" json:"url"`
	Kind string `bson:"kind" json:"kind"`
}

type SEO struct {
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Keywords    []string `bson:"keywords" json:"keywords"`
}

type PriceInfo struct {
	SupplierPrice float64 `bson:"supplier_price" json:"supplier_price"`
	TargetPrice   float64 `bson:"target_price" json:"target_price"`
	Currency      string  `bson:"currency" json:"currency"`
	MarginX       float64 `bson:"margin_x" json:"margin_x"`
}

// Angle : accroche marketing + script vidéo associé
type Angle struct {
	Hook   string `bson:"hook" json:"hook"`
	Script string `bson:"script" json:"script"`
}

// Avatar : persona cible du produit
type Avatar struct {
	Name      string   `bson:"name" json:"name"`
	Age       int      `bson:"age" json:"age"`
	Archetype string   `bson:"archetype" json:"archetype"`
	Pains     []string `bson:"pains" json:"pains"`
	Desires   []string `bson:"desires" json:"desires"`
}

type Review struct {
	Name    string    `bson:"name" json:"name"`
	Rating  int       `bson:"rating" json:"rating"` // 1-5
	Comment string    `bson:"comment" json:"comment"`
	Date    time.Time `bson:"date" json:"date"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Media       []Media            `bson:"media" json:"media"`
	Price       PriceInfo          `bson:"price" json:"price"`
	TrendScore  float64            `bson:"trend_score" json:"trend_score"` // 0-100
	Badges      []string           `bson:"badges" json:"badges"`
	SEO         SEO                `bson:"seo" json:"seo"`
	Angles      []Angle            `bson:"angles" json:"angles"`
	Avatars     []Avatar           `bson:"avatars" json:"avatars"`
	Reviews     []Review           `bson:"reviews" json:"reviews"`
	Stock       int                `bson:"stock" json:"stock"`
}

var mediaKinds = map[string]bool{"image": true, "video": true, "gif": true}

func (m *Media) Validate() error {
	if m.URL == "" {
		return fmt.Errorf("media.url requis")
	}
	if m.Kind == "" {
		m.Kind = "image"
	}
	if !mediaKinds[m.Kind] {
		return fmt.Errorf("media.kind invalide: %q (attendu image|video|gif)", m.Kind)
	}
	return nil
}

func (r *Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("review.rating hors bornes [1,5]: %d", r.Rating)
	}
	return nil
}

// Validate vérifie les invariants du produit avant insertion.
// Pas de validation croisée target_price / supplier_price.
func (p *Product) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("title requis")
	}
	if p.Category == "" {
		return fmt.Errorf("category requis")
	}
	if p.TrendScore < 0 || p.TrendScore > 100 {
		return fmt.Errorf("trend_score hors bornes [0,100]: %v", p.TrendScore)
	}
	if p.Stock < 0 {
		return fmt.Errorf("stock négatif: %d", p.Stock)
	}
	for i := range p.Media {
		if err := p.Media[i].Validate(); err != nil {
			return fmt.Errorf("media[%d]: %w", i, err)
		}
	}
	for i := range p.Reviews {
		if err := p.Reviews[i].Validate(); err != nil {
			return fmt.Errorf("reviews[%d]: %w", i, err)
		}
	}
	return nil
}
