package catalog

import (
	"decoration_room/internal/models"

	"github.com/shopspring/decimal"
)

var palette = []models.ColorOption{
	{Name: "Branco", Hex: "#FFFFFF"},
	{Name: "Preto", Hex: "#000000"},
	{Name: "Cinza", Hex: "#808080"},
	{Name: "Marrom", Hex: "#8B4513"},
	{Name: "Bege", Hex: "#F5F5DC"},
	{Name: "Azul Marinho", Hex: "#000080"},
}

var sampleReviews = []models.Review{
	{ID: "rev-1", UserID: "user-1", UserName: "Maria Silva", Rating: 5, Comment: "Produto excelente! Superou minhas expectativas.", Date: "2024-01-15"},
	{ID: "rev-2", UserID: "user-2", UserName: "João Santos", Rating: 4, Comment: "Muito bom, entrega rápida e produto de qualidade.", Date: "2024-01-10"},
	{ID: "rev-3", UserID: "user-3", UserName: "Ana Costa", Rating: 5, Comment: "Adorei! Ficou perfeito na minha sala.", Date: "2024-01-08"},
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

func rating(r float64) *float64 {
	return &r
}

func colors(idx ...int) []models.ColorOption {
	out := make([]models.ColorOption, len(idx))
	for i, n := range idx {
		out[i] = palette[n]
	}
	return out
}

func reviews(idx ...int) []models.Review {
	out := make([]models.Review, len(idx))
	for i, n := range idx {
		out[i] = sampleReviews[n]
	}
	return out
}

var products = []models.Product{
	{
		ID:          "mesa-1",
		Name:        "Mesa de Jantar Elegance",
		Category:    models.CategoryTable,
		Price:       price("1299.90"),
		Description: "Mesa de jantar moderna com tampo em MDF e pés em aço",
		Image:       "https://images.unsplash.com/photo-1617806118233-18e1de247200?w=600&h=600&fit=crop",
		Colors:      colors(0, 1, 3),
		InStock:     true,
		Featured:    true,
		Rating:      rating(4.8),
		Reviews:     reviews(0, 1),
	},
	{
		ID:          "mesa-2",
		Name:        "Mesa de Centro Premium",
		Category:    models.CategoryTable,
		Price:       price("899.90"),
		Description: "Mesa de centro com design minimalista e acabamento premium",
		Image:       "https://images.unsplash.com/photo-1611269154421-4e27233ac5c7?w=600&h=600&fit=crop",
		Colors:      colors(0, 2, 4),
		InStock:     true,
		Rating:      rating(4.5),
		Reviews:     reviews(2),
	},
	{
		ID:          "mesa-3",
		Name:        "Mesa Lateral Compact",
		Category:    models.CategoryTable,
		Price:       price("449.90"),
		Description: "Mesa lateral compacta ideal para espaços pequenos",
		Image:       "https://images.unsplash.com/photo-1595526114035-0d45ed16cfbf?w=600&h=600&fit=crop",
		Colors:      colors(1, 3, 4),
		InStock:     true,
		Rating:      rating(4.3),
		Reviews:     reviews(0),
	},
	{
		ID:               "cadeira-1",
		Name:             "Cadeira Confort Plus",
		Category:         models.CategoryChair,
		Price:            price("599.99"),
		OriginalPrice:    pricePtr("599.99"),
		PromotionalPrice: pricePtr("399.99"),
		Description:      "Cadeira estofada com design ergonômico e confortável, estrutura de madeira clara com estofado premium",
		Image:            "https://k6hrqrxuu8obbfwn.public.blob.vercel-storage.com/temp/4a873b46-f170-4780-b8b5-0ef5d3131c2c.jpg",
		Colors:           colors(0, 2),
		InStock:          true,
		Featured:         true,
		Rating:           rating(4.9),
		Reviews:          reviews(0, 2),
	},
	{
		ID:          "cadeira-2",
		Name:        "Cadeira Moderna Style",
		Category:    models.CategoryChair,
		Price:       price("349.90"),
		Description: "Cadeira com design moderno e estrutura resistente",
		Image:       "https://images.unsplash.com/photo-1503602642458-232111445657?w=600&h=600&fit=crop",
		Colors:      colors(0, 1, 3),
		InStock:     true,
		Rating:      rating(4.6),
		Reviews:     reviews(1),
	},
	{
		ID:          "cadeira-3",
		Name:        "Cadeira Office Pro",
		Category:    models.CategoryChair,
		Price:       price("599.90"),
		Description: "Cadeira profissional com ajuste de altura e apoio lombar",
		Image:       "https://images.unsplash.com/photo-1592078615290-033ee584e267?w=600&h=600&fit=crop",
		Colors:      colors(1, 2, 5),
		InStock:     true,
		Rating:      rating(4.7),
		Reviews:     reviews(0, 1, 2),
	},
	{
		ID:          "pacote-1",
		Name:        "Pacote Sala de Jantar Completa",
		Category:    models.CategoryBundle,
		Price:       price("2899.90"),
		Description: "Mesa Elegance + 4 Cadeiras Confort Plus",
		Image:       "https://images.unsplash.com/photo-1615529182904-14819c35db37?w=600&h=600&fit=crop",
		Colors:      colors(0, 1, 3),
		InStock:     true,
		Featured:    true,
		Rating:      rating(5.0),
		Reviews:     reviews(0, 2),
	},
	{
		ID:          "pacote-2",
		Name:        "Pacote Home Office",
		Category:    models.CategoryBundle,
		Price:       price("1799.90"),
		Description: "Mesa Lateral + Cadeira Office Pro",
		Image:       "https://images.unsplash.com/photo-1595428774223-ef52624120d2?w=600&h=600&fit=crop",
		Colors:      colors(1, 2, 5),
		InStock:     true,
		Rating:      rating(4.8),
		Reviews:     reviews(1),
	},
}
