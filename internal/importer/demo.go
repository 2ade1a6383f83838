package importer

import "storefront/internal/domain/model"

// DemoProducts は初期データ用の5商品
func DemoProducts() []model.Product {
	const img = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

	return []model.Product{
		demo("p001", "オーガニックコットン Tシャツ", "Tops", 3500, "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab"+img),
		demo("p002", "スリムフィット デニムパンツ", "Bottoms", 8900, "https://images.unsplash.com/photo-1542272454315-4c01d7abdf4a"+img),
		demo("p003", "リネンお出かけシャツ (白)", "Tops", 6500, "https://images.unsplash.com/photo-1596755094514-f87e34085b2c"+img),
		demo("p004", "カジュアルジャケット (ネイビー)", "Outerwear", 12000, "https://images.unsplash.com/photo-1591047139829-d91aecb6caea"+img),
		demo("p005", "キャンバススニーカー", "Shoes", 5800, "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77"+img),
	}
}

func demo(id, title, category string, price float64, image string) model.Product {
	return model.Product{
		ID:           id,
		Title:        title,
		Category:     category,
		Price:        price,
		CurrencyCode: "JPY",
		ImageURL:     image,
		Availability: model.AvailabilityInStock,
	}
}
