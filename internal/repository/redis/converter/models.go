package converter

// Денежные поля хранятся строкой, чтобы decimal не терял точность при JSON.

type CatalogSnapshotRedisModel struct {
	Products   []CatalogProductRedisModel `json:"products"`
	Categories []CategoryRedisModel       `json:"categories"`
}

type CatalogProductRedisModel struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Price         string            `json:"price"`
	PreviousPrice *string           `json:"previous_price,omitempty"`
	Category      string            `json:"category"`
	IsAvailable   bool              `json:"is_available"`
	OnPromotion   bool              `json:"on_promotion"`
	Images        []ImageRedisModel `json:"images"`
	Image         string            `json:"image,omitempty"`
}

type ImageRedisModel struct {
	URL      string `json:"url"`
	BlurHash string `json:"blur_hash,omitempty"`
}

type CategoryRedisModel struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}
