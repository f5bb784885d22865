package domain

// Image описывает изображение товара, готовое к показу.
type Image struct {
	URL      string
	BlurHash string
}

func NewImage(url string, blurHash string) Image {
	return Image{
		URL:      url,
		BlurHash: blurHash,
	}
}
