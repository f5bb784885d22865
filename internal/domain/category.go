package domain

// Category описывает категорию товара
type Category struct {
	ID    string
	Name  string
	Image string
}

func NewCategory(id string, name string, image string) Category {
	return Category{
		ID:    id,
		Name:  name,
		Image: image,
	}
}
