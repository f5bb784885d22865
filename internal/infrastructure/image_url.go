package infrastructure

import (
	"context"
	"strings"
)

// BaseURLResolver строит ссылку на изображение относительно публичного адреса API магазина.
type BaseURLResolver struct {
	baseURL string
}

func NewBaseURLResolver(baseURL string) *BaseURLResolver {
	return &BaseURLResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve: пустой путь — пустая строка, полная ссылка возвращается как есть, иначе путь приклеивается к базе.
func (b *BaseURLResolver) Resolve(_ context.Context, path string) string {
	if path == "" {
		return ""
	}

	if IsAbsoluteURL(path) {
		return path
	}

	normalized := NormalizeImagePath(path)
	if strings.HasPrefix(normalized, "/") {
		return b.baseURL + normalized
	}

	return b.baseURL + "/" + normalized
}
