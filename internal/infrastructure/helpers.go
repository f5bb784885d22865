package infrastructure

import "strings"

// NormalizeImagePath заменяет обратные слеши на прямые, как их отдаёт загрузчик на Windows.
func NormalizeImagePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// IsAbsoluteURL сообщает, что путь уже является полной ссылкой.
func IsAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http")
}
