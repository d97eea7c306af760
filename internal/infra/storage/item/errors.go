package item

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция каталога не найдена
	ErrItemNotFound = errors.New("item.repository: item not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("item.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("item.repository: failed to scan row")
)
