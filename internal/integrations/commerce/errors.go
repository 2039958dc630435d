package commerce

import "errors"

var (
	// ErrProductNotFound возвращается, когда товара нет в каталоге
	ErrProductNotFound = errors.New("product not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("commerce client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе каталога
	ErrInvalidResponse = errors.New("commerce client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Каталог недоступен: курс считается не распроданным и без отсчёта до запуска
	ErrServiceDegraded = errors.New("commerce unavailable: graceful degradation applied")
)
