package service

import "errors"

// Таксономия ошибок сервисного слоя. Хендлеры отображают их в HTTP-статусы
// на внешней границе; внутренние причины наружу не утекают.
var (
	// ErrUnauthenticated — субъект не разрешён из токена (нет токена, битый токен).
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnauthorized — субъект валиден, но не владелец модели.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound — модель или ссылка на изображение отсутствует.
	// Нормальный исход, отличаемый от ошибок хранилища.
	ErrNotFound = errors.New("not found")

	// ErrNoChange — хранилище сообщило о нуле изменённых полей при успешном
	// совпадении. Неотличимо от "патч равен текущему состоянию"; наружу — 500.
	ErrNoChange = errors.New("no fields changed")

	// ErrImageDelete — координатор отказал в удалении изображения по причине,
	// отличной от "not found"; удаление модели блокируется.
	ErrImageDelete = errors.New("image deletion failed")
)

// MsgImageNotFound — текст ответа координатора для отсутствующего изображения.
// Единственная причина отказа, которая НЕ блокирует удаление модели.
const MsgImageNotFound = "not found"
