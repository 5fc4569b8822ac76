package notifications

import "errors"

var (
	// ErrRender возвращается при ошибке рендеринга шаблона письма
	ErrRender = errors.New("notifications: failed to render email")

	// ErrDeliveryFailed возвращается, когда все попытки отправки исчерпаны
	ErrDeliveryFailed = errors.New("notifications: delivery failed")
)
