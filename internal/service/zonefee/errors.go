package zonefee

import "errors"

var (
	ErrInvalidCityID   = errors.New("invalid city id")
	ErrInvalidGeoPoint = errors.New("coordinates out of range")

	ErrInvalidZone  = errors.New("invalid zone definition")
	ErrZoneNotFound = errors.New("zone not found")

	// ErrNoZoneCoverage возвращается и когда точка вне всех активных зон,
	// и как fallback при недоступности поиска зон: вызывающий блокирует
	// заказ либо отправляет его на ручную тарификацию.
	ErrNoZoneCoverage = errors.New("delivery point is not covered by any active zone")
)
