package order

import "strings"

func isValidOrderCode(code string) bool {
	return len(strings.TrimSpace(code)) == codeLength
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidStatus(status string) bool {
	switch status {
	case "cart", "confirmed", "restaurant_confirmed", "ready",
		"assigned_rider", "picked_up", "in_transit",
		"delivered", "cancelled", "rejected":
		return true
	default:
		return false
	}
}

func isValidActor(actor string) bool {
	switch actor {
	case "customer", "restaurant", "dispatcher", "rider", "system", "operator":
		return true
	default:
		return false
	}
}

func isValidGeoPoint(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
