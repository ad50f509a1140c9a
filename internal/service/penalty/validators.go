package penalty

import "strings"

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

func isValidLevel(level string) bool {
	switch level {
	case "none", "warning", "restricted", "banned":
		return true
	default:
		return false
	}
}
