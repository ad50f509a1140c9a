package ledger

func isValidEntityType(entityType string) bool {
	switch entityType {
	case "rider", "restaurant":
		return true
	default:
		return false
	}
}

func isValidTransactionType(transactionType string) bool {
	switch transactionType {
	case "earn", "liquidate", "adjustment", "recharge":
		return true
	default:
		return false
	}
}
