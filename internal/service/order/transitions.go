package order

import "deliverycore/internal/entities"

type edge struct {
	from entities.OrderStatusType
	to   entities.OrderStatusType
}

// successors — прямые переходы основного пути плюс escape-переходы.
// cancelled доступен из любого статуса до picked_up,
// rejected — только из confirmed / restaurant_confirmed (инициатива ресторана).
var successors = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderCart: {
		entities.OrderConfirmed,
		entities.OrderCancelled,
	},
	entities.OrderConfirmed: {
		entities.OrderRestaurantConfirmed,
		entities.OrderCancelled,
		entities.OrderRejected,
	},
	entities.OrderRestaurantConfirmed: {
		entities.OrderReady,
		entities.OrderCancelled,
		entities.OrderRejected,
	},
	entities.OrderReady: {
		entities.OrderAssignedRider,
		entities.OrderCancelled,
	},
	entities.OrderAssignedRider: {
		entities.OrderPickedUp,
		entities.OrderCancelled,
	},
	entities.OrderPickedUp: {
		entities.OrderInTransit,
	},
	entities.OrderInTransit: {
		entities.OrderDelivered,
	},
}

// edgeRoles — таблица полномочий: какой роли разрешено ребро перехода.
// Явная таблица вместо размазанных по коду условий.
var edgeRoles = map[entities.OrderStatusType]map[entities.ActorRole]bool{
	entities.OrderConfirmed: {
		entities.ActorCustomer: true,
		entities.ActorSystem:   true,
	},
	entities.OrderRestaurantConfirmed: {
		entities.ActorRestaurant: true,
	},
	entities.OrderReady: {
		entities.ActorRestaurant: true,
	},
	entities.OrderRejected: {
		entities.ActorRestaurant: true,
	},
	entities.OrderAssignedRider: {
		entities.ActorDispatcher: true,
	},
	entities.OrderPickedUp: {
		entities.ActorRider: true,
	},
	entities.OrderInTransit: {
		entities.ActorRider: true,
	},
	entities.OrderDelivered: {
		entities.ActorRider: true,
	},
	entities.OrderCancelled: {
		entities.ActorCustomer:   true,
		entities.ActorRestaurant: true,
		entities.ActorDispatcher: true,
		entities.ActorSystem:     true,
		entities.ActorOperator:   true,
	},
}

func isSuccessor(from, to entities.OrderStatusType) bool {
	for _, s := range successors[from] {
		if s == to {
			return true
		}
	}
	return false
}

func isRoleAllowed(to entities.OrderStatusType, actor entities.ActorRole) bool {
	return edgeRoles[to][actor]
}
