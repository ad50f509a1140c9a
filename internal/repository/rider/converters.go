package rider

import (
	"deliverycore/internal/entities"
)

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}

	return &entities.Rider{
		ID:              r.ID,
		Name:            r.Name,
		Phone:           r.Phone,
		CityID:          r.CityID,
		IsOnline:        r.IsOnline,
		IsAvailable:     r.IsAvailable,
		CurrentOrder:    r.CurrentOrderCode,
		Lat:             r.Lat,
		Lng:             r.Lng,
		LocationAt:      r.LocationAt,
		PayModel:        entities.RiderPayModelType(r.PayModel),
		CommissionRate:  r.CommissionRate,
		ShiftStartedAt:  r.ShiftStartedAt,
		TotalDeliveries: r.TotalDeliveries,
		AvgRating:       r.AvgRating,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromDomainModify(riderModify *entities.RiderModify) *RiderModifyDB {
	if riderModify == nil {
		return nil
	}
	riderDB := &RiderModifyDB{}

	if riderModify.ID != nil {
		riderDB.ID = riderModify.ID
	}
	if riderModify.Name != nil {
		riderDB.Name = riderModify.Name
	}
	if riderModify.Phone != nil {
		riderDB.Phone = riderModify.Phone
	}
	if riderModify.CityID != nil {
		riderDB.CityID = riderModify.CityID
	}
	if riderModify.PayModel != nil {
		payModel := riderModify.PayModel.String()
		riderDB.PayModel = &payModel
	}
	if riderModify.CommissionRate != nil {
		riderDB.CommissionRate = riderModify.CommissionRate
	}
	if riderModify.Lat != nil {
		riderDB.Lat = riderModify.Lat
	}
	if riderModify.Lng != nil {
		riderDB.Lng = riderModify.Lng
	}

	return riderDB
}
