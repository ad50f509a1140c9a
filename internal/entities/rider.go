package entities

import "time"

type Rider struct {
	ID             int64
	Name           string
	Phone          string
	CityID         int64
	IsOnline       bool
	IsAvailable    bool
	CurrentOrder   *string
	Lat            *float64
	Lng            *float64
	LocationAt     *time.Time
	PayModel       RiderPayModelType
	CommissionRate float64
	ShiftStartedAt *time.Time
	TotalDeliveries int64
	AvgRating      float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type RiderPayModelType string

const (
	PayFixedSalary RiderPayModelType = "fixed_salary"
	PayCommission  RiderPayModelType = "commission"
)

func (t RiderPayModelType) String() string {
	return string(t)
}

type RiderModify struct {
	ID             *int64
	Name           *string
	Phone          *string
	CityID         *int64
	PayModel       *RiderPayModelType
	CommissionRate *float64
	Lat            *float64
	Lng            *float64
}

// RiderToggleResult — результат переключения смены.
// OutOfCoverage — мягкое предупреждение, не блокирует выход на линию.
type RiderToggleResult struct {
	RiderID       int64
	IsOnline      bool
	IsAvailable   bool
	OutOfCoverage bool
}
