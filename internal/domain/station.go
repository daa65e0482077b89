package domain

import "time"

// StationStatus represents the operational status of a wash station
type StationStatus string

const (
	StatusPendingApproval StationStatus = "PENDIENTE_APROBACION"
	StatusActive          StationStatus = "ACTIVO"
	StatusExpired         StationStatus = "VENCIDO"
	StatusBlocked         StationStatus = "BLOQUEADO"
)

// Station represents a car-wash station (lavadero) in the system
// Each station belongs to exactly one admin user
type Station struct {
	ID          int64
	Name        string
	Address     string
	Description *string
	AdminID     int64
	Status      StationStatus
	ExpiresAt   *time.Time // Окончание оплаченного периода, nil пока лавадеро не активировано
	IsActive    bool
	CreatedAt   time.Time
}

// IsOperational returns true if the station is visible to clients and bookable
func (s *Station) IsOperational() bool {
	return s.Status == StatusActive && s.IsActive
}

// IsPendingApproval returns true if the station awaits payment approval
func (s *Station) IsPendingApproval() bool {
	return s.Status == StatusPendingApproval
}

// HasExpired returns true if the paid period has ended at the given instant
func (s *Station) HasExpired(now time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(now)
}

// StationsFilter фильтр для выборки лавадеро
type StationsFilter struct {
	Status        *StationStatus // Фильтр по статусу (опционально)
	AdminID       *int64         // Фильтр по владельцу (опционально)
	OnlyActive    bool           // Только is_active = true
	OnlyOperative bool           // Только ACTIVO + is_active (публичный список)
}
