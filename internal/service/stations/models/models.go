package models

import (
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
)

// Request модели

// CreateStationRequest запрос на регистрацию лавадеро для существующего админа
type CreateStationRequest struct {
	UserID      int64   `json:"-"`
	AdminID     int64   `json:"adminId"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Description *string `json:"description,omitempty"`
}

// Response модели

// PublicStationResponse публичная карточка лавадеро (обогащена конфигурацией)
type PublicStationResponse struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	FullAddress       *string  `json:"fullAddress,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	OpenTime          string   `json:"openTime"`
	CloseTime         string   `json:"closeTime"`
	IsOpenNow         bool     `json:"isOpenNow"`
	BankAlias         string   `json:"bankAlias"`
	ServesMotorcycles bool     `json:"servesMotorcycles"`
	ServesCars        bool     `json:"servesCars"`
	ServesVans        bool     `json:"servesVans"`
	PriceMotorcycle   float64  `json:"priceMotorcycle"`
	PriceCar          float64  `json:"priceCar"`
	PriceVan          float64  `json:"priceVan"`
}

// PublicStationListResponse ответ со списком работающих лавадеро
type PublicStationListResponse struct {
	Stations []PublicStationResponse `json:"stations"`
}

// AdminInfo данные админа из сервиса пользователей (nil при деградации)
type AdminInfo struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StationResponse полная карточка лавадеро для суперадмина
type StationResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Description *string    `json:"description,omitempty"`
	AdminID     int64      `json:"adminId"`
	Admin       *AdminInfo `json:"admin,omitempty"`
	Status      string     `json:"status"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// StationListResponse ответ со списком лавадеро для суперадмина
type StationListResponse struct {
	Stations []StationResponse `json:"stations"`
}

// ToggleStateResponse результат переключения состояния лавадеро
type ToggleStateResponse struct {
	ID        int64      `json:"id"`
	Status    string     `json:"status"`
	IsActive  bool       `json:"isActive"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Методы конвертации

// FromDomainStation конвертирует domain модель в DTO суперадмина
func FromDomainStation(s *domain.Station, admin *userservice.User) StationResponse {
	resp := StationResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Description: s.Description,
		AdminID:     s.AdminID,
		Status:      string(s.Status),
		ExpiresAt:   s.ExpiresAt,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}

	if admin != nil {
		resp.Admin = &AdminInfo{
			ID:    admin.ID,
			Name:  admin.Name,
			Email: admin.Email,
		}
	}

	return resp
}

// FromDomainPublicStation собирает публичную карточку из лавадеро и его конфигурации
func FromDomainPublicStation(s *domain.Station, cfg *domain.ScheduleConfig) PublicStationResponse {
	return PublicStationResponse{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		FullAddress:       cfg.FullAddress,
		Description:       s.Description,
		Latitude:          cfg.Latitude,
		Longitude:         cfg.Longitude,
		OpenTime:          cfg.OpenTime.String(),
		CloseTime:         cfg.CloseTime.String(),
		IsOpenNow:         cfg.IsOpenNow,
		BankAlias:         cfg.BankAlias,
		ServesMotorcycles: cfg.ServesMotorcycles,
		ServesCars:        cfg.ServesCars,
		ServesVans:        cfg.ServesVans,
		PriceMotorcycle:   cfg.PriceMotorcycle,
		PriceCar:          cfg.PriceCar,
		PriceVan:          cfg.PriceVan,
	}
}

// ToDomainStation конвертирует запрос в domain модель
func (r *CreateStationRequest) ToDomainStation() *domain.Station {
	return &domain.Station{
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		AdminID:     r.AdminID,
		Status:      domain.StatusPendingApproval,
		IsActive:    true,
	}
}
