package userservice

// Роли пользователей в UserService
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"   // Владелец лавадеро
	RoleClient     = "CLIENTE" // Клиент, бронирующий слоты
)

// User модель пользователя из UserService
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Role     string `json:"rol"`
	IsActive bool   `json:"is_active"`
}

// IsSuperAdmin returns true if the user has the platform super-admin role
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsAdmin returns true if the user owns a station
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
