package get_week_schedule

import (
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
)

// Request модель запроса недельной сетки слотов
type Request struct {
	StationID int64                 // ID лавадеро
	Date      time.Time             // Любая дата внутри запрашиваемой недели
	Selection *domain.SlotSelection // Текущий выбор клиента (опционально)
}

// Response модель ответа с недельной сеткой
type Response struct {
	StationID int64
	Week      *domain.WeekGrid
}
