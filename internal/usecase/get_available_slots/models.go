package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	BarberID  string    // ID барбера
	ServiceID string    // ID услуги (определяет длительность)
	Date      time.Time // Дата; учитываются только год, месяц и день
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	BarberID        string
	BarberName      string
	ServiceID       string
	ServiceName     string
	DurationMinutes int
	Slots           []Slot
}

// Slot свободный интервал [StartTime, EndTime)
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
}
