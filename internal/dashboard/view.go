package dashboard

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Row строка таблицы записей
type Row struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ServiceName string `json:"serviceName"`
	BarberName  string `json:"barberName"`
	Date        string `json:"date"`      // YYYY-MM-DD
	StartTime   string `json:"startTime"` // HH:MM
	EndTime     string `json:"endTime"`   // HH:MM
	Status      string `json:"status"`
	CanConfirm  bool   `json:"canConfirm"`
	CanReject   bool   `json:"canReject"`
	CanDelete   bool   `json:"canDelete"`
}

// View отрисованное состояние панели
type View struct {
	Rows     []Row    `json:"rows"`
	Counters Counters `json:"counters"`
	Empty    bool     `json:"empty"`
}

// Render строит представление заново из текущей коллекции; прошлые представления не используются
func (r *Reducer) Render(now time.Time) View {
	rows := make([]Row, 0, len(r.items))
	for _, a := range r.items {
		rows = append(rows, toRow(a, r.location))
	}

	return View{
		Rows:     rows,
		Counters: countersAt(r.items, now, r.location),
		Empty:    len(rows) == 0,
	}
}

func toRow(a *domain.Appointment, location *time.Location) Row {
	start := a.StartTime.In(location)
	end := a.EndTime.In(location)

	return Row{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ServiceName: a.ServiceName,
		BarberName:  a.BarberName,
		Date:        start.Format(domain.DateFormat),
		StartTime:   start.Format(domain.TimeFormat),
		EndTime:     end.Format(domain.TimeFormat),
		Status:      string(a.Status),
		CanConfirm:  a.CanBeConfirmed(),
		CanReject:   a.CanBeRejected(),
		CanDelete:   a.CanBeDeleted(),
	}
}
