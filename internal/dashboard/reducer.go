package dashboard

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Counters сводные счетчики панели
type Counters struct {
	Today     int `json:"today"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
}

// Result итог применения пакета изменений
type Result struct {
	// New записи, о которых нужно уведомить администратора
	New []*domain.Appointment
}

// Reducer держит упорядоченную коллекцию записей и применяет к ней пакеты изменений
// Не потокобезопасен: вызывающий сериализует доступ
type Reducer struct {
	location      *time.Location
	items         []*domain.Appointment
	counters      Counters
	initialLoaded bool
}

// NewReducer создает пустой редьюсер; "сегодня" считается в location
func NewReducer(location *time.Location) *Reducer {
	if location == nil {
		location = time.Local
	}
	return &Reducer{location: location}
}

// Apply применяет пакет изменений в порядке следования дельт.
// После пакета коллекция пересортирована, счетчики пересчитаны с нуля на момент now
func (r *Reducer) Apply(batch domain.ChangeBatch, now time.Time) Result {
	var result Result

	if batch.Snapshot && r.initialLoaded {
		result.New = r.resync(batch)
	} else {
		var added []string
		for _, change := range batch.Changes {
			if r.applyChange(change) && r.initialLoaded {
				added = appendUniqueID(added, change.ID)
			}
		}
		// Уведомляем о состоянии после всего пакета и только о записях, оставшихся в коллекции
		for _, id := range added {
			if i := r.indexOf(id); i >= 0 {
				result.New = append(result.New, r.items[i])
			}
		}
	}

	r.sort()
	r.counters = countersAt(r.items, now, r.location)

	// Первый пакет никогда не порождает уведомлений
	r.initialLoaded = true

	return result
}

// Loaded сообщает, что первый пакет уже применен
func (r *Reducer) Loaded() bool {
	return r.initialLoaded
}

// Counters счетчики, посчитанные после последнего пакета
func (r *Reducer) Counters() Counters {
	return r.counters
}

// Len количество записей в коллекции
func (r *Reducer) Len() int {
	return len(r.items)
}

// Get возвращает запись по id
func (r *Reducer) Get(id string) (*domain.Appointment, bool) {
	if i := r.indexOf(id); i >= 0 {
		return r.items[i], true
	}
	return nil, false
}

// Items копия коллекции в порядке отображения
func (r *Reducer) Items() []*domain.Appointment {
	out := make([]*domain.Appointment, len(r.items))
	copy(out, r.items)
	return out
}

// applyChange применяет одну дельту; true означает добавление
func (r *Reducer) applyChange(change domain.Change) bool {
	switch change.Type {
	case domain.ChangeAdded:
		if change.Appointment == nil {
			return false
		}
		// upsert: повторная доставка того же id не плодит строки
		if i := r.indexOf(change.ID); i >= 0 {
			r.items[i] = change.Appointment
		} else {
			r.items = append(r.items, change.Appointment)
		}
		return true

	case domain.ChangeModified:
		if change.Appointment == nil {
			return false
		}
		if i := r.indexOf(change.ID); i >= 0 {
			r.items[i] = change.Appointment
		}

	case domain.ChangeRemoved:
		if i := r.indexOf(change.ID); i >= 0 {
			r.items = append(r.items[:i], r.items[i+1:]...)
		}
	}

	return false
}

// resync заменяет коллекцию полным снимком; новыми считаются id, которых не было раньше
func (r *Reducer) resync(batch domain.ChangeBatch) []*domain.Appointment {
	known := make(map[string]struct{}, len(r.items))
	for _, a := range r.items {
		known[a.ID] = struct{}{}
	}

	r.items = r.items[:0:0]
	var fresh []*domain.Appointment
	for _, change := range batch.Changes {
		if change.Type != domain.ChangeAdded || change.Appointment == nil {
			continue
		}
		if r.indexOf(change.ID) >= 0 {
			continue
		}
		r.items = append(r.items, change.Appointment)
		if _, ok := known[change.ID]; !ok {
			fresh = append(fresh, change.Appointment)
		}
	}

	return fresh
}

func (r *Reducer) indexOf(id string) int {
	for i, a := range r.items {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// sort упорядочивает записи по времени начала, новые сверху; при равенстве по id
func (r *Reducer) sort() {
	sort.SliceStable(r.items, func(i, j int) bool {
		a, b := r.items[i], r.items[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.After(b.StartTime)
		}
		return a.ID < b.ID
	})
}

func countersAt(items []*domain.Appointment, now time.Time, location *time.Location) Counters {
	var c Counters
	today := now.In(location).Format(domain.DateFormat)

	for _, a := range items {
		if a.StartTime.In(location).Format(domain.DateFormat) == today {
			c.Today++
		}
		switch a.Status {
		case domain.StatusPending:
			c.Pending++
		case domain.StatusConfirmed:
			c.Confirmed++
		}
	}

	return c
}

func appendUniqueID(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
