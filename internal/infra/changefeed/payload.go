package changefeed

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Операции, которые присылает триггер appointments_notify
const (
	opInsert = "INSERT"
	opUpdate = "UPDATE"
	opDelete = "DELETE"
)

type event struct {
	Op string `json:"op"`
	ID string `json:"id"`
}

func parsePayload(payload string) (event, error) {
	var ev event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return event{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	ev.Op = strings.ToUpper(ev.Op)
	switch ev.Op {
	case opInsert, opUpdate, opDelete:
	default:
		return event{}, fmt.Errorf("%w: unknown op %q", ErrBadPayload, ev.Op)
	}
	if ev.ID == "" {
		return event{}, fmt.Errorf("%w: empty id", ErrBadPayload)
	}

	return ev, nil
}

// pendingSet накапливает уведомления окна, сохраняя порядок первого появления id
type pendingSet struct {
	order []string
	items map[string]*pendingItem
}

type pendingItem struct {
	inserted bool
	deleted  bool
}

func newPendingSet() *pendingSet {
	return &pendingSet{items: make(map[string]*pendingItem)}
}

func (p *pendingSet) add(ev event) {
	item, ok := p.items[ev.ID]
	if !ok {
		item = &pendingItem{}
		p.items[ev.ID] = item
		p.order = append(p.order, ev.ID)
	}

	switch ev.Op {
	case opInsert:
		item.inserted = true
		item.deleted = false
	case opUpdate:
		item.deleted = false
	case opDelete:
		item.deleted = true
	}
}

func (p *pendingSet) len() int {
	return len(p.order)
}

func (p *pendingSet) reset() {
	p.order = nil
	p.items = make(map[string]*pendingItem)
}
