package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

const keyPrefix = "barberbooking:session:"

// Store хранилище сессий администраторов в Redis
// Время жизни сессии совпадает с TTL ключа
type Store struct {
	rdb redis.UniversalClient
}

// NewStore создает хранилище сессий
func NewStore(rdb redis.UniversalClient) *Store {
	return &Store{rdb: rdb}
}

type payload struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Save сохраняет сессию до s.ExpiresAt
func (st *Store) Save(ctx context.Context, s *domain.Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("%w: Save - session already expired", ErrStore)
	}

	data, err := json.Marshal(payload{UserID: s.UserID, Email: s.Email, ExpiresAt: s.ExpiresAt})
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrStore, err)
	}

	if err := st.rdb.Set(ctx, keyPrefix+s.Token, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrStore, err)
	}

	return nil
}

// Get получает сессию по токену
func (st *Store) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := st.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get: %v", ErrStore, err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrStore, err)
	}

	return &domain.Session{
		Token:     token,
		UserID:    p.UserID,
		Email:     p.Email,
		ExpiresAt: p.ExpiresAt,
	}, nil
}

// Delete удаляет сессию; отсутствие сессии не считается ошибкой
func (st *Store) Delete(ctx context.Context, token string) error {
	if err := st.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrStore, err)
	}
	return nil
}

// Ping проверяет доступность Redis (для /readyz)
func (st *Store) Ping(ctx context.Context) error {
	return st.rdb.Ping(ctx).Err()
}
