package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const msgTooManyRequests = "слишком много попыток, попробуйте позже"

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisCounter счетчик фиксированного окна в Redis, общий для всех экземпляров сервиса
type RedisCounter struct {
	rdb redis.Scripter
}

// NewRedisCounter создает счетчик
func NewRedisCounter(rdb redis.Scripter) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

// Incr увеличивает счетчик key; окно начинается с первого запроса
func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, c.rdb, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}

	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

// RateLimit ограничивает число запросов с одного адреса в окне.
// Адрес клиента определяет proxies; X-Forwarded-For учитывается только от доверенных прокси.
// При недоступности счетчика запрос пропускается
func RateLimit(counter Counter, prefix string, limit int, window time.Duration, proxies *TrustedProxies, logger Logger) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := proxies.ClientIP(r)
			key := "barberbooking:rl:" + prefix + ":" + client

			count, err := counter.Incr(r.Context(), key, window)
			if err != nil {
				logger.Warn("%s %s - Rate limiter unavailable: %v", r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				logger.Warn("%s %s - Rate limit exceeded: client=%s", r.Method, r.URL.Path, client)
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// TrustedProxies сети прокси, которым разрешено передавать адрес клиента в X-Forwarded-For
type TrustedProxies struct {
	nets []*net.IPNet
}

// ParseTrustedProxies разбирает список CIDR или одиночных адресов
func ParseTrustedProxies(entries []string) (*TrustedProxies, error) {
	tp := &TrustedProxies{}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", entry)
			}
			bits := 8 * net.IPv6len
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 8 * net.IPv4len
			}
			tp.nets = append(tp.nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		tp.nets = append(tp.nets, ipNet)
	}
	return tp, nil
}

func (tp *TrustedProxies) trusted(ip net.IP) bool {
	if tp == nil || ip == nil {
		return false
	}
	for _, n := range tp.nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP адрес клиента. Без доверенного прокси это адрес соединения;
// за доверенным прокси берется правый адрес X-Forwarded-For, не принадлежащий прокси
func (tp *TrustedProxies) ClientIP(r *http.Request) string {
	peer := remoteHost(r)
	if !tp.trusted(net.ParseIP(peer)) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		ip := net.ParseIP(hop)
		if ip == nil {
			break
		}
		if !tp.trusted(ip) {
			return ip.String()
		}
	}
	return peer
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
