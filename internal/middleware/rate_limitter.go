package middleware

import (
	"DishaAssistant/pkg/response"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
	"net/http"
	"sync"
	"time"
)

var (
	ErrTooManyRequests = response.NewError(http.StatusTooManyRequests, "too many requests")
)

const (
	bucketIdleTTL = 10 * time.Minute
	sweepEvery    = 1024
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	buckets   map[string]*bucket
	rate      rate.Limit
	burstSize int
	calls     int
	mutex     sync.Mutex
	now       func() time.Time
}

func newRateLimiter(reqRate rate.Limit, burstSize int) *rateLimiter {
	return &rateLimiter{
		buckets:   make(map[string]*bucket),
		rate:      reqRate,
		burstSize: burstSize,
		now:       time.Now,
	}
}

// GetLimiterFrom returns the bucket for ip, dropping idle buckets now and then
// so long-running chat servers do not grow without bound.
func (r *rateLimiter) GetLimiterFrom(ip string) *rate.Limiter {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := r.now()

	r.calls++
	if r.calls%sweepEvery == 0 {
		for key, b := range r.buckets {
			if now.Sub(b.lastSeen) > bucketIdleTTL {
				delete(r.buckets, key)
			}
		}
	}

	b, exist := r.buckets[ip]
	if !exist {
		b = &bucket{limiter: rate.NewLimiter(r.rate, r.burstSize)}
		r.buckets[ip] = b
	}
	b.lastSeen = now

	return b.limiter
}

func (m *middleware) NewRateLimiter(ctx *fiber.Ctx) error {
	clientIP := ctx.IP()
	limiter := m.rateLimitter.GetLimiterFrom(clientIP)

	if !limiter.Allow() {
		m.log.WithField("ip", clientIP).Warn("Rate limit exceeded")
		ctx.Set(fiber.HeaderRetryAfter, "1")
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": ErrTooManyRequests.Error(),
			"code":  "RATE_LIMITED",
		})
	}

	return ctx.Next()
}
