package stubserver

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// recoverPanic middleware recovers from panics and will always be run in the
// event of a panic.
func (s *Server) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				s.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// rateLimit middleware implements IP-based rate limiting. Per-client limiters
// live in a TTL cache so that limiters for clients not seen recently expire on
// their own.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	limiters := ttlcache.New(
		ttlcache.WithTTL[string, *rate.Limiter](3 * time.Minute),
	)
	go limiters.Start()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.Limiter.Enabled {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				s.serverErrorResponse(w, r, err)
				return
			}
			item := limiters.Get(ip)
			if item == nil {
				item = limiters.Set(ip, rate.NewLimiter(rate.Limit(s.config.Limiter.RPS), s.config.Limiter.Burst), ttlcache.DefaultTTL)
			}
			if !item.Value().Allow() {
				s.rateLimitExceededResponse(w, r)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// logRequest middleware tags every request with an id and logs its method,
// url, status and duration.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		metrics := httpsnoop.CaptureMetrics(next, w, r)
		s.logger.PrintInfo("request", map[string]string{
			"request_id":     requestID,
			"request_method": r.Method,
			"request_url":    r.URL.String(),
			"status":         strconv.Itoa(metrics.Code),
			"duration":       metrics.Duration.String(),
		})
	})
}
