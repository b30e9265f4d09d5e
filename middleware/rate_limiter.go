package middleware

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/anashany189-droid/ShareEstate1/utils"
)

// In-memory per-IP rate limiter with trusted-proxy support and periodic
// cleanup. Sized for a single-instance demo; swap for a shared store when
// serving more than one replica.

type timestamps []int64 // unix nanos

func nowUnix() int64 { return time.Now().UnixNano() }

func getEnvDuration(key string, def time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if v, err := time.ParseDuration(s); err == nil {
			return v
		}
	}
	return def
}

// IPRateLimiter implements per-IP sliding-window counters with optional
// trusted-proxy parsing.
type IPRateLimiter struct {
	max         int
	window      time.Duration
	mu          sync.Mutex
	state       map[string]timestamps
	cleanupTick time.Duration
	trustedCIDR []string
}

func NewIPRateLimiter(maxReq int, window time.Duration) *IPRateLimiter {
	l := &IPRateLimiter{
		max:         maxReq,
		window:      window,
		state:       make(map[string]timestamps),
		cleanupTick: getEnvDuration("RATE_CLEANUP_INTERVAL", 60*time.Second),
	}
	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		l.trustedCIDR = strings.Split(v, ",")
	}
	go l.cleanupLoop()
	return l
}

// clientIPGeneric returns the client IP string. If trustedCIDR is provided,
// X-Forwarded-For / X-Real-IP headers are honored when remote addr is inside
// one of the trusted CIDRs or IPs.
func clientIPGeneric(r *http.Request, trustedCIDR []string) string {
	remoteHost, _, _ := net.SplitHostPort(r.RemoteAddr)
	remoteIP := net.ParseIP(remoteHost)
	trusted := false
	for _, cidr := range trustedCIDR {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}
		if strings.Contains(cidr, "/") {
			if _, ipnet, err := net.ParseCIDR(cidr); err == nil {
				if remoteIP != nil && ipnet.Contains(remoteIP) {
					trusted = true
					break
				}
			}
			continue
		}
		if ip := net.ParseIP(cidr); ip != nil && remoteIP != nil && ip.Equal(remoteIP) {
			trusted = true
			break
		}
	}
	if trusted {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			if len(parts) > 0 {
				return strings.TrimSpace(parts[0])
			}
		}
		if xr := r.Header.Get("X-Real-IP"); xr != "" {
			return strings.TrimSpace(xr)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware applies the per-IP limit and sets rate-limit headers.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIPGeneric(r, l.trustedCIDR)
		now := nowUnix()
		cutoff := now - int64(l.window)

		l.mu.Lock()
		arr := l.state[ip]
		var filtered timestamps
		for _, ts := range arr {
			if ts >= cutoff {
				filtered = append(filtered, ts)
			}
		}
		filtered = append(filtered, now)
		l.state[ip] = filtered
		count := len(filtered)
		l.mu.Unlock()

		remaining := l.max - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", l.max))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if count > l.max {
			retryAfter := int(l.window.Seconds())
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{
				Success: false,
				Message: "Too many requests, try again later",
				Data:    map[string]interface{}{"retry_after_seconds": retryAfter},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *IPRateLimiter) cleanupLoop() {
	tick := time.NewTicker(l.cleanupTick)
	defer tick.Stop()
	for range tick.C {
		l.mu.Lock()
		now := nowUnix()
		cutoff := now - int64(l.window)
		for k, arr := range l.state {
			var filtered timestamps
			for _, ts := range arr {
				if ts >= cutoff {
					filtered = append(filtered, ts)
				}
			}
			if len(filtered) == 0 {
				delete(l.state, k)
			} else {
				l.state[k] = filtered
			}
		}
		l.mu.Unlock()
	}
}
