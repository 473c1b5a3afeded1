package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// forwardingHeaders in trust order. Webhook traffic reaches us through the
// provider's proxy fleet, so the socket address is usually a load balancer.
var forwardingHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// clientIP extracts the caller address a rate-limit bucket is keyed on.
// Values that do not parse as IPs are ignored rather than trusted.
func clientIP(c *gin.Context) string {
	for _, header := range forwardingHeaders {
		value := c.GetHeader(header)
		if value == "" {
			continue
		}
		// X-Forwarded-For may carry a proxy chain; the client is the first hop.
		candidate := strings.TrimSpace(strings.SplitN(value, ",", 2)[0])
		if net.ParseIP(candidate) != nil {
			return candidate
		}
	}

	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
