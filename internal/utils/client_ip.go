package utils

import (
	"net"
	"strings"
)

// ClientIP returns the first address of an X-Forwarded-For header, falling
// back to the direct peer address without its port.
func ClientIP(forwardedFor, peerAddr string) string {
	if forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if host, _, err := net.SplitHostPort(peerAddr); err == nil {
		return host
	}
	return peerAddr
}
