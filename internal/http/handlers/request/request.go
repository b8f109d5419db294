package request

import (
	"net"
	"net/http"
)

// ClientIP returns the host part of the request remote address.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
