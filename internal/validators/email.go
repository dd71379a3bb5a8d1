package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid probes the domain part for MX or address records.
// Optional stricter gate behind EMAIL_DOMAIN_CHECK; format validation
// happens separately via struct tags.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
