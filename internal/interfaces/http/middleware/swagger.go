package middleware

import (
	"net/netip"
	"strings"

	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// DocsAccessConfig restricts who may read the API documentation
type DocsAccessConfig struct {
	// AllowedIPs are single addresses or CIDR prefixes. Empty allows every client.
	AllowedIPs []string
	// Auth, when set, must pass before the docs are served
	Auth gin.HandlerFunc
}

// DocsAccess guards the /swagger routes. Entries of AllowedIPs that do not
// parse are ignored.
func DocsAccess(cfg DocsAccessConfig) gin.HandlerFunc {
	prefixes := parseAllowedIPs(cfg.AllowedIPs)
	restricted := len(cfg.AllowedIPs) > 0

	return func(c *gin.Context) {
		if restricted && !clientAllowed(c.ClientIP(), prefixes) {
			abortWithError(c, dto.ErrCodeForbidden, "Access to API documentation is restricted")
			return
		}
		if cfg.Auth != nil {
			cfg.Auth(c)
			if c.IsAborted() {
				return
			}
		}
		c.Next()
	}
}

func parseAllowedIPs(entries []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			if p, err := netip.ParsePrefix(entry); err == nil {
				prefixes = append(prefixes, p.Masked())
			}
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
		}
	}
	return prefixes
}

func clientAllowed(ip string, prefixes []netip.Prefix) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
