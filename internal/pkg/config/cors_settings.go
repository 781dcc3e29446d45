package config

import (
	"fmt"
	"strings"
)

// AllowAllOrigins is the wildcard origin accepted by the CORS middleware
const AllowAllOrigins = "*"

// CORSSettings lists the origins allowed to call the API from a browser
type CORSSettings struct {
	Origins []string `mapstructure:"origins"`
}

// Normalize trims every origin, drops empty entries and splits entries that
// still carry commas (as produced by a single comma-separated env value).
func (s *CORSSettings) Normalize() {
	var origins []string
	for _, entry := range s.Origins {
		for _, origin := range strings.Split(entry, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	s.Origins = origins
}

// AllowsAll reports whether the wildcard origin is configured
func (s *CORSSettings) AllowsAll() bool {
	for _, origin := range s.Origins {
		if origin == AllowAllOrigins {
			return true
		}
	}
	return false
}

// Validate checks that at least one origin is configured and each one looks like an origin
func (s *CORSSettings) Validate() error {
	s.Normalize()

	if len(s.Origins) == 0 {
		return fmt.Errorf("at least one CORS origin is required")
	}

	for _, origin := range s.Origins {
		if origin == AllowAllOrigins {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin %q: must start with http:// or https://", origin)
		}
	}

	return nil
}
