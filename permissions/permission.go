// Package permissions holds the embedded route policy of every service.
package permissions

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed *.json
var files embed.FS

// Permission is the policy of one route. Permissions lists the user types allowed to call it;
// an empty list admits any authenticated caller.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
	Throttle    bool     `json:"throttle"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the policy of a chi route pattern, or the zero Permission when none is declared.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Load decodes the embedded <service>.json policy.
func Load(service string) (*PermissionData, error) {
	raw, err := files.ReadFile(service + ".json")
	if err != nil {
		return nil, fmt.Errorf("no permissions for service %s: %w", service, err)
	}

	var permissions PermissionData

	if err := json.Unmarshal(raw, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions of %s: %w", service, err)
	}

	log.Info().Str("service", service).Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions, nil
}
