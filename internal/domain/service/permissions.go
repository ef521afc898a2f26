package service

import (
	"trueestate/internal/domain/entity"
)

// Capabilities are re-derived from the role on every authorization check
// instead of being stored on the user document at signup, so a role change
// takes effect immediately.

const (
	CapPropertyCreate = "property:create"
	CapPropertyUpdate = "property:update"
	CapOwnerManage    = "owner:manage"
	CapReviewCreate   = "review:create"
	CapBookmarkManage = "bookmark:manage"
	CapExport         = "export"
	CapAdmin          = "admin"
)

var roleCapabilities = map[string][]string{
	entity.RoleAdmin: {
		CapPropertyCreate, CapPropertyUpdate, CapOwnerManage,
		CapReviewCreate, CapBookmarkManage, CapExport, CapAdmin,
	},
	entity.RoleOwner: {
		CapPropertyCreate, CapPropertyUpdate, CapOwnerManage,
		CapReviewCreate, CapBookmarkManage, CapExport,
	},
	entity.RoleAgent: {
		CapPropertyCreate, CapPropertyUpdate,
		CapReviewCreate, CapBookmarkManage, CapExport,
	},
	entity.RoleRenter: {
		CapReviewCreate, CapBookmarkManage,
	},
}

// CapabilitiesForRole returns the capability bundle for a role. Unknown roles
// get no capabilities.
func CapabilitiesForRole(role string) []string {
	caps, ok := roleCapabilities[role]
	if !ok {
		return nil
	}
	out := make([]string, len(caps))
	copy(out, caps)
	return out
}

func RoleHasCapability(role, capability string) bool {
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}
