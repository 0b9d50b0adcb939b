package service

import "github.com/ideadrop/content-api/internal/core/domain"

// authorizeOwner is the single ownership check applied before any mutation
// of an owned resource: the requester must be exactly the recorded owner.
// Roles play no part here.
func authorizeOwner(ownerID, requesterID string) error {
	if ownerID == "" || requesterID == "" || ownerID != requesterID {
		return domain.ErrForbidden
	}
	return nil
}
