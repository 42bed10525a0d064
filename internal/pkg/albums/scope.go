package albums

import "github.com/foxalbum/foxalbum/internal/pkg/usercontext"

// requireUser returns the id every query of the request must be scoped to.
func requireUser(uc usercontext.UserContext) (uint, error) {
	if !uc.IsLoggedIn || uc.UserID == 0 {
		return 0, ErrUnauthenticated
	}
	return uc.UserID, nil
}
