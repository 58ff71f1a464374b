package video

import (
	"fmt"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// AssertOwner confirms the authenticated principal owns the video. A nil
// video is reported as not found before any ownership decision. Both ids are
// compared in canonical string form so that values parsed from differently
// formatted inputs (case, typed id vs string) still compare equal.
func AssertOwner(video *domain.Video, principal domain.Principal) error {
	if video == nil {
		return domain.ErrNotFound
	}
	if video.OwnerID.String() != principal.UserID.String() {
		return fmt.Errorf("%w: principal does not own video %s", domain.ErrForbidden, video.ID)
	}
	return nil
}
