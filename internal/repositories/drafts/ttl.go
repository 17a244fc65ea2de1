package drafts

import (
	"time"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
)

func validateDraft(d *wargame.Draft) error {
	if d == nil {
		return errors.InvalidArgument(errDraftNil)
	}
	if d.ID == "" {
		return errors.InvalidArgument(errDraftIDEmpty)
	}
	if !d.Kind.Valid() {
		return errors.InvalidArgument(errKindInvalid).WithMeta("kind", string(d.Kind))
	}
	return nil
}

// remaining returns how long d should live from now. A draft without an
// expiry gets the default window and has ExpiresAt filled in.
func remaining(d *wargame.Draft, now time.Time, defaultTTL time.Duration) (time.Duration, error) {
	if d.ExpiresAt == 0 {
		d.ExpiresAt = now.Add(defaultTTL).Unix()
		return defaultTTL, nil
	}

	ttl := time.Unix(d.ExpiresAt, 0).Sub(now)
	if ttl <= 0 {
		return 0, errors.InvalidArgument(errDraftExpired)
	}
	return ttl, nil
}

func entityKey(prefix string, kind wargame.DraftKind, entityID string) string {
	return prefix + string(kind) + ":" + entityID
}
