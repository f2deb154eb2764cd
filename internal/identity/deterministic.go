package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ThemeUUID derives the stable identifier for a registered theme descriptor.
func ThemeUUID(themeID string) uuid.UUID {
	return UUID("go-biolink:theme:" + strings.ToLower(strings.TrimSpace(themeID)))
}

// PageUUID derives the stable identifier for a published page slot. The owner
// is part of the key so two users publishing the same theme never collide.
func PageUUID(ownerID, slug string) uuid.UUID {
	return UUID("go-biolink:page:" + strings.TrimSpace(ownerID) + ":" + strings.ToLower(strings.TrimSpace(slug)))
}
