package utils

import "flight-recovery-service/internal/domain/entity"

// Constants
const (
	MSG_CDP_NOT_LOADED = "CDP data not loaded"
	MSG_NOT_ELIGIBLE   = "User is not eligible for Autorecovery"
	MSG_USER_NOT_FOUND = "Invalid user info or user not found"
)

// comfortTags is the fixed vocabulary of seat properties surfaced to the agent
var comfortTags = map[string]bool{
	entity.SeatTagWindow:  true,
	entity.SeatTagAisle:   true,
	entity.SeatTagLegroom: true,
	entity.SeatTagXL:      true,
	entity.SeatTagStretch: true,
}

// IsComfortTag reports whether code belongs to the comfort vocabulary
func IsComfortTag(code string) bool {
	return comfortTags[code]
}
