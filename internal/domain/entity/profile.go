// internal/domain/entity/profile.go
package entity

// Raw booking flag names as they appear in the customer profile store
const (
	FlagHighSpenderHighFreq = "HIGHSPENDERHIGHFREQ"
	FlagHighSpenderLowFreq  = "HIGHSPENDERLOWFREQ"
	FlagStudent             = "STUDENT"
)

// BookingDetail is one booking of a profile. The store carries many more
// columns than the eligibility flags and all of them are echoed back as
// booking history, so the record stays a loose document.
type BookingDetail map[string]interface{}

// HighSpenderHighFreq returns the raw high-frequency high-spender flag
func (b BookingDetail) HighSpenderHighFreq() interface{} {
	return b[FlagHighSpenderHighFreq]
}

// HighSpenderLowFreq returns the raw low-frequency high-spender flag
func (b BookingDetail) HighSpenderLowFreq() interface{} {
	return b[FlagHighSpenderLowFreq]
}

// Student returns the raw student count
func (b BookingDetail) Student() interface{} {
	return b[FlagStudent]
}

// ProfileRecord is one customer in the profile store
type ProfileRecord struct {
	UserInfo       UserInfo        `json:"user_info" bson:"user_info"`
	BookingDetails []BookingDetail `json:"booking_details" bson:"booking_details"`
}
