// internal/domain/entity/disruption.go
package entity

// EventFlightCancelled is the only disruption event that qualifies for recovery
const EventFlightCancelled = "flight_cancelled"

// UserInfo is the contact block shared by the disruption feed and the profile store
type UserInfo struct {
	FirstName FlexString `json:"USR_FIRSTNAME" bson:"USR_FIRSTNAME"`
	LastName  FlexString `json:"USR_LASTNAME" bson:"USR_LASTNAME"`
	Mobile    FlexString `json:"USR_MOBILE" bson:"USR_MOBILE"`
	Email     FlexString `json:"USR_EMAIL" bson:"USR_EMAIL"`
	GUID      FlexString `json:"USR_GUID" bson:"USR_GUID"`
}

// DisruptionRecord is one entry of the disruption feed, keyed by PNR
type DisruptionRecord struct {
	PNR                    string   `json:"pnr" bson:"pnr"`
	EventType              string   `json:"event_type" bson:"event_type"`
	Origin                 string   `json:"origin" bson:"origin"`
	Destination            string   `json:"destination" bson:"destination"`
	ScheduledDepartureTime string   `json:"scheduled_departure_time" bson:"scheduled_departure_time"`
	CabinClass             string   `json:"cabin_class,omitempty" bson:"cabin_class,omitempty"`
	UserInfo               UserInfo `json:"user_info" bson:"user_info"`
}

// IsCancellation reports whether the event qualifies for recovery
func (d *DisruptionRecord) IsCancellation() bool {
	return d.EventType == EventFlightCancelled
}

// ContactIdentifier returns the email on record, falling back to the mobile number
func (d *DisruptionRecord) ContactIdentifier() string {
	if email := d.UserInfo.Email.String(); email != "" {
		return email
	}
	return d.UserInfo.Mobile.String()
}

// DepartureDate returns the YYYY-MM-DD prefix of the scheduled departure
func (d *DisruptionRecord) DepartureDate() string {
	if len(d.ScheduledDepartureTime) < 10 {
		return d.ScheduledDepartureTime
	}
	return d.ScheduledDepartureTime[:10]
}
