package activity

import "time"

// Participant is a student enrolled in an activity.
type Participant struct {
	UserID   int       `json:"userId"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Activity is a student event. Date is kept exactly as the admin sent it.
type Activity struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Date         string        `json:"date"`
	Participants []Participant `json:"participants"`
}

// HasParticipant reports whether userID already joined a.
func (a *Activity) HasParticipant(userID int) bool {
	for _, p := range a.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// Clone returns a copy of a that shares no memory with it.
func (a *Activity) Clone() Activity {
	cp := *a
	cp.Participants = make([]Participant, len(a.Participants))
	copy(cp.Participants, a.Participants)
	return cp
}
