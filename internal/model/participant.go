package model

// Participant is a user together with all of its goals and achievements.
type Participant struct {
	User
	Goals        []Goal        `json:"goals"`
	Achievements []Achievement `json:"achievements"`
}
