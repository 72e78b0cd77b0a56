package notifications

import "time"

// Kind categorises an outreach submission.
type Kind string

const (
	KindVolunteer Kind = "volunteer"
	KindContact   Kind = "contact"
	KindStory     Kind = "story"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindVolunteer, KindContact, KindStory:
		return true
	}
	return false
}

// Title is the headline used in staff messages.
func (k Kind) Title() string {
	switch k {
	case KindVolunteer:
		return "New volunteer application"
	case KindContact:
		return "New contact message"
	case KindStory:
		return "New story submission"
	}
	return "New submission"
}

// VolunteerRoles lists the areas of interest on the volunteer form.
func VolunteerRoles() []string {
	return []string{
		"Field Documentation / Videography",
		"Community Outreach",
		"Event Support",
		"Translation / Administrative",
		"Other",
	}
}

// ContactSubjects lists the subjects of the contact form.
func ContactSubjects() []string {
	return []string{
		"General Inquiry",
		"Volunteer Opportunities",
		"Submit a Story Idea",
		"Partnership/Sponsorship",
	}
}

// Submission is one message sent through a public form.
type Submission struct {
	ID        string            `json:"id"`
	Kind      Kind              `json:"kind"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Subject   string            `json:"subject"`
	Body      string            `json:"body"`
	Fields    map[string]string `json:"fields,omitempty"`
	Delivered bool              `json:"delivered"`
	CreatedAt time.Time         `json:"created_at"`
}
