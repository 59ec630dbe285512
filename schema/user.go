package schema

const (
	ROLE_VICTIM     = "victim"
	ROLE_DONOR      = "donor"
	ROLE_CONSULTANT = "consultant"
	ROLE_NGO        = "ngo"
)

// KnownRoles lists every role a user record may carry.
var KnownRoles = []string{ROLE_VICTIM, ROLE_DONOR, ROLE_CONSULTANT, ROLE_NGO}

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	for _, r := range KnownRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is a member of the support network. Role is fixed at creation;
// there is no role-migration operation. Specialization is free text and
// only meaningful for consultants.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Location       string `json:"location,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Description    string `json:"description,omitempty"`
	Verified       bool   `json:"verified"`
}
