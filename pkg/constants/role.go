package constants

const (
	RoleAuthority = "authority"
	RoleVolunteer = "volunteer"
)
