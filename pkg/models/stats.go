package model

type VolunteerStats struct {
	ActiveVolunteers int `json:"activeVolunteers"`
	HoursContributed int `json:"hoursContributed"`
	TasksCompleted   int `json:"tasksCompleted"`
	ActiveLocations  int `json:"activeLocations"`
}
