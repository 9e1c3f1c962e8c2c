package model

import (
	"time"

	"relief-coordination.com/relief-coordination/pkg/constants"
)

type VolunteerTask struct {
	ID                string               `gorm:"primaryKey;size:36" bson:"_id" json:"_id"`
	Title             string               `gorm:"not null" bson:"title" json:"title"`
	Description       string               `gorm:"not null" bson:"description" json:"description"`
	Location          string               `gorm:"not null;index" bson:"location" json:"location"`
	Priority          constants.Priority   `gorm:"type:varchar(20);not null" bson:"priority" json:"priority"`
	RequiredSkills    StringList           `gorm:"not null" bson:"requiredSkills" json:"requiredSkills"`
	EstimatedDuration string               `gorm:"not null" bson:"estimatedDuration" json:"estimatedDuration"`
	MaxVolunteers     int                  `gorm:"not null;default:1" bson:"maxVolunteers" json:"maxVolunteers"`
	CreatedBy         string               `gorm:"size:36;not null;index" bson:"createdBy" json:"createdBy"`
	Volunteers        StringList           `gorm:"not null" bson:"volunteers" json:"volunteers"`
	Status            constants.TaskStatus `gorm:"type:varchar(20);not null;index" bson:"status" json:"status"`
	Version           uint                 `gorm:"not null;default:1" bson:"version" json:"version"`
	CreatedAt         time.Time            `gorm:"index" bson:"createdAt" json:"createdAt"`
	CompletedAt       *time.Time           `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

func (t *VolunteerTask) HasVolunteer(userID string) bool {
	for _, v := range t.Volunteers {
		if v == userID {
			return true
		}
	}
	return false
}

func (t *VolunteerTask) Full() bool {
	return len(t.Volunteers) >= t.MaxVolunteers
}

// PopulatedTask is a task with its user references resolved for display.
type PopulatedTask struct {
	ID                string               `json:"_id"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	Location          string               `json:"location"`
	Priority          constants.Priority   `json:"priority"`
	RequiredSkills    StringList           `json:"requiredSkills"`
	EstimatedDuration string               `json:"estimatedDuration"`
	MaxVolunteers     int                  `json:"maxVolunteers"`
	CreatedBy         UserSummary          `json:"createdBy"`
	Volunteers        []UserSummary        `json:"volunteers"`
	Status            constants.TaskStatus `json:"status"`
	CreatedAt         time.Time            `json:"createdAt"`
	CompletedAt       *time.Time           `json:"completedAt,omitempty"`
}

// Populate joins tasks with the users they reference. Users missing from the
// directory are rendered with their id only.
func Populate(tasks []VolunteerTask, users map[string]User) []PopulatedTask {
	summary := func(id string) UserSummary {
		if u, ok := users[id]; ok {
			return u.Summary()
		}
		return UserSummary{ID: id}
	}

	out := make([]PopulatedTask, 0, len(tasks))
	for _, t := range tasks {
		volunteers := make([]UserSummary, 0, len(t.Volunteers))
		for _, v := range t.Volunteers {
			volunteers = append(volunteers, summary(v))
		}

		out = append(out, PopulatedTask{
			ID:                t.ID,
			Title:             t.Title,
			Description:       t.Description,
			Location:          t.Location,
			Priority:          t.Priority,
			RequiredSkills:    t.RequiredSkills,
			EstimatedDuration: t.EstimatedDuration,
			MaxVolunteers:     t.MaxVolunteers,
			CreatedBy:         summary(t.CreatedBy),
			Volunteers:        volunteers,
			Status:            t.Status,
			CreatedAt:         t.CreatedAt,
			CompletedAt:       t.CompletedAt,
		})
	}
	return out
}

// ReferencedUserIDs returns every distinct creator and volunteer id in tasks.
func ReferencedUserIDs(tasks []VolunteerTask) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, t := range tasks {
		add(t.CreatedBy)
		for _, v := range t.Volunteers {
			add(v)
		}
	}
	return ids
}
