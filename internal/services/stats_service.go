package services

import (
	"context"

	"relief-coordination.com/relief-coordination/pkg/constants"
	model "relief-coordination.com/relief-coordination/pkg/models"
)

type StatsService struct {
	repo TaskStore
}

func NewStatsService(repo TaskStore) *StatsService {
	return &StatsService{repo: repo}
}

// Stats rescans every task on each call.
func (s *StatsService) Stats(ctx context.Context) (model.VolunteerStats, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return model.VolunteerStats{}, err
	}
	return Aggregate(tasks), nil
}

func Aggregate(tasks []model.VolunteerTask) model.VolunteerStats {
	volunteers := make(map[string]struct{})
	locations := make(map[string]struct{})
	var stats model.VolunteerStats

	for _, task := range tasks {
		if task.Status.Active() {
			locations[task.Location] = struct{}{}
			for _, v := range task.Volunteers {
				volunteers[v] = struct{}{}
			}
		}

		if task.Status == constants.StatusCompleted {
			stats.TasksCompleted++
			stats.HoursContributed += len(task.Volunteers) * constants.HoursPerVolunteer
		}
	}

	stats.ActiveVolunteers = len(volunteers)
	stats.ActiveLocations = len(locations)
	return stats
}
