package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"community-backend/internal/models"

	"github.com/google/uuid"
)

// Entries before this year are treated as data-entry mistakes
const minEducationYear = 1950

var validJobTypes = func() map[string]bool {
	m := make(map[string]bool, len(models.JobTypes))
	for _, t := range models.JobTypes {
		m[t] = true
	}
	return m
}()

// CollectEducation filters out entries missing the mandatory degree field,
// rejects out-of-range completion years, assigns IDs to new entries, and
// sorts by completion year, most recent first. The ordering is a contract:
// dashboards show the latest degree
func CollectEducation(entries []models.EducationEntry, now time.Time) ([]models.EducationEntry, error) {
	collected := make([]models.EducationEntry, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Degree) == "" {
			continue
		}
		if e.YearOfCompletion != 0 && (e.YearOfCompletion < minEducationYear || e.YearOfCompletion > now.Year()) {
			return nil, fmt.Errorf("year of completion must be between %d and %d", minEducationYear, now.Year())
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		collected = append(collected, e)
	}

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].YearOfCompletion > collected[j].YearOfCompletion
	})

	return collected, nil
}

// CollectProfessions filters out entries missing the mandatory job type,
// rejects job types outside the known set, assigns IDs to new entries, and
// sorts by total experience months, most senior first
func CollectProfessions(entries []models.ProfessionEntry) ([]models.ProfessionEntry, error) {
	collected := make([]models.ProfessionEntry, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.JobType) == "" {
			continue
		}
		if !validJobTypes[e.JobType] {
			return nil, fmt.Errorf("unknown job type: %s", e.JobType)
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		collected = append(collected, e)
	}

	sort.SliceStable(collected, func(i, j int) bool {
		return totalExperienceMonths(collected[i]) > totalExperienceMonths(collected[j])
	})

	return collected, nil
}

func totalExperienceMonths(e models.ProfessionEntry) int {
	return e.ExperienceYears*12 + e.ExperienceMonths
}
