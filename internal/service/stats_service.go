package service

import (
	"courseforge_backend/internal/model"
	"courseforge_backend/internal/repository"
)

type StatsService struct {
	CourseRepo *repository.CourseRepository
}

func NewStatsService(courseRepo *repository.CourseRepository) *StatsService {
	return &StatsService{CourseRepo: courseRepo}
}

type InstructorStatistics struct {
	TotalCourses     int64 `json:"totalCourses"`
	PublishedCourses int64 `json:"publishedCourses"`
	DraftCourses     int64 `json:"draftCourses"`
	TotalStudents    int64 `json:"totalStudents"`
	TotalEnrollments int64 `json:"totalEnrollments"`
}

// ForInstructor counts the caller's courses by status. Student and
// enrollment totals stay zero until an enrollment system exists.
func (s *StatsService) ForInstructor(instructorID uint) (*InstructorStatistics, error) {
	total, err := s.CourseRepo.CountByInstructor(instructorID)
	if err != nil {
		return nil, err
	}
	published, err := s.CourseRepo.CountByInstructorAndStatus(instructorID, model.StatusPublished)
	if err != nil {
		return nil, err
	}

	return &InstructorStatistics{
		TotalCourses:     total,
		PublishedCourses: published,
		DraftCourses:     total - published,
	}, nil
}
