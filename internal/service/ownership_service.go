package service

import (
	"errors"

	"courseforge_backend/internal/model"
	"courseforge_backend/internal/repository"
	"courseforge_backend/internal/util"

	"gorm.io/gorm"
)

// OwnershipService walks a nested resource's parent chain up to its Course
// and checks the course belongs to the calling instructor. The walk is a
// fixed-depth traversal (at most Answer→Question→Quiz→Module→Course) of
// point lookups; nothing is cached between requests.
//
// Every missing record in the chain maps to ErrNotFound; a course owned by
// a different instructor maps to ErrPermissionDenied.
type OwnershipService struct {
	CourseRepo   *repository.CourseRepository
	ModuleRepo   *repository.ModuleRepository
	SectionRepo  *repository.SectionRepository
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
}

func NewOwnershipService(
	courseRepo *repository.CourseRepository,
	moduleRepo *repository.ModuleRepository,
	sectionRepo *repository.SectionRepository,
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.AnswerRepository,
) *OwnershipService {
	return &OwnershipService{
		CourseRepo:   courseRepo,
		ModuleRepo:   moduleRepo,
		SectionRepo:  sectionRepo,
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotFound
	}
	return err
}

// ResolveCourse is the root of every chain: the course must exist and be
// owned by instructorID.
func (s *OwnershipService) ResolveCourse(courseID, instructorID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if course.InstructorID != instructorID {
		return nil, util.ErrPermissionDenied
	}
	return course, nil
}

// ResolveModule walks Module→Course.
func (s *OwnershipService) ResolveModule(moduleID, instructorID uint) (*model.CourseModule, error) {
	module, err := s.ModuleRepo.FindByID(moduleID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if _, err := s.ResolveCourse(module.CourseID, instructorID); err != nil {
		return nil, err
	}
	return module, nil
}

// ResolveSection walks Section→Module→Course.
func (s *OwnershipService) ResolveSection(sectionID, instructorID uint) (*model.Section, error) {
	section, err := s.SectionRepo.FindByID(sectionID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if _, err := s.ResolveModule(section.ModuleID, instructorID); err != nil {
		return nil, err
	}
	return section, nil
}

// ResolveQuiz branches on which parent reference is populated: a module
// quiz climbs through its module, a final exam hangs off the course
// directly.
func (s *OwnershipService) ResolveQuiz(quizID, instructorID uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	switch {
	case quiz.ModuleID != nil:
		if _, err := s.ResolveModule(*quiz.ModuleID, instructorID); err != nil {
			return nil, err
		}
	case quiz.CourseID != nil:
		if _, err := s.ResolveCourse(*quiz.CourseID, instructorID); err != nil {
			return nil, err
		}
	default:
		// A quiz with neither parent is corrupted state; nobody owns it.
		return nil, util.ErrNotFound
	}
	return quiz, nil
}

// ResolveQuestion walks Question→Quiz→(Module|Course).
func (s *OwnershipService) ResolveQuestion(questionID, instructorID uint) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if _, err := s.ResolveQuiz(question.QuizID, instructorID); err != nil {
		return nil, err
	}
	return question, nil
}

// ResolveAnswer walks the full chain Answer→Question→Quiz→(Module|Course).
func (s *OwnershipService) ResolveAnswer(answerID, instructorID uint) (*model.Answer, error) {
	answer, err := s.AnswerRepo.FindByID(answerID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if _, err := s.ResolveQuestion(answer.QuestionID, instructorID); err != nil {
		return nil, err
	}
	return answer, nil
}
