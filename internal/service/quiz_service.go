package service

import (
	"errors"

	"courseforge_backend/internal/model"
	"courseforge_backend/internal/repository"
	"courseforge_backend/internal/util"

	"gorm.io/gorm"
)

// QuizService owns the quiz lifecycle for module quizzes and course final
// exams, plus their questions and answers.
//
// A module or course has at most one quiz at a time. Creating a quiz where
// one already exists updates the existing quiz's mutable fields in place
// (POST doubles as upsert, kept from the observed behavior). TotalPoints
// is never recomputed here when questions change.
type QuizService struct {
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
	Owner        *OwnershipService
	DB           *gorm.DB
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.AnswerRepository,
	owner *OwnershipService,
	db *gorm.DB,
) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		Owner:        owner,
		DB:           db,
	}
}

// QuizInput is the mutable field set of the POST upsert.
type QuizInput struct {
	Title        string
	Description  string
	PassingScore *int
	TimeLimit    *int
}

func (in QuizInput) passingScore() int {
	if in.PassingScore != nil {
		return *in.PassingScore
	}
	return 60
}

// GetModuleQuiz returns the module's quiz with questions and answers, or
// nil when the module has none (not an error).
func (s *QuizService) GetModuleQuiz(moduleID, instructorID uint) (*model.Quiz, error) {
	if _, err := s.Owner.ResolveModule(moduleID, instructorID); err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindByModule(moduleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.QuizRepo.FindWithQuestions(quiz.ID)
}

// UpsertModuleQuiz creates the module quiz, or updates the existing one's
// title, description, passingScore and timeLimit in place.
func (s *QuizService) UpsertModuleQuiz(moduleID, instructorID uint, in QuizInput) (*model.Quiz, error) {
	if _, err := s.Owner.ResolveModule(moduleID, instructorID); err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindByModule(moduleID)
	switch {
	case err == nil:
		quiz.Title = in.Title
		quiz.Description = in.Description
		quiz.PassingScore = in.passingScore()
		quiz.TimeLimit = in.TimeLimit
		if err := s.QuizRepo.Update(quiz); err != nil {
			return nil, err
		}
		return quiz, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		quiz = &model.Quiz{
			Title:        in.Title,
			Description:  in.Description,
			ModuleID:     &moduleID,
			IsFinalExam:  false,
			PassingScore: in.passingScore(),
			TimeLimit:    in.TimeLimit,
			TotalPoints:  0,
		}
		if err := s.QuizRepo.Create(quiz); err != nil {
			return nil, err
		}
		return quiz, nil
	default:
		return nil, err
	}
}

// DeleteModuleQuiz removes the quiz and all its questions and answers.
func (s *QuizService) DeleteModuleQuiz(moduleID, instructorID uint) error {
	if _, err := s.Owner.ResolveModule(moduleID, instructorID); err != nil {
		return err
	}

	quiz, err := s.QuizRepo.FindByModule(moduleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuizNotFound
	}
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteQuizCascade(tx, quiz.ID)
	})
}

// GetFinalExam mirrors GetModuleQuiz for the course-level exam.
func (s *QuizService) GetFinalExam(courseID, instructorID uint) (*model.Quiz, error) {
	if _, err := s.Owner.ResolveCourse(courseID, instructorID); err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindFinalExam(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.QuizRepo.FindWithQuestions(quiz.ID)
}

func (s *QuizService) UpsertFinalExam(courseID, instructorID uint, in QuizInput) (*model.Quiz, error) {
	if _, err := s.Owner.ResolveCourse(courseID, instructorID); err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindFinalExam(courseID)
	switch {
	case err == nil:
		quiz.Title = in.Title
		quiz.Description = in.Description
		quiz.PassingScore = in.passingScore()
		quiz.TimeLimit = in.TimeLimit
		if err := s.QuizRepo.Update(quiz); err != nil {
			return nil, err
		}
		return quiz, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		quiz = &model.Quiz{
			Title:        in.Title,
			Description:  in.Description,
			CourseID:     &courseID,
			IsFinalExam:  true,
			PassingScore: in.passingScore(),
			TimeLimit:    in.TimeLimit,
			TotalPoints:  0,
		}
		if err := s.QuizRepo.Create(quiz); err != nil {
			return nil, err
		}
		return quiz, nil
	default:
		return nil, err
	}
}

func (s *QuizService) DeleteFinalExam(courseID, instructorID uint) error {
	if _, err := s.Owner.ResolveCourse(courseID, instructorID); err != nil {
		return err
	}

	quiz, err := s.QuizRepo.FindFinalExam(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuizNotFound
	}
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteQuizCascade(tx, quiz.ID)
	})
}

func (s *QuizService) ListQuestions(quizID, instructorID uint) ([]model.Question, error) {
	if _, err := s.Owner.ResolveQuiz(quizID, instructorID); err != nil {
		return nil, err
	}
	return s.QuestionRepo.ListByQuiz(quizID)
}

// CreateQuestion appends a question. Order defaults to the current sibling
// count, points to 1. TotalPoints on the quiz is left as-is.
func (s *QuizService) CreateQuestion(quizID, instructorID uint, question *model.Question, order *int) error {
	if _, err := s.Owner.ResolveQuiz(quizID, instructorID); err != nil {
		return err
	}

	question.QuizID = quizID
	if order != nil {
		question.Order = *order
	} else {
		count, err := s.QuestionRepo.CountByQuiz(quizID)
		if err != nil {
			return err
		}
		question.Order = int(count)
	}
	if question.Points == 0 {
		question.Points = 1
	}

	return s.QuestionRepo.Create(question)
}

type QuestionUpdate struct {
	Question *string
	Type     *model.QuestionType
	Order    *int
	Points   *int
}

func (s *QuizService) UpdateQuestion(id, instructorID uint, update QuestionUpdate) (*model.Question, error) {
	question, err := s.Owner.ResolveQuestion(id, instructorID)
	if err != nil {
		return nil, err
	}

	if update.Question != nil {
		question.Question = *update.Question
	}
	if update.Type != nil {
		question.Type = *update.Type
	}
	if update.Order != nil {
		question.Order = *update.Order
	}
	if update.Points != nil {
		question.Points = *update.Points
	}

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteQuestion removes the question and its answers.
func (s *QuizService) DeleteQuestion(id, instructorID uint) error {
	question, err := s.Owner.ResolveQuestion(id, instructorID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", question.ID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, question.ID).Error
	})
}

func (s *QuizService) ListAnswers(questionID, instructorID uint) ([]model.Answer, error) {
	if _, err := s.Owner.ResolveQuestion(questionID, instructorID); err != nil {
		return nil, err
	}
	return s.AnswerRepo.ListByQuestion(questionID)
}

func (s *QuizService) CreateAnswer(questionID, instructorID uint, answer *model.Answer, order *int) error {
	if _, err := s.Owner.ResolveQuestion(questionID, instructorID); err != nil {
		return err
	}

	answer.QuestionID = questionID
	if order != nil {
		answer.Order = *order
	} else {
		count, err := s.AnswerRepo.CountByQuestion(questionID)
		if err != nil {
			return err
		}
		answer.Order = int(count)
	}

	return s.AnswerRepo.Create(answer)
}

type AnswerUpdate struct {
	Answer    *string
	IsCorrect *bool
	Order     *int
}

func (s *QuizService) UpdateAnswer(id, instructorID uint, update AnswerUpdate) (*model.Answer, error) {
	answer, err := s.Owner.ResolveAnswer(id, instructorID)
	if err != nil {
		return nil, err
	}

	if update.Answer != nil {
		answer.Answer = *update.Answer
	}
	if update.IsCorrect != nil {
		answer.IsCorrect = *update.IsCorrect
	}
	if update.Order != nil {
		answer.Order = *update.Order
	}

	if err := s.AnswerRepo.Update(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *QuizService) DeleteAnswer(id, instructorID uint) error {
	answer, err := s.Owner.ResolveAnswer(id, instructorID)
	if err != nil {
		return err
	}
	return s.AnswerRepo.Delete(answer.ID)
}
