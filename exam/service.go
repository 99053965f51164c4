package exam

import (
	"errors"
	"time"

	"examportal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageSize is the fixed number of questions served per exam page.
const PageSize = 5

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrResultNotFound   = errors.New("result not found")
	ErrInvalidInput     = errors.New("invalid input")
)

// Service implements the exam workflow: answer capture, scoring and result
// reconstruction. It holds only the storage handle it was constructed with.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// QuestionView is a question as shown during the exam. It deliberately has
// no field for the correct option.
type QuestionView struct {
	ID           uint           `json:"id"`
	QuestionText string         `json:"question_text"`
	Options      datatypes.JSON `json:"options"`
}

// QuestionPage is one page of an exam.
type QuestionPage struct {
	Questions   []QuestionView `json:"questions"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

// AnswerSummary is one row of the post-exam review: a question joined with
// the candidate's answer, if any. Nil SelectedOption means unanswered.
type AnswerSummary struct {
	ID             uint           `json:"id"`
	QuestionText   string         `json:"question_text"`
	Options        datatypes.JSON `json:"options"`
	CorrectOption  int            `json:"correct_option"`
	SelectedOption *int           `json:"selected_option"`
	IsCorrect      *bool          `json:"is_correct"`
}

// ResultDetail is a stored result enriched with the per-question summary.
type ResultDetail struct {
	ID          uint            `json:"id"`
	Reference   string          `json:"reference"`
	Score       int             `json:"score"`
	AttemptedOn time.Time       `json:"attempted_on"`
	CourseID    uint            `json:"course_id"`
	CourseName  string          `json:"course_name"`
	Summary     []AnswerSummary `json:"summary"`
}

// ResultSummary is one row of a candidate's result history.
type ResultSummary struct {
	ID             uint      `json:"id"`
	Reference      string    `json:"reference"`
	Score          int       `json:"score"`
	AttemptedOn    time.Time `json:"attempted_on"`
	CourseName     string    `json:"course_name"`
	TotalQuestions int64     `json:"total_questions"`
}

// RecordAnswer grades the selection against the question's stored correct
// option and upserts the candidate's answer. The upsert is a single
// statement keyed on (candidate_id, question_id): replaying the same call
// leaves the row unchanged, a different selection overwrites it.
func (s *Service) RecordAnswer(candidateID, questionID uint, selectedOption int) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	answer := models.Answer{
		CandidateID:    candidateID,
		QuestionID:     questionID,
		SelectedOption: selectedOption,
		IsCorrect:      selectedOption == question.CorrectOption,
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "candidate_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"selected_option", "is_correct", "updated_at"}),
	}).Create(&answer).Error
}

// FinalizeSubmission recomputes the score from the committed answers joined
// to the course's questions and inserts a fresh result row. Submitting the
// same course again appends another row rather than updating the first.
func (s *Service) FinalizeSubmission(candidateID, courseID uint) (*models.ExamResult, error) {
	if candidateID == 0 || courseID == 0 {
		return nil, ErrInvalidInput
	}

	var score int64
	err := s.db.Model(&models.Answer{}).
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.candidate_id = ? AND questions.course_id = ? AND answers.is_correct = ?", candidateID, courseID, true).
		Count(&score).Error
	if err != nil {
		return nil, err
	}

	result := models.ExamResult{
		Reference:   uuid.NewString(),
		CandidateID: candidateID,
		CourseID:    courseID,
		Score:       int(score),
		AttemptedOn: time.Now(),
	}

	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// ListQuestions returns one page of a course's questions ordered by id
// ascending. Pages below 1 are treated as page 1. The correct option never
// leaves the storage layer here.
func (s *Service) ListQuestions(courseID uint, page int) (*QuestionPage, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.Model(&models.Question{}).Where("course_id = ?", courseID).Count(&total).Error; err != nil {
		return nil, err
	}

	questions := []QuestionView{}
	err := s.db.Model(&models.Question{}).
		Select("id", "question_text", "options").
		Where("course_id = ?", courseID).
		Order("id asc").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Scan(&questions).Error
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:   questions,
		TotalPages:  int((total + PageSize - 1) / PageSize),
		CurrentPage: page,
	}, nil
}

// ResultDetail loads a stored result for review. A result belonging to a
// different candidate is reported exactly like a missing one, so the
// endpoint cannot confirm the existence of someone else's data. The summary
// covers every question of the course, left-joined with the candidate's
// answers; the correct option is revealed at this stage.
func (s *Service) ResultDetail(resultID, candidateID uint) (*ResultDetail, error) {
	var result models.ExamResult
	err := s.db.Where("id = ? AND candidate_id = ?", resultID, candidateID).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}

	var course models.Course
	if err := s.db.First(&course, result.CourseID).Error; err != nil {
		return nil, err
	}

	summary := []AnswerSummary{}
	err = s.db.Model(&models.Question{}).
		Select("questions.id", "questions.question_text", "questions.options", "questions.correct_option",
			"answers.selected_option", "answers.is_correct").
		Joins("LEFT JOIN answers ON answers.question_id = questions.id AND answers.candidate_id = ? AND answers.deleted_at IS NULL", candidateID).
		Where("questions.course_id = ?", result.CourseID).
		Order("questions.id asc").
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	return &ResultDetail{
		ID:          result.ID,
		Reference:   result.Reference,
		Score:       result.Score,
		AttemptedOn: result.AttemptedOn,
		CourseID:    course.ID,
		CourseName:  course.Name,
		Summary:     summary,
	}, nil
}

// ListResults returns the candidate's result history, newest first.
// TotalQuestions reflects the course's current question count, not the
// count at attempt time.
func (s *Service) ListResults(candidateID uint) ([]ResultSummary, error) {
	summaries := []ResultSummary{}
	err := s.db.Model(&models.ExamResult{}).
		Select("exam_results.id", "exam_results.reference", "exam_results.score", "exam_results.attempted_on",
			"courses.name AS course_name",
			"(SELECT COUNT(*) FROM questions WHERE questions.course_id = courses.id AND questions.deleted_at IS NULL) AS total_questions").
		Joins("JOIN courses ON courses.id = exam_results.course_id").
		Where("exam_results.candidate_id = ?", candidateID).
		Order("exam_results.attempted_on DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
