package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/minjaecho/teacherdesk/internal/app/models"
	"github.com/minjaecho/teacherdesk/internal/app/models/dto"
	"github.com/minjaecho/teacherdesk/internal/app/repositories"
	"github.com/minjaecho/teacherdesk/internal/pkg/apperrors"
	"github.com/minjaecho/teacherdesk/internal/pkg/gemini"
)

const (
	// noneSentinel is the model's answer when a work log contains no action items
	noneSentinel = "없음"

	// emptyHistoryMessage is returned without an AI call when there is
	// nothing to summarize
	emptyHistoryMessage = "상담 기록이 없습니다."

	summarizePromptFormat = `다음은 학생의 상담 기록이야. 이 기록 전체에서 가장 중요한 핵심 내용과 주요 변화를 3~4줄로 간결하게 요약해줘.

상담 기록:
"%s"
`

	extractPromptFormat = `다음은 교사의 하루 업무일지 내용이야. 이 내용에서 주요한 할 일들을 명확한 행동 동사로 시작하는 짧고 간결한 목록으로 추출해줘.
각 항목을 쉼표로 구분해. 만약 할 일이 없다면 '없음'이라고만 답변해줘.

업무일지 내용:
"%s"

예시:
- 학생 A 상담 진행, - 학부모 B 전화하기, - 수업 준비하기
`
)

// AssistantService delegates summarization and task extraction to the
// generative AI model. The model is an opaque boundary: a call either
// succeeds with text or fails, and failures are never retried.
type AssistantService interface {
	SummarizeConsultations(ctx context.Context, entries []dto.ConsultationRequest) (string, error)
	ExtractTodos(ctx context.Context, content string) ([]*models.ToDoItem, error)
}

// assistantServiceImpl implements the AssistantService interface
type assistantServiceImpl struct {
	// generator is nil when the client failed to initialize at startup;
	// every call then reports unavailability instead of crashing.
	generator gemini.TextGenerator
	todoRepo  *repositories.TodoRepository
	logger    zerolog.Logger
}

// NewAssistantService creates a new assistant service instance. A nil
// generator disables the assistant endpoints without disabling the server.
func NewAssistantService(generator gemini.TextGenerator, todoRepo *repositories.TodoRepository, logger zerolog.Logger) AssistantService {
	return &assistantServiceImpl{
		generator: generator,
		todoRepo:  todoRepo,
		logger:    logger,
	}
}

// SummarizeConsultations builds one prompt from the supplied entries and
// returns a short free-text summary. An empty list short-circuits.
func (s *assistantServiceImpl) SummarizeConsultations(ctx context.Context, entries []dto.ConsultationRequest) (string, error) {
	if s.generator == nil {
		return "", apperrors.ErrAssistantUnavailable
	}

	if len(entries) == 0 {
		return emptyHistoryMessage, nil
	}

	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "날짜: %s\n내용: %s\n---\n", e.Date, e.Content)
	}

	text, err := s.generator.GenerateText(ctx, fmt.Sprintf(summarizePromptFormat, sb.String()))
	if err != nil {
		s.logger.Error().Err(err).Msg("Consultation summary call failed")
		return "", fmt.Errorf("%w: %v", apperrors.ErrAssistantCallFailed, err)
	}

	return cleanResponse(text), nil
}

// ExtractTodos asks the model for a comma-separated action-item list from a
// work log's text and persists one todo per extracted item. The model's
// "none" sentinel yields an empty list and creates no rows.
func (s *assistantServiceImpl) ExtractTodos(ctx context.Context, content string) ([]*models.ToDoItem, error) {
	if s.generator == nil {
		return nil, apperrors.ErrAssistantUnavailable
	}

	text, err := s.generator.GenerateText(ctx, fmt.Sprintf(extractPromptFormat, content))
	if err != nil {
		s.logger.Error().Err(err).Msg("Todo extraction call failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrAssistantCallFailed, err)
	}

	extracted := cleanResponse(text)
	if extracted == noneSentinel {
		return []*models.ToDoItem{}, nil
	}

	created := []*models.ToDoItem{}
	for _, part := range strings.Split(extracted, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		item := &models.ToDoItem{Content: part}
		id, err := s.todoRepo.Create(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("error persisting extracted todo: %w", err)
		}
		item.ID = id
		created = append(created, item)
	}

	return created, nil
}

// cleanResponse strips markdown emphasis markers and surrounding whitespace
// from a model response
func cleanResponse(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "*", ""))
}
