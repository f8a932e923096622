package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"fynorra-assistant/internal/domain"
)

const (
	defaultMaxQuestion = 300

	// defaultPlaceholderReply stands in for the retrieval-augmented answer the
	// assistant will eventually produce.
	defaultPlaceholderReply = "I don't have enough information from Fynorra's knowledge base to answer that yet. " +
		"Could you please rephrase, or ask about our core services like chatbots, automation, or software development?"
)

// ParamGetter loads optional reply overrides from a parameter store.
type ParamGetter interface {
	GetParameterOr(ctx context.Context, name, fallback string) (string, error)
}

// AskService answers questions. Until retrieval and generation are wired in,
// every non-instant question gets the same placeholder reply, so the service
// holds no per-request state at all.
type AskService struct {
	params         ParamGetter
	paramPrefix    string
	maxQuestionLen int

	cacheMu          sync.RWMutex
	cacheLoaded      bool
	placeholderReply string
	voiceRef         string
}

type AskInput struct {
	Question string
}

func NewAskService(p ParamGetter, paramPrefix string, maxQuestionLen int, voiceRef string) (*AskService, error) {
	paramPrefix = strings.TrimRight(strings.TrimSpace(paramPrefix), "/")
	if paramPrefix != "" && p == nil {
		return nil, errors.New("usecase: param getter must not be nil when a parameter prefix is set")
	}
	if maxQuestionLen <= 0 {
		maxQuestionLen = defaultMaxQuestion
	}
	return &AskService{
		params:         p,
		paramPrefix:    paramPrefix,
		maxQuestionLen: maxQuestionLen,
		voiceRef:       strings.TrimSpace(voiceRef),
	}, nil
}

func (s *AskService) Ask(ctx context.Context, in AskInput) (domain.Answer, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return domain.Answer{}, newError(ErrorInvalidInput, "empty_question", nil)
	}
	if len(question) > s.maxQuestionLen {
		return domain.Answer{}, newError(ErrorInvalidInput, "question_too_long", nil)
	}
	if err := s.ensureConfig(ctx); err != nil {
		return domain.Answer{}, newError(ErrorInternal, "paramstore_load_error", err)
	}

	placeholder, voiceRef := s.replyConfig()
	if reply, ok := lookupInstant(question); ok {
		return newAnswer(question, reply, voiceRef, domain.KindInstant), nil
	}
	return newAnswer(question, placeholder, voiceRef, domain.KindPlaceholder), nil
}

func (s *AskService) replyConfig() (placeholder, voiceRef string) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	return s.placeholderReply, s.voiceRef
}

func newAnswer(question, text, voiceRef string, kind domain.AnswerKind) domain.Answer {
	var voice *string
	if voiceRef != "" {
		voice = &voiceRef
	}
	return domain.Answer{
		Question: question,
		Text:     text,
		Voice:    voice,
		Kind:     kind,
	}
}

// ensureConfig resolves the reply configuration once per process. With no
// parameter prefix the built-in defaults apply and no store is consulted.
func (s *AskService) ensureConfig(ctx context.Context) error {
	s.cacheMu.RLock()
	if s.cacheLoaded {
		s.cacheMu.RUnlock()
		return nil
	}
	s.cacheMu.RUnlock()

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.cacheLoaded {
		return nil
	}

	s.placeholderReply = defaultPlaceholderReply
	if s.paramPrefix != "" {
		reply, voiceRef, err := s.loadReplyParams(ctx)
		if err != nil {
			return err
		}
		s.placeholderReply = reply
		s.voiceRef = voiceRef
	}
	s.cacheLoaded = true
	return nil
}

func (s *AskService) loadReplyParams(ctx context.Context) (reply, voiceRef string, err error) {
	prefix := strings.TrimRight(s.paramPrefix, "/")

	reply, err = s.params.GetParameterOr(ctx, prefix+"/replies/placeholder", defaultPlaceholderReply)
	if err != nil {
		return "", "", fmt.Errorf("usecase: load placeholder reply: %w", err)
	}
	voiceRef, err = s.params.GetParameterOr(ctx, prefix+"/replies/voice", s.voiceRef)
	if err != nil {
		return "", "", fmt.Errorf("usecase: load voice reference: %w", err)
	}
	return reply, strings.TrimSpace(voiceRef), nil
}
