package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"docmap/internal/extract"
	"docmap/internal/genai"
	"docmap/internal/model"
	"docmap/internal/outline"
	"docmap/internal/prompt"
	"docmap/internal/session"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("mindmap not found")
	ErrReaderNil  = errors.New("reader is nil")
	ErrEmptyText  = errors.New("no extractable text in document")
)

// MindmapService defines the use cases for turning uploaded documents into
// mindmaps.
type MindmapService interface {
	// Generate extracts text from the uploaded PDF, asks the model for a
	// markdown mindmap and stores the result under a fresh ID.
	// - filename is kept as display metadata only; it plays no role in
	//   extraction.
	// Nothing is stored when any pipeline step fails.
	Generate(ctx context.Context, r io.ReaderAt, filename string, size int64) (*model.Mindmap, error)

	// List returns stored mindmaps ordered newest first, up to limit.
	// A non-positive limit returns all entries.
	List(ctx context.Context, limit int) ([]*model.Mindmap, error)

	// Get returns a single mindmap by its ID.
	Get(ctx context.Context, id string) (*model.Mindmap, error)

	// Questions generates study questions from the source text of a
	// stored mindmap. The stored entry is left untouched.
	Questions(ctx context.Context, id string) ([]string, error)

	// Delete removes a mindmap by ID.
	Delete(ctx context.Context, id string) error

	// Model reports the name of the generation model in use.
	Model() string
}

// mindmapService is a concrete implementation of MindmapService.
type mindmapService struct {
	extractor extract.Extractor
	generator genai.Generator
	prompts   *prompt.Library
	store     session.Store
}

// NewMindmapService constructs a new MindmapService.
func NewMindmapService(extractor extract.Extractor, generator genai.Generator, prompts *prompt.Library, store session.Store) MindmapService {
	return &mindmapService{
		extractor: extractor,
		generator: generator,
		prompts:   prompts,
		store:     store,
	}
}

func (s *mindmapService) Generate(ctx context.Context, r io.ReaderAt, filename string, size int64) (*model.Mindmap, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	res, err := s.extractor.Extract(ctx, r, size)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	text := strings.TrimSpace(res.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	p, truncated, err := s.prompts.Build(prompt.TemplateMindmap, text)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	raw, err := s.generator.Generate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generate mindmap: %w", err)
	}

	m := &model.Mindmap{
		ID:           uuid.New().String(),
		Filename:     filename,
		Markdown:     outline.Normalize(raw),
		Model:        s.generator.Model(),
		PageCount:    res.PageCount,
		PagesSkipped: res.PagesSkipped,
		SourceChars:  utf8.RuneCountInString(text),
		Truncated:    truncated,
		CreatedAt:    time.Now().UTC(),
		SourceText:   text,
	}
	s.store.Put(m)
	return m, nil
}

// List returns stored mindmaps without exposing store internals.
func (s *mindmapService) List(ctx context.Context, limit int) ([]*model.Mindmap, error) {
	if limit < 0 {
		limit = 0
	}
	return s.store.List(limit), nil
}

// Get returns a mindmap by ID.
func (s *mindmapService) Get(ctx context.Context, id string) (*model.Mindmap, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	m, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

// Questions prompts the model with the stored source text and parses the
// returned lines.
func (s *mindmapService) Questions(ctx context.Context, id string) ([]string, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	m, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}

	p, _, err := s.prompts.Build(prompt.TemplateQuestions, m.SourceText)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}
	raw, err := s.generator.Generate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	return parseQuestions(raw), nil
}

// Delete removes a mindmap from the session store.
func (s *mindmapService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if !s.store.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// Model reports the configured generation model name.
func (s *mindmapService) Model() string {
	return s.generator.Model()
}

// parseQuestions splits the model output into one question per line,
// keeping any numbering the model produced.
func parseQuestions(raw string) []string {
	lines := strings.Split(raw, "\n")
	questions := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	return questions
}
