package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/careerai/interview-service/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultTotalQuestions is the question count a session gets when the caller
// does not ask for a specific total.
const DefaultTotalQuestions = 8

// Per-category quotas. The technical quota is clamped relative to the total;
// the clamp anchors on the 8-question default and deliberately does not
// scale proportionally for other totals.
const (
	behavioralQuota   = 2
	situationalQuota  = 2
	technicalQuotaMin = 2
	technicalQuotaMax = 4
)

// GeneratedQuestions is the selector output: an ordered question set plus
// the skills extracted from the job description.
type GeneratedQuestions struct {
	Questions []model.Question
	Skills    ExtractedSkills
}

// QuestionSelectorService assembles a deduplicated, shuffled question set
// for one session using category quotas and skill matching.
type QuestionSelectorService interface {
	GenerateQuestions(role, jobDescription string, totalQuestions int) (*GeneratedQuestions, error)
}

type questionSelectorService struct {
	extractor SkillExtractorService
	rng       *rand.Rand
	mu        sync.Mutex // rand.Rand is not safe for concurrent use
}

func NewQuestionSelectorService(extractor SkillExtractorService) QuestionSelectorService {
	return newQuestionSelectorService(extractor, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// newQuestionSelectorService takes an explicit rand source so tests can seed
// the shuffles and assert structural invariants.
func newQuestionSelectorService(extractor SkillExtractorService, rng *rand.Rand) *questionSelectorService {
	return &questionSelectorService{extractor: extractor, rng: rng}
}

func (s *questionSelectorService) GenerateQuestions(role, jobDescription string, totalQuestions int) (*GeneratedQuestions, error) {
	if totalQuestions <= 0 {
		totalQuestions = DefaultTotalQuestions
	}

	skills := s.extractor.ExtractSkills(jobDescription)

	technicalQuota := totalQuestions - behavioralQuota - situationalQuota
	if technicalQuota < technicalQuotaMin {
		technicalQuota = technicalQuotaMin
	}
	if technicalQuota > technicalQuotaMax {
		technicalQuota = technicalQuotaMax
	}

	usedTexts := make(map[string]bool)
	var selected []model.Question

	selected = append(selected, s.takeFromPool(behavioralQuestions(), behavioralQuota, usedTexts, nil)...)
	selected = append(selected, s.pickTechnical(skills.TechnicalSkills, technicalQuota, usedTexts)...)
	selected = append(selected, s.takeFromPool(situationalQuestions(), situationalQuota, usedTexts, nil)...)

	if len(selected) == 0 {
		log.Error().Str("role", role).Msg("Question selection exhausted all pools without producing any questions")
		return nil, fmt.Errorf("%w: no questions available for role %q", ErrGenerationFailure, role)
	}

	s.mu.Lock()
	s.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	s.mu.Unlock()

	if len(selected) > totalQuestions {
		selected = selected[:totalQuestions]
	}
	for i := range selected {
		selected[i].OrderInSession = i + 1
	}

	log.Info().
		Str("role", role).
		Int("questions", len(selected)).
		Strs("technical_skills", skills.TechnicalSkills).
		Msg("Question set generated")

	return &GeneratedQuestions{Questions: selected, Skills: skills}, nil
}

// takeFromPool shuffles a template pool and materializes up to n questions,
// skipping any whose exact text was already used in this session.
func (s *questionSelectorService) takeFromPool(pool []questionTemplate, n int, usedTexts map[string]bool, relatedSkill *string) []model.Question {
	s.mu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.mu.Unlock()

	var out []model.Question
	for _, tmpl := range pool {
		if len(out) >= n {
			break
		}
		if usedTexts[tmpl.Text] {
			continue
		}
		usedTexts[tmpl.Text] = true
		out = append(out, newQuestionFromTemplate(tmpl, relatedSkill))
	}
	return out
}

// pickTechnical fills the technical quota by walking extracted skills in
// order and drawing from each skill's matched pool, then tops up from the
// generic default pool when skills run out.
func (s *questionSelectorService) pickTechnical(technicalSkills []string, quota int, usedTexts map[string]bool) []model.Question {
	var out []model.Question
	for _, skill := range technicalSkills {
		if len(out) >= quota {
			break
		}
		pool := technicalQuestionsForSkill(skill)
		if len(pool) == 0 {
			continue
		}
		related := skill
		out = append(out, s.takeFromPool(pool, quota-len(out), usedTexts, &related)...)
	}
	if len(out) < quota {
		out = append(out, s.takeFromPool(defaultTechnicalQuestions(), quota-len(out), usedTexts, nil)...)
	}
	return out
}

func newQuestionFromTemplate(tmpl questionTemplate, relatedSkill *string) model.Question {
	var related *string
	if relatedSkill != nil {
		v := *relatedSkill
		related = &v
	}
	keywords := make([]string, len(tmpl.ExpectedKeywords))
	copy(keywords, tmpl.ExpectedKeywords)

	return model.Question{
		ID:               newQuestionID(),
		Text:             tmpl.Text,
		Category:         tmpl.Category,
		Difficulty:       tmpl.Difficulty,
		ExpectedKeywords: keywords,
		RelatedSkill:     related,
	}
}

// newQuestionID builds a timestamp-plus-random id. Collisions within one
// process lifetime are negligible.
func newQuestionID() string {
	return fmt.Sprintf("q_%x_%s", time.Now().UnixNano(), uuid.NewString()[:8])
}
