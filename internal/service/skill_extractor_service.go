package service

import "strings"

// technicalSkillTerms is the fixed technical dictionary. Extraction output
// follows this order, not the order skills appear in the input.
var technicalSkillTerms = []string{
	"javascript", "typescript", "react", "angular", "vue", "node.js",
	"express", "python", "django", "flask", "java", "spring", "golang",
	"rust", "c++", "c#", "php", "ruby", "kotlin", "swift",
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"graphql", "rest api", "grpc", "microservices", "kafka",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ci/cd",
	"git", "linux", "html", "css", "sass",
	"machine learning", "deep learning", "data analysis", "pandas",
	"tensorflow", "pytorch", "testing", "agile", "scrum",
}

// softSkillTerms is the fixed soft-skill dictionary.
var softSkillTerms = []string{
	"communication", "leadership", "teamwork", "problem solving",
	"problem-solving", "collaboration", "time management", "adaptability",
	"critical thinking", "creativity", "mentoring", "ownership",
	"attention to detail", "stakeholder management", "decision making",
	"conflict resolution",
}

// ExtractedSkills groups the dictionary hits found in a job description.
type ExtractedSkills struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
}

// All returns technical skills followed by soft skills as a single list.
func (e ExtractedSkills) All() []string {
	all := make([]string, 0, len(e.TechnicalSkills)+len(e.SoftSkills))
	all = append(all, e.TechnicalSkills...)
	all = append(all, e.SoftSkills...)
	return all
}

// SkillExtractorService detects known skill terms in free text.
type SkillExtractorService interface {
	ExtractSkills(jobDescription string) ExtractedSkills
}

type skillExtractorService struct{}

func NewSkillExtractorService() SkillExtractorService {
	return &skillExtractorService{}
}

// ExtractSkills lower-cases the input and includes every dictionary term
// that occurs as a substring. No stemming, no synonym resolution: the
// occasional substring collision is an accepted tradeoff for determinism.
func (s *skillExtractorService) ExtractSkills(jobDescription string) ExtractedSkills {
	lowered := strings.ToLower(jobDescription)

	result := ExtractedSkills{
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
	}
	for _, term := range technicalSkillTerms {
		if strings.Contains(lowered, term) {
			result.TechnicalSkills = append(result.TechnicalSkills, term)
		}
	}
	for _, term := range softSkillTerms {
		if strings.Contains(lowered, term) {
			result.SoftSkills = append(result.SoftSkills, term)
		}
	}
	return result
}
