package service

import (
	"strings"

	"github.com/careerai/interview-service/internal/model"
)

// questionTemplate is one entry of the static catalogue. Selected templates
// are copied into per-session model.Question instances and never mutated.
type questionTemplate struct {
	Text             string
	Category         string
	Difficulty       string
	ExpectedKeywords []string
}

// The bank is read-only after init and shared across all requests, so no
// synchronization is needed. Accessors hand out copies because the selector
// shuffles whatever it receives.

var behavioralBank = []questionTemplate{
	{
		Text:             "Tell me about a time you had to deal with a difficult team member. How did you handle the situation?",
		Category:         model.CategoryBehavioral,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"situation", "communication", "resolution", "team", "outcome"},
	},
	{
		Text:             "Describe a project you are most proud of. What was your role and what impact did it have?",
		Category:         model.CategoryBehavioral,
		Difficulty:       model.DifficultyEasy,
		ExpectedKeywords: []string{"project", "role", "impact", "result", "achieved"},
	},
	{
		Text:             "Tell me about a time you failed. What did you learn from it?",
		Category:         model.CategoryBehavioral,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"failure", "learned", "mistake", "improvement", "growth"},
	},
	{
		Text:             "Describe a situation where you had to meet a tight deadline. How did you prioritize your work?",
		Category:         model.CategoryBehavioral,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"deadline", "prioritize", "time management", "pressure", "delivered"},
	},
	{
		Text:             "Tell me about a time you disagreed with your manager. How was it resolved?",
		Category:         model.CategoryBehavioral,
		Difficulty:       model.DifficultyHard,
		ExpectedKeywords: []string{"disagreement", "perspective", "discussion", "compromise", "respect"},
	},
	{
		Text:             "Give an example of a time you went above and beyond what was expected of you.",
		Category:         model.CategoryBehavioral,
		Difficulty:       model.DifficultyEasy,
		ExpectedKeywords: []string{"initiative", "extra", "ownership", "impact", "result"},
	},
	{
		Text:             "Describe a time you had to give difficult feedback to a colleague. How did you approach it?",
		Category:         model.CategoryBehavioral,
		Difficulty:       model.DifficultyHard,
		ExpectedKeywords: []string{"feedback", "empathy", "honest", "constructive", "improvement"},
	},
	{
		Text:             "Tell me about a time you had to learn a new technology or skill quickly. How did you approach it?",
		Category:         model.CategoryBehavioral,
		Difficulty:       model.DifficultyEasy,
		ExpectedKeywords: []string{"learning", "new", "practice", "resources", "applied"},
	},
	{
		Text:             "Describe a situation where you took ownership of a problem that was not your responsibility.",
		Category:         model.CategoryBehavioral,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"ownership", "initiative", "problem", "solution", "responsibility"},
	},
	{
		Text:             "Tell me about a time you received critical feedback. How did you respond?",
		Category:         model.CategoryBehavioral,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"feedback", "listened", "improved", "action", "growth"},
	},
}

var situationalBank = []questionTemplate{
	{
		Text:             "Imagine you discover a critical bug in production right before a major release. What do you do?",
		Category:         model.CategorySituational,
		Difficulty:       model.DifficultyHard,
		ExpectedKeywords: []string{"assess", "impact", "communicate", "rollback", "fix"},
	},
	{
		Text:             "How would you handle a situation where a stakeholder keeps changing requirements mid-sprint?",
		Category:         model.CategorySituational,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"requirements", "scope", "communicate", "priority", "tradeoff"},
	},
	{
		Text:             "If you joined a team with a large legacy codebase and no documentation, how would you get productive?",
		Category:         model.CategorySituational,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"read", "tests", "questions", "incremental", "documentation"},
	},
	{
		Text:             "Suppose two senior engineers on your team strongly disagree on an architectural decision. How would you help move the team forward?",
		Category:         model.CategorySituational,
		Difficulty:       model.DifficultyHard,
		ExpectedKeywords: []string{"tradeoffs", "data", "prototype", "decision", "alignment"},
	},
	{
		Text:             "What would you do if you realized halfway through a sprint that you cannot finish your committed work?",
		Category:         model.CategorySituational,
		Difficulty:       model.DifficultyEasy,
		ExpectedKeywords: []string{"communicate", "early", "scope", "help", "re-plan"},
	},
	{
		Text:             "How would you approach onboarding a junior developer who is struggling with their first tasks?",
		Category:         model.CategorySituational,
		Difficulty:       model.DifficultyEasy,
		ExpectedKeywords: []string{"mentoring", "pairing", "small tasks", "feedback", "support"},
	},
	{
		Text:             "Imagine your service's latency doubled overnight with no deploys. How do you investigate?",
		Category:         model.CategorySituational,
		Difficulty:       model.DifficultyHard,
		ExpectedKeywords: []string{"metrics", "logs", "dependencies", "traffic", "hypothesis"},
	},
	{
		Text:             "If a customer reports an issue you cannot reproduce, what steps would you take?",
		Category:         model.CategorySituational,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"reproduce", "environment", "logs", "questions", "communicate"},
	},
	{
		Text:             "How would you decide between rewriting a problematic module and refactoring it incrementally?",
		Category:         model.CategorySituational,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"risk", "cost", "incremental", "tests", "value"},
	},
	{
		Text:             "Suppose you are asked to cut a feature's delivery time in half. How do you respond?",
		Category:         model.CategorySituational,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"scope", "tradeoff", "mvp", "communicate", "quality"},
	},
}

// technicalBank maps a skill key to its question pool. Keys match extracted
// technical skills by case-insensitive substring in either direction.
var technicalBank = map[string][]questionTemplate{
	"javascript": {
		{
			Text:             "Explain how closures work in JavaScript and give a practical use case.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"scope", "function", "variable", "lexical", "closure"},
		},
		{
			Text:             "What is the event loop in JavaScript and how does it handle asynchronous operations?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyHard,
			ExpectedKeywords: []string{"event loop", "callback", "queue", "async", "promise"},
		},
	},
	"typescript": {
		{
			Text:             "What advantages does TypeScript bring over plain JavaScript on a large codebase?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyEasy,
			ExpectedKeywords: []string{"types", "compile", "errors", "refactoring", "tooling"},
		},
		{
			Text:             "Explain the difference between interfaces and types in TypeScript and when you would use each.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"interface", "type", "union", "extend", "declaration"},
		},
	},
	"react": {
		{
			Text:             "Explain the difference between state and props in React and how data flows between components.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyEasy,
			ExpectedKeywords: []string{"state", "props", "component", "parent", "immutable"},
		},
		{
			Text:             "How do React hooks like useEffect work, and what are common pitfalls when using them?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"hooks", "useeffect", "dependencies", "render", "cleanup"},
		},
		{
			Text:             "How would you optimize the rendering performance of a large React application?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyHard,
			ExpectedKeywords: []string{"memo", "re-render", "virtualization", "key", "profiler"},
		},
	},
	"node.js": {
		{
			Text:             "How does Node.js handle concurrency despite being single-threaded?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"event loop", "non-blocking", "async", "worker", "i/o"},
		},
		{
			Text:             "How would you structure error handling in an Express/Node.js API?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"middleware", "try catch", "status code", "logging", "validation"},
		},
	},
	"python": {
		{
			Text:             "Explain the difference between a list and a tuple in Python and when to use each.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyEasy,
			ExpectedKeywords: []string{"mutable", "immutable", "list", "tuple", "performance"},
		},
		{
			Text:             "What is the Global Interpreter Lock and how does it affect multithreaded Python programs?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyHard,
			ExpectedKeywords: []string{"gil", "threads", "cpu-bound", "multiprocessing", "concurrency"},
		},
	},
	"java": {
		{
			Text:             "Explain the difference between an abstract class and an interface in Java.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyEasy,
			ExpectedKeywords: []string{"abstract", "interface", "implementation", "inheritance", "default"},
		},
		{
			Text:             "How does garbage collection work in the JVM, and how would you investigate a memory leak?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyHard,
			ExpectedKeywords: []string{"heap", "garbage collection", "references", "profiler", "leak"},
		},
	},
	"golang": {
		{
			Text:             "Explain how goroutines and channels work together in Go's concurrency model.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"goroutine", "channel", "concurrency", "select", "sync"},
		},
		{
			Text:             "How does error handling in Go differ from exception-based languages, and what patterns do you use?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"error", "return", "wrap", "explicit", "panic"},
		},
	},
	"sql": {
		{
			Text:             "Explain the different types of SQL joins with examples of when to use each.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyEasy,
			ExpectedKeywords: []string{"inner", "left", "join", "rows", "match"},
		},
		{
			Text:             "A query that used to be fast is now slow. How do you diagnose and fix it?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyHard,
			ExpectedKeywords: []string{"explain", "index", "query plan", "statistics", "optimize"},
		},
	},
	"postgresql": {
		{
			Text:             "What indexing strategies does PostgreSQL offer and how do you choose between them?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"btree", "index", "gin", "partial", "query"},
		},
		{
			Text:             "Explain transaction isolation levels in PostgreSQL and the anomalies each prevents.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyHard,
			ExpectedKeywords: []string{"isolation", "read committed", "serializable", "transaction", "lock"},
		},
	},
	"mongodb": {
		{
			Text:             "When would you choose MongoDB over a relational database, and what are the tradeoffs?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"document", "schema", "scaling", "joins", "flexibility"},
		},
		{
			Text:             "How do you design an efficient document schema in MongoDB for a one-to-many relationship?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"embed", "reference", "document", "query pattern", "index"},
		},
	},
	"redis": {
		{
			Text:             "What are common use cases for Redis and which data structures support them?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyEasy,
			ExpectedKeywords: []string{"cache", "hash", "sorted set", "ttl", "pub/sub"},
		},
	},
	"graphql": {
		{
			Text:             "Compare GraphQL with REST. What problems does GraphQL solve and what new ones does it introduce?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"overfetching", "schema", "resolvers", "n+1", "caching"},
		},
	},
	"rest api": {
		{
			Text:             "What makes an API RESTful, and how do you design resource URLs and status codes?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyEasy,
			ExpectedKeywords: []string{"resource", "http methods", "status code", "stateless", "versioning"},
		},
		{
			Text:             "How would you design pagination, filtering, and rate limiting for a public REST API?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"pagination", "cursor", "filtering", "rate limit", "headers"},
		},
	},
	"microservices": {
		{
			Text:             "What are the main challenges of moving from a monolith to microservices, and how do you mitigate them?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyHard,
			ExpectedKeywords: []string{"boundaries", "data", "network", "deployment", "observability"},
		},
		{
			Text:             "How do services communicate in a microservice architecture, and when do you pick async messaging over HTTP?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"sync", "async", "queue", "coupling", "latency"},
		},
	},
	"kafka": {
		{
			Text:             "Explain Kafka's partition and consumer-group model and how it affects ordering guarantees.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyHard,
			ExpectedKeywords: []string{"partition", "consumer group", "offset", "ordering", "throughput"},
		},
	},
	"aws": {
		{
			Text:             "Which AWS services would you use to deploy a typical web application, and why?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"ec2", "s3", "load balancer", "rds", "lambda"},
		},
		{
			Text:             "How do you design for high availability and fault tolerance on AWS?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyHard,
			ExpectedKeywords: []string{"availability zone", "auto scaling", "redundancy", "failover", "backup"},
		},
	},
	"docker": {
		{
			Text:             "Explain the difference between a Docker image and a container, and how layers affect image size.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyEasy,
			ExpectedKeywords: []string{"image", "container", "layers", "dockerfile", "build"},
		},
		{
			Text:             "How would you debug a container that works locally but crashes in production?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"logs", "environment", "resources", "image", "configuration"},
		},
	},
	"kubernetes": {
		{
			Text:             "Explain the roles of pods, deployments, and services in Kubernetes.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"pod", "deployment", "service", "replica", "scaling"},
		},
		{
			Text:             "How does Kubernetes handle a node failure, and what should applications do to cooperate?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyHard,
			ExpectedKeywords: []string{"reschedule", "health check", "readiness", "graceful", "state"},
		},
	},
	"ci/cd": {
		{
			Text:             "Describe a CI/CD pipeline you would set up for a web service, from commit to production.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"build", "tests", "deploy", "staging", "rollback"},
		},
	},
	"git": {
		{
			Text:             "Explain your branching workflow and how you resolve a complicated merge conflict.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyEasy,
			ExpectedKeywords: []string{"branch", "merge", "conflict", "rebase", "review"},
		},
	},
	"machine learning": {
		{
			Text:             "Explain the difference between supervised and unsupervised learning with examples.",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyEasy,
			ExpectedKeywords: []string{"supervised", "unsupervised", "labels", "clustering", "training"},
		},
		{
			Text:             "How do you detect and address overfitting in a machine learning model?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"overfitting", "validation", "regularization", "cross-validation", "generalization"},
		},
	},
	"testing": {
		{
			Text:             "How do you decide what to cover with unit tests versus integration tests?",
			Category:         model.CategoryTechnical,
			Difficulty:       model.DifficultyMedium,
			ExpectedKeywords: []string{"unit", "integration", "pyramid", "mocks", "coverage"},
		},
	},
}

// defaultTechnicalBank fills the technical quota when extracted skills run
// out before the quota is met.
var defaultTechnicalBank = []questionTemplate{
	{
		Text:             "Walk me through how you would design a URL shortening service.",
		Category:         model.CategoryTechnical,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"hash", "database", "scaling", "redirect", "collision"},
	},
	{
		Text:             "Explain the difference between processes and threads.",
		Category:         model.CategoryTechnical,
		Difficulty:       model.DifficultyEasy,
		ExpectedKeywords: []string{"process", "thread", "memory", "context switch", "shared"},
	},
	{
		Text:             "What happens when you type a URL into a browser and press enter?",
		Category:         model.CategoryTechnical,
		Difficulty:       model.DifficultyEasy,
		ExpectedKeywords: []string{"dns", "tcp", "http", "render", "server"},
	},
	{
		Text:             "How would you approach debugging a performance problem in an application you did not write?",
		Category:         model.CategoryTechnical,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"profiling", "metrics", "bottleneck", "measure", "hypothesis"},
	},
	{
		Text:             "Explain how caching improves performance and what strategies exist for cache invalidation.",
		Category:         model.CategoryTechnical,
		Difficulty:       model.DifficultyMedium,
		ExpectedKeywords: []string{"cache", "invalidation", "ttl", "consistency", "hit rate"},
	},
	{
		Text:             "Describe how you would secure a web application against common attacks.",
		Category:         model.CategoryTechnical,
		Difficulty:       model.DifficultyHard,
		ExpectedKeywords: []string{"injection", "xss", "authentication", "https", "validation"},
	},
	{
		Text:             "What tradeoffs do you consider when choosing between consistency and availability in a distributed system?",
		Category:         model.CategoryTechnical,
		Difficulty:       model.DifficultyHard,
		ExpectedKeywords: []string{"cap", "consistency", "availability", "partition", "tradeoff"},
	},
	{
		Text:             "How do you keep code maintainable as a project grows? Give concrete practices you follow.",
		Category:         model.CategoryTechnical,
		Difficulty:       model.DifficultyEasy,
		ExpectedKeywords: []string{"readability", "tests", "review", "refactoring", "modularity"},
	},
}

func cloneTemplates(src []questionTemplate) []questionTemplate {
	out := make([]questionTemplate, len(src))
	copy(out, src)
	return out
}

func behavioralQuestions() []questionTemplate {
	return cloneTemplates(behavioralBank)
}

func situationalQuestions() []questionTemplate {
	return cloneTemplates(situationalBank)
}

func defaultTechnicalQuestions() []questionTemplate {
	return cloneTemplates(defaultTechnicalBank)
}

// technicalQuestionsForSkill finds the bank pool best matching a skill via
// case-insensitive substring comparison in either direction.
func technicalQuestionsForSkill(skill string) []questionTemplate {
	lowered := strings.ToLower(skill)
	if pool, ok := technicalBank[lowered]; ok {
		return cloneTemplates(pool)
	}
	for key, pool := range technicalBank {
		if strings.Contains(key, lowered) || strings.Contains(lowered, key) {
			return cloneTemplates(pool)
		}
	}
	return nil
}
