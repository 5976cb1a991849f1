package tutor

import "fmt"

// Prompt templates for the tutoring operations. Each asks for JSON only so
// the response can be schema-checked before use.

func quizSystemPrompt(topic string, level, count int) string {
	return fmt.Sprintf(`You are a Korean language teacher creating quiz questions for Malaysian learners.
Create %d quiz questions about "%s" for level %d Korean learners.
Each question should have:
- question: The question text
- options: Array of 4 options
- correctAnswer: Index of correct answer (0-3)
- explanation: Brief explanation of the answer
- type: "multiple-choice" or "fill-in-blank"

Respond ONLY with a valid JSON array, no prose and no markdown fences.`, count, topic, level)
}

func quizUserPrompt(topic string, level int) string {
	return fmt.Sprintf("Create quiz questions for topic: %s, level: %d", topic, level)
}

func lessonSystemPrompt(level int, skill Skill, topic string) string {
	return fmt.Sprintf(`Create a personalized Korean lesson for level %d learners focusing on %s.
Topic: %s

Include:
1. Lesson title
2. Structured content with examples
3. Interactive exercises
4. Key vocabulary with meanings

Respond ONLY with a valid JSON object with keys "title", "content", "exercises", "vocabulary". No prose and no markdown fences.`, level, skill, topic)
}

func lessonUserPrompt(topic string, skill Skill) string {
	return fmt.Sprintf("Create a lesson about %s for %s practice", topic, skill)
}

func analyzeTextSystemPrompt() string {
	return `You are a Korean language expert analyzing text for Malaysian learners.
Analyze the Korean text and provide:
1. Key vocabulary words with meanings
2. Grammar patterns used
3. Cultural context and notes
4. Difficulty level (1-6)

Respond ONLY with a valid JSON object with keys "vocabulary", "grammar", "culturalNotes", "difficulty". No prose and no markdown fences.`
}

func analyzeTextUserPrompt(text string, level int) string {
	return fmt.Sprintf("Analyze this Korean text for level %d learners:\n\n%s", level, text)
}

func analyzeContentSystemPrompt(contentType ContentType) string {
	return fmt.Sprintf(`You are a Korean culture expert analyzing %s content for language learners.
Extract:
1. Key Korean vocabulary with English meanings
2. Cultural insights and context
3. Learning points for Malaysian students

Respond ONLY with a valid JSON object with keys "vocabulary", "culturalInsights", "learningPoints". No prose and no markdown fences.`, contentType)
}

func analyzeContentUserPrompt(content string, contentType ContentType) string {
	return fmt.Sprintf("Analyze this %s content:\n\n%s", contentType, content)
}

// partnerSystemPrompts keys conversation persona to its system prompt. The
// Korean role names anchor each persona's register.
func partnerSystemPrompt(persona Persona, level int, topic string) string {
	templates := map[Persona]string{
		PersonaFriend: `You are a casual Korean friend (친구) who speaks informally and uses current slang.
You're encouraging and relaxed. User is level %d. Topic: %s`,
		PersonaTeacher: `You are a respectful Korean teacher (선생님) who speaks formally and educates patiently.
You explain grammar and culture clearly. User is level %d. Topic: %s`,
		PersonaColleague: `You are a professional Korean colleague (직장 동료) who speaks business Korean.
You're collaborative and goal-oriented. User is level %d. Topic: %s`,
		PersonaFamily: `You are a warm Korean family member (가족) who speaks intimately and emotionally.
You're caring and supportive. User is level %d. Topic: %s`,
		PersonaService: `You are a polite Korean service worker (서비스 직원) who helps customers professionally.
You're helpful and transaction-focused. User is level %d. Topic: %s`,
	}
	return fmt.Sprintf(templates[persona], level, topic)
}

func partnerUserPrompt(topic string) string {
	return fmt.Sprintf("Start a conversation about %s", topic)
}
