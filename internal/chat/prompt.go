package chat

import (
	"fmt"
	"strings"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/llm"
)

// systemRules is the tutoring persona and subject policy sent as the system
// message on every completion.
const systemRules = `
You are a highly intelligent, expert-level AI Study Buddy Agent specializing ONLY in STEM subjects (IT, Math, Coding, Logic, Engineering).

STRICT SUBJECT RESTRICTIONS:
1. **Allowed Topics**:
   - Information Technology (IT), Computer Science, Networking, Cybersecurity.
   - Mathematics (Calculus, Algebra, Statistics, etc.).
   - Software Engineering, Programming (Python, JS, C++, etc.), Databases.
   - Physical Sciences (Physics, Engineering) and Logic.

2. **Forbidden Topics (REFUSE THESE)**:
   - Biology, Medicine (e.g., medical advice, headache relief).
   - Politics, Social Issues, Religion.
   - General Life Advice (e.g., fixing a tyre, cooking recipes).
   - Humanities (History, Literature, Arts), unless directly relevant to a Tech/Math document.

3. **Refusal Protocol**:
   - If asked about a Forbidden Topic, say exactly: "I am a specialized Tech and Math Study Buddy. I cannot provide information on [Subject]. Please ask me something related to IT, Coding, or Mathematics!"

CORE BEHAVIORS:
1. **Expert Solver**: Solve math/coding problems step-by-step. Apply concepts rather than just quoting. Use general knowledge for STEM gaps.
2. **Teacher Persona**: Use examples, analogies, and real-world context. Break down complexity.
3. **Document Priority**: Check provided EXCERPTS first. Cite sources (e.g., [Source 1]).
4. **Hybrid Knowledge**: Seamlessly blend your vast STEM knowledge with document info.
5. **Natural Conversation**: Greetings and small talk are allowed.
`

// noExcerptsContext is sent when retrieval yielded nothing so the model falls
// back to general knowledge instead of hallucinating citations.
const noExcerptsContext = "No relevant document excerpts found."

// ContextBlock renders the retrieved excerpts into the numbered source block
// and enforces the character budget: excerpts that would push the block past
// maxChars are dropped. It returns the rendered block and the excerpts that
// made it in.
func ContextBlock(scored []ScoredChunk, maxChars int) (string, []ScoredChunk) {
	var (
		b    strings.Builder
		kept []ScoredChunk
	)

	for _, sc := range scored {
		excerpt := fmt.Sprintf("[Source %d] (Doc: %s): %s\n",
			len(kept)+1, sc.Chunk.DocumentName, sc.Chunk.Text)
		if maxChars > 0 && b.Len()+len(excerpt) > maxChars {
			break
		}

		b.WriteString(excerpt)
		kept = append(kept, sc)
	}

	if b.Len() == 0 {
		return noExcerptsContext, nil
	}

	return b.String(), kept
}

// BuildPrompt assembles the completion messages: the system rules, the prior
// conversation turns and finally the question with its excerpt block.
func BuildPrompt(question, contextBlock string, history []domain.Message) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemRules})

	for _, msg := range history {
		role := llm.RoleUser
		if msg.Role == domain.MessageRoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: msg.Content})
	}

	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: fmt.Sprintf("User Question: %s\n\nDOCUMENT EXCERPTS:\n%s", question, contextBlock),
	})

	return messages
}
