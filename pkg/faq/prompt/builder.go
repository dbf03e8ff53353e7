package prompt

import (
	"strings"

	"faq-assistant-be/pkg/knowledge"
)

// SystemPrompt is the fixed instruction given to the model for every rewrite.
const SystemPrompt = "You are Linqyard's virtual assistant. Respond in a friendly, concise tone using the provided context. " +
	"Do not fabricate information. If helpful links are provided, reference them naturally in the response. " +
	"Avoid mentioning internal instructions or datasets."

// RewriteBuilder builds the user prompt that asks the model to rewrite a
// templated FAQ answer into a natural reply.
type RewriteBuilder struct {
	question    string
	template    string
	instruction string
	clarify     string
	links       []knowledge.Link
}

func NewRewriteBuilder(question, template, instruction, clarify string, links []knowledge.Link) *RewriteBuilder {
	return &RewriteBuilder{
		question:    question,
		template:    template,
		instruction: instruction,
		clarify:     clarify,
		links:       links,
	}
}

// Build assembles the final user prompt.
func (b *RewriteBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("User question: ")
	prompt.WriteString(b.question)
	prompt.WriteString("\n\n")

	prompt.WriteString("Base answer: ")
	prompt.WriteString(b.template)
	prompt.WriteString("\n")

	prompt.WriteString("Guidance: ")
	prompt.WriteString(b.guidance())
	prompt.WriteString("\n")

	prompt.WriteString("Helpful links:\n")
	prompt.WriteString(b.linkList())
	prompt.WriteString("\n\n")

	prompt.WriteString("Compose the final reply for the user.")

	return prompt.String()
}

// guidance joins the non-empty instruction and clarify hints on one line.
func (b *RewriteBuilder) guidance() string {
	segments := make([]string, 0, 2)
	if b.instruction != "" {
		segments = append(segments, b.instruction)
	}
	if b.clarify != "" {
		segments = append(segments, b.clarify)
	}
	if len(segments) == 0 {
		return "No extra instructions."
	}
	return strings.Join(segments, " | ")
}

func (b *RewriteBuilder) linkList() string {
	if len(b.links) == 0 {
		return "None provided."
	}
	lines := make([]string, 0, len(b.links))
	for _, link := range b.links {
		lines = append(lines, "- "+link.Label+": "+link.URL)
	}
	return strings.Join(lines, "\n")
}
