package ai

import (
	"fmt"
	"strings"
	"text/template"
)

// SystemPrompt is shared by every generation stage.
const SystemPrompt = `You are a creative professional content creation assistant that specializes in writing blog articles on various topics. You always answer with a single JSON object and no preamble or explanation.`

// Response keys the stages expect from the model.
const (
	KeyTitleEN   = "title_en"
	KeySummaryEN = "summary_en"
	KeyBodyEN    = "body_en"
	KeyTags      = "tags"
)

// Stage templates. Placeholders are looked up in the render data with
// missingkey=error: referencing a field the caller did not supply is a
// programming error, not something to paper over at runtime.
var (
	TitleTemplate = mustTemplate("title", `You will be given an instruction that decides the topic of the article. Generate an appropriate title based on the topic.
The instruction may be in English or Indonesian, but the generated title must be in English.

<instructions>
1. The title must be less than 60 characters
2. The title must be one sentence
3. The title must catch readers' attention
4. Return the title as JSON with the single key 'title_en' and no preamble or explanation
</instructions>

Title to be generated: {{.instruction}}`)

	SummaryTemplate = mustTemplate("summary", `You will be given the title of an article. Generate an appropriate summary based on the title.

<instructions>
1. The summary must be related to the title
2. The summary should pique readers' curiosity or interest
3. Write in active voice; use the passive voice only in rare cases
4. The summary should be clear and concise
5. The summary should be 5 to 8 sentences long and approximately 100 words
6. Return the summary as JSON with the single key 'summary_en' and no preamble or explanation
</instructions>

Title of the article: {{.title_en}}`)

	BodyTemplate = mustTemplate("body", `You will be given the title and summary of an article. Generate appropriate body paragraphs based on the title and summary.

<instructions>
1. Start with the body content without repeating the title
2. Elaborate on the title and expand the points in the summary, using specific, recent, and relatable examples or events to engage the reader
3. The body should be around 1000 words long
4. Use everyday language for accessibility; explain technical terms on first reference
5. Bullet points are allowed in the body
6. Keep the subject and verb close together for clarity
7. Structure the body using markdown headings and paragraphs to maintain interest throughout
8. Write in active voice, using passive voice only when absolutely necessary
9. Each paragraph needs a clear topic sentence and a smooth transition to the next point
10. Return the body as JSON with the single key 'body_en' and no preamble or explanation
</instructions>

Title of the article: {{.title_en}}
Summary of the article: {{.summary_en}}`)

	TagsTemplate = mustTemplate("tags", `You will be given the title and summary of an article in Indonesian. Generate relevant and effective tags for the article in Indonesian.

<instructions>
1. The tags must encapsulate the content and key points of the article
2. Use concise words or phrases that capture the essence of the article
3. Use general tags to improve the article's reachability and relevance
4. Each tag must be one or two words long
5. Generate the most fitting tags
6. Return the tags as JSON with the single key 'tags' holding a list of strings and no preamble or explanation
</instructions>

Title of the article: {{.title_id}}
Points of the article: {{.summary_id}}`)
)

func mustTemplate(name, text string) *template.Template {
	return template.Must(
		template.New(name).Option("missingkey=error").Parse(text),
	)
}

// RenderPrompt substitutes the named placeholders of tmpl with values from
// data. A placeholder absent from data fails the render.
func RenderPrompt(tmpl *template.Template, data map[string]string) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render prompt %q: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
