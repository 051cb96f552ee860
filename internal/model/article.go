package model

import "time"

// Article is the record produced by one generation run. Fields are
// populated stage by stage and never mutated once set: the title stage
// fills TitleEN/SeoEN, then summary, body, the Indonesian translations,
// and finally Tags.
type Article struct {
	ID          int64     `json:"id,string"`
	Instruction string    `json:"instruction"`
	TitleEN     string    `json:"title_en"`
	SeoEN       string    `json:"seo_en"`
	SummaryEN   string    `json:"summary_en"`
	BodyEN      string    `json:"body_en"`
	TitleID     string    `json:"title_id"`
	SeoID       string    `json:"seo_id"`
	SummaryID   string    `json:"summary_id"`
	BodyID      string    `json:"body_id"`
	Tags        []string  `json:"tags"`
	BodyHTMLEN  string    `json:"body_html_en,omitempty"`
	BodyHTMLID  string    `json:"body_html_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
