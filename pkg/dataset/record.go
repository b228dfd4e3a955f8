// Package dataset decodes Gemini supervised-tuning JSONL datasets.
//
// Each line is one training example with an optional systemInstruction and an
// ordered list of contents. Only the first text part of each content entry is
// counted; multi-part entries are deliberately truncated to match how the
// dataset is billed during tuning.
package dataset

// Part is a single text fragment inside a content entry.
type Part struct {
	Text string `json:"text"`
}

// Content is one conversational turn in a training example.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// SystemInstruction is the optional instruction block of a training example.
type SystemInstruction struct {
	Parts []Part `json:"parts"`
}

// Record is one decoded line of the dataset.
type Record struct {
	SystemInstruction *SystemInstruction `json:"systemInstruction,omitempty"`
	Contents          []Content          `json:"contents"`
}

// Texts returns the strings to submit for token counting: the system
// instruction text when present and non-empty, followed by the first text
// part of each content entry that has parts.
func (r *Record) Texts() []string {
	var texts []string

	if r.SystemInstruction != nil && len(r.SystemInstruction.Parts) > 0 {
		if instruction := r.SystemInstruction.Parts[0].Text; instruction != "" {
			texts = append(texts, instruction)
		}
	}

	for _, content := range r.Contents {
		if len(content.Parts) > 0 {
			texts = append(texts, content.Parts[0].Text)
		}
	}

	return texts
}
