package entity

// DocType is the output-format tag of a project. It is fixed at creation and
// drives both the generation-prompt style and the export format for the
// project's whole lifetime.
type DocType string

const (
	// DocTypeWord produces a Word document (.docx).
	DocTypeWord DocType = "docx"
	// DocTypeSlides produces a PowerPoint presentation (.pptx).
	DocTypeSlides DocType = "pptx"
)

// IsSlides reports whether the project generates slide-style content.
// Unrecognized tags deliberately behave as document mode for prompting;
// export keys off DocTypeWord instead, so an unknown tag exports as slides.
func (t DocType) IsSlides() bool {
	return t == DocTypeSlides
}

// IsWord reports whether the project exports as a Word document.
func (t DocType) IsWord() bool {
	return t == DocTypeWord
}
