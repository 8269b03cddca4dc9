package service

import "quill/internal/domain/entity"

// DocumentExporter converts a project's ordered sections into an office
// document byte stream. Sections must already be sorted by order index;
// the exporter renders them exactly as given.
type DocumentExporter interface {
	// ExportWord renders the sections as a Word document (.docx).
	ExportWord(title string, sections []*entity.DocumentSection) ([]byte, error)

	// ExportSlides renders the sections as a PowerPoint presentation (.pptx):
	// a title slide followed by one slide per section.
	ExportSlides(title string, sections []*entity.DocumentSection) ([]byte, error)
}
