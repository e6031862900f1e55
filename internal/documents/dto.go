package documents

// DocumentResponse is the outward-facing representation of a stored document.
// Path is what the client puts in the matching documentos field of the submission.
type DocumentResponse struct {
	Category  string `json:"category"`
	Path      string `json:"path"`
	FileName  string `json:"fileName"`
	MimeType  string `json:"mimeType"`
	SizeBytes int64  `json:"sizeBytes"`
}

// CategoryResponse describes an upload slot.
type CategoryResponse struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		Category:  doc.Category,
		Path:      doc.Path,
		FileName:  doc.FileName,
		MimeType:  doc.MimeType,
		SizeBytes: doc.SizeBytes,
	}
}
