package documents

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid document")
	ErrNotFound     = errors.New("document not found")
)

// Category is one of the document slots of the application form.
type Category struct {
	Name       string
	Prefix     string
	Extensions []string
}

var (
	imageOrPDF = []string{"pdf", "jpg", "jpeg", "png"}

	categories = []Category{
		{Name: "contrato_social", Prefix: "contrato_", Extensions: imageOrPDF},
		{Name: "cartao_cnpj", Prefix: "cnpj_", Extensions: imageOrPDF},
		{Name: "comprovante_endereco", Prefix: "endereco_", Extensions: imageOrPDF},
		{Name: "faturamento_ultimos", Prefix: "faturamento_", Extensions: []string{"zip", "pdf"}},
	}
)

// Categories lists the known document categories in form order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory finds a category by name.
func LookupCategory(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Allows reports whether fileName has one of the category's extensions.
func (c Category) Allows(fileName string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Document is a stored upload.
type Document struct {
	Category  string
	FileName  string
	Path      string
	MimeType  string
	SizeBytes int64
}
