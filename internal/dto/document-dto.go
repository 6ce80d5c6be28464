package dto

type DocumentDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Access      string `json:"access"`
	File        string `json:"file"`
}

// CreateDocumentDTO — метаданные загружаемого документа; сам файл идёт
// отдельной частью multipart-формы.
type CreateDocumentDTO struct {
	Title       string `json:"title" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"required,max=255"`
	Description string `json:"description"`
	Access      string `json:"access" validate:"required,oneof=public internal"`
}
