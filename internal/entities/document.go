package entities

const (
	DocumentAccessPublic   = "public"
	DocumentAccessInternal = "internal"
)

type Document struct {
	ID          uint64
	Title       string
	Slug        string
	Description string
	Access      string
	// Относительный путь файла внутри медиа-хранилища, например "docs/x.txt".
	File string
}
