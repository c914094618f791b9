package photos

// PhotoDTO mirrors one element of the /photos collection payload.
type PhotoDTO struct {
	ID           int    `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	URL          string `json:"url" yaml:"url"`
	ThumbnailURL string `json:"thumbnailUrl" yaml:"thumbnailUrl"`
}

// PhotoDetailDTO mirrors the /photos/{id} payload.
type PhotoDetailDTO struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Photo is a list row as the UI sees it.
type Photo struct {
	ID           int
	Title        string
	URL          string
	ThumbnailURL string
}

// PhotoDetail is the single-photo view value.
type PhotoDetail struct {
	ID           int
	Title        string
	URL          string
	ThumbnailURL string
}

// Mapped copies the wire record into a domain value.
func (d PhotoDTO) Mapped() Photo {
	return Photo{ID: d.ID, Title: d.Title, URL: d.URL, ThumbnailURL: d.ThumbnailURL}
}

func (d PhotoDetailDTO) Mapped() PhotoDetail {
	return PhotoDetail{ID: d.ID, Title: d.Title, URL: d.URL, ThumbnailURL: d.ThumbnailURL}
}

// DTO converts a domain photo back to its wire shape. The fixture server
// uses it to answer with exactly what the client decodes.
func (p Photo) DTO() PhotoDTO {
	return PhotoDTO{ID: p.ID, Title: p.Title, URL: p.URL, ThumbnailURL: p.ThumbnailURL}
}
