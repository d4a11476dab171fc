package models

// Image is the metadata of a file stored at the external image host.
type Image struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
	Type string `json:"type,omitempty"`
	Size string `json:"size,omitempty"`
}

// IsEmpty reports whether no image has been attached.
func (i Image) IsEmpty() bool {
	return i.URL == ""
}

// ImageFile is an in-memory upload received from a multipart form.
type ImageFile struct {
	// Name is the original file name reported by the client.
	Name string

	// ContentType is the MIME type from the part header.
	ContentType string

	// Size is the payload length in bytes.
	Size int64

	Data []byte
}
