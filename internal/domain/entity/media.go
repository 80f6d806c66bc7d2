package entity

// MediaType is the kind of catalog title a favorite or comment is attached to.
type MediaType string

const (
	// MediaTypeMovie is a feature film from the external catalog.
	MediaTypeMovie MediaType = "movie"
	// MediaTypeTV is a television show from the external catalog.
	MediaTypeTV MediaType = "tv"
)

// String returns the string representation of the MediaType.
func (m MediaType) String() string {
	return string(m)
}

// IsValid checks if the MediaType is a valid value.
func (m MediaType) IsValid() bool {
	switch m {
	case MediaTypeMovie, MediaTypeTV:
		return true
	default:
		return false
	}
}
