package domain

// File describes an object after it has been written to storage
type File struct {
	Key         string
	URL         string
	Name        string
	ContentType string
	Size        int64
}
