package domain

// StagedFile is a file written to local temporary storage before being
// forwarded to the media store. Each staged file gets a globally-unique
// name at staging time, so concurrent requests never collide.
type StagedFile struct {
	Path         string
	OriginalName string
	ContentType  string
	SizeBytes    int64
}
