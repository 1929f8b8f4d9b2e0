// internal/app/system/limits/limits.go
package limits

// Request body size limits.
const (
	// MaxContactFormSize bounds a contact step without attachments.
	MaxContactFormSize = 64 << 10 // 64 KB

	// DefaultUploadBytes is the default size limit for one attachment;
	// upload_max_bytes overrides it.
	DefaultUploadBytes = 20 << 20 // 20 MB

	// MaxAttachments is how many files one submission may carry.
	MaxAttachments = 5

	// MaxFieldLength caps any single text field after trimming.
	MaxFieldLength = 5000
)
