package resumes

import "time"

// Resume is the text extracted from the most recent upload of a session.
type Resume struct {
	SessionID  string
	Text       string
	FileName   string
	UploadedAt time.Time
}
