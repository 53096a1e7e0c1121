package models

// Video is a piece of package content; the file itself lives wherever
// video_url points, the panel only manages the record.
type Video struct {
	ID        string  `json:"id"`
	PackageID string  `json:"package_id"`
	VideoURL  string  `json:"video_url"`
	Status    string  `json:"status"`
	CreatedAt ApiTime `json:"createdAt"`
}

func (v Video) IsActive() bool {
	return v.Status == StatusActive
}
