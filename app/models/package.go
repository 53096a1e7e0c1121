package models

import "strconv"

// PackageInfo carries the five marketing bullet lines shown on the pricing page.
type PackageInfo struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
	Line3 string `json:"line3"`
	Line4 string `json:"line4"`
	Line5 string `json:"line5"`
}

// Package is a content package students can subscribe to.
type Package struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	VideoLimit  *int        `json:"video_limit"` // nil = unlimited
	Position    int         `json:"position"`
	Status      string      `json:"status"`
	PackageInfo PackageInfo `json:"package_info"`
	CreatedAt   ApiTime     `json:"createdAt"`
}

func (p Package) IsActive() bool {
	return p.Status == StatusActive
}

// VideoLimitLabel renders the nullable limit for tables and exports.
func (p Package) VideoLimitLabel() string {
	if p.VideoLimit == nil {
		return "Unlimited"
	}
	return strconv.Itoa(*p.VideoLimit)
}
