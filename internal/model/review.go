package model

// ReviewTimeLayout is the layout of Review.Date.
const ReviewTimeLayout = "2006-01-02 15:04:05"

// Review is a single place review as returned by GET /reviews.
type Review struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Date   string `json:"date"` // UTC, ReviewTimeLayout
}
