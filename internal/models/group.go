package models

// Group is a named collection of vocabulary words
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GroupWithCount is a group with its distinct word count
type GroupWithCount struct {
	Group
	WordCount int `json:"word_count"`
}
