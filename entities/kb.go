package entities

import "time"

type Article struct {
	ArticleID uint   `gorm:"primaryKey" json:"article_id"`
	Title     string `json:"title"`
	SourceURL string `json:"source_url"`
	Topics    string `json:"topics"` // comma separated, e.g. "watering,mulch"
	CreatedAt time.Time
}

type ArticleChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunk_id"`
	ArticleID uint   `gorm:"index" json:"article_id"`
	Ord       int    `json:"ord"`
	Text      string `json:"text"`
	CreatedAt time.Time
}
