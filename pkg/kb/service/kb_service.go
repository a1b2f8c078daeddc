package service

import "garden/entities"

type KBService interface {
	UpsertArticle(title, topics, text, sourceURL string) (*entities.Article, int, error)
	Search(query string, k int) ([]entities.ArticleChunk, error)
	ArticlesMeta(ids []uint) (map[uint]entities.Article, error)
	Refs(query string, k int) ([]entities.ArticleRef, error)
}
