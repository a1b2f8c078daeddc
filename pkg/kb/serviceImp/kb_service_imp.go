package serviceImp

import (
	"sort"
	"strings"

	"garden/entities"
	"garden/pkg/kb/repository"
	"garden/pkg/kb/service"
)

type Svc struct{ r repository.KBRepository }

func New(r repository.KBRepository) service.KBService { return &Svc{r: r} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertArticle(title, topics, text, sourceURL string) (*entities.Article, int, error) {
	a := &entities.Article{Title: title, Topics: topics, SourceURL: sourceURL}
	if err := s.r.CreateArticle(a); err != nil {
		return nil, 0, err
	}
	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return a, 0, nil
	}
	rows := make([]entities.ArticleChunk, len(chs))
	for i := range chs {
		rows[i] = entities.ArticleChunk{ArticleID: a.ArticleID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return a, len(rows), nil
}

// Search is keyword scoring over chunk text plus article topics. Ties break on
// chunk id so repeated queries return the same order.
func (s *Svc) Search(query string, k int) ([]entities.ArticleChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}
	terms := tokenize(q)
	if len(terms) == 0 {
		return nil, nil
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	articles, err := s.r.ArticlesByIDs(uniqueArticleIDs(chunks))
	if err != nil {
		articles = map[uint]entities.Article{}
	}

	type scored struct {
		ch entities.ArticleChunk
		sc int
	}
	var list []scored
	for _, ch := range chunks {
		text := strings.ToLower(ch.Text)
		topics := strings.ToLower(articles[ch.ArticleID].Topics)
		sc := 0
		for _, t := range terms {
			if strings.Contains(text, t) {
				sc++
			}
			if strings.Contains(topics, t) {
				sc += 2 // topic tags are curated, weight them higher
			}
		}
		if sc > 0 {
			list = append(list, scored{ch: ch, sc: sc})
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].sc != list[j].sc {
			return list[i].sc > list[j].sc
		}
		return list[i].ch.ChunkID < list[j].ch.ChunkID
	})

	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.ArticleChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *Svc) ArticlesMeta(ids []uint) (map[uint]entities.Article, error) {
	return s.r.ArticlesByIDs(ids)
}

// Refs returns up to k distinct article references matching the query.
func (s *Svc) Refs(query string, k int) ([]entities.ArticleRef, error) {
	chunks, err := s.Search(query, k*3)
	if err != nil {
		return nil, err
	}
	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(chunks))
	for _, ch := range chunks {
		if _, ok := seen[ch.ArticleID]; !ok {
			seen[ch.ArticleID] = struct{}{}
			ids = append(ids, ch.ArticleID)
		}
	}
	meta, err := s.r.ArticlesByIDs(ids)
	if err != nil {
		return nil, err
	}
	var refs []entities.ArticleRef
	for _, id := range ids {
		if len(refs) >= k {
			break
		}
		if a, ok := meta[id]; ok {
			refs = append(refs, entities.ArticleRef{Title: a.Title, URL: a.SourceURL})
		}
	}
	return refs, nil
}

func tokenize(q string) []string {
	var out []string
	for _, t := range strings.Fields(strings.ToLower(q)) {
		t = strings.Trim(t, ".,;:!?\"'()")
		if len(t) >= 3 {
			out = append(out, t)
		}
	}
	return out
}

func uniqueArticleIDs(chunks []entities.ArticleChunk) []uint {
	seen := map[uint]struct{}{}
	var ids []uint
	for _, ch := range chunks {
		if _, ok := seen[ch.ArticleID]; !ok {
			seen[ch.ArticleID] = struct{}{}
			ids = append(ids, ch.ArticleID)
		}
	}
	return ids
}
