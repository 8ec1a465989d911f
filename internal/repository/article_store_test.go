package repository

import (
	"context"
	"testing"
	"time"

	"trendcheck/internal/domain/models"
)

func mkArticle(title, url string, publishedAt time.Time, tickers ...string) *models.Article {
	return &models.Article{
		ID:          models.ArticleID(url, publishedAt),
		Title:       title,
		URL:         url,
		Source:      "test",
		PublishedAt: publishedAt,
		Tickers:     tickers,
	}
}

func TestUpsertDeduplicates(t *testing.T) {
	store := NewInMemoryArticleStore(72*time.Hour, nil)
	now := time.Now()

	a := mkArticle("Apple beats expectations", "https://example.com/a", now, "AAPL")
	if err := store.Upsert(context.Background(), []*models.Article{a, a}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.Upsert(context.Background(), []*models.Article{a}); err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	if got := store.Len(); got != 1 {
		t.Fatalf("expected 1 article after duplicate upserts, got %d", got)
	}
}

func TestUpsertEvictsOutsideRetention(t *testing.T) {
	store := NewInMemoryArticleStore(72*time.Hour, nil)
	now := time.Now()

	old := mkArticle("Old news", "https://example.com/old", now.Add(-80*time.Hour))
	fresh := mkArticle("Fresh news", "https://example.com/fresh", now)
	if err := store.Upsert(context.Background(), []*models.Article{old, fresh}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.Query(context.Background(), &models.NewsQuery{Limit: 100})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Fresh news" {
		t.Fatalf("expected only the fresh article, got %d", len(got))
	}
}

func TestQueryFiltersAndSorts(t *testing.T) {
	store := NewInMemoryArticleStore(72*time.Hour, nil)
	now := time.Now()

	articles := []*models.Article{
		mkArticle("Apple raises guidance", "https://example.com/1", now.Add(-2*time.Hour), "AAPL"),
		mkArticle("AAPL supplier update", "https://example.com/2", now.Add(-1*time.Hour)),
		mkArticle("Tesla recall widens", "https://example.com/3", now, "TSLA"),
	}
	if err := store.Upsert(context.Background(), articles); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.Query(context.Background(), &models.NewsQuery{Tickers: []string{"aapl"}, Limit: 100})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 AAPL matches (ticker set + title), got %d", len(got))
	}
	if !got[0].PublishedAt.After(got[1].PublishedAt) {
		t.Fatal("expected newest-first ordering")
	}

	got, err = store.Query(context.Background(), &models.NewsQuery{Search: "recall", Limit: 100})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Tesla recall widens" {
		t.Fatalf("search filter mismatch: %v", got)
	}
}

func TestQueryClampsLimit(t *testing.T) {
	store := NewInMemoryArticleStore(72*time.Hour, nil)
	now := time.Now()
	for i := 0; i < 5; i++ {
		a := mkArticle("n", "https://example.com/n", now.Add(time.Duration(i)*time.Minute))
		if err := store.Upsert(context.Background(), []*models.Article{a}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	got, err := store.Query(context.Background(), &models.NewsQuery{Limit: -10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected limit clamped to 1, got %d results", len(got))
	}
}

func TestSourcesDistinctSorted(t *testing.T) {
	store := NewInMemoryArticleStore(72*time.Hour, nil)
	now := time.Now()

	a := mkArticle("a", "https://example.com/a", now)
	a.Source = "Reuters"
	b := mkArticle("b", "https://example.com/b", now)
	b.Source = "Google News"
	c := mkArticle("c", "https://example.com/c", now)
	c.Source = "Reuters"
	if err := store.Upsert(context.Background(), []*models.Article{a, b, c}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.Sources(context.Background())
	if err != nil {
		t.Fatalf("sources: %v", err)
	}
	if len(got) != 2 || got[0] != "Google News" || got[1] != "Reuters" {
		t.Fatalf("unexpected sources: %v", got)
	}
}

func TestNotifyFiresForNewArticlesOnly(t *testing.T) {
	store := NewInMemoryArticleStore(72*time.Hour, nil)
	now := time.Now()

	var seen []*models.Article
	store.SetNotify(func(fresh []*models.Article) { seen = append(seen, fresh...) })

	a := mkArticle("a", "https://example.com/a", now)
	if err := store.Upsert(context.Background(), []*models.Article{a}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.Upsert(context.Background(), []*models.Article{a}); err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("expected notify once for a new article, got %d", len(seen))
	}
}
