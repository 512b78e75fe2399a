package scrape

import (
	"context"
	"sync"
	"time"

	"finshorts/models"

	readability "github.com/go-shiori/go-readability"
	log "github.com/sirupsen/logrus"
)

const (
	defaultWorkers   = 5
	extractorTimeout = 30 * time.Second
)

// ExtractAll fetches the full text for every article using a fixed
// worker pool. Extraction failures are logged and leave the article's
// RSS summary as the only body text; they never fail the batch.
func ExtractAll(ctx context.Context, articles []models.SourceArticle, workers int) []models.SourceArticle {
	if workers <= 0 {
		workers = defaultWorkers
	}

	queue := make(chan int, len(articles))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-queue:
					if !ok {
						return
					}
					if err := extract(&articles[i]); err != nil {
						log.WithFields(log.Fields{
							"worker": id,
							"url":    articles[i].URL,
							"error":  err,
						}).Warn("Content extraction failed")
					}
				}
			}
		}(w)
	}

	for i := range articles {
		queue <- i
	}
	close(queue)
	wg.Wait()

	return articles
}

func extract(article *models.SourceArticle) error {
	if article.URL == "" {
		return nil
	}

	extracted, err := readability.FromURL(article.URL, extractorTimeout)
	if err != nil {
		return err
	}

	article.FullText = extracted.TextContent
	if article.ImageURL == "" {
		article.ImageURL = extracted.Image
	}
	if article.Summary == "" {
		article.Summary = extracted.Excerpt
	}

	return nil
}
