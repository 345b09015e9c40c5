package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trendwatch/internal/domain"
	"trendwatch/internal/service/mocks"
)

type MatcherConsumerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	keywords *mocks.MockKeywordSource
	mentions *mocks.MockMentionStore
	consumer *MatcherConsumer
}

func (s *MatcherConsumerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.keywords = mocks.NewMockKeywordSource(s.ctrl)
	s.mentions = mocks.NewMockMentionStore(s.ctrl)
	s.consumer = NewMatcherConsumer(s.keywords, s.mentions, testLogger())
}

func (s *MatcherConsumerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMatcherConsumerTestSuite(t *testing.T) {
	suite.Run(t, new(MatcherConsumerTestSuite))
}

var consumerKeywords = []domain.Keyword{
	{ID: "k-go", Name: "Golang", Aliases: []string{"go lang"}},
	{ID: "k-pg", Name: "Postgres", Aliases: []string{"postgresql"}},
}

func event(id, title, content string) domain.IngestionEvent {
	at := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	return domain.IngestionEvent{
		Source:    domain.SourceFeed,
		SourceID:  id,
		Title:     strPtr(title),
		Content:   content,
		URL:       "https://example.com/" + id,
		CreatedAt: at,
		FetchedAt: at.Add(time.Minute),
	}
}

func (s *MatcherConsumerTestSuite) TestHandleBatch_NoKeywordsSkipsEverything() {
	ctx := context.Background()
	s.keywords.EXPECT().ActiveKeywords(ctx).Return([]domain.Keyword{}, nil)

	stats, err := s.consumer.HandleBatch(ctx, []domain.IngestionEvent{event("a", "golang", "")})

	s.Require().NoError(err)
	s.Equal(&domain.BatchStats{Received: 1, Skipped: 1}, stats)
}

func (s *MatcherConsumerTestSuite) TestHandleBatch_MatchesTitleAndContent() {
	ctx := context.Background()
	s.keywords.EXPECT().ActiveKeywords(ctx).Return(consumerKeywords, nil).Times(1)

	var inserted []*domain.Mention
	s.mentions.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.Mention) (bool, error) {
			inserted = append(inserted, m)
			return true, nil
		},
	).Times(2)

	events := []domain.IngestionEvent{
		event("a", "Why GOLANG wins", "and postgresql too"),
		event("b", "Cooking", "nothing relevant"),
		event("c", "Notes", "trying go lang today"),
	}
	stats, err := s.consumer.HandleBatch(ctx, events)

	s.Require().NoError(err)
	s.Equal(&domain.BatchStats{Received: 3, Matched: 2, Created: 2, Skipped: 1}, stats)
	s.Require().Len(inserted, 2)
	s.Equal([]string{"k-go", "k-pg"}, inserted[0].MatchedKeywords)
	s.Equal([]string{"k-go"}, inserted[1].MatchedKeywords)
	s.NotEmpty(inserted[0].ID)
	s.Equal("a", inserted[0].SourceID)
	s.Equal(domain.SourceFeed, inserted[0].Source)
	s.Equal(events[0].CreatedAt, inserted[0].CreatedAt)
}

func (s *MatcherConsumerTestSuite) TestHandleBatch_DuplicateIsNotAnError() {
	ctx := context.Background()
	s.keywords.EXPECT().ActiveKeywords(ctx).Return(consumerKeywords, nil)
	s.mentions.EXPECT().Insert(ctx, gomock.Any()).Return(false, nil)

	stats, err := s.consumer.HandleBatch(ctx, []domain.IngestionEvent{event("a", "golang", "")})

	s.Require().NoError(err)
	s.Equal(1, stats.Duplicates)
	s.Equal(0, stats.Created)
}

func (s *MatcherConsumerTestSuite) TestHandleBatch_StoreErrorFailsBatch() {
	ctx := context.Background()
	s.keywords.EXPECT().ActiveKeywords(ctx).Return(consumerKeywords, nil)
	s.mentions.EXPECT().Insert(ctx, gomock.Any()).Return(false, errors.New("connection reset"))

	_, err := s.consumer.HandleBatch(ctx, []domain.IngestionEvent{
		event("a", "golang", ""),
		event("b", "postgres", ""),
	})

	s.ErrorContains(err, "insert mention feed/a")
}

func (s *MatcherConsumerTestSuite) TestHandleBatch_KeywordLoadError() {
	ctx := context.Background()
	s.keywords.EXPECT().ActiveKeywords(ctx).Return(nil, errors.New("redis down"))

	_, err := s.consumer.HandleBatch(ctx, []domain.IngestionEvent{event("a", "golang", "")})

	s.ErrorContains(err, "load keywords")
}
