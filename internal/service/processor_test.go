package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trendwatch/internal/domain"
	"trendwatch/internal/feed"
	"trendwatch/internal/service/mocks"
)

type FeedProcessorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	sources   *mocks.MockSourceStore
	fetcher   *mocks.MockFeedFetcher
	kv        *mocks.MockKV
	publisher *mocks.MockPublisher

	processor *FeedProcessor
	now       time.Time
}

func (s *FeedProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.sources = mocks.NewMockSourceStore(s.ctrl)
	s.fetcher = mocks.NewMockFeedFetcher(s.ctrl)
	s.kv = mocks.NewMockKV(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.now = time.Date(2026, 1, 19, 12, 0, 0, 0, time.UTC)
	ingestion := NewIngestionService(s.fetcher, NewCheckpointStore(s.kv), s.publisher, testLogger())
	ingestion.now = func() time.Time { return s.now }
	s.processor = NewFeedProcessor(s.sources, ingestion, testLogger())
	s.processor.now = func() time.Time { return s.now }
}

func (s *FeedProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(FeedProcessorTestSuite))
}

func feedSource(id, url string) domain.SourceConfig {
	return domain.SourceConfig{
		ID:      id,
		Type:    domain.SourceTypeFeed,
		Enabled: true,
		Config:  domain.SourceSettings{URL: url, Name: "Feed " + id},
	}
}

func (s *FeedProcessorTestSuite) TestProcessAllSources_FailureIsIsolated() {
	ctx := context.Background()
	bad := feedSource("bad", "https://bad.example.com/rss")
	good := feedSource("good", "https://good.example.com/rss")
	bad.ConsecutiveFailures = 2

	s.sources.EXPECT().ListEnabled(ctx, domain.SourceTypeFeed).Return([]domain.SourceConfig{bad, good}, nil)

	s.kv.EXPECT().Get(ctx, "checkpoint:feed:bad").Return("", false, nil)
	s.fetcher.EXPECT().FetchFeed(ctx, bad.Config.URL, "").Return(nil, errors.New("failed to fetch feed: 404 Not Found"))
	s.sources.EXPECT().SaveRunState(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, src *domain.SourceConfig) error {
			s.Equal("bad", src.ID)
			s.Equal(3, src.ConsecutiveFailures)
			s.Equal("failed to fetch feed: 404 Not Found", *src.LastErrorMessage)
			s.True(src.Enabled)
			return nil
		},
	)

	s.kv.EXPECT().Get(ctx, "checkpoint:feed:good").Return("", false, nil)
	s.fetcher.EXPECT().FetchFeed(ctx, good.Config.URL, "").Return(&feed.Feed{
		Title: "Good feed",
		Posts: []domain.FeedPost{{ID: "g1", Title: "hello", PublishedAt: t0Raw}},
	}, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Len(1)).Return(nil)
	s.kv.EXPECT().Set(ctx, "checkpoint:feed:good", gomock.Any(), time.Duration(0)).Return(nil)
	s.sources.EXPECT().SaveRunState(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, src *domain.SourceConfig) error {
			s.Equal("good", src.ID)
			s.Equal(0, src.ConsecutiveFailures)
			s.Equal(s.now, *src.LastSuccessAt)
			s.Equal("Good feed", *src.Config.FeedTitle)
			return nil
		},
	)

	out, err := s.processor.ProcessAllSources(ctx)

	s.Require().NoError(err)
	s.Require().Len(out.Results, 2)
	s.Equal("failed to fetch feed: 404 Not Found", out.Results[0].Error)
	s.Equal("", out.Results[1].Error)
	s.Equal(1, out.Results[1].EventsCount)
	s.Equal("Feed good", out.Results[1].SourceName)
	s.Len(out.Events, 1)
}

func (s *FeedProcessorTestSuite) TestProcessAllSources_TenthFailureDisables() {
	ctx := context.Background()
	src := feedSource("flaky", "https://flaky.example.com/rss")
	src.ConsecutiveFailures = domain.MaxConsecutiveFailures - 1

	s.sources.EXPECT().ListEnabled(ctx, domain.SourceTypeFeed).Return([]domain.SourceConfig{src}, nil)
	s.kv.EXPECT().Get(ctx, "checkpoint:feed:flaky").Return("", false, nil)
	s.fetcher.EXPECT().FetchFeed(ctx, src.Config.URL, "").Return(nil, errors.New("timeout"))
	s.sources.EXPECT().SaveRunState(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, saved *domain.SourceConfig) error {
			s.Equal(domain.MaxConsecutiveFailures, saved.ConsecutiveFailures)
			s.False(saved.Enabled)
			return nil
		},
	)

	out, err := s.processor.ProcessAllSources(ctx)

	s.Require().NoError(err)
	s.Equal("timeout", out.Results[0].Error)
}

func (s *FeedProcessorTestSuite) TestProcessAllSources_ListError() {
	ctx := context.Background()
	s.sources.EXPECT().ListEnabled(ctx, domain.SourceTypeFeed).Return(nil, errors.New("db down"))

	_, err := s.processor.ProcessAllSources(ctx)

	s.ErrorContains(err, "list enabled sources")
}

func (s *FeedProcessorTestSuite) TestProcessSource_NotFound() {
	ctx := context.Background()
	s.sources.EXPECT().Get(ctx, "missing").Return(nil, domain.ErrNotFound)

	res := s.processor.ProcessSource(ctx, "missing")

	s.Equal(domain.ProcessResult{SourceID: "missing", Error: "Source not found"}, res)
}

func (s *FeedProcessorTestSuite) TestProcessSource_Disabled() {
	ctx := context.Background()
	src := feedSource("off", "https://off.example.com/rss")
	src.Enabled = false
	s.sources.EXPECT().Get(ctx, "off").Return(&src, nil)

	res := s.processor.ProcessSource(ctx, "off")

	s.Equal("Source is disabled", res.Error)
	s.Equal(0, res.EventsCount)
}

func (s *FeedProcessorTestSuite) TestProcessSource_CustomUserAgent() {
	ctx := context.Background()
	src := feedSource("ua", "https://ua.example.com/rss")
	src.Config.CustomUserAgent = strPtr("custom/2.0")
	s.sources.EXPECT().Get(ctx, "ua").Return(&src, nil)
	s.kv.EXPECT().Get(ctx, "checkpoint:feed:ua").Return("", false, nil)
	s.fetcher.EXPECT().FetchFeed(ctx, src.Config.URL, "custom/2.0").Return(&feed.Feed{}, nil)
	s.sources.EXPECT().SaveRunState(ctx, gomock.Any()).Return(nil)

	res := s.processor.ProcessSource(ctx, "ua")

	s.Equal("", res.Error)
	s.Nil(res.Checkpoint)
}
