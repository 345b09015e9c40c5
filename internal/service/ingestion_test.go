package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trendwatch/internal/domain"
	"trendwatch/internal/feed"
	"trendwatch/internal/service/mocks"
)

const (
	feedURL = "https://example.com/feed.xml"
	t0Raw   = "Mon, 19 Jan 2026 10:00:00 +0000"
	t1Raw   = "Mon, 19 Jan 2026 11:00:00 +0000"
)

type IngestionServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	fetcher   *mocks.MockFeedFetcher
	kv        *mocks.MockKV
	publisher *mocks.MockPublisher

	service *IngestionService
	now     time.Time
}

func (s *IngestionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.fetcher = mocks.NewMockFeedFetcher(s.ctrl)
	s.kv = mocks.NewMockKV(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.now = time.Date(2026, 1, 19, 12, 0, 0, 0, time.UTC)
	s.service = NewIngestionService(s.fetcher, NewCheckpointStore(s.kv), s.publisher, testLogger())
	s.service.now = func() time.Time { return s.now }
}

func (s *IngestionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIngestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestionServiceTestSuite))
}

func twoPosts() *feed.Feed {
	return &feed.Feed{
		Title:       "Example",
		Description: "Example feed",
		Posts: []domain.FeedPost{
			{ID: "p0", Title: "First", Link: "https://example.com/0", PublishedAt: t0Raw, Content: "zero"},
			{ID: "p1", Title: "Second", Link: "https://example.com/1", Author: "Ann", PublishedAt: t1Raw, Content: "one"},
		},
	}
}

func (s *IngestionServiceTestSuite) expectCheckpoint(cp *domain.Checkpoint) {
	if cp == nil {
		s.kv.EXPECT().Get(gomock.Any(), "checkpoint:feed:f1").Return("", false, nil)
		return
	}
	body, err := json.Marshal(cp)
	s.Require().NoError(err)
	s.kv.EXPECT().Get(gomock.Any(), "checkpoint:feed:f1").Return(string(body), true, nil)
}

func (s *IngestionServiceTestSuite) captureSave(into *domain.Checkpoint) {
	s.kv.EXPECT().Set(gomock.Any(), "checkpoint:feed:f1", gomock.Any(), time.Duration(0)).DoAndReturn(
		func(_ context.Context, _ string, value string, _ time.Duration) error {
			return json.Unmarshal([]byte(value), into)
		},
	)
}

func (s *IngestionServiceTestSuite) TestProcessFeed_FirstRunEmitsEverything() {
	ctx := context.Background()

	s.expectCheckpoint(nil)
	s.fetcher.EXPECT().FetchFeed(ctx, feedURL, "").Return(twoPosts(), nil)

	var published []domain.IngestionEvent
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, events []domain.IngestionEvent) error {
			published = events
			return nil
		},
	)
	var saved domain.Checkpoint
	s.captureSave(&saved)

	res, err := s.service.ProcessFeed(ctx, "f1", feedURL, "")

	s.Require().NoError(err)
	s.Len(res.Events, 2)
	s.Len(published, 2)
	s.Equal(t1Raw, saved.LastPublishedAt)
	s.Equal(s.now.Format(time.RFC3339Nano), saved.LastFetchedAt)
	s.Require().NotNil(res.NewCheckpoint)
	s.Equal(saved, *res.NewCheckpoint)
	s.Equal("Example", res.FeedTitle)

	ev := res.Events[1]
	s.Equal(domain.SourceFeed, ev.Source)
	s.Equal("p1", ev.SourceID)
	s.Equal("Second", *ev.Title)
	s.Equal("Ann", *ev.Author)
	s.Nil(res.Events[0].Author)
	s.Equal(time.Date(2026, 1, 19, 11, 0, 0, 0, time.UTC), ev.CreatedAt)
	s.Equal(s.now, ev.FetchedAt)
	s.Equal(map[string]string{"feedUrl": feedURL, "feedId": "f1"}, ev.Metadata)
}

func (s *IngestionServiceTestSuite) TestProcessFeed_OnlyItemsAfterCheckpoint() {
	ctx := context.Background()

	s.expectCheckpoint(&domain.Checkpoint{LastPublishedAt: t0Raw})
	s.fetcher.EXPECT().FetchFeed(ctx, feedURL, "bot/1.0").Return(twoPosts(), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Len(1)).Return(nil)
	var saved domain.Checkpoint
	s.captureSave(&saved)

	res, err := s.service.ProcessFeed(ctx, "f1", feedURL, "bot/1.0")

	s.Require().NoError(err)
	s.Require().Len(res.Events, 1)
	s.Equal("p1", res.Events[0].SourceID)
	s.Equal(t1Raw, saved.LastPublishedAt)
}

func (s *IngestionServiceTestSuite) TestProcessFeed_NothingNewKeepsCheckpoint() {
	ctx := context.Background()

	s.expectCheckpoint(&domain.Checkpoint{LastPublishedAt: t1Raw})
	s.fetcher.EXPECT().FetchFeed(ctx, feedURL, "").Return(twoPosts(), nil)

	res, err := s.service.ProcessFeed(ctx, "f1", feedURL, "")

	s.Require().NoError(err)
	s.Empty(res.Events)
	s.Nil(res.NewCheckpoint)
}

func (s *IngestionServiceTestSuite) TestProcessFeed_PublishFailureLeavesCheckpoint() {
	ctx := context.Background()

	s.expectCheckpoint(nil)
	s.fetcher.EXPECT().FetchFeed(ctx, feedURL, "").Return(twoPosts(), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("channel closed"))

	res, err := s.service.ProcessFeed(ctx, "f1", feedURL, "")

	s.Nil(res)
	s.ErrorContains(err, "publish events")
}

func (s *IngestionServiceTestSuite) TestProcessFeed_FetchErrorPropagates() {
	ctx := context.Background()

	s.expectCheckpoint(nil)
	s.fetcher.EXPECT().FetchFeed(ctx, feedURL, "").Return(nil, errors.New("failed to fetch feed: 404 Not Found"))

	_, err := s.service.ProcessFeed(ctx, "f1", feedURL, "")

	s.EqualError(err, "failed to fetch feed: 404 Not Found")
}

func (s *IngestionServiceTestSuite) TestProcessFeed_UnparseableDateUsesFetchTime() {
	ctx := context.Background()

	f := twoPosts()
	f.Posts[0].PublishedAt = "sometime last week"

	s.expectCheckpoint(nil)
	s.fetcher.EXPECT().FetchFeed(ctx, feedURL, "").Return(f, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Len(2)).Return(nil)
	var saved domain.Checkpoint
	s.captureSave(&saved)

	res, err := s.service.ProcessFeed(ctx, "f1", feedURL, "")

	s.Require().NoError(err)
	s.Equal(s.now, res.Events[0].CreatedAt)
	s.Equal(t1Raw, saved.LastPublishedAt)
}

func (s *IngestionServiceTestSuite) TestProcessFeed_NoParseableDateKeepsCheckpoint() {
	ctx := context.Background()

	f := twoPosts()
	f.Posts[0].PublishedAt = "sometime last week"
	f.Posts[1].PublishedAt = ""

	s.expectCheckpoint(nil)
	s.fetcher.EXPECT().FetchFeed(ctx, feedURL, "").Return(f, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Len(2)).Return(nil)
	s.kv.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := s.service.ProcessFeed(ctx, "f1", feedURL, "")

	s.Require().NoError(err)
	s.Len(res.Events, 2)
	s.Nil(res.NewCheckpoint)
}

func (s *IngestionServiceTestSuite) TestProcessFeed_UnparseableCheckpointNotRewrittenWithoutDates() {
	ctx := context.Background()

	f := twoPosts()
	f.Posts[0].PublishedAt = "n/a"
	f.Posts[1].PublishedAt = "n/a"

	s.expectCheckpoint(&domain.Checkpoint{LastPublishedAt: "garbage"})
	s.fetcher.EXPECT().FetchFeed(ctx, feedURL, "").Return(f, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Len(2)).Return(nil)
	s.kv.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := s.service.ProcessFeed(ctx, "f1", feedURL, "")

	s.Require().NoError(err)
	s.Nil(res.NewCheckpoint)
}

func (s *IngestionServiceTestSuite) TestProcessFeed_UnparseableCheckpointTreatsAllAsNew() {
	ctx := context.Background()

	s.expectCheckpoint(&domain.Checkpoint{LastPublishedAt: "garbage"})
	s.fetcher.EXPECT().FetchFeed(ctx, feedURL, "").Return(twoPosts(), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Len(2)).Return(nil)
	var saved domain.Checkpoint
	s.captureSave(&saved)

	res, err := s.service.ProcessFeed(ctx, "f1", feedURL, "")

	s.Require().NoError(err)
	s.Len(res.Events, 2)
}

func (s *IngestionServiceTestSuite) TestProcessFeed_NilSinkStillCheckpoints() {
	ctx := context.Background()
	svc := NewIngestionService(s.fetcher, NewCheckpointStore(s.kv), nil, testLogger())
	svc.now = func() time.Time { return s.now }

	s.expectCheckpoint(nil)
	s.fetcher.EXPECT().FetchFeed(ctx, feedURL, "").Return(twoPosts(), nil)
	var saved domain.Checkpoint
	s.captureSave(&saved)

	res, err := svc.ProcessFeed(ctx, "f1", feedURL, "")

	s.Require().NoError(err)
	s.Len(res.Events, 2)
	s.Equal(t1Raw, saved.LastPublishedAt)
}
