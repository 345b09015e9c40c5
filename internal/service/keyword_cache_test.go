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
	"trendwatch/internal/service/mocks"
)

type KeywordCacheTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store *mocks.MockKeywordStore
	kv    *mocks.MockKV
	cache *KeywordCache
}

func (s *KeywordCacheTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockKeywordStore(s.ctrl)
	s.kv = mocks.NewMockKV(s.ctrl)
	s.cache = NewKeywordCache(s.store, s.kv, 0, testLogger())
}

func (s *KeywordCacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestKeywordCacheTestSuite(t *testing.T) {
	suite.Run(t, new(KeywordCacheTestSuite))
}

var cachedKeywords = []domain.Keyword{
	{ID: "k1", Name: "Golang", Aliases: []string{"go lang"}, Tags: []string{}, Status: domain.KeywordActive},
}

func (s *KeywordCacheTestSuite) TestHitSkipsStore() {
	ctx := context.Background()
	body, err := json.Marshal(cachedKeywords)
	s.Require().NoError(err)

	s.kv.EXPECT().Get(ctx, "active_keywords").Return(string(body), true, nil)

	got, err := s.cache.ActiveKeywords(ctx)

	s.Require().NoError(err)
	s.Equal(cachedKeywords, got)
}

func (s *KeywordCacheTestSuite) TestMissLoadsAndStoresWithTTL() {
	ctx := context.Background()

	s.kv.EXPECT().Get(ctx, "active_keywords").Return("", false, nil)
	s.store.EXPECT().ListActive(ctx).Return(cachedKeywords, nil)
	s.kv.EXPECT().Set(ctx, "active_keywords", gomock.Any(), 300*time.Second).DoAndReturn(
		func(_ context.Context, _ string, value string, _ time.Duration) error {
			var decoded []domain.Keyword
			s.Require().NoError(json.Unmarshal([]byte(value), &decoded))
			s.Equal(cachedKeywords, decoded)
			return nil
		},
	)

	got, err := s.cache.ActiveKeywords(ctx)

	s.Require().NoError(err)
	s.Equal(cachedKeywords, got)
}

func (s *KeywordCacheTestSuite) TestCorruptEntryFallsThrough() {
	ctx := context.Background()

	s.kv.EXPECT().Get(ctx, "active_keywords").Return("[{", true, nil)
	s.store.EXPECT().ListActive(ctx).Return(nil, nil)
	s.kv.EXPECT().Set(ctx, "active_keywords", "[]", 300*time.Second).Return(nil)

	got, err := s.cache.ActiveKeywords(ctx)

	s.Require().NoError(err)
	s.Equal([]domain.Keyword{}, got)
}

func (s *KeywordCacheTestSuite) TestStoreErrorPropagates() {
	ctx := context.Background()

	s.kv.EXPECT().Get(ctx, "active_keywords").Return("", false, nil)
	s.store.EXPECT().ListActive(ctx).Return(nil, errors.New("db down"))

	_, err := s.cache.ActiveKeywords(ctx)

	s.ErrorContains(err, "list active keywords")
}

func (s *KeywordCacheTestSuite) TestInvalidate() {
	ctx := context.Background()
	s.kv.EXPECT().Delete(ctx, "active_keywords").Return(nil)

	s.NoError(s.cache.Invalidate(ctx))
}
