package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceConfig_AutoDisableAfterConsecutiveFailures(t *testing.T) {
	src := &SourceConfig{ID: "s1", Type: SourceTypeFeed, Enabled: true}
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	for i := 1; i < MaxConsecutiveFailures; i++ {
		src.RecordFailure(now, "boom")
		assert.True(t, src.Enabled, "failure %d must not disable", i)
	}

	src.RecordFailure(now, "boom")
	assert.False(t, src.Enabled)
	assert.Equal(t, MaxConsecutiveFailures, src.ConsecutiveFailures)
	require.NotNil(t, src.LastErrorMessage)
	assert.Equal(t, "boom", *src.LastErrorMessage)
	assert.Equal(t, now, *src.LastErrorAt)
}

func TestSourceConfig_SuccessResetsFailures(t *testing.T) {
	src := &SourceConfig{ID: "s1", Enabled: true}
	failedAt := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		src.RecordFailure(failedAt, "timeout")
	}

	okAt := failedAt.Add(time.Hour)
	src.RecordSuccess(okAt)

	assert.Equal(t, 0, src.ConsecutiveFailures)
	assert.Nil(t, src.LastErrorAt)
	assert.Nil(t, src.LastErrorMessage)
	assert.Equal(t, okAt, *src.LastSuccessAt)
	assert.Equal(t, okAt, *src.LastFetchAt)
	assert.True(t, src.Enabled)
}

func TestSourceInput_Normalize(t *testing.T) {
	blank := "  "
	tests := []struct {
		name    string
		in      SourceInput
		wantErr string
	}{
		{
			name: "valid feed",
			in:   SourceInput{Config: SourceSettings{URL: " https://blog.example.com/rss ", Name: "Blog", CustomUserAgent: &blank}},
		},
		{
			name:    "missing name",
			in:      SourceInput{Config: SourceSettings{URL: "https://example.com/rss"}},
			wantErr: "config.name",
		},
		{
			name:    "relative url",
			in:      SourceInput{Config: SourceSettings{URL: "/rss", Name: "Blog"}},
			wantErr: "config.url",
		},
		{
			name:    "ftp url",
			in:      SourceInput{Config: SourceSettings{URL: "ftp://example.com/rss", Name: "Blog"}},
			wantErr: "config.url",
		},
		{
			name:    "unknown type",
			in:      SourceInput{Type: "mastodon", Config: SourceSettings{URL: "https://example.com", Name: "Blog"}},
			wantErr: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.in.Normalize()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, SourceTypeFeed, out.Type)
			assert.Equal(t, "https://blog.example.com/rss", out.Config.URL)
			assert.Nil(t, out.Config.CustomUserAgent)
		})
	}
}

func TestSourceSettings_ScanRoundTrip(t *testing.T) {
	ua := "bot/1.0"
	in := SourceSettings{URL: "https://example.com/feed", Name: "Example", CustomUserAgent: &ua}
	v, err := in.Value()
	require.NoError(t, err)

	var out SourceSettings
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}
