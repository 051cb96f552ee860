package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"penulis/internal/service/ai"
)

func TestDecodeResponse_PlainJSON(t *testing.T) {
	obj, err := ai.DecodeResponse(`{"title_en": "A Catchy Title"}`)
	require.NoError(t, err)

	title, err := ai.ExtractString(obj, ai.KeyTitleEN)
	require.NoError(t, err)
	require.Equal(t, "A Catchy Title", title)
}

func TestDecodeResponse_FencedJSON(t *testing.T) {
	raw := "```json\n{\"summary_en\": \"A summary.\"}\n```"
	obj, err := ai.DecodeResponse(raw)
	require.NoError(t, err)

	summary, err := ai.ExtractString(obj, ai.KeySummaryEN)
	require.NoError(t, err)
	require.Equal(t, "A summary.", summary)
}

func TestDecodeResponse_FencedWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"body_en\": \"Body.\"}\n```"
	obj, err := ai.DecodeResponse(raw)
	require.NoError(t, err)

	body, err := ai.ExtractString(obj, ai.KeyBodyEN)
	require.NoError(t, err)
	require.Equal(t, "Body.", body)
}

func TestDecodeResponse_NotJSON(t *testing.T) {
	_, err := ai.DecodeResponse("Sure! Here is your title: Gardening")
	require.ErrorIs(t, err, ai.ErrMalformedResponse)
}

func TestDecodeResponse_Empty(t *testing.T) {
	_, err := ai.DecodeResponse("   ")
	require.ErrorIs(t, err, ai.ErrMalformedResponse)
}

func TestExtractString_MissingKey(t *testing.T) {
	obj, err := ai.DecodeResponse(`{"title": "wrong key"}`)
	require.NoError(t, err)

	_, err = ai.ExtractString(obj, ai.KeyTitleEN)
	require.ErrorIs(t, err, ai.ErrMissingKey)
}

func TestExtractString_WrongType(t *testing.T) {
	obj, err := ai.DecodeResponse(`{"title_en": 42}`)
	require.NoError(t, err)

	_, err = ai.ExtractString(obj, ai.KeyTitleEN)
	require.ErrorIs(t, err, ai.ErrMalformedResponse)
}

func TestExtractStringList(t *testing.T) {
	obj, err := ai.DecodeResponse(`{"tags": ["berkebun", "kota", "lingkungan"]}`)
	require.NoError(t, err)

	tags, err := ai.ExtractStringList(obj, ai.KeyTags)
	require.NoError(t, err)
	require.Equal(t, []string{"berkebun", "kota", "lingkungan"}, tags)
}

func TestExtractStringList_MissingKey(t *testing.T) {
	obj, err := ai.DecodeResponse(`{"labels": []}`)
	require.NoError(t, err)

	_, err = ai.ExtractStringList(obj, ai.KeyTags)
	require.ErrorIs(t, err, ai.ErrMissingKey)
}

func TestExtractStringList_WrongType(t *testing.T) {
	obj, err := ai.DecodeResponse(`{"tags": "berkebun, kota"}`)
	require.NoError(t, err)

	_, err = ai.ExtractStringList(obj, ai.KeyTags)
	require.ErrorIs(t, err, ai.ErrMalformedResponse)
}

func TestRateLimiter_Limits(t *testing.T) {
	rl := ai.NewRateLimiter(5)
	require.Equal(t, 5, rl.GetLimit())

	rl.SetLimit(0)
	require.Equal(t, ai.DefaultRateLimit, rl.GetLimit())
}
