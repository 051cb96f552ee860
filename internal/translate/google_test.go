package translate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"penulis/internal/network"
	"penulis/internal/translate"
)

func newServerTranslator(t *testing.T, handler http.HandlerFunc) *translate.GoogleTranslator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return translate.NewGoogleTranslator(srv.URL, network.NewClientFactory(""))
}

func TestGoogleTranslator_Translate(t *testing.T) {
	tr := newServerTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "gtx", r.Form.Get("client"))
		require.Equal(t, "en", r.Form.Get("sl"))
		require.Equal(t, "id", r.Form.Get("tl"))
		require.Equal(t, "Urban Gardening", r.Form.Get("q"))
		_, _ = w.Write([]byte(`[[["Berkebun Kota","Urban Gardening",null,null,10]],null,"en"]`))
	})

	out, err := tr.Translate(context.Background(), "Urban Gardening", "en", "id")
	require.NoError(t, err)
	require.Equal(t, "Berkebun Kota", out)
}

func TestGoogleTranslator_ConcatenatesSegments(t *testing.T) {
	tr := newServerTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[["Kalimat pertama. ","First sentence. "],["Kalimat kedua.","Second sentence."]],null,"en"]`))
	})

	out, err := tr.Translate(context.Background(), "First sentence. Second sentence.", "en", "id")
	require.NoError(t, err)
	require.Equal(t, "Kalimat pertama. Kalimat kedua.", out)
}

func TestGoogleTranslator_EmptyInput(t *testing.T) {
	called := false
	tr := newServerTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	out, err := tr.Translate(context.Background(), "   ", "en", "id")
	require.NoError(t, err)
	require.Empty(t, out)
	require.False(t, called, "no request should be made for blank input")
}

func TestGoogleTranslator_UpstreamError(t *testing.T) {
	tr := newServerTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := tr.Translate(context.Background(), "text", "en", "id")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestGoogleTranslator_MalformedPayload(t *testing.T) {
	tr := newServerTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>captcha</html>`))
	})

	_, err := tr.Translate(context.Background(), "text", "en", "id")
	require.Error(t, err)
}
