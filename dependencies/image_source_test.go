package dependencies

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Xushengqwer/blog_mock_service/config"
)

func TestDogAPISource_RandomImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/breeds/image/random", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"https://images.dog.ceo/breeds/hound-afghan/n02088094_1003.jpg","status":"success"}`))
	}))
	defer srv.Close()

	src, err := InitImageSource(&config.ImageAPIConfig{Enabled: true, URL: srv.URL + "/api/breeds/image/random"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	imageURL, alt, err := src.RandomImage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://images.dog.ceo/breeds/hound-afghan/n02088094_1003.jpg", imageURL)
	assert.Equal(t, "A afghan hound dog", alt)
}

func TestDogAPISource_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"non-200": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		},
		"bad json": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		},
		"empty message": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"message":"","status":"error"}`))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			src, err := InitImageSource(&config.ImageAPIConfig{Enabled: true, URL: srv.URL}, zaptest.NewLogger(t))
			require.NoError(t, err)

			_, _, err = src.RandomImage(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestInitImageSource_InvalidURL(t *testing.T) {
	_, err := InitImageSource(&config.ImageAPIConfig{Enabled: true, URL: "::not a url"}, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestInitImageSource_DisabledFallsBackToFake(t *testing.T) {
	src, err := InitImageSource(&config.ImageAPIConfig{Enabled: false}, zaptest.NewLogger(t))
	require.NoError(t, err)

	imageURL, alt, err := src.RandomImage(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(imageURL, "https://picsum.photos/seed/"))
	assert.True(t, strings.HasPrefix(alt, "A "))
}

func TestFakeImageSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewFakeImageSource(1).RandomImage(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBreedAltText(t *testing.T) {
	assert.Equal(t, "A beagle dog", BreedAltText("https://images.dog.ceo/breeds/beagle/n02088364_11136.jpg"))
	assert.Equal(t, "A english sheepdog dog", BreedAltText("https://images.dog.ceo/breeds/sheepdog-english/a.jpg"))
	assert.Equal(t, "", BreedAltText("https://example.com/cat.jpg"))
	assert.Equal(t, "", BreedAltText("https://images.dog.ceo/breeds"))
}
