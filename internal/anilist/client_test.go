package anilist

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anicouch/internal/constants"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{endpoint: srv.URL, httpClient: srv.Client()}
}

func TestNewClientUsesAPIEndpoint(t *testing.T) {
	c := NewClient("tok")
	assert.Equal(t, constants.AniListGraphQLURL, c.endpoint)
	assert.Equal(t, "tok", c.token)
}

func TestSearchDecodesPage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"data":{"Page":{"media":[
			{"id":101922,"title":{"romaji":"Kimetsu no Yaiba","english":"Demon Slayer"},
			 "type":"ANIME","episodes":26,
			 "coverImage":{"large":"https://img/l.jpg","extraLarge":"https://img/xl.jpg"}}
		]}}}`))
	})

	media, err := c.Search("demon slayer", 1)
	require.NoError(t, err)
	require.Len(t, media, 1)
	assert.Equal(t, 101922, media[0].ID)
	assert.Equal(t, "Demon Slayer", media[0].DisplayTitle())
	assert.Equal(t, "https://img/xl.jpg", media[0].CoverURL())
	assert.False(t, media[0].IsManga())
}

func TestQuerySurfacesGraphQLErrors(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null,"errors":[{"message":"Not Found."}]}`))
	})

	_, err := c.MediaByID(999999999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not Found.")
}

func TestQuerySurfacesHTTPErrors(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	})

	_, err := c.Trending(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestMediaHelpers(t *testing.T) {
	m := Media{Type: "MANGA", Description: "A story.<br><i>Really.</i>"}
	m.Title.Romaji = "Yokohama Kaidashi Kikou"

	assert.True(t, m.IsManga())
	assert.Equal(t, "Yokohama Kaidashi Kikou", m.DisplayTitle())
	assert.Equal(t, "yokohama-kaidashi-kikou", m.Slug())
	assert.Equal(t, "A story.\nReally.", m.PlainDescription())
}
