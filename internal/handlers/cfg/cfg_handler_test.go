package cfg

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCfgHandler()
	r := gin.New()
	r.GET("/options", h.Options)
	r.POST("/cfg/:kind/parse", h.Parse)
	r.POST("/cfg/:kind/serialize", h.Serialize)
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestParse(t *testing.T) {
	r := newRouter()

	w := post(t, r, "/cfg/range/parse", `{"text": "DISTANCE: 0 - 500 | bad | AMOUNT:-5--1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := gjson.Get(w.Body.String(), "data")
	assert.Equal(t, "DISTANCE:0-500 | AMOUNT:-5--1", data.Get("text").String())
	assert.JSONEq(t,
		`[{"name":"DISTANCE","min":0,"max":500},{"name":"AMOUNT","min":-5,"max":-1}]`,
		data.Get("entries").Raw)
}

func TestParseKindIsCaseInsensitive(t *testing.T) {
	w := post(t, newRouter(), "/cfg/NUMBER/parse", `{"text": "RATING: 4, five, 5"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "RATING: 4,5", gjson.Get(w.Body.String(), "data.text").String())
}

func TestParseUnknownKind(t *testing.T) {
	w := post(t, newRouter(), "/cfg/date/parse", `{"text": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, gjson.Get(w.Body.String(), "success").Bool())
}

func TestSerialize(t *testing.T) {
	r := newRouter()

	w := post(t, r, "/cfg/string/serialize",
		`{"entries": [{"name": " CITY ", "value": "HN, ,SG"}, {"name": "SOURCE"}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CITY: HN, SG | SOURCE:", gjson.Get(w.Body.String(), "data.text").String())

	w = post(t, r, "/cfg/number/serialize", `{"entries": {"name": "x"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, r, "/cfg/number/serialize", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOptions(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/options", nil))

	require.Equal(t, http.StatusOK, w.Code)
	types := gjson.Get(w.Body.String(), "data.point_types").Array()
	assert.NotEmpty(t, types)
	assert.Contains(t, w.Body.String(), `"DISTANCE"`)
}
