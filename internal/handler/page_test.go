package handler

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTokenProvider is a mock implementation of the TokenProvider interface
type MockTokenProvider struct {
	mock.Mock
}

func (m *MockTokenProvider) MapboxToken() string {
	return m.Called().String(0)
}

func testTemplates() *template.Template {
	tmpl := template.Must(template.New("index.html").Parse(`index token={{ .MapboxToken }}`))
	template.Must(tmpl.New("game.html").Parse(`game token={{ .MapboxToken }}`))
	template.Must(tmpl.New("results.html").Parse(`results`))
	template.Must(tmpl.New("about.html").Parse(`about`))
	return tmpl
}

func TestPageHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		path         string
		token        string
		expectedBody string
	}{
		{name: "index with token", path: "/", token: "pk.abc", expectedBody: "index token=pk.abc"},
		{name: "index without token", path: "/", token: "", expectedBody: "index token="},
		{name: "game with token", path: "/game", token: "pk.abc", expectedBody: "game token=pk.abc"},
		{name: "game without token", path: "/game", token: "", expectedBody: "game token="},
		{name: "results", path: "/results", expectedBody: "results"},
		{name: "about", path: "/about", expectedBody: "about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := new(MockTokenProvider)
			if tt.path == "/" || tt.path == "/game" {
				tokens.On("MapboxToken").Return(tt.token)
			}
			handler := NewPageHandler(tokens)

			r := gin.New()
			r.SetHTMLTemplate(testTemplates())
			r.GET("/", handler.Index)
			r.GET("/game", handler.Game)
			r.GET("/results", handler.Results)
			r.GET("/about", handler.About)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			tokens.AssertExpectations(t)
		})
	}
}
