package commands

import (
	"JewelryStore/internal/config"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы токен и логин сохранялись в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// recorded — запрос, который получил фейковый сервер.
type recorded struct {
	Method string
	Path   string
	Query  string
	Auth   string
}

// fakeAPI поднимает httptest-сервер с заданными маршрутами "METHOD /path".
func fakeAPI(t *testing.T, routes map[string]http.HandlerFunc) (*config.Config, *[]recorded) {
	t.Helper()
	var calls []recorded
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
		})
		h, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"endpoint not found"}`))
			return
		}
		h(w, r)
	}))
	t.Cleanup(ts.Close)
	return &config.Config{ServerURL: ts.URL}, &calls
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
