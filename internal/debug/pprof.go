// internal/debug/pprof.go
package debug

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter монтирует профилировщик под /debug
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Mount("/debug", middleware.Profiler())
	return r
}

// StartProfiler поднимает профилировщик в отдельной горутине. Пустой адрес — выключен.
// Сервер только отдаёт профили и не трогает игровое состояние.
func StartProfiler(addr string) {
	if addr == "" {
		return
	}
	go func() {
		log.Printf("pprof listening on http://%s/debug/pprof/", addr)
		log.Println(http.ListenAndServe(addr, NewRouter()))
	}()
}
