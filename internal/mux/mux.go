package mux

import (
	"context"
	"net/http"

	"seotda-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxRoomKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
// The pit boss must already be on shift
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

	rr := r.PathPrefix("/room/{id:[a-zA-Z0-9_-]{1,64}}").Subrouter()
	rr.Use(this.roomMiddleware)
	rr.Methods(http.MethodGet).Path("").Handler(this.getRoomID())
	rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomIDWS())

	return this
}

func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		newCtx := context.WithValue(r.Context(), ctxRoomKey, gmux.Vars(r)["id"])
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
