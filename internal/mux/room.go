package mux

import (
	"errors"
	"net/http"

	"seotda-server/internal/util"
)

type postRoomResponse struct {
	RoomID string `json:"roomId"`
}

// postRoom hands out a fresh room id
// The room opens when the first client connects to it
func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, postRoomResponse{RoomID: util.NewRoomID()})
	}
}

func (m *Mux) getRoomID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID := r.Context().Value(ctxRoomKey).(string)

		details, found := m.pitBoss.Room(roomID)
		if !found {
			writeJSONError(w, http.StatusNotFound, errors.New("nobody is in the room"))
			return
		}

		writeJSON(w, http.StatusOK, details)
	}
}
