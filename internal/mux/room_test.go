package mux

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"seotda-server/pkg/model"
	"seotda-server/pkg/playable"
	"seotda-server/pkg/playable/seotda"
	"seotda-server/pkg/room"
	"seotda-server/pkg/room/gamefactory"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRoom(t *testing.T) {
	ts := newTestServer(t)

	var resp postRoomResponse
	assertPost(t, ts, "/room", &resp, 201)
	assert.Len(t, resp.RoomID, 12)
}

func TestGetRoomID_NotFound(t *testing.T) {
	ts := newTestServer(t)

	var errObj errorResponse
	assertGet(t, ts, "/room/empty", &errObj, 404)
	assert.Equal(t, "nobody is in the room", errObj.Message)

	assertGet(t, ts, "/room/"+strings.Repeat("x", 65), nil, 404)
}

func TestGetRoomIDWS_BadPlayer(t *testing.T) {
	ts := newTestServer(t)

	var errObj errorResponse
	assertGet(t, ts, "/room/abc/ws", &errObj, 400)
	assert.Equal(t, "playerId must be a positive integer", errObj.Message)

	assertGet(t, ts, "/room/abc/ws?playerId=-4", &errObj, 400)
	assertGet(t, ts, "/room/abc/ws?playerId=1&name="+strings.Repeat("x", 33), &errObj, 400)
	assert.Equal(t, "name is too long", errObj.Message)
}

func TestGetRoomIDWS(t *testing.T) {
	a := assert.New(t)
	ts := newTestServer(t)

	c1 := dial(t, ts, "/room/abc/ws?playerId=1&name=one")
	res := readUntil(t, c1, playable.TypeClientState)

	var details room.Details
	require.NoError(t, json.Unmarshal(res.Data, &details))
	a.Equal("abc", details.RoomID)
	a.Len(details.Players, 1)

	c2 := dial(t, ts, "/room/abc/ws?playerId=2")
	readUntil(t, c2, playable.TypeClientState)

	var httpDetails room.Details
	assertGet(t, ts, "/room/abc", &httpDetails, 200)
	a.Len(httpDetails.Players, 2)
	a.NotEmpty(httpDetails.Players[1].Name, "guests get a random name")

	// garbage does not drop the connection
	require.NoError(t, c1.WriteMessage(websocket.TextMessage, []byte("{nope")))
	res = readUntil(t, c1, playable.TypeError)
	a.Equal("could not decode message", res.Value)

	require.NoError(t, c1.WriteJSON(playable.PayloadIn{Type: "createGame", Subject: "seotda", Context: "new"}))
	res = readUntil(t, c1, playable.TypeStatus)
	a.Equal("new", res.Context)

	res = readUntil(t, c2, playable.TypeGameState)
	var state seotda.Response
	require.NoError(t, json.Unmarshal(res.Data, &state))
	a.Equal("betting", state.GameState.Phase)
	a.Equal(int64(1), state.GameState.InTurnPlayerID)
	a.Len(state.Hand, 2)

	require.NoError(t, c2.WriteJSON(playable.PayloadIn{Type: "bet", Action: "call", Context: "early"}))
	res = readUntil(t, c2, playable.TypeError)
	a.Equal("it is not your turn", res.Value)
	a.Equal("early", res.Context)

	require.NoError(t, c1.WriteJSON(playable.PayloadIn{Type: "bet", Action: "die"}))
	res = readUntil(t, c2, playable.TypeGameState)
	require.NoError(t, json.Unmarshal(res.Data, &state))
	a.Equal("settled", state.GameState.Phase)
	a.True(state.GameState.Settlement.FoldOut)
}

type wsResponse struct {
	Type    string          `json:"type"`
	Value   string          `json:"value"`
	Data    json.RawMessage `json:"data"`
	Context string          `json:"context"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	opts := seotda.DefaultOptions()
	opts.Seed = 1

	ctx, cancel := context.WithCancel(context.Background())
	pitBoss := room.NewPitBoss(gamefactory.NewRegistry(opts), model.NewMemoryRecorder(), 0)
	pitBoss.StartShift(ctx)

	ts := httptest.NewServer(NewMux("v1.2.3", pitBoss))
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})

	return ts
}

func dial(t *testing.T, ts *httptest.Server, path string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

// readUntil skips messages until one of the type arrives
func readUntil(t *testing.T, conn *websocket.Conn, typ string) *wsResponse {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second*2)))
	for {
		var res wsResponse
		require.NoError(t, conn.ReadJSON(&res))
		if res.Type == typ {
			return &res
		}
	}
}
