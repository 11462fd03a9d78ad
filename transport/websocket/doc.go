// Package websocket pushes rover updates to browser clients.
//
// A central Hub tracks connections per mission session. Every connection
// gets a random client ID (announced in a "connected" event) and receives
// the session's mission state after each command batch or reset.
//
// Message Protocol:
//
//	{"session_id": "ab12", "client_id": "...", "event": "connected"}
//	{"session_id": "ab12", "event": "state_update", "mission_state": {...}}
//	{"session_id": "ab12", "event": "command_result", "data": {...}}
//
// Clients never send commands over the socket; they use the REST API and
// the socket only carries updates back.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
package websocket
