/*
Copyright (c) 2025 Git Tutor Contributors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package api

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleWebSocket upgrades the connection and streams every Snapshot
// produced by subsequent command/lesson/reset calls against this
// session, from any client, until the socket closes. The connection
// is write-only from the server's perspective; it still drains
// incoming frames so a client's keepalive pings don't back up the
// kernel buffer and force a close.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionOrNotFound(w, r)
	if sess == nil {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub := &subscriber{send: make(chan Snapshot, 8)}

	sess.mu.Lock()
	sess.subs[sub] = struct{}{}
	initial := sess.snapshot()
	sess.mu.Unlock()

	defer func() {
		sess.mu.Lock()
		delete(sess.subs, sub)
		sess.mu.Unlock()
	}()

	if err := conn.WriteJSON(initial); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snap := <-sub.send:
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
