package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected clients map with mutex for thread safety
var wsClients = make(map[*websocket.Conn]bool)
var broadcast = make(chan []byte, 100) // Buffered channel to prevent blocking
var wsMutex = &sync.Mutex{}

// broadcastEvent pushes an order/delivery lifecycle event to every connected
// dashboard. Best effort: a full channel drops the event rather than
// blocking the request.
func broadcastEvent(event string, data interface{}) {
	msg, err := json.Marshal(fiber.Map{"event": event, "data": data})
	if err != nil {
		log.Printf("Failed to encode ws event %s: %v", event, err)
		return
	}
	select {
	case broadcast <- msg:
	default:
		log.Printf("Dropped ws event %s: broadcast queue full", event)
	}
}

func wsHandler() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		wsMutex.Lock()
		wsClients[conn] = true
		wsMutex.Unlock()
		log.Println("Client connected:", conn.RemoteAddr())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				wsMutex.Lock()
				delete(wsClients, conn)
				wsMutex.Unlock()
				log.Println("Client disconnected:", conn.RemoteAddr())
				break
			}
		}
	})
}

func runBroadcaster() {
	for message := range broadcast {
		wsMutex.Lock()
		for client := range wsClients {
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(wsClients, client)
			}
		}
		wsMutex.Unlock()
	}
}
