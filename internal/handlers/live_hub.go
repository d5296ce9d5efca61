// scheduleTracker/internal/handlers/live_hub.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Для разработки разрешаем все источники
	},
}

// GlobalHub - единственный экземпляр хаба для всего приложения.
var GlobalHub = NewHub()

// Event - событие изменения журнала, рассылаемое открытым календарям,
// чтобы они перечитали данные без перезагрузки страницы.
type Event struct {
	Type    string      `json:"type"`
	Group   string      `json:"group,omitempty"`
	Date    string      `json:"date,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	id   string
}

// Hub рассылает события всем подключенным клиентам. Аутентификации нет,
// поэтому клиенты различаются только сгенерированным идентификатором.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]*Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			h.mu.Unlock()
			slog.Info("Клиент подключился к живой ленте", "clientID", client.id)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
			}
			h.mu.Unlock()
			slog.Info("Клиент отключился от живой ленты", "clientID", client.id)

		case messageData := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- messageData:
				default:
					close(client.send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastEvent сериализует событие и ставит его в очередь рассылки.
// Отправка не блокирует обработчик HTTP-запроса.
func (h *Hub) BroadcastEvent(evt Event) {
	messageBytes, err := json.Marshal(evt)
	if err != nil {
		slog.Error("Не удалось сериализовать событие журнала", "error", err)
		return
	}
	select {
	case h.broadcast <- messageBytes:
	default:
		slog.Warn("Очередь рассылки переполнена, событие пропущено", "type", evt.Type)
	}
}

// readPump выбрасывает входящие сообщения: лента односторонняя, клиент
// только слушает. Выход из цикла означает разрыв соединения.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("Неожиданное закрытие websocket", "error", err)
			}
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// ScheduleWSEndpoint поднимает websocket-соединение живой ленты журнала.
func ScheduleWSEndpoint(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("Не удалось установить websocket-соединение", "error", err)
		return
	}

	client := &Client{
		hub:  GlobalHub,
		conn: conn,
		send: make(chan []byte, 64),
		id:   uuid.NewString(),
	}
	GlobalHub.register <- client

	go client.writePump()
	go client.readPump()
}
