// Package bridge forwards speech transcripts and sound directions from the network to the wrist unit's serial line.
//
// Transcripts arrive on an MQTT topic or as websocket text messages. Directions arrive on a second MQTT topic as a
// decimal angle. Both are written to the serial line with the link protocol.
package bridge

import (
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/net/websocket"

	"github.com/ajanata/hearsay/link"
)

type Bridge struct {
	cfg Config

	mu  sync.Mutex
	enc *link.Encoder
}

// New returns a bridge writing link traffic to w.
func New(cfg Config, w io.Writer) *Bridge {
	return &Bridge{
		cfg: cfg,
		enc: link.NewEncoder(w),
	}
}

// Text sends a transcript line.
func (b *Bridge) Text(s string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enc.WriteText(s)
}

// Direction sends the arrow for angle.
func (b *Bridge) Direction(angle int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enc.WriteDirection(angle)
}

// ClientOptions returns MQTT options for the configured broker. The topics are subscribed again on every connect.
func (b *Bridge) ClientOptions() *mqtt.ClientOptions {
	return mqtt.NewClientOptions().
		AddBroker(b.cfg.Broker).
		SetClientID(b.cfg.ClientID).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(c mqtt.Client) {
			err := b.Subscribe(c)
			if err != nil {
				log.Println("bridge: subscribe:", err)
			}
		})
}

// Subscribe subscribes to the transcript and direction topics.
func (b *Bridge) Subscribe(c mqtt.Client) error {
	token := c.Subscribe(b.cfg.TranscriptTopic, 1, b.onTranscript)
	if token.Wait() && token.Error() != nil {
		return token.Error()
	}
	token = c.Subscribe(b.cfg.DirectionTopic, 1, b.onDirection)
	if token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

func (b *Bridge) onTranscript(_ mqtt.Client, msg mqtt.Message) {
	err := b.Text(string(msg.Payload()))
	if err != nil {
		log.Println("bridge: transcript:", err)
	}
}

func (b *Bridge) onDirection(_ mqtt.Client, msg mqtt.Message) {
	angle, err := strconv.Atoi(strings.TrimSpace(string(msg.Payload())))
	if err != nil {
		log.Printf("bridge: direction %q: not an angle", msg.Payload())
		return
	}
	err = b.Direction(angle)
	if err != nil {
		log.Printf("bridge: direction %d: %s", angle, err)
	}
}

var (
	pingMsg = "ping"
	pongMsg = "pong"
)

// Handler serves the transcript websocket at /ws.
func (b *Bridge) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serv := websocket.Server{Handler: websocket.Handler(b.serve)}
		serv.ServeHTTP(w, r)
	})
	return mux
}

func (b *Bridge) serve(conn *websocket.Conn) {
	defer conn.Close()
	for {
		var msg string
		err := websocket.Message.Receive(conn, &msg)
		if err != nil {
			if err != io.EOF {
				log.Printf("bridge: disconnecting %s: %s", conn.Request().RemoteAddr, err)
			}
			return
		}
		if msg == pingMsg {
			err = websocket.Message.Send(conn, pongMsg)
			if err != nil {
				return
			}
			continue
		}
		err = b.Text(msg)
		if err != nil {
			log.Println("bridge: transcript:", err)
		}
	}
}
