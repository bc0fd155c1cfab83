// Package event dispatches in-process notifications raised by HTTP handlers.
package event

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"moneyapi/internal/http/middleware"
)

// ResourceCreated is published after a resource is persisted while the request is still being served.
type ResourceCreated struct {
	Ctx    *fiber.Ctx
	Codigo int64
}

type Listener func(ResourceCreated)

// Publisher delivers events synchronously to every subscribed listener in subscription order.
type Publisher struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewPublisher() *Publisher { return &Publisher{} }

func (p *Publisher) Subscribe(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

func (p *Publisher) Publish(e ResourceCreated) {
	p.mu.RLock()
	listeners := p.listeners
	p.mu.RUnlock()

	for _, l := range listeners {
		l(e)
	}
}

// SetLocation points the Location header at the created resource: the request URL plus "/<codigo>".
func SetLocation(e ResourceCreated) {
	c := e.Ctx
	base := strings.TrimSuffix(c.BaseURL()+c.Path(), "/")
	c.Location(base + "/" + strconv.FormatInt(e.Codigo, 10))
}

// LogCreated returns a listener recording each created resource.
func LogCreated(logger log.FieldLogger) Listener {
	return func(e ResourceCreated) {
		logger.WithFields(log.Fields{
			"component":  "event",
			"event":      "resource_created",
			"path":       strings.Clone(e.Ctx.Path()),
			"codigo":     e.Codigo,
			"request_id": middleware.RequestIDFrom(e.Ctx),
		}).Info("resource created")
	}
}
