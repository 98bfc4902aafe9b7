// Package commands routes chat lines to the card query commands.
package commands

import (
	"context"
	"regexp"
	"strings"

	"github.com/disgoorg/boombot/boombot/markup"
)

// Request is one command invocation parsed from a chat line.
type Request struct {
	RequestID string
	Caller    string
	UserName  string
	ChannelID string
	Query     string
}

// Handler answers a request. An empty reply means nothing was found.
type Handler func(ctx context.Context, r Request) (string, error)

// Middleware decorates the handler registered under name.
type Middleware func(name string, h Handler) Handler

type route struct {
	name    string
	pattern *regexp.Regexp
	handler Handler
}

// Router holds the commands in the order they are tried.
type Router struct {
	surface    markup.Surface
	middleware []Middleware
	routes     []route
}

type RouterOpt func(r *Router)

func WithSurface(s markup.Surface) RouterOpt {
	return func(r *Router) {
		r.surface = s
	}
}

func WithMiddleware(m ...Middleware) RouterOpt {
	return func(r *Router) {
		r.middleware = append(r.middleware, m...)
	}
}

func NewRouter(opts ...RouterOpt) *Router {
	r := &Router{surface: markup.IRC}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle registers h under name. A line triggers it when it contains "!name",
// optionally followed by a digit, or when it starts with "name:".
func (r *Router) Handle(name string, h Handler) {
	name = strings.ToLower(name)
	for i := len(r.middleware) - 1; i >= 0; i-- {
		h = r.middleware[i](name, h)
	}
	q := regexp.QuoteMeta(name)
	r.routes = append(r.routes, route{
		name:    name,
		pattern: regexp.MustCompile(`(!` + q + `\d?|^` + q + `:) ?(.*)$`),
		handler: h,
	})
}

// Names lists the registered commands in dispatch order.
func (r *Router) Names() []string {
	names := make([]string, len(r.routes))
	for i, rt := range r.routes {
		names[i] = rt.name
	}
	return names
}

// Dispatch runs every command the line triggers and returns their replies in
// registration order. A failed command produces no reply.
func (r *Router) Dispatch(ctx context.Context, base Request, line string) []string {
	line = strings.ToLower(line)

	var replies []string
	for _, rt := range r.routes {
		m := rt.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		req := base
		req.Query = m[2]
		out, err := rt.handler(ctx, req)
		if err != nil {
			continue
		}
		if out == "" {
			out = r.noResults()
		}
		replies = append(replies, out)
	}
	return replies
}

func (r *Router) noResults() string {
	return r.surface.Italic + "no results" + r.surface.ItalicEnd + " "
}
