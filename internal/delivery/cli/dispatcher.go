package cli

import (
	"context"
	"strings"

	"contacts/internal/delivery"
	domainerrors "contacts/internal/domain/errors"
)

type route struct {
	keyword string
	handler delivery.CommandHandler
}

// Dispatcher routes an input line to the first registered command whose
// keyword prefixes it, ignoring case.
type Dispatcher struct {
	routes      []route
	middlewares []delivery.CommandMiddleware
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Handle registers handler under keyword. Registration order is match order.
func (d *Dispatcher) Handle(keyword string, handler delivery.CommandHandler) {
	d.routes = append(d.routes, route{keyword: strings.ToLower(keyword), handler: handler})
}

// Use appends middlewares; the first one added runs outermost.
func (d *Dispatcher) Use(middlewares ...delivery.CommandMiddleware) {
	d.middlewares = append(d.middlewares, middlewares...)
}

// Keywords lists the registered keywords in match order.
func (d *Dispatcher) Keywords() []string {
	keywords := make([]string, len(d.routes))
	for i, r := range d.routes {
		keywords[i] = r.keyword
	}

	return keywords
}

// Parse finds the route for input and splits the remainder into arguments.
func (d *Dispatcher) Parse(input string) (*delivery.Command, delivery.CommandHandler, bool) {
	input = strings.TrimSpace(input)
	for _, r := range d.routes {
		if len(input) < len(r.keyword) || !strings.EqualFold(input[:len(r.keyword)], r.keyword) {
			continue
		}

		return &delivery.Command{
			Keyword: r.keyword,
			Args:    strings.Fields(input[len(r.keyword):]),
		}, r.handler, true
	}

	return nil, nil, false
}

// Dispatch parses input and runs the matching handler through the middlewares.
func (d *Dispatcher) Dispatch(ctx context.Context, input string) (string, error) {
	cmd, handler, ok := d.Parse(input)
	if !ok {
		return "", domainerrors.ErrUnknownCommand
	}

	for i := len(d.middlewares) - 1; i >= 0; i-- {
		handler = d.middlewares[i](handler)
	}

	return handler(ctx, cmd)
}
