package tools

import (
	"context"

	"ticketdesk-be/internal/pkg/logger"
	"ticketdesk-be/pkg/chatbot"
)

// Handler executes one declared tool. Execute never returns an error: any
// failure becomes an {"error": ...} payload handed back to the model as a
// normal tool result.
type Handler interface {
	Declaration() *chatbot.FunctionDeclaration
	Execute(ctx context.Context, args map[string]interface{}) map[string]interface{}
}

type Registry struct {
	handlers map[string]Handler
	order    []string
	logger   logger.ILogger
}

func NewRegistry(sysLogger logger.ILogger, handlers ...Handler) *Registry {
	r := &Registry{
		handlers: make(map[string]Handler),
		logger:   sysLogger,
	}
	for _, h := range handlers {
		name := h.Declaration().Name
		r.handlers[name] = h
		r.order = append(r.order, name)
	}
	return r
}

// Declarations returns the tool schemas in registration order, grouped into
// the single Tool entry the generateContent API expects.
func (r *Registry) Declarations() []*chatbot.Tool {
	decls := make([]*chatbot.FunctionDeclaration, 0, len(r.order))
	for _, name := range r.order {
		decls = append(decls, r.handlers[name].Declaration())
	}
	return []*chatbot.Tool{{FunctionDeclarations: decls}}
}

// Dispatch routes a model-requested call to its handler. Unknown names get a
// structured error payload rather than a silent no-op.
func (r *Registry) Dispatch(ctx context.Context, call *chatbot.FunctionCall) map[string]interface{} {
	handler, ok := r.handlers[call.Name]
	if !ok {
		r.logger.Warn("tools", "unknown tool requested", map[string]interface{}{
			"name": call.Name,
		})
		return map[string]interface{}{"error": "Unknown function"}
	}

	r.logger.Info("tools", "dispatching tool call", map[string]interface{}{
		"name": call.Name,
		"args": call.Args,
	})
	return handler.Execute(ctx, call.Args)
}

// stringArg pulls an optional string argument out of the loosely typed args
// map the model sends.
func stringArg(args map[string]interface{}, key string) string {
	if args == nil {
		return ""
	}
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
