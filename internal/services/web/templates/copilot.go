package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/man3/internal/services/assessor"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

// CopilotView is the data behind the assessor chat page.
type CopilotView struct {
	Messages []assessor.Message
	// Query prefills the input, for example from a practice card.
	Query   string
	Context string
	Model   string
	// Available is false when no provider key is configured.
	Available bool
}

// CopilotPage renders the chat transcript and the ask form.
func CopilotPage(view CopilotView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="copilot"><header class="chat-head"><h3>ASPICE L3 Expert</h3>`)
		h.rawf(`<p class="muted">Powered by %s</p>`, orDefault(view.Model, assessor.DefaultModel))
		if !view.Available {
			h.raw(`<p class="notice">No assessor API key is configured; answers will report a connection error.</p>`)
		}
		h.raw(`</header><div id="messages" class="messages">`)
		for _, msg := range view.Messages {
			h.render(ctx, CopilotMessage(msg))
		}
		h.raw(`</div>`)
		h.rawf(`<form id="ask-form" class="ask" data-socket="%s" %s hx-target="#messages" hx-swap="beforeend" hx-on::after-request="this.reset()">`,
			routepath.CopilotSocket, formAttrs(routepath.CopilotAsk))
		h.rawf(`<input type="hidden" name="context" value="%s">`, view.Context)
		h.rawf(`<input name="query" value="%s" autocomplete="off" required placeholder="Ask about MAN.3, templates, or process tailoring...">`, view.Query)
		h.raw(`<button class="btn" type="submit">Send</button></form></section>`)
	})
}

// CopilotMessage renders one chat bubble.
func CopilotMessage(msg assessor.Message) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		class := "message " + string(msg.Role)
		if msg.Failed {
			class += " failed"
		}
		h.rawf(`<div class="%s" id="msg-%s"><p>%s</p><time datetime="%s">%s</time></div>`,
			class, msg.ID, msg.Text,
			msg.Timestamp.Format("2006-01-02T15:04:05Z07:00"), msg.Timestamp.Format("15:04"))
	})
}
