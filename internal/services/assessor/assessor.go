package assessor

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/louisbranch/man3/internal/platform/id"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// SystemInstruction is the persona sent with every query.
const SystemInstruction = `You are an expert Automotive SPICE (ASPICE) Assessor and Senior Project Manager.
Your goal is to help a user achieve Level 3 (Established) capability in the MAN.3 (Project Management) process.
Always emphasize:
1. The importance of the Standard Process.
2. Tailoring (adapting the standard to the project).
3. Evidence (Work Products).
4. Traceability.

Keep answers concise, professional yet encouraging. If asked for templates, provide structure examples.`

const (
	// EmptyAnswerText replaces a blank model answer.
	EmptyAnswerText = "I couldn't generate a response. Please try again."
	// ErrorAnswerText replaces any provider failure.
	ErrorAnswerText = "Error connecting to the AI Assessor. Please check your API key or connection."
	// GreetingText opens every conversation.
	GreetingText = "Hello! I am your ASPICE Assessor Co-Pilot. I can help you draft Work Packages, explain Feasibility Studies, or guide you on L3 Tailoring. How can I assist?"
)

const tracerName = "github.com/louisbranch/man3/internal/services/assessor"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one chat bubble.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	// Failed marks a fallback produced by a provider error.
	Failed bool `json:"failed,omitempty"`
}

// Config wires an Assessor.
type Config struct {
	Provider Provider
	Model    string
	// Timeout bounds one provider call; zero leaves only the caller's
	// deadline.
	Timeout time.Duration
	Logger  *log.Logger
}

// Assessor turns user questions into assessor answers.
type Assessor struct {
	provider Provider
	model    string
	timeout  time.Duration
	logger   *log.Logger
	now      func() time.Time
	newID    func() (string, error)
}

// New builds an Assessor. A nil provider behaves as unconfigured.
func New(cfg Config) *Assessor {
	provider := cfg.Provider
	if provider == nil {
		provider = unavailableProvider{}
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Assessor{
		provider: provider,
		model:    model,
		timeout:  cfg.Timeout,
		logger:   logger,
		now:      time.Now,
		newID:    id.NewID,
	}
}

// Available reports whether a real provider is configured.
func (a *Assessor) Available() bool {
	_, unavailable := a.provider.(unavailableProvider)
	return !unavailable
}

// ProviderName returns the configured provider name.
func (a *Assessor) ProviderName() string {
	return a.provider.Name()
}

// Model returns the configured model.
func (a *Assessor) Model() string {
	return a.model
}

// Greeting returns the message that opens a conversation.
func (a *Assessor) Greeting() Message {
	return a.message(RoleModel, GreetingText)
}

// UserMessage records a user's question as a chat message.
func (a *Assessor) UserMessage(text string) Message {
	return a.message(RoleUser, strings.TrimSpace(text))
}

// BuildPrompt prefixes the query with context when context is present.
func BuildPrompt(query, contextText string) string {
	query = strings.TrimSpace(query)
	contextText = strings.TrimSpace(contextText)
	if contextText == "" {
		return query
	}
	return "Context: " + contextText + "\n\nUser Query: " + query
}

// Ask sends query to the provider and always returns a displayable model
// message.
func (a *Assessor) Ask(ctx context.Context, query, contextText string) Message {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "assessor.Ask")
	defer span.End()
	span.SetAttributes(
		attribute.String("assessor.provider", a.provider.Name()),
		attribute.String("assessor.model", a.model),
		attribute.Bool("assessor.has_context", strings.TrimSpace(contextText) != ""),
	)

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	text, err := a.provider.Generate(ctx, Request{
		Model:  a.model,
		System: SystemInstruction,
		Prompt: BuildPrompt(query, contextText),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		if !errors.Is(err, ErrUnavailable) {
			a.logger.Printf("assessor generate failed provider=%s model=%s err=%v", a.provider.Name(), a.model, err)
		}
		msg := a.message(RoleModel, ErrorAnswerText)
		msg.Failed = true
		return msg
	}
	if strings.TrimSpace(text) == "" {
		return a.message(RoleModel, EmptyAnswerText)
	}
	return a.message(RoleModel, text)
}

func (a *Assessor) message(role Role, text string) Message {
	msgID, err := a.newID()
	if err != nil {
		msgID = role.String() + "-" + a.now().UTC().Format("20060102150405.000000000")
	}
	return Message{ID: msgID, Role: role, Text: text, Timestamp: a.now().UTC()}
}

func (r Role) String() string {
	return string(r)
}
