package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
	log       *slog.Logger
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string, log *slog.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client, modelName: modelName, log: log}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Complete runs one chat completion. A fresh GenerativeModel is configured
// per call so per-request tool config never leaks between concurrent users.
func (p *GeminiProvider) Complete(ctx context.Context, req Request) (*Completion, error) {
	model := p.client.GenerativeModel(p.modelName)
	model.SetTemperature(0.4)

	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}
	if len(req.Tools) > 0 {
		model.Tools = []*genai.Tool{{FunctionDeclarations: toFunctionDeclarations(req.Tools)}}
		if req.ForceTool != "" {
			model.ToolConfig = &genai.ToolConfig{
				FunctionCallingConfig: &genai.FunctionCallingConfig{
					Mode:                 genai.FunctionCallingAny,
					AllowedFunctionNames: []string{req.ForceTool},
				},
			}
		} else {
			model.ToolConfig = &genai.ToolConfig{
				FunctionCallingConfig: &genai.FunctionCallingConfig{Mode: genai.FunctionCallingAuto},
			}
		}
	}

	history, last, err := toContents(req.Messages)
	if err != nil {
		return nil, err
	}

	session := model.StartChat()
	session.History = history

	p.log.Debug("gemini completion", "model", p.modelName, "forced", req.ForceTool, "messages", len(req.Messages))

	resp, err := session.SendMessage(ctx, last...)
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var out Completion
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			text.WriteString(string(v))
		case genai.FunctionCall:
			out.ToolCalls = append(out.ToolCalls, ToolCall{Name: v.Name, Args: v.Args})
		}
	}
	out.Text = strings.TrimSpace(text.String())
	return &out, nil
}

// toContents converts the request messages to Gemini chat history plus the
// final message parts to send. The last message must exist; Gemini requires
// SendMessage to carry it separately from History.
func toContents(messages []Message) ([]*genai.Content, []genai.Part, error) {
	if len(messages) == 0 {
		return nil, nil, fmt.Errorf("no messages to send")
	}

	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		content := &genai.Content{}
		switch m.Role {
		case RoleUser:
			content.Role = "user"
			content.Parts = []genai.Part{genai.Text(m.Content)}
		case RoleAssistant:
			content.Role = "model"
			if m.Content != "" {
				content.Parts = append(content.Parts, genai.Text(m.Content))
			}
			for _, tc := range m.ToolCalls {
				content.Parts = append(content.Parts, genai.FunctionCall{Name: tc.Name, Args: tc.Args})
			}
		case RoleTool:
			content.Role = "function"
			content.Parts = []genai.Part{genai.FunctionResponse{
				Name:     m.ToolName,
				Response: map[string]any{"content": m.ToolResult},
			}}
		default:
			return nil, nil, fmt.Errorf("unsupported message role %q", m.Role)
		}
		contents = append(contents, content)
	}

	last := contents[len(contents)-1]
	return contents[:len(contents)-1], last.Parts, nil
}

func toFunctionDeclarations(tools []ToolSpec) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		props := make(map[string]*genai.Schema, len(t.Parameters))
		for name, p := range t.Parameters {
			props[name] = &genai.Schema{
				Type:        toSchemaType(p.Type),
				Description: p.Description,
				Enum:        p.Enum,
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   t.Required,
			},
		})
	}
	return decls
}

func toSchemaType(t string) genai.Type {
	switch t {
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
