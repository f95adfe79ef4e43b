package ai

// Role of a chat message sent to the completion service.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one entry of the conversation sent upstream. Tool results set
// Role=RoleTool plus ToolName/ToolResult; assistant tool invocations carry
// ToolCalls.
type Message struct {
	Role       Role
	Content    string
	ToolCalls  []ToolCall
	ToolName   string
	ToolResult string
}

// ToolCall is a provider-agnostic function invocation requested by the model.
type ToolCall struct {
	Name string
	Args map[string]any
}

// ParamSpec describes one tool parameter in JSON-Schema terms.
type ParamSpec struct {
	Type        string
	Description string
	Enum        []string
}

// ToolSpec declares a callable tool to the completion service.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]ParamSpec
	Required    []string
}

// Request is a single completion call. ForceTool, when non-empty, mandates
// that the model invoke that tool on this turn instead of choosing freely.
type Request struct {
	System    string
	Messages  []Message
	Tools     []ToolSpec
	ForceTool string
}

// Completion is the model's answer: free text, tool calls, or both.
type Completion struct {
	Text      string
	ToolCalls []ToolCall
}

// StringArg reads a string argument from a tool call, tolerating absence.
func (c ToolCall) StringArg(key string) string {
	if v, ok := c.Args[key].(string); ok {
		return v
	}
	return ""
}

// BoolArg reads a bool argument from a tool call, tolerating absence.
func (c ToolCall) BoolArg(key string) bool {
	v, _ := c.Args[key].(bool)
	return v
}
