// Package agents provides the domain system for storing agent configuration
// records: name, conversational settings, and free-form code execution and
// LLM configuration objects.
package agents

// Default values applied to fields a client omits.
const (
	DefaultSystemMessage  = "You are a helpful AI Assistant."
	DefaultHumanInputMode = "TERMINATE"
)

// Agent represents an agent configuration stored in the database.
type Agent struct {
	ID                      int64          `json:"id"`
	Name                    string         `json:"name"`
	SystemMessage           *string        `json:"system_message"`
	HumanInputMode          string         `json:"human_input_mode"`
	MaxConsecutiveAutoReply *int           `json:"max_consecutive_auto_reply"`
	CodeExecutionConfig     map[string]any `json:"code_execution_config"`
	LLMConfig               map[string]any `json:"llm_config"`
	Description             *string        `json:"description"`
}

// Command contains every writable agent field. It is used for both create
// and full-replacement update.
type Command struct {
	Name                    string         `json:"name"`
	SystemMessage           *string        `json:"system_message"`
	HumanInputMode          string         `json:"human_input_mode"`
	MaxConsecutiveAutoReply *int           `json:"max_consecutive_auto_reply"`
	CodeExecutionConfig     map[string]any `json:"code_execution_config"`
	LLMConfig               map[string]any `json:"llm_config"`
	Description             *string        `json:"description"`
}

// NewCommand returns a Command holding the default field values.
func NewCommand(name string) Command {
	systemMessage := DefaultSystemMessage
	return Command{
		Name:           name,
		SystemMessage:  &systemMessage,
		HumanInputMode: DefaultHumanInputMode,
	}
}

// MockCommand returns the fixed sample agent served by the mock create endpoint.
func MockCommand() Command {
	systemMessage := "I am a mock agent for testing purposes."
	description := "A mock agent created for testing the API."
	maxReply := 5

	return Command{
		Name:                    "Mock Agent",
		SystemMessage:           &systemMessage,
		HumanInputMode:          DefaultHumanInputMode,
		MaxConsecutiveAutoReply: &maxReply,
		CodeExecutionConfig:     map[string]any{"allow_code_execution": true},
		LLMConfig:               map[string]any{"model": "gpt-3.5-turbo"},
		Description:             &description,
	}
}
