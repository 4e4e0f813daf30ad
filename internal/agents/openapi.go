package agents

import "github.com/JaimeStill/agent-registry/pkg/openapi"

type spec struct {
	MockCreate *openapi.Operation
	Create     *openapi.Operation
	List       *openapi.Operation
	Find       *openapi.Operation
	Update     *openapi.Operation
	Delete     *openapi.Operation
}

var idParam = openapi.PathParam("id", "integer", "Agent ID")

// Spec contains OpenAPI operation definitions for all agent endpoints.
var Spec = spec{
	MockCreate: &openapi.Operation{
		Summary:     "Create mock agent",
		Description: "Stores a fixed sample agent, useful for exercising the API",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Agent created", "Agent"),
			500: openapi.ResponseRef("InternalServerErr"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create agent",
		Description: "Stores a new agent. Omitted fields take their defaults",
		RequestBody: openapi.RequestBodyJSON("AgentCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Agent created", "Agent"),
			413: openapi.ResponseRef("PayloadTooLarge"),
			422: openapi.ResponseRef("ValidationError"),
			500: openapi.ResponseRef("InternalServerErr"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List agents",
		Description: "Returns every stored agent ordered by id",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArrayJSON("List of agents", "Agent"),
			500: openapi.ResponseRef("InternalServerErr"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Get agent by ID",
		Description: "Retrieves a single agent",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Agent", "Agent"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("ValidationError"),
			500: openapi.ResponseRef("InternalServerErr"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update agent",
		Description: "Replaces every writable field of an existing agent",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("AgentCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Agent updated", "Agent"),
			404: openapi.ResponseRef("NotFound"),
			413: openapi.ResponseRef("PayloadTooLarge"),
			422: openapi.ResponseRef("ValidationError"),
			500: openapi.ResponseRef("InternalServerErr"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete agent",
		Description: "Removes an agent",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Agent deleted", "DeleteResult"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("ValidationError"),
			500: openapi.ResponseRef("InternalServerErr"),
		},
	},
}

// Schemas returns the component schemas referenced by the agent operations.
func (spec) Schemas() map[string]*openapi.Schema {
	fields := func() map[string]*openapi.Schema {
		return map[string]*openapi.Schema{
			"name":                       {Type: "string"},
			"system_message":             {Type: openapi.Nullable("string"), Default: DefaultSystemMessage},
			"human_input_mode":           {Type: "string", Default: DefaultHumanInputMode},
			"max_consecutive_auto_reply": {Type: openapi.Nullable("integer")},
			"code_execution_config":      {Type: openapi.Nullable("object")},
			"llm_config":                 {Type: openapi.Nullable("object")},
			"description":                {Type: openapi.Nullable("string")},
		}
	}

	agent := fields()
	agent["id"] = &openapi.Schema{Type: "integer", Format: "int64"}

	return map[string]*openapi.Schema{
		"Agent": {
			Type:       "object",
			Properties: agent,
			Required:   []string{"id", "name", "human_input_mode"},
		},
		"AgentCommand": {
			Type:       "object",
			Properties: fields(),
			Required:   []string{"name"},
		},
		"DeleteResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"message": {Type: "string", Example: "Agent deleted successfully"},
			},
		},
	}
}
