package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Expert is a single chat with a model, a role and an optional library
// of callable functions.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	Library     Library

	client *genai.Client
	chat   *genai.Chat
}

// Start opens the underlying chat session.
func (e *Expert) Start() error {
	chat, err := e.client.Chats.Create(context.Background(), e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("cannot create chat for %q: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Ask sends a prompt to the expert and resolves any function calls the
// model emits before returning the final text answer.
func (e *Expert) Ask(prompt string) (string, error) {
	res, err := e.chat.SendMessage(context.Background(), genai.Part{Text: prompt})
	if err != nil {
		return "", fmt.Errorf("expert %q failed: %w", e.Name, err)
	}
	return e.resolve(res)
}

// resolve walks the response: if the model requested function calls,
// execute them against the library and send the results back until the
// model returns plain text.
func (e *Expert) resolve(res *genai.GenerateContentResponse) (string, error) {
	calls := res.FunctionCalls()
	if len(calls) == 0 {
		return res.Text(), nil
	}
	parts := make([]genai.Part, 0, len(calls))
	for _, call := range calls {
		response, err := e.Library.Call(call)
		if err != nil {
			return "", fmt.Errorf("function %q failed: %w", call.Name, err)
		}
		parts = append(parts, genai.Part{FunctionResponse: &genai.FunctionResponse{
			ID:       call.ID,
			Name:     call.Name,
			Response: response,
		}})
	}
	next, err := e.chat.SendMessage(context.Background(), parts...)
	if err != nil {
		return "", fmt.Errorf("expert %q failed returning function results: %w", e.Name, err)
	}
	return e.resolve(next)
}

// Declaration describes this expert as a callable function, so that the
// facilitator can route questions to it.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "the question to ask this expert, in plain language",
				},
			},
			Required: []string{"question"},
		},
	}
}

// Call implements the Function interface: asking the expert a question.
func (e *Expert) Call(args map[string]any) (map[string]any, error) {
	question, _ := args["question"].(string)
	if question == "" {
		return nil, fmt.Errorf("expert %q called without a question", e.Name)
	}
	answer, err := e.Ask(question)
	if err != nil {
		return nil, err
	}
	return map[string]any{"answer": answer}, nil
}
