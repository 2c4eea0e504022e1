package agent

import (
	"fmt"

	"google.golang.org/genai"
)

// Function is anything the model can call by name.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	Call(args map[string]any) (map[string]any, error)
}

// Library indexes functions by name for dispatching model calls.
type Library map[string]Function

// NewLibrary builds a library from a list of functions.
func NewLibrary(functions ...Function) Library {
	lib := make(Library, len(functions))
	for _, f := range functions {
		lib[f.Declaration().Name] = f
	}
	return lib
}

// Declarations returns the function declarations, for the model config.
func (l Library) Declarations() []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(l))
	for _, f := range l {
		decls = append(decls, f.Declaration())
	}
	return decls
}

// Call dispatches a model function call to the matching function.
func (l Library) Call(call *genai.FunctionCall) (map[string]any, error) {
	f, ok := l[call.Name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q", call.Name)
	}
	return f.Call(call.Args)
}
