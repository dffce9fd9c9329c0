package celcondition

import (
	"fmt"

	"github.com/google/cel-go/cel"
	celtypes "github.com/google/cel-go/common/types"
)

// Vars are the event attributes a message filter can reference.
type Vars struct {
	Text        string
	ChatID      string
	ChatType    string
	MessageType string
	EventType   string
}

func (v Vars) activation() map[string]any {
	return map[string]any{
		"text":        v.Text,
		"chatId":      v.ChatID,
		"chatType":    v.ChatType,
		"messageType": v.MessageType,
		"eventType":   v.EventType,
	}
}

// PrepareCondition compiles a filter expression and checks that it yields a bool.
func PrepareCondition(celCondition string) (cel.Program, error) {
	opts := []cel.EnvOption{
		cel.Variable("text", cel.StringType),
		cel.Variable("chatId", cel.StringType),
		cel.Variable("chatType", cel.StringType),
		cel.Variable("messageType", cel.StringType),
		cel.Variable("eventType", cel.StringType),
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to compile CEL expression: %w", err)
	}
	ast, issues := env.Compile(celCondition)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to program CEL expression: %w", err)
	}

	out, _, err := prg.Eval(Vars{}.activation())
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate CEL condition: %w", err)
	}
	if out.Type() != celtypes.BoolType {
		return nil, fmt.Errorf("output type is not bool: %s", out.Type())
	}
	return prg, nil
}

// EvaluateCondition reports whether the prepared filter accepts vars.
func EvaluateCondition(prg cel.Program, vars Vars) (bool, error) {
	out, _, err := prg.Eval(vars.activation())
	if err != nil {
		return false, fmt.Errorf("failed to evaluate CEL condition: %w", err)
	}
	return out.Type() == celtypes.BoolType && out.Value() == true, nil
}
