package llm

import (
	"context"
	"fmt"

	"NeuroLink/internal/modules/triage/domain/conversation"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const systemPrompt = "You are a supportive mental health triage assistant. " +
	"Listen empathetically, keep replies short and calm, and never give a diagnosis. " +
	"If the user seems to need professional help, gently suggest booking an appointment with a therapist."

type chatModelResponder struct {
	chatModel model.BaseChatModel
}

// NewChatModelResponder wraps an eino chat model as the triage Responder.
func NewChatModelResponder(chatModel model.BaseChatModel) conversation.Responder {
	return &chatModelResponder{chatModel: chatModel}
}

func (r *chatModelResponder) Reply(ctx context.Context, history []conversation.Exchange, message string) (string, error) {
	if r.chatModel == nil {
		return "", fmt.Errorf("chat model not configured")
	}

	promptMsgs := make([]*schema.Message, 0, 2+len(history))
	promptMsgs = append(promptMsgs, &schema.Message{
		Role:    schema.System,
		Content: systemPrompt,
	})
	for _, exchange := range history {
		role := schema.User
		if exchange.Role == conversation.RoleAssistant {
			role = schema.Assistant
		}
		promptMsgs = append(promptMsgs, &schema.Message{
			Role:    role,
			Content: exchange.Content,
		})
	}
	promptMsgs = append(promptMsgs, &schema.Message{
		Role:    schema.User,
		Content: message,
	})

	resp, err := r.chatModel.Generate(ctx, promptMsgs)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
