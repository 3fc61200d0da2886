package gemini

import (
	"context"
	"fmt"

	"gametop-backend/internal/model"

	"google.golang.org/genai"
)

// systemInstruction pins the assistant to its storefront persona. Handed to
// the completion service as configuration, never exposed to users.
const systemInstruction = `أنت GameGenie، مساعد ذكي لموقع "GameTop Hub" لشحن الألعاب.
هدفك مساعدة المستخدمين في أسئلتهم حول شحن الألعاب مثل فري فاير، ببجي، فيفا، بيس، وغيرها.
تحدث باللغة العربية فقط.
العملة المستخدمة في الموقع هي الدرهم المغربي (MAD).
جميع العروض في الموقع تتطلب الدخول للحساب (شحن حساب) وليس عن طريق المعرف (ID).
كن ودوداً ومختصراً.
إذا سألك أحد عن الأسعار، اطلب منه التحقق من بطاقة اللعبة في الصفحة الرئيسية.
لا تقدم روابط دفع وهمية. دائماً شجعهم على استخدام زر "إتمام الطلب" في الموقع.
`

const temperature = 0.7

// Client calls the Gemini API for chat completions. It implements
// service.Completer.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// Complete runs one chat turn: the prior transcript is replayed as history
// and the new message is sent as the current turn.
func (c *Client) Complete(ctx context.Context, history []model.ChatMessage, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		contents = append(contents, genai.NewContentFromText(m.Text, genai.Role(m.Role)))
	}

	chat, err := c.client.Chats.Create(ctx, c.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](temperature),
	}, contents)
	if err != nil {
		return "", fmt.Errorf("create chat: %w", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	return resp.Text(), nil
}
