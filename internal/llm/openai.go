package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient calls the OpenAI Chat Completions API.
type OpenAIClient struct {
	model       openai.ChatModel
	temperature float64
	timeout     time.Duration
	client      *openai.Client
}

// OpenAIOptions configures an OpenAIClient.
type OpenAIOptions struct {
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

const (
	defaultChatTimeout = 30 * time.Second
	defaultOpenAIModel = openai.ChatModelGPT4oMini
)

// NewOpenAIClient builds a client with defaults against api.openai.com.
func NewOpenAIClient(opts OpenAIOptions) (*OpenAIClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	model := openai.ChatModel(opts.Model)
	if model == "" {
		model = defaultOpenAIModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}
	cli := openai.NewClient(option.WithAPIKey(opts.APIKey))
	return &OpenAIClient{
		model:       model,
		temperature: opts.Temperature,
		timeout:     timeout,
		client:      &cli,
	}, nil
}

// Model reports the chat model the client is bound to.
func (c *OpenAIClient) Model() string { return string(c.model) }

func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(system, user),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}
