package openaigen

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/require"
)

// stubModel allows driving Generate from a function.
type stubModel struct {
	fn func(ctx context.Context, input []*schema.Message) (*schema.Message, error)
}

func (s stubModel) Generate(ctx context.Context,
	input []*schema.Message,
	_ ...model.Option) (*schema.Message, error) {
	return s.fn(ctx, input)
}

func TestClient_Generate_success(t *testing.T) {
	c := &Client{chatModel: stubModel{fn: func(_ context.Context, input []*schema.Message) (*schema.Message, error) {
		require.Len(t, input, 1)
		require.Equal(t, schema.System, input[0].Role)
		require.Equal(t, "tell me things", input[0].Content)

		return schema.AssistantMessage("some advice", nil), nil
	}}}

	got, err := c.Generate(context.Background(), "tell me things")
	require.NoError(t, err)
	require.Equal(t, "some advice", got)
}

func TestClient_Generate_upstreamError(t *testing.T) {
	boom := errors.New("quota exceeded")
	c := &Client{chatModel: stubModel{fn: func(context.Context, []*schema.Message) (*schema.Message, error) {
		return nil, boom
	}}}

	_, err := c.Generate(context.Background(), "p")
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
}

func TestClient_Generate_emptyCompletion(t *testing.T) {
	c := &Client{chatModel: stubModel{fn: func(context.Context, []*schema.Message) (*schema.Message, error) {
		return schema.AssistantMessage("   \n", nil), nil
	}}}

	_, err := c.Generate(context.Background(), "p")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty completion")
}
