package llm

import (
	"context"
)

type Client interface {
	GenerateDesign(ctx context.Context, prompt string) (string, error)
}
