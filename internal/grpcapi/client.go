package grpcapi

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vietddude/bfhl/internal/core/domain"
	"github.com/vietddude/bfhl/internal/core/generator"
)

// Client calls a remote bfhl.v1.Classifier.
type Client struct {
	conn *grpc.ClientConn
}

// NewClient creates a client for target. Plaintext transport is used unless
// opts supply other credentials.
func NewClient(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client for %s: %w", target, err)
	}
	return &Client{conn: conn}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Classify sends tokens to the server and decodes the response.
func (c *Client) Classify(ctx context.Context, tokens []string) (domain.Response, error) {
	var resp domain.Response

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, ClassifyMethod, stringList(tokens), out); err != nil {
		return resp, err
	}

	data, err := protojson.Marshal(out)
	if err != nil {
		return resp, fmt.Errorf("failed to encode response: %w", err)
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return resp, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp, nil
}

// Generate asks the server for sample data.
func (c *Client) Generate(ctx context.Context, p generator.Params) ([]string, error) {
	in, err := structpb.NewStruct(map[string]any{
		"type":       string(p.Kind),
		"count":      p.Count,
		"min_length": p.MinLength,
		"max_length": p.MaxLength,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode params: %w", err)
	}

	out := new(structpb.ListValue)
	if err := c.conn.Invoke(ctx, GenerateMethod, in, out); err != nil {
		return nil, err
	}

	data := make([]string, 0, len(out.GetValues()))
	for _, v := range out.GetValues() {
		data = append(data, v.GetStringValue())
	}
	return data, nil
}
