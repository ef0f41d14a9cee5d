package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/bfhl/internal/core/domain"
	"github.com/vietddude/bfhl/internal/core/generator"
	"github.com/vietddude/bfhl/internal/core/service"
	"github.com/vietddude/bfhl/internal/grpcapi"
)

var (
	classifyGRPC    string
	classifyTimeout time.Duration
)

var classifyCmd = &cobra.Command{
	Use:   "classify [tokens...]",
	Short: "Classify tokens locally or against a gRPC server",
	Long: `Classify tokens given as arguments, or a JSON array of strings read from stdin
when no arguments are given. Put "--" before tokens that start with '-'.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyGRPC, "grpc", "", "classify remotely via this gRPC target")
	classifyCmd.Flags().DurationVar(&classifyTimeout, "timeout", 10*time.Second, "remote call timeout")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	tokens := args
	if len(tokens) == 0 {
		var err error
		if tokens, err = readTokens(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	var resp domain.Response
	if classifyGRPC != "" {
		client, err := grpcapi.NewClient(classifyGRPC)
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), classifyTimeout)
		defer cancel()
		if resp, err = client.Classify(ctx, tokens); err != nil {
			return fmt.Errorf("remote classify failed: %w", err)
		}
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		resp = service.New(cfg.Identity, generator.New(cfg.Generator.MaxCount)).Classify(tokens)
	}

	return printJSON(cmd.OutOrStdout(), resp)
}

func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	if err := json.NewDecoder(r).Decode(&tokens); err != nil {
		return nil, fmt.Errorf("stdin must be a JSON array of strings: %w", err)
	}
	return tokens, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
