package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/formahq/forma/internal/project"
)

// maxInputBytes limits how much of a text or DXF input is included in a
// prompt.
const maxInputBytes = 24_000

// GenerateDescription produces a technical design brief from the given
// design inputs. Refinement text is included for refine plans; persona is
// threaded in as the system prompt when present.
//
// Soft failures (API errors after retries, empty responses) are reported as
// a string starting with FailurePrefix, not as an error. The returned error
// is reserved for context cancellation.
func (c *Client) GenerateDescription(ctx context.Context, inputs []project.DesignInput, refinementText, persona string) (string, error) {
	blocks := buildInputBlocks(inputs, refinementText)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.briefModel),
		MaxTokens: 2048,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	}
	if persona != "" {
		params.System = []anthropic.TextBlockParam{{Text: persona}}
	}

	var response *anthropic.Message
	err := c.retryWithBackoff(ctx, "description generation", func(attemptCtx context.Context) error {
		resp, apiErr := c.api.Messages.New(attemptCtx, params)
		if apiErr != nil {
			return apiErr
		}
		response = resp
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return fmt.Sprintf("%s %v", FailurePrefix, err), nil
	}

	text := strings.TrimSpace(responseText(response))
	if text == "" {
		return FailurePrefix + " the model returned an empty description", nil
	}
	return text, nil
}

// GenerateStructuredModel produces the structured model artifact from a
// design brief: renderable parametric code, a bill of materials, and an
// engineering rationale. Unlike GenerateDescription, failures are returned
// as errors.
func (c *Client) GenerateStructuredModel(ctx context.Context, description, persona string) (*project.GeneratedModel, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 8192,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildStructuredPrompt(description))),
		},
	}
	if persona != "" {
		params.System = []anthropic.TextBlockParam{{Text: persona}}
	}

	var response *anthropic.Message
	err := c.retryWithBackoff(ctx, "model generation", func(attemptCtx context.Context) error {
		resp, apiErr := c.api.Messages.New(attemptCtx, params)
		if apiErr != nil {
			return apiErr
		}
		response = resp
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic API call failed: %w", err)
	}

	jsonData, err := extractJSON([]byte(responseText(response)))
	if err != nil {
		return nil, fmt.Errorf("failed to extract JSON from model response: %w", err)
	}

	var generated project.GeneratedModel
	if err := json.Unmarshal(jsonData, &generated); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	if generated.Code == "" {
		return nil, fmt.Errorf("model response is missing the code field")
	}
	return &generated, nil
}

// buildInputBlocks assembles the user-message content for brief generation:
// one leading text block with instructions and text/DXF inputs, followed by
// an image block per image input.
func buildInputBlocks(inputs []project.DesignInput, refinementText string) []anthropic.ContentBlockParamUnion {
	var sb strings.Builder

	sb.WriteString("You are assisting with the design of a 3D structural model.\n\n")
	sb.WriteString("## Design Inputs\n")
	if len(inputs) == 0 {
		sb.WriteString("(none provided)\n")
	}

	var images []project.DesignInput
	for _, input := range inputs {
		switch input.Kind {
		case project.InputKindText:
			sb.WriteString(fmt.Sprintf("### Note: %s\n%s\n\n", input.Name, truncate(input.Content, maxInputBytes)))
		case project.InputKindDXF:
			sb.WriteString(fmt.Sprintf("### DXF drawing: %s\n```\n%s\n```\n\n", input.Name, truncate(input.Content, maxInputBytes)))
		case project.InputKindImage:
			sb.WriteString(fmt.Sprintf("### Image: %s (attached)\n\n", input.Name))
			images = append(images, input)
		}
	}

	if refinementText != "" {
		sb.WriteString("## Requested Changes\n")
		sb.WriteString(refinementText)
		sb.WriteString("\n\n")
	}

	sb.WriteString("## Instructions\n")
	sb.WriteString("Write a concise technical description of the structural model implied by these inputs: ")
	sb.WriteString("overall form, principal dimensions, materials, load paths, and connections. ")
	sb.WriteString("If changes were requested, describe the model with those changes applied.\n")
	sb.WriteString("Return only the description, no preamble.\n")

	blocks := []anthropic.ContentBlockParamUnion{
		anthropic.NewTextBlock(sb.String()),
	}
	for _, img := range images {
		blocks = append(blocks, anthropic.NewImageBlockBase64(img.MediaType, img.Content))
	}
	return blocks
}

// buildStructuredPrompt creates the prompt for geometry generation.
func buildStructuredPrompt(description string) string {
	var sb strings.Builder

	sb.WriteString("You are generating a 3D structural model from a technical description.\n\n")
	sb.WriteString("## Description\n")
	sb.WriteString(description)
	sb.WriteString("\n\n")

	sb.WriteString("## Output Requirements\n")
	sb.WriteString("Return a JSON object with this exact structure:\n")
	sb.WriteString(`{
  "code": "Complete OpenSCAD source producing the described model",
  "billOfMaterials": [
    {
      "item": "Component name (e.g., 'HEB 200 steel column')",
      "quantity": "Count or measure (e.g., '4', '12 m')",
      "specification": "Material grade or standard, if applicable"
    }
  ],
  "rationale": "Engineering rationale: why this structure, load assumptions, key trade-offs"
}`)
	sb.WriteString("\n\n")

	sb.WriteString("## Guidelines\n")
	sb.WriteString("- The code must be self-contained and renderable as-is\n")
	sb.WriteString("- Use millimeters for all dimensions\n")
	sb.WriteString("- Every structural member in the code must appear in the bill of materials\n")
	sb.WriteString("- Keep the rationale under 300 words\n\n")

	sb.WriteString("Return ONLY the JSON, no markdown formatting or explanation.")

	return sb.String()
}

// responseText concatenates the text blocks of an API response.
func responseText(msg *anthropic.Message) string {
	if msg == nil {
		return ""
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String()
}
