package project

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/formahq/forma/internal/util"
)

// InputKind classifies a design input by how its content is interpreted.
type InputKind string

const (
	InputKindText  InputKind = "text"
	InputKindImage InputKind = "image"
	InputKindDXF   InputKind = "dxf"
)

// DesignInput is one unit of user-supplied design material referenced by id
// from a plan's tasks. Text and DXF content is stored verbatim; image
// content is stored base64-encoded alongside its media type.
type DesignInput struct {
	ID        string    `json:"id"`
	Kind      InputKind `json:"kind"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	MediaType string    `json:"mediaType,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}

// imageMediaTypes maps image file extensions to their media type.
var imageMediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// NewTextInput creates a text design input from inline content.
func NewTextInput(name, content string) (DesignInput, error) {
	id, err := util.ShortID()
	if err != nil {
		return DesignInput{}, err
	}
	return DesignInput{
		ID:      id,
		Kind:    InputKindText,
		Name:    name,
		Content: content,
		AddedAt: time.Now().UTC(),
	}, nil
}

// NewInputFromFile creates a design input from a file, deriving the kind
// from the extension: .dxf is a drawing, known image extensions are images,
// everything else is read as text.
func NewInputFromFile(path string) (DesignInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DesignInput{}, fmt.Errorf("failed to read input file: %w", err)
	}

	id, err := util.ShortID()
	if err != nil {
		return DesignInput{}, err
	}

	input := DesignInput{
		ID:      id,
		Name:    filepath.Base(path),
		AddedAt: time.Now().UTC(),
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".dxf":
		input.Kind = InputKindDXF
		input.Content = string(data)
	case imageMediaTypes[ext] != "":
		input.Kind = InputKindImage
		input.MediaType = imageMediaTypes[ext]
		input.Content = base64.StdEncoding.EncodeToString(data)
	default:
		input.Kind = InputKindText
		input.Content = string(data)
	}

	return input, nil
}
