// Package ocr recognizes text in scanned sheet images through a local
// tesseract install.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client performs OCR on sheet images. The zero value uses tesseract's
// default language.
type Client struct {
	languages []string
}

// NewClient configures an OCR client. Languages follow tesseract naming
// ("eng", "spa", ...); none means the tesseract default.
func NewClient(languages ...string) *Client {
	return &Client{languages: languages}
}

// ImageToText recognizes the text of one sheet image file and returns it
// trimmed.
func (c *Client) ImageToText(path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	return c.recognize(client)
}

// ImageToTextBytes recognizes text from in-memory image data.
func (c *Client) ImageToTextBytes(data []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	return c.recognize(client)
}

func (c *Client) recognize(client *gosseract.Client) (string, error) {
	if len(c.languages) > 0 {
		if err := client.SetLanguage(c.languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
