package tokens

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the tiktoken encoding used when none is specified.
// cl100k_base is the encoding for GPT-3.5/GPT-4 era models and a reasonable
// stand-in for most modern tokenizers.
const DefaultEncoding = "cl100k_base"

// TiktokenCounter counts tokens with a real BPE tokenizer via tiktoken.
// Use this when budget enforcement must match an actual model tokenizer
// rather than the word-based approximation.
type TiktokenCounter struct {
	encoding string
	enc      *tiktoken.Tiktoken
}

// NewTiktokenCounter creates a counter for the given tiktoken encoding.
// An empty encoding selects DefaultEncoding. Loading an encoding may fetch
// vocabulary data on first use.
func NewTiktokenCounter(encoding string) (*TiktokenCounter, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encoding, err)
	}
	return &TiktokenCounter{encoding: encoding, enc: enc}, nil
}

// Encoding returns the name of the encoding in use.
func (c *TiktokenCounter) Encoding() string {
	return c.encoding
}

// Count returns the exact BPE token count for the text.
func (c *TiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *TiktokenCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}
