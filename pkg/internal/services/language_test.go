package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "en", DetectLanguage("This is a blog post written entirely in plain English sentences."))
	assert.Equal(t, "es", DetectLanguage("Esta publicación del blog está escrita completamente en español."))
	assert.Equal(t, "unknown", DetectLanguage(""))
}
