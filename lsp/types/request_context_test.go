package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestContextWarnings(t *testing.T) {
	req := NewRequestContext(nil, nil)

	assert.False(t, req.HasWarnings())
	assert.Nil(t, req.Warnings())

	req.AddWarning(errors.New("first"))
	req.AddWarning(nil) // nil warnings are ignored
	req.AddWarning(errors.New("second"))

	assert.True(t, req.HasWarnings())
	assert.Len(t, req.Warnings(), 2)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.CatalogFiles)
	assert.Empty(t, cfg.Prefix)
	assert.Equal(t, InsertionStyleVar, cfg.InsertionStyle)
	assert.True(t, cfg.ExtendedRanking)
}
