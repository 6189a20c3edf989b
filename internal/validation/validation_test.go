package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("fur_real_22"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("has spaces"))
	assert.Error(t, ValidateUsername("way-too-long-username-over-limit"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("pet@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("a@b"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Sufficiently1Long"))
	assert.Error(t, ValidatePassword("Short1"))
	assert.Error(t, ValidatePassword("nouppercase1234"))
	assert.Error(t, ValidatePassword("NOLOWERCASE1234"))
	assert.Error(t, ValidatePassword("NoDigitsAtAllHere"))
}

func TestValidateCaption(t *testing.T) {
	assert.NoError(t, ValidateCaption(""))
	assert.NoError(t, ValidateCaption("morning walk"))
	assert.Error(t, ValidateCaption(strings.Repeat("x", MaxCaptionLength+1)))
}

func TestValidateCommentBody(t *testing.T) {
	assert.NoError(t, ValidateCommentBody("so cute"))
	assert.Error(t, ValidateCommentBody("   "))
	assert.Error(t, ValidateCommentBody(strings.Repeat("x", MaxCommentLength+1)))
}

func TestValidateCoordinates(t *testing.T) {
	lat, lon := 52.37, 4.89
	assert.NoError(t, ValidateCoordinates(&lat, &lon))
	assert.NoError(t, ValidateCoordinates(nil, nil))
	assert.Error(t, ValidateCoordinates(&lat, nil))

	badLat := 91.0
	assert.Error(t, ValidateCoordinates(&badLat, &lon))
	badLon := -181.0
	assert.Error(t, ValidateCoordinates(&lat, &badLon))
}
