package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "01 January 2024", FormatDate("2024-01-01"))
	assert.Equal(t, "15 March 2023", FormatDate("2023-03-15T10:30:00Z"))
	assert.Equal(t, "02 February 2022", FormatDate("2022/02/02"))
}

func TestFormatDate_Unparseable(t *testing.T) {
	assert.Equal(t, "Unknown", FormatDate("Unknown"))
	assert.Equal(t, "sometime", FormatDate("sometime"))
}
