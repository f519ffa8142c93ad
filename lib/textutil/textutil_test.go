package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "jane q. smith", NormalizeName("  Jane  Q.\tSmith \n"))
}

func TestMatchName(t *testing.T) {
	require.True(t, MatchName("Jane Q. Smith", "smith"))
	require.True(t, MatchName("Jane Q. Smith", "JANE"))
	require.False(t, MatchName("Jane Q. Smith", "jones"))
}
